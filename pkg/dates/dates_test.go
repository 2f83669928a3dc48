package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcucsya/portal/pkg/dates"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	d := time.Date(2003, time.March, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "07/03/2003", dates.Format(d, dates.DayMonthYear))
	assert.Equal(t, "03/07/2003", dates.Format(d, dates.MonthDayYear))
	assert.Equal(t, "2003-03-07", dates.Format(d, dates.ISO))
	assert.Equal(t, "7 Mar 2003", dates.Format(d, "locale"))

	assert.Equal(t, "07/03/2003", dates.FormatString("2003-03-07", dates.DayMonthYear))
	assert.Equal(t, dates.InvalidDate, dates.FormatString("yesterday", dates.DayMonthYear))
}
