package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcucsya/portal/pkg/pagination"
)

func TestPaginate(t *testing.T) {
	t.Parallel()
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name          string
		page, perPage int
		want          pagination.Page[int]
	}{
		{"first", 1, 3, pagination.Page[int]{Data: []int{1, 2, 3}, TotalItems: 7, TotalPages: 3, CurrentPage: 1, ItemsPerPage: 3, HasNext: true}},
		{"middle", 2, 3, pagination.Page[int]{Data: []int{4, 5, 6}, TotalItems: 7, TotalPages: 3, CurrentPage: 2, ItemsPerPage: 3, HasNext: true, HasPrev: true}},
		{"last partial", 3, 3, pagination.Page[int]{Data: []int{7}, TotalItems: 7, TotalPages: 3, CurrentPage: 3, ItemsPerPage: 3, HasPrev: true}},
		{"past the end", 9, 3, pagination.Page[int]{Data: []int{}, TotalItems: 7, TotalPages: 3, CurrentPage: 9, ItemsPerPage: 3, HasPrev: true}},
		{"page zero clamps", 0, 3, pagination.Page[int]{Data: []int{1, 2, 3}, TotalItems: 7, TotalPages: 3, CurrentPage: 1, ItemsPerPage: 3, HasNext: true}},
		{"huge page clamps", math.MaxInt, 3, pagination.Page[int]{Data: []int{}, TotalItems: 7, TotalPages: 3, CurrentPage: pagination.MaxPage, ItemsPerPage: 3, HasPrev: true}},
		{"default per page", 1, 0, pagination.Page[int]{Data: items, TotalItems: 7, TotalPages: 1, CurrentPage: 1, ItemsPerPage: pagination.DefaultPerPage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagination.Paginate(items, tt.page, tt.perPage))
		})
	}
}

func TestPaginate_CopiesData(t *testing.T) {
	t.Parallel()
	items := []string{"a", "b"}
	page := pagination.Paginate(items, 1, 2)
	page.Data[0] = "z"
	assert.Equal(t, "a", items[0])
}

func TestWindow(t *testing.T) {
	t.Parallel()

	offset, limit := pagination.Window(3, 10)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 10, limit)

	offset, limit = pagination.Window(1, 1000)
	assert.Equal(t, 0, offset)
	assert.Equal(t, pagination.MaxPerPage, limit)
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	page := pagination.New[string](nil, 0, 1, 10)
	assert.Equal(t, []string{}, page.Data)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestWindow_LargePages(t *testing.T) {
	t.Parallel()

	for _, page := range []int{pagination.MaxPage, pagination.MaxPage + 1, 768614336404564651, math.MaxInt} {
		offset, limit := pagination.Window(page, pagination.MaxPerPage)
		assert.GreaterOrEqual(t, offset, 0, page)
		assert.Equal(t, pagination.MaxPerPage, limit)
	}

	p := pagination.Params{Page: math.MaxInt, PerPage: math.MaxInt}.Normalize(0)
	assert.Equal(t, pagination.Params{Page: pagination.MaxPage, PerPage: pagination.MaxPerPage}, p)
}
