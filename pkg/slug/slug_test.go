package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcucsya/portal/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		opts []slug.Option
		want string
	}{
		{"Machakos Town", []slug.Option{slug.Separator("_")}, "machakos_town"},
		{"machakos_town", []slug.Option{slug.Separator("_")}, "machakos_town"},
		{"  Masinga  ", nil, "masinga"},
		{"Culture & Arts", nil, "culture-arts"},
		{"O'Neil's Café", nil, "oneils-cafe"},
		{"Kangundo -- North__East", nil, "kangundo-north-east"},
		{"Ñandú", nil, "nandu"},
		{"!!!", nil, ""},
		{"", nil, ""},
		{"Sports & Recreation", []slug.Option{slug.MaxLength(7)}, "sports"},
		{"Sports & Recreation", []slug.Option{slug.MaxLength(6)}, "sports"},
		{"Sports & Recreation", []slug.Option{slug.MaxLength(9)}, "sports-re"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.in, tt.opts...))
		})
	}
}
