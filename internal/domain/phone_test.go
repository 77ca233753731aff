package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	t.Run("Valid inputs", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
			want  string
		}{
			{"Leading 8", "89991234567", "+7 (999) 123-45-67"},
			{"Leading 7", "79991234567", "+7 (999) 123-45-67"},
			{"Plus seven", "+79991234567", "+7 (999) 123-45-67"},
			{"Ten digits without code", "9991234567", "+7 (999) 123-45-67"},
			{"Already formatted", "+7 (999) 123-45-67", "+7 (999) 123-45-67"},
			{"Spaces and dashes", "8 999 123-45-67", "+7 (999) 123-45-67"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := NormalizePhone(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{"Too short", "123"},
			{"Empty", ""},
			{"Too long", "899912345678"},
			{"No digits", "abc-def"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NormalizePhone(tc.input)
				assert.ErrorIs(t, err, ErrInvalidPhone)
			})
		}
	})
}
