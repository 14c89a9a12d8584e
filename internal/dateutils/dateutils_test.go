package dateutils

import (
	"testing"
	"time"

	"fjacquet/invoice-recon/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-01-05", "2024-01-05"},
		{"05.01.2024", "2024-01-05"},
		{"01/05/2024", "2024-01-05"},
		{"2024-01-05 10:30:00", "2024-01-05"},
		{"5-Jan-2024", "2024-01-05"},
		{"  2024-01-05  ", "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, _, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ToISODate(parsed))
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "13/32/2024"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseDate(input)
			require.Error(t, err)

			var parseErr *parsererror.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "dateutils", parseErr.Parser)
			assert.Equal(t, "date", parseErr.Field)
		})
	}
}

func TestDaysApart(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, DaysApart(a, b))
	assert.Equal(t, 7, DaysApart(b, a))
	assert.Equal(t, 0, DaysApart(a, a))
}
