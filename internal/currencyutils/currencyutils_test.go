package currencyutils

import (
	"testing"

	"fjacquet/invoice-recon/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234.56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1'234.56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1,234", "1234"},
		{"$1,234.56", "1234.56"},
		{"€100", "100"},
		{"  42.50 ", "42.5"},
		{"-15.25", "-15.25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12.34.56x"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input)
			require.Error(t, err)

			var parseErr *parsererror.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "currencyutils", parseErr.Parser)
			assert.Equal(t, "amount", parseErr.Field)
			assert.Equal(t, input, parseErr.Value)
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("1.234,56"))
	assert.Equal(t, "1234.56", StandardizeAmount("1,234.56"))
	assert.Equal(t, "1234.56", StandardizeAmount("1'234.56"))
	assert.Equal(t, "100", StandardizeAmount("$100"))
}
