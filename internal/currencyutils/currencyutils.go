// Package currencyutils provides common currency and decimal operations used
// when coercing raw CSV values into monetary amounts.
package currencyutils

import (
	"errors"
	"regexp"
	"strings"

	"fjacquet/invoice-recon/internal/parsererror"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)

// ParseAmount parses a string representation of an amount into a decimal value.
// It handles formats like "1,234.56", "1.234,56", "1234.56" and "1'234.56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "currencyutils",
			Field:  "amount",
			Value:  amountStr,
			Err:    errors.New("empty amount string"),
		}
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "currencyutils",
			Field:  "amount",
			Value:  amountStr,
			Err:    err,
		}
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a plain
// decimal string that decimal.NewFromString accepts. Handles patterns like
// "1'234.56", "€1.234,56", "$1,234.56" and "1 234,56".
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Anglo format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}
