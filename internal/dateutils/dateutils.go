// Package dateutils provides common date parsing and formatting operations.
package dateutils

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"fjacquet/invoice-recon/internal/parsererror"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var spacePattern = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", &parsererror.ParseError{
		Parser: "dateutils",
		Field:  "date",
		Value:  dateStr,
		Err:    errors.New("no supported layout matched"),
	}
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims a date string and collapses internal whitespace
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spacePattern.ReplaceAllString(dateStr, " ")
}

// DaysApart returns the absolute difference between two dates in whole days.
func DaysApart(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
