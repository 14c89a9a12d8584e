// Package parsererror defines the typed errors surfaced by the loaders and the
// reconciliation engine.
package parsererror

import "fmt"

// ParseError represents an error while parsing a single value out of an input file.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input file that cannot be processed at all,
// such as a CSV missing a required column.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// MissingFieldError represents a record that lacks a field the matchers cannot
// proceed without (record identifiers and currency). These are caller-input
// errors: the record set must be fixed upstream rather than silently skipped.
type MissingFieldError struct {
	RecordKind string
	RecordID   string
	Field      string
}

func (e *MissingFieldError) Error() string {
	if e.RecordID == "" {
		return fmt.Sprintf("%s record is missing required field %q", e.RecordKind, e.Field)
	}
	return fmt.Sprintf("%s %q is missing required field %q", e.RecordKind, e.RecordID, e.Field)
}
