// Package validation provides basic checks for CLI inputs.
package validation

import (
	"fmt"
	"os"
)

// IsValidInputFile checks that a given path exists and is a regular file.
func IsValidInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// IsValidReportFormat checks if the given summary report format is supported.
func IsValidReportFormat(format string) error {
	switch format {
	case "json", "xml":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are 'json', 'xml'", format)
	}
}
