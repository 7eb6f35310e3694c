// Package issues provides a unified issue type for non-fatal generation
// findings.
package issues

import (
	"fmt"
	"strings"

	"github.com/tsapigen/tsapigen/internal/severity"
)

// Issue represents a single non-fatal problem found during generation.
type Issue struct {
	// Path is the JSON path to the problematic field (e.g., "paths./pets.get.responses")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name that has the issue
	Field string
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}

// FormatPath joins JSON path segments with dots
// (e.g., "paths", "/pets", "get" -> "paths./pets.get").
func FormatPath(segments ...string) string {
	return strings.Join(segments, ".")
}
