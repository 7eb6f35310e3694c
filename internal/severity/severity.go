// Package severity provides severity level constants and utilities for
// issues reported during code generation.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue found during code
// generation.
type Severity int

const (
	// SeverityError indicates a document problem that makes the input invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates lossy translations or recommendations that
	// don't prevent generation but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about generation choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates features that cannot be generated without
	// data loss.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
