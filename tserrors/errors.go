// Package tserrors provides structured error types for tsapigen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and structural issues
//   - ResolutionError: $ref resolution failures and circular references
//   - NoSuccessResponseError: an operation describes no 2xx response
//   - UnsupportedSchemaTypeError: a body schema is neither object nor array
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := generator.GenerateWithOptions(generator.WithFilePath("api.yaml"))
//	if err != nil {
//	    var resErr *tserrors.ResolutionError
//	    if errors.As(err, &resErr) {
//	        if resErr.IsCircular {
//	            // Handle circular reference specifically
//	        }
//	    }
//	}
package tserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResolution indicates a reference resolution failure.
	ErrResolution = errors.New("resolution error")

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrNoSuccessResponse indicates an operation with no 2xx response.
	ErrNoSuccessResponse = errors.New("no success response")

	// ErrUnsupportedSchemaType indicates a body schema that is neither
	// object- nor array-shaped.
	ErrUnsupportedSchemaType = errors.New("unsupported schema type")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an OpenAPI document.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResolutionError represents a failure to resolve a $ref within a document.
// This includes missing reference targets and circular references.
type ResolutionError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Pointer is the JSON pointer segment that could not be traversed
	// (empty if the failure is not tied to a specific segment)
	Pointer string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ResolutionError) Error() string {
	msg := "resolution error"
	if e.IsCircular {
		msg = "circular reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Pointer != "" {
		msg += fmt.Sprintf(" (at %s)", e.Pointer)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrResolution, and also ErrCircularReference when the
// IsCircular flag is set.
func (e *ResolutionError) Is(target error) bool {
	if target == ErrResolution {
		return true
	}
	if target == ErrCircularReference && e.IsCircular {
		return true
	}
	return false
}

// NoSuccessResponseError represents an operation whose responses mapping
// contains no entry with a 2xx status code. A well-formed OpenAPI operation
// must describe at least one success response, so this is treated as
// malformed input and aborts generation.
type NoSuccessResponseError struct {
	// OperationID is the derived identifier of the offending operation
	OperationID string
	// Path is the path template of the operation
	Path string
	// Method is the lowercase HTTP method of the operation
	Method string
}

// Error returns a human-readable error message.
func (e *NoSuccessResponseError) Error() string {
	msg := "no success response"
	if e.OperationID != "" {
		msg += " for operation " + e.OperationID
	}
	if e.Method != "" && e.Path != "" {
		msg += fmt.Sprintf(" (%s %s)", e.Method, e.Path)
	}
	return msg
}

// Unwrap returns nil as NoSuccessResponseError has no underlying cause.
func (e *NoSuccessResponseError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *NoSuccessResponseError) Is(target error) bool {
	return target == ErrNoSuccessResponse
}

// UnsupportedSchemaTypeError represents a request or response body schema
// whose resolved type is neither object nor array. Only object- and
// array-shaped JSON bodies are supported.
type UnsupportedSchemaTypeError struct {
	// SchemaType is the offending schema type (e.g., "string")
	SchemaType string
	// Path is a human-readable location of the schema
	// (e.g., "paths./pets.get.responses.200")
	Path string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *UnsupportedSchemaTypeError) Error() string {
	msg := "unsupported schema type"
	if e.SchemaType != "" {
		msg += fmt.Sprintf(" %q", e.SchemaType)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as UnsupportedSchemaTypeError has no underlying cause.
func (e *UnsupportedSchemaTypeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedSchemaTypeError) Is(target error) bool {
	return target == ErrUnsupportedSchemaType
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
