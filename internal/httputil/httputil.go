// Package httputil provides HTTP-related constants and helpers shared by the
// parser and generator packages.
package httputil

import (
	"strconv"
	"strings"
)

// HTTP Method Constants
//
// Methods are lowercase to match the field names of an OpenAPI Path Item
// Object.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists all HTTP methods recognized on a Path Item Object, in the
// order they are defined by the OpenAPI specification.
var Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

// IsMethod reports whether key is a recognized lowercase HTTP method name.
func IsMethod(key string) bool {
	for _, m := range Methods {
		if key == m {
			return true
		}
	}
	return false
}

// ValidateStatusCode checks if a status code string is valid according to the
// OpenAPI spec. Valid values are:
//   - "default" for default response
//   - Extension fields starting with "x-"
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if strings.HasPrefix(code, "x-") {
		return true
	}

	if len(code) == 3 {
		// Wildcard patterns (e.g., "2XX", "4XX")
		if code[1] == 'X' && code[2] == 'X' {
			return code[0] >= '1' && code[0] <= '5'
		}

		if n, err := strconv.Atoi(code); err == nil {
			return n >= 100 && n <= 599
		}
	}

	return false
}

// IsSuccessStatus reports whether a status code string denotes a 2xx
// response. Wildcard ("2XX") and numeric ("200") forms both qualify.
func IsSuccessStatus(code string) bool {
	return strings.HasPrefix(code, "2")
}

// IsJSONMediaType reports whether a content-type key selects a JSON body.
// A key matches when it is exactly "application/json" or extends it with
// parameters or a suffix (e.g., "application/json; charset=utf-8").
func IsJSONMediaType(mediaType string) bool {
	return strings.HasPrefix(mediaType, "application/json")
}
