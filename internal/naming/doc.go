// Package naming provides shared string case conversion utilities for
// deriving TypeScript identifiers from OpenAPI names and HTTP status codes.
package naming
