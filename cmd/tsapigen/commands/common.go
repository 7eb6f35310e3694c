// Package commands provides CLI command handlers for tsapigen.
package commands

import (
	"io"

	"github.com/tsapigen/tsapigen/internal/cliutil"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}
