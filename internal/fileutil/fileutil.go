// Package fileutil provides shared file permission constants.
package fileutil

import "os"

// ReadableByAll is the file permission mode for generated source code
// files: owner read/write, group and others read-only.
const ReadableByAll os.FileMode = 0o644
