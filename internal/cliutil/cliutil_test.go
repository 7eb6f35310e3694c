package cliutil

import (
	"bytes"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "generated %d file(s) in %s", 2, "./out")
	if got := buf.String(); got != "generated 2 file(s) in ./out" {
		t.Errorf("Writef() = %q", got)
	}
}

func TestWritefNoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "plain message")
	if got := buf.String(); got != "plain message" {
		t.Errorf("Writef() = %q", got)
	}
}
