package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDiagnostics_OpenFailed(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf, false)

	d.OpenFailed("missing.txt", errors.New("no such file or directory"))
	d.OpenFailed("dir", errors.New("is a directory"))

	want := "Failed to open missing.txt: no such file or directory\n" +
		"Failed to open dir: is a directory\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if d.Count() != 2 {
		t.Errorf("Count() = %d, want 2", d.Count())
	}
}

func TestDiagnostics_Colorized(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf, true)

	d.OpenFailed("x", errors.New("denied"))

	got := buf.String()
	if !strings.HasPrefix(got, "\x1b[31m") {
		t.Errorf("output %q should start with the red escape", got)
	}
	if !strings.Contains(got, "Failed to open x: denied") {
		t.Errorf("output %q lost the message", got)
	}
	if !strings.HasSuffix(got, "m\n") || strings.Count(got, "\x1b[") != 2 {
		t.Errorf("output %q should reset color before the newline", got)
	}
}
