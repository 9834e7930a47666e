// Package output writes per-source diagnostics to the error channel.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Diagnostics reports recoverable problems without stopping the run.
type Diagnostics struct {
	w     io.Writer
	color *color.Color
	count int
}

// NewDiagnostics writes to w. With colorize set, messages are printed in red.
func NewDiagnostics(w io.Writer, colorize bool) *Diagnostics {
	c := color.New(color.FgRed)
	if colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return &Diagnostics{w: w, color: c}
}

// OpenFailed reports a source that could not be opened.
func (d *Diagnostics) OpenFailed(token string, cause error) {
	d.count++
	_, _ = fmt.Fprintln(d.w, d.color.Sprintf("Failed to open %s: %v", token, cause))
}

// Count returns the number of diagnostics written.
func (d *Diagnostics) Count() int {
	return d.count
}
