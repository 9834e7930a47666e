// Package runner drives catr: it opens each source in order, numbers its
// lines and writes them out.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/catr/pkg/config"
	"github.com/ccollicutt/catr/pkg/numberer"
	"github.com/ccollicutt/catr/pkg/output"
	"github.com/ccollicutt/catr/pkg/source"
)

// Options wires the runner to its input and output channels.
type Options struct {
	// Stdout receives the formatted lines.
	Stdout io.Writer

	// Diagnostics receives open failures. Nil discards them.
	Diagnostics *output.Diagnostics

	// Opener resolves source tokens. Nil uses the process's standard input.
	Opener *source.Opener
}

// SourceResult describes one processed source.
type SourceResult struct {
	Token  string
	Opened bool
	Stats  numberer.Stats
}

// Result summarizes a run.
type Result struct {
	Sources []SourceResult
}

// Failed returns the number of sources that could not be opened.
func (r *Result) Failed() int {
	n := 0
	for _, s := range r.Sources {
		if !s.Opened {
			n++
		}
	}
	return n
}

// HasFailures reports whether any source could not be opened.
func (r *Result) HasFailures() bool {
	return r.Failed() > 0
}

// Run processes every source in cfg.Files. Sources that cannot be opened are
// reported and skipped. The returned error is reserved for failures that make
// continuing pointless: a write error on Stdout or context cancellation.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	opener := opts.Opener
	if opener == nil {
		opener = &source.Opener{}
	}
	diags := opts.Diagnostics
	if diags == nil {
		diags = output.NewDiagnostics(io.Discard, false)
	}

	out := bufio.NewWriter(opts.Stdout)
	result := &Result{Sources: make([]SourceResult, 0, len(cfg.Files))}

	for _, token := range cfg.Files {
		stream, err := opener.Open(token)
		if err != nil {
			var openErr *source.OpenError
			if !errors.As(err, &openErr) {
				return result, fmt.Errorf("opening %s: %w", token, err)
			}
			diags.OpenFailed(token, openErr.Err)
			result.Sources = append(result.Sources, SourceResult{Token: token})
			continue
		}

		mode := numberer.Select(cfg.NumberLines, cfg.NumberNonblankLines)
		stats, err := process(ctx, stream, mode, out)
		result.Sources = append(result.Sources, SourceResult{Token: token, Opened: true, Stats: stats})
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// process numbers one stream into out and flushes, closing the stream on
// every path.
func process(ctx context.Context, stream source.LineStream, mode numberer.Mode, out *bufio.Writer) (numberer.Stats, error) {
	defer stream.Close()

	stats, err := numberer.Run(ctx, stream, mode, func(line string) error {
		if _, err := out.WriteString(line); err != nil {
			return err
		}
		return out.WriteByte('\n')
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return stats, err
		}
		return stats, fmt.Errorf("writing output for %s: %w", stream.Name(), err)
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("writing output for %s: %w", stream.Name(), err)
	}
	return stats, nil
}
