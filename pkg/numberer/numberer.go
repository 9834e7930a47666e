package numberer

import (
	"context"
	"fmt"
	"io"
)

// NumberWidth is the minimum width of the line number field.
const NumberWidth = 6

// Lines is the input side of Run. source.LineStream satisfies it.
type Lines interface {
	Next(ctx context.Context) (string, error)
}

// Stats counts what Run did with one stream.
type Stats struct {
	// Emitted is the number of lines passed to emit.
	Emitted int

	// Skipped is the number of lines dropped because they could not be read.
	Skipped int
}

// FormatNumbered renders n right-justified in NumberWidth columns, a tab,
// then line. Numbers wider than the field are not truncated.
func FormatNumbered(n int, line string) string {
	return fmt.Sprintf("%*d\t%s", NumberWidth, n, line)
}

// FormatAndAdvance formats one line under m and returns the mode for the
// following line.
func (m Mode) FormatAndAdvance(line string) (string, Mode) {
	switch m.kind {
	case Number:
		return FormatNumbered(m.counter, line), Mode{kind: Number, counter: m.counter + 1}
	case NumberNonblank:
		if line == "" {
			return line, m
		}
		return FormatNumbered(m.counter, line), Mode{kind: NumberNonblank, counter: m.counter + 1}
	default:
		return line, m
	}
}

// Run pulls every line from lines, formats it under the threaded mode and
// passes the result to emit in input order.
//
// Read errors other than io.EOF drop the offending line without output and
// without consuming a number. Errors from emit and context cancellation stop
// the run and are returned.
func Run(ctx context.Context, lines Lines, mode Mode, emit func(string) error) (Stats, error) {
	var stats Stats

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		line, err := lines.Next(ctx)
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return stats, ctxErr
			}
			stats.Skipped++
			continue
		}

		var formatted string
		formatted, mode = mode.FormatAndAdvance(line)
		if err := emit(formatted); err != nil {
			return stats, err
		}
		stats.Emitted++
	}
}
