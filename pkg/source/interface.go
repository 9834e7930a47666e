package source

import (
	"context"
)

// LineStream provides a forward-only iterator over the lines of one input.
// Implementations must be safe for sequential access (not concurrent).
type LineStream interface {
	// Next returns the next line with its terminator stripped.
	// Returns io.EOF when no more lines are available.
	// A line that cannot be read is returned as a non-EOF error; callers
	// may skip it and keep calling Next.
	Next(ctx context.Context) (string, error)

	// Name returns the token the stream was opened from.
	Name() string

	// Close releases any resources held by the stream.
	Close() error
}
