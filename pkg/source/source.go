package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Opener resolves tokens to line streams.
type Opener struct {
	// Stdin is read for the "-" token. Nil means os.Stdin.
	Stdin io.Reader
}

// Open resolves a token using the process's standard input.
func Open(token string) (LineStream, error) {
	var o Opener
	return o.Open(token)
}

// Open returns a LineStream for token. Failures are returned as *OpenError.
func (o *Opener) Open(token string) (LineStream, error) {
	if token == Stdin {
		in := o.Stdin
		if in == nil {
			in = os.Stdin
		}
		// Standard input stays open so "-" can be given more than once.
		return newReaderStream(token, in, nil), nil
	}

	f, err := os.Open(token) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, &OpenError{Token: token, Err: cause(err)}
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &OpenError{Token: token, Err: cause(err)}
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &OpenError{Token: token, Err: ErrIsDirectory}
	}

	return newReaderStream(token, f, f), nil
}

// cause strips the "open <path>:" wrapper so diagnostics name the path once.
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// readerStream implements LineStream over any io.Reader.
type readerStream struct {
	name   string
	reader *bufio.Reader
	closer io.Closer
	done   bool
}

func newReaderStream(name string, r io.Reader, closer io.Closer) *readerStream {
	return &readerStream{
		name:   name,
		reader: bufio.NewReader(r),
		closer: closer,
	}
}

// Name returns the token the stream was opened from.
func (s *readerStream) Name() string {
	return s.name
}

// Next returns the next line.
// Lines that are not valid UTF-8 are consumed and reported as ErrInvalidLine.
// After an I/O error the stream is finished and returns io.EOF.
func (s *readerStream) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if s.done {
		return "", io.EOF
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading %s: %w", s.name, err)
		}
		if line == "" {
			return "", io.EOF
		}
		// Final line without a terminator.
	}

	line = trimTerminator(line)
	if !utf8.ValidString(line) {
		return "", fmt.Errorf("reading %s: %w", s.name, ErrInvalidLine)
	}
	return line, nil
}

// Close releases the underlying file, if any.
func (s *readerStream) Close() error {
	s.done = true
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}

// trimTerminator strips "\n" or "\r\n". A lone trailing "\r" is content.
func trimTerminator(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r")
}
