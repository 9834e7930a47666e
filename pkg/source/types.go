// Package source resolves input tokens to line streams.
package source

import (
	"errors"
	"fmt"
)

// Stdin is the token that selects standard input.
const Stdin = "-"

var (
	// ErrInvalidLine marks a line that is not valid UTF-8.
	ErrInvalidLine = errors.New("stream did not contain valid UTF-8")

	// ErrIsDirectory is the cause reported when a token names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// OpenError reports a token that could not be opened.
type OpenError struct {
	// Token is the path as given on the command line.
	Token string

	// Err is the underlying cause.
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening %s: %v", e.Token, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
