// Package numberer prefixes lines with sequence numbers.
package numberer

import "fmt"

// Kind identifies a numbering mode.
type Kind int

const (
	// NoNumber passes lines through unchanged.
	NoNumber Kind = iota
	// Number numbers every line, blank or not.
	Number
	// NumberNonblank numbers only non-blank lines.
	NumberNonblank
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case NoNumber:
		return "no-number"
	case Number:
		return "number"
	case NumberNonblank:
		return "number-nonblank"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mode is a numbering mode together with its next line number.
// Modes are values: FormatAndAdvance returns the successor and never
// modifies the receiver.
type Mode struct {
	kind    Kind
	counter int
}

// NewNumber returns Number(1).
func NewNumber() Mode {
	return Mode{kind: Number, counter: 1}
}

// NewNumberNonblank returns NumberNonblank(1).
func NewNumberNonblank() Mode {
	return Mode{kind: NumberNonblank, counter: 1}
}

// NewNoNumber returns NoNumber.
func NewNoNumber() Mode {
	return Mode{kind: NoNumber}
}

// Select picks the initial mode from the two numbering flags.
// When both flags are set neither wins and the result is NoNumber.
func Select(numberLines, numberNonblank bool) Mode {
	switch {
	case numberLines && !numberNonblank:
		return NewNumber()
	case numberNonblank && !numberLines:
		return NewNumberNonblank()
	default:
		return NewNoNumber()
	}
}

// Kind returns the mode's kind.
func (m Mode) Kind() Kind {
	return m.kind
}

// Counter returns the number the next numbered line will get.
// It is 0 for NoNumber.
func (m Mode) Counter() int {
	return m.counter
}

func (m Mode) String() string {
	if m.kind == NoNumber {
		return m.kind.String()
	}
	return fmt.Sprintf("%s(%d)", m.kind, m.counter)
}
