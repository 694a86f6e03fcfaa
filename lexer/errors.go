package lexer

import (
	"errors"
	"fmt"
)

// Lexical error conditions. Every *Error wraps exactly one of these.
var (
	ErrUnrecognizedChar = errors.New("unrecognized character")
	ErrEmptyChar        = errors.New("empty character constant")
	ErrUnknownEscape    = errors.New("unknown escape sequence")
	ErrMultiChar        = errors.New("multi-character constant")
	ErrEOFInComment     = errors.New("EOF in comment")
	ErrEOLInString      = errors.New("EOL in string")
	ErrEOFInString      = errors.New("EOF in string")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrNumberRange      = errors.New("number exceeds maximum value")
	ErrRead             = errors.New("read error")
)

// Error represents a fatal error that occurred during scanning.
type Error struct {
	Kind    error
	Message string
	Pos     Position
}

// Error returns the diagnostic line for the error.
func (e *Error) Error() string {
	return fmt.Sprintf("(%d,%d) error: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func fail(pos Position, kind error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
