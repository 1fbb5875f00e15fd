package values

import (
	"errors"
	"fmt"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// UnexpectedToken means the grammar rejected the token at the current
	// position. An empty token means input ended too early.
	UnexpectedToken ErrorKind = iota
	// InvalidDeclaration means the tokens were well formed but the value is
	// semantically invalid (e.g. font shorthand without a size).
	InvalidDeclaration
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case InvalidDeclaration:
		return "invalid declaration"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Location is a 1-based position within the parsed value.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// ParseError is returned by every value parser.
type ParseError struct {
	Kind     ErrorKind
	Token    string // offending token text, empty at end of input
	Location Location
}

func (e *ParseError) Error() string {
	switch {
	case e.Kind == InvalidDeclaration:
		return fmt.Sprintf("invalid declaration at %s", e.Location)
	case e.Token == "":
		return fmt.Sprintf("unexpected end of input at %s", e.Location)
	default:
		return fmt.Sprintf("unexpected token %q at %s", e.Token, e.Location)
	}
}

// IsKind reports whether err is (or wraps) a *ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}
