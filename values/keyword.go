package values

import (
	"fmt"

	"github.com/tdewolff/parse/v2/css"
)

// ParseKeyword consumes an identifier and converts it with fromName, the
// generated parser of a keyword enumeration. CSS keywords are ASCII and match
// ASCII case-insensitively, so identifiers holding other characters never
// reach fromName.
func ParseKeyword[K fmt.Stringer](c *Cursor, fromName func(string) (K, error)) (K, error) {
	var zero K

	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return zero, err
	}
	if t.TokenType == css.IdentToken {
		if ident := Unescape(t.Data); IsASCII(ident) {
			if k, err := fromName(ident); err == nil {
				return k, nil
			}
		}
	}
	return zero, UnexpectedTokenError(t, loc)
}

// Keyword turns the generated parser of a keyword enumeration into a value
// parser.
func Keyword[K fmt.Stringer](fromName func(string) (K, error)) func(*Cursor) (K, error) {
	return func(c *Cursor) (K, error) {
		return ParseKeyword(c, fromName)
	}
}

// PrintKeyword writes the CSS spelling of k.
func PrintKeyword[K fmt.Stringer](p *Printer, k K) error {
	return p.WriteString(k.String())
}

// IsASCII reports whether s has no bytes outside of 7-bit ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
