package values

import (
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Tokenize splits a single declaration value into CSS tokens using the
// tdewolff lexer. Comments are dropped, token data is copied.
func Tokenize(value string) []css.Token {
	l := css.NewLexer(parse.NewInputString(value))
	var tokens []css.Token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return tokens
		case css.CommentToken:
			continue
		}
		tokens = append(tokens, css.Token{TokenType: tt, Data: parse.Copy(data)})
	}
}

// Cursor walks the tokens of one declaration value. Whitespace is skipped by
// every expectation helper; grammars that care about adjacency inspect Peek.
type Cursor struct {
	tokens []css.Token
	pos    int
}

// NewCursor creates a cursor positioned at the first token.
func NewCursor(tokens []css.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// NewCursorString tokenizes value and returns a cursor over it.
func NewCursorString(value string) *Cursor {
	return NewCursor(Tokenize(value))
}

func (c *Cursor) skipWhitespace() {
	for c.pos < len(c.tokens) && c.tokens[c.pos].TokenType == css.WhitespaceToken {
		c.pos++
	}
}

// Location returns the position of the next non-whitespace token, or the end
// of input.
func (c *Cursor) Location() Location {
	c.skipWhitespace()
	loc := Location{Line: 1, Column: 1}
	for _, t := range c.tokens[:c.pos] {
		for _, b := range t.Data {
			if b == '\n' {
				loc.Line++
				loc.Column = 1
			} else if utf8.RuneStart(b) {
				loc.Column++
			}
		}
	}
	return loc
}

// IsExhausted reports whether only whitespace is left.
func (c *Cursor) IsExhausted() bool {
	c.skipWhitespace()
	return c.pos >= len(c.tokens)
}

// Peek returns the next non-whitespace token without consuming it.
func (c *Cursor) Peek() (css.Token, bool) {
	c.skipWhitespace()
	if c.pos >= len(c.tokens) {
		return css.Token{}, false
	}
	return c.tokens[c.pos], true
}

// Next consumes the next non-whitespace token.
func (c *Cursor) Next() (css.Token, error) {
	loc := c.Location()
	if c.pos >= len(c.tokens) {
		return css.Token{}, &ParseError{Kind: UnexpectedToken, Location: loc}
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, nil
}

// Try runs fn and rewinds the cursor when it fails.
func (c *Cursor) Try(fn func(*Cursor) error) error {
	pos := c.pos
	if err := fn(c); err != nil {
		c.pos = pos
		return err
	}
	return nil
}

// TryParse runs a typed parser and rewinds the cursor when it fails.
func TryParse[T any](c *Cursor, fn func(*Cursor) (T, error)) (T, error) {
	pos := c.pos
	v, err := fn(c)
	if err != nil {
		c.pos = pos
		var zero T
		return zero, err
	}
	return v, nil
}

// ParseCommaSeparated parses one or more items separated by commas until the
// end of input.
func ParseCommaSeparated[T any](c *Cursor, fn func(*Cursor) (T, error)) ([]T, error) {
	var items []T
	for {
		v, err := fn(c)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		if c.IsExhausted() {
			return items, nil
		}
		if err := c.ExpectComma(); err != nil {
			return nil, err
		}
	}
}

// UnexpectedTokenError reports t as rejected at loc.
func UnexpectedTokenError(t css.Token, loc Location) error {
	return &ParseError{Kind: UnexpectedToken, Token: string(t.Data), Location: loc}
}

// InvalidDeclarationError reports an invalid value at the current position.
func (c *Cursor) InvalidDeclarationError() error {
	return &ParseError{Kind: InvalidDeclaration, Location: c.Location()}
}

// ExpectIdent consumes an identifier and returns its unescaped text.
func (c *Cursor) ExpectIdent() (string, error) {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return "", err
	}
	if t.TokenType != css.IdentToken {
		return "", UnexpectedTokenError(t, loc)
	}
	return Unescape(t.Data), nil
}

// ExpectIdentMatching consumes an identifier equal to keyword, ignoring ASCII
// case. keyword must be lower case.
func (c *Cursor) ExpectIdentMatching(keyword string) error {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return err
	}
	if t.TokenType != css.IdentToken || !parse.EqualFold(t.Data, []byte(keyword)) {
		return UnexpectedTokenError(t, loc)
	}
	return nil
}

// ExpectDelim consumes the delimiter d.
func (c *Cursor) ExpectDelim(d byte) error {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return err
	}
	if t.TokenType != css.DelimToken || len(t.Data) != 1 || t.Data[0] != d {
		return UnexpectedTokenError(t, loc)
	}
	return nil
}

// ExpectComma consumes a comma.
func (c *Cursor) ExpectComma() error {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return err
	}
	if t.TokenType != css.CommaToken {
		return UnexpectedTokenError(t, loc)
	}
	return nil
}

// ExpectString consumes a quoted string and returns its unquoted content.
func (c *Cursor) ExpectString() (string, error) {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return "", err
	}
	if t.TokenType != css.StringToken {
		return "", UnexpectedTokenError(t, loc)
	}
	return UnquoteString(t.Data), nil
}

// ExpectExhausted fails when anything but whitespace is left.
func (c *Cursor) ExpectExhausted() error {
	if c.IsExhausted() {
		return nil
	}
	loc := c.Location()
	return UnexpectedTokenError(c.tokens[c.pos], loc)
}
