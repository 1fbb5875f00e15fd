package values

import (
	"math"
	"strconv"

	tdminify "github.com/tdewolff/minify/v2"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// formatNumber prints v in its shortest exact decimal form; minify mode also
// drops leading zeros and switches to exponents where that is shorter.
func formatNumber(v float64, minify bool) string {
	b := strconv.AppendFloat(nil, v, 'f', -1, 64)
	if minify {
		b = tdminify.Number(b, 0)
	}
	return string(b)
}

// parseFloat accepts only finite numbers spanning all of data; CSS has no
// spelling for infinities.
func parseFloat(data []byte) (float64, bool) {
	f, n := pstrconv.ParseFloat(data)
	if n == 0 || n != len(data) || math.IsInf(f, 0) {
		return 0, false
	}
	if math.IsNaN(f) {
		// zero mantissa times overflowing exponent
		f = 0
	}
	return f, true
}

// splitDimension separates the numeric part of a dimension token from its
// unit. The unit is returned unescaped.
func splitDimension(data []byte) (float64, string, bool) {
	num, unit := parse.Dimension(data)
	if num == 0 || unit == 0 {
		return 0, "", false
	}
	f, ok := parseFloat(data[:num])
	if !ok {
		return 0, "", false
	}
	return f, Unescape(data[num : num+unit]), true
}

// Number is a plain CSS <number>.
type Number float64

// ParseNumber consumes a number token.
func ParseNumber(c *Cursor) (Number, error) {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return 0, err
	}
	if t.TokenType != css.NumberToken {
		return 0, UnexpectedTokenError(t, loc)
	}
	f, ok := parseFloat(t.Data)
	if !ok {
		return 0, UnexpectedTokenError(t, loc)
	}
	return Number(f), nil
}

// ToCSS implements Value.
func (n Number) ToCSS(p *Printer) error {
	return p.WriteString(formatNumber(float64(n), p.Minify))
}

// Percentage is a CSS <percentage>, stored in percent units (50 is 50%).
type Percentage float64

// ParsePercentage consumes a percentage token.
func ParsePercentage(c *Cursor) (Percentage, error) {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return 0, err
	}
	if t.TokenType != css.PercentageToken || len(t.Data) < 2 {
		return 0, UnexpectedTokenError(t, loc)
	}
	f, ok := parseFloat(t.Data[:len(t.Data)-1])
	if !ok {
		return 0, UnexpectedTokenError(t, loc)
	}
	return Percentage(f), nil
}

// ToCSS implements Value.
func (v Percentage) ToCSS(p *Printer) error {
	p.WriteString(formatNumber(float64(v), p.Minify))
	return p.WriteByte('%')
}

func (Percentage) lengthPercentage() {}
