package values

import (
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var lengthUnits = map[string]bool{
	"px": true, "cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true,
	"em": true, "rem": true, "ex": true, "rex": true, "ch": true, "rch": true,
	"cap": true, "rcap": true, "ic": true, "ric": true, "lh": true, "rlh": true,
	"vw": true, "vh": true, "vi": true, "vb": true, "vmin": true, "vmax": true,
	"svw": true, "svh": true, "lvw": true, "lvh": true, "dvw": true, "dvh": true,
	"cqw": true, "cqh": true, "cqi": true, "cqb": true, "cqmin": true, "cqmax": true,
}

var angleUnits = map[string]bool{"deg": true, "grad": true, "rad": true, "turn": true}

// Length is a CSS <length>. A unitless zero keeps an empty Unit.
type Length struct {
	Value float64
	Unit  string // lower case
}

// ParseLength consumes a dimension with a length unit or a unitless zero.
func ParseLength(c *Cursor) (Length, error) {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return Length{}, err
	}
	switch t.TokenType {
	case css.DimensionToken:
		v, unit, ok := splitDimension(t.Data)
		unit = string(parse.ToLower([]byte(unit)))
		if ok && lengthUnits[unit] {
			return Length{Value: v, Unit: unit}, nil
		}
	case css.NumberToken:
		if v, ok := parseFloat(t.Data); ok && v == 0 {
			return Length{}, nil
		}
	}
	return Length{}, UnexpectedTokenError(t, loc)
}

// ToCSS implements Value. Zero lengths are printed without unit when
// minifying.
func (l Length) ToCSS(p *Printer) error {
	if l.Value == 0 && (p.Minify || l.Unit == "") {
		return p.WriteByte('0')
	}
	p.WriteString(formatNumber(l.Value, p.Minify))
	return p.WriteString(l.Unit)
}

func (Length) lengthPercentage() {}

// LengthPercentage is either a Length or a Percentage.
type LengthPercentage interface {
	Value
	lengthPercentage()
}

// ParseLengthPercentage tries a length first, then a percentage.
func ParseLengthPercentage(c *Cursor) (LengthPercentage, error) {
	if l, err := TryParse(c, ParseLength); err == nil {
		return l, nil
	}
	pc, err := ParsePercentage(c)
	if err != nil {
		return nil, err
	}
	return pc, nil
}

// Angle is a CSS <angle>.
type Angle struct {
	Value float64
	Unit  string // deg, grad, rad or turn
}

// Deg returns an angle in degrees.
func Deg(v float64) Angle {
	return Angle{Value: v, Unit: "deg"}
}

// ParseAngle consumes a dimension with an angle unit.
func ParseAngle(c *Cursor) (Angle, error) {
	loc := c.Location()
	t, err := c.Next()
	if err != nil {
		return Angle{}, err
	}
	if t.TokenType == css.DimensionToken {
		v, unit, ok := splitDimension(t.Data)
		unit = string(parse.ToLower([]byte(unit)))
		if ok && angleUnits[unit] {
			return Angle{Value: v, Unit: unit}, nil
		}
	}
	return Angle{}, UnexpectedTokenError(t, loc)
}

// ToCSS implements Value.
func (a Angle) ToCSS(p *Printer) error {
	p.WriteString(formatNumber(a.Value, p.Minify))
	return p.WriteString(a.Unit)
}
