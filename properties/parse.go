package properties

import (
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"cssfold/values"
)

type parseFunc func(c *values.Cursor) (Property, error)

func typed[V values.Value](id PropertyID, fn func(*values.Cursor) (V, error)) parseFunc {
	return func(c *values.Cursor) (Property, error) {
		v, err := fn(c)
		if err != nil {
			return nil, err
		}
		return NewTyped(id, v), nil
	}
}

func parseMargin(c *values.Cursor) (Rect[LengthPercentageOrAuto], error) {
	return ParseRect(c, ParseLengthPercentageOrAuto)
}

func parsePadding(c *values.Cursor) (Rect[values.LengthPercentage], error) {
	return ParseRect(c, ParseNonNegativeLengthPercentage)
}

var parsers = [propCount]parseFunc{
	PropFont:            typed(PropFont, ParseFont),
	PropFontFamily:      typed(PropFontFamily, ParseFontFamilyList),
	PropFontSize:        typed(PropFontSize, ParseFontSize),
	PropFontStyle:       typed(PropFontStyle, ParseFontStyle),
	PropFontWeight:      typed(PropFontWeight, ParseFontWeight),
	PropFontStretch:     typed(PropFontStretch, ParseFontStretch),
	PropFontVariantCaps: typed(PropFontVariantCaps, values.Keyword(ParseFontVariantCaps)),
	PropLineHeight:      typed(PropLineHeight, ParseLineHeight),
	PropVerticalAlign:   typed(PropVerticalAlign, ParseVerticalAlign),

	PropMargin:       typed(PropMargin, parseMargin),
	PropMarginTop:    typed(PropMarginTop, ParseLengthPercentageOrAuto),
	PropMarginRight:  typed(PropMarginRight, ParseLengthPercentageOrAuto),
	PropMarginBottom: typed(PropMarginBottom, ParseLengthPercentageOrAuto),
	PropMarginLeft:   typed(PropMarginLeft, ParseLengthPercentageOrAuto),

	PropPadding:       typed(PropPadding, parsePadding),
	PropPaddingTop:    typed(PropPaddingTop, ParseNonNegativeLengthPercentage),
	PropPaddingRight:  typed(PropPaddingRight, ParseNonNegativeLengthPercentage),
	PropPaddingBottom: typed(PropPaddingBottom, ParseNonNegativeLengthPercentage),
	PropPaddingLeft:   typed(PropPaddingLeft, ParseNonNegativeLengthPercentage),
}

var cssWideKeywords = []string{"initial", "inherit", "unset", "revert", "revert-layer"}

// NewUnparsed keeps tokens as the raw value of property name.
func NewUnparsed(name string, tokens []css.Token) Unparsed {
	return Unparsed{Prop: LookupPropertyID(name), PropName: name, Tokens: tokens}
}

// Parse turns the value tokens of a declaration into a Property. Unknown
// properties, CSS-wide keywords and values with substitutions come back as
// Unparsed; a value the property grammar rejects is an error.
func Parse(name string, tokens []css.Token) (Property, error) {
	id := LookupPropertyID(name)
	fn := parsers[id]
	if fn == nil || isCSSWide(tokens) || hasSubstitution(tokens) {
		return NewUnparsed(name, tokens), nil
	}
	c := values.NewCursor(tokens)
	p, err := fn(c)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectExhausted(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseString tokenizes value and parses it as property name.
func ParseString(name, value string) (Property, error) {
	return Parse(name, values.Tokenize(value))
}

func isCSSWide(tokens []css.Token) bool {
	var ident []byte
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
		case css.IdentToken:
			if ident != nil {
				return false
			}
			ident = t.Data
		default:
			return false
		}
	}
	if ident == nil {
		return false
	}
	for _, kw := range cssWideKeywords {
		if parse.EqualFold(ident, []byte(kw)) {
			return true
		}
	}
	return false
}

func hasSubstitution(tokens []css.Token) bool {
	for _, t := range tokens {
		if t.TokenType != css.FunctionToken {
			continue
		}
		if parse.EqualFold(t.Data, []byte("var(")) || parse.EqualFold(t.Data, []byte("env(")) {
			return true
		}
	}
	return false
}
