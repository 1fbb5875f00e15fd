package properties

import (
	"slices"
	"strings"

	"cssfold/values"
)

// AbsoluteFontWeightKind selects the form of an AbsoluteFontWeight.
type AbsoluteFontWeightKind int

const (
	WeightNormal AbsoluteFontWeightKind = iota // same as 400
	WeightBold                                 // same as 700
	WeightNumber                               // explicit Weight
)

// AbsoluteFontWeight is an absolute font weight. The zero value is normal.
type AbsoluteFontWeight struct {
	Kind   AbsoluteFontWeightKind
	Weight values.Number
}

// ParseAbsoluteFontWeight parses a number, `normal` or `bold`.
func ParseAbsoluteFontWeight(c *values.Cursor) (AbsoluteFontWeight, error) {
	if n, err := values.TryParse(c, values.ParseNumber); err == nil {
		return AbsoluteFontWeight{Kind: WeightNumber, Weight: n}, nil
	}
	k, err := values.ParseKeyword(c, ParseFontWeightKeyword)
	if err != nil {
		return AbsoluteFontWeight{}, err
	}
	if k == FontWeightKeywordBold {
		return AbsoluteFontWeight{Kind: WeightBold}, nil
	}
	return AbsoluteFontWeight{}, nil
}

// ToCSS implements values.Value. Keywords print as numbers when minifying.
func (w AbsoluteFontWeight) ToCSS(p *values.Printer) error {
	switch w.Kind {
	case WeightNumber:
		return w.Weight.ToCSS(p)
	case WeightBold:
		if p.Minify {
			return p.WriteString("700")
		}
		return p.WriteString("bold")
	default:
		if p.Minify {
			return p.WriteString("400")
		}
		return p.WriteString("normal")
	}
}

// FontWeightKind selects the form of a FontWeight.
type FontWeightKind int

const (
	WeightAbsolute FontWeightKind = iota
	WeightBolder
	WeightLighter
)

// FontWeight is a value of font-weight. The zero value is normal.
type FontWeight struct {
	Kind     FontWeightKind
	Absolute AbsoluteFontWeight
}

// ParseFontWeight parses an absolute weight, `bolder` or `lighter`.
func ParseFontWeight(c *values.Cursor) (FontWeight, error) {
	if w, err := values.TryParse(c, ParseAbsoluteFontWeight); err == nil {
		return FontWeight{Absolute: w}, nil
	}
	r, err := values.ParseKeyword(c, ParseRelativeFontWeight)
	if err != nil {
		return FontWeight{}, err
	}
	if r == RelativeFontWeightBolder {
		return FontWeight{Kind: WeightBolder}, nil
	}
	return FontWeight{Kind: WeightLighter}, nil
}

// ToCSS implements values.Value.
func (w FontWeight) ToCSS(p *values.Printer) error {
	switch w.Kind {
	case WeightBolder:
		return values.PrintKeyword(p, RelativeFontWeightBolder)
	case WeightLighter:
		return values.PrintKeyword(p, RelativeFontWeightLighter)
	default:
		return w.Absolute.ToCSS(p)
	}
}

// ToCSS implements values.Value.
func (s AbsoluteFontSize) ToCSS(p *values.Printer) error {
	return values.PrintKeyword(p, s)
}

// ToCSS implements values.Value.
func (s RelativeFontSize) ToCSS(p *values.Printer) error {
	return values.PrintKeyword(p, s)
}

// FontSizeKind selects the form of a FontSize.
type FontSizeKind int

const (
	SizeLength FontSizeKind = iota
	SizeAbsolute
	SizeRelative
)

// FontSize is a value of font-size.
type FontSize struct {
	Kind     FontSizeKind
	Length   values.LengthPercentage
	Absolute AbsoluteFontSize
	Relative RelativeFontSize
}

// ParseFontSize tries an explicit size, then absolute and relative keywords.
func ParseFontSize(c *values.Cursor) (FontSize, error) {
	if l, err := values.TryParse(c, values.ParseLengthPercentage); err == nil {
		return FontSize{Kind: SizeLength, Length: l}, nil
	}
	if s, err := values.TryParse(c, values.Keyword(ParseAbsoluteFontSize)); err == nil {
		return FontSize{Kind: SizeAbsolute, Absolute: s}, nil
	}
	s, err := values.ParseKeyword(c, ParseRelativeFontSize)
	if err != nil {
		return FontSize{}, err
	}
	return FontSize{Kind: SizeRelative, Relative: s}, nil
}

// ToCSS implements values.Value.
func (s FontSize) ToCSS(p *values.Printer) error {
	switch s.Kind {
	case SizeAbsolute:
		return s.Absolute.ToCSS(p)
	case SizeRelative:
		return s.Relative.ToCSS(p)
	default:
		return s.Length.ToCSS(p)
	}
}

var stretchPercentages = [...]values.Percentage{100, 50, 62.5, 75, 87.5, 112.5, 125, 150, 200}

// Percentage returns the width the keyword stands for.
func (k FontStretchKeyword) Percentage() values.Percentage {
	return stretchPercentages[k]
}

// ToCSS implements values.Value.
func (k FontStretchKeyword) ToCSS(p *values.Printer) error {
	return values.PrintKeyword(p, k)
}

// FontStretchKind selects the form of a FontStretch.
type FontStretchKind int

const (
	StretchKeyword FontStretchKind = iota
	StretchPercentage
)

// FontStretch is a value of font-stretch. The zero value is normal.
type FontStretch struct {
	Kind       FontStretchKind
	Keyword    FontStretchKeyword
	Percentage values.Percentage
}

// ParseFontStretch tries a percentage, then a keyword.
func ParseFontStretch(c *values.Cursor) (FontStretch, error) {
	if pc, err := values.TryParse(c, values.ParsePercentage); err == nil {
		return FontStretch{Kind: StretchPercentage, Percentage: pc}, nil
	}
	k, err := values.ParseKeyword(c, ParseFontStretchKeyword)
	if err != nil {
		return FontStretch{}, err
	}
	return FontStretch{Keyword: k}, nil
}

// ToPercentage returns the width as a percentage.
func (s FontStretch) ToPercentage() values.Percentage {
	if s.Kind == StretchPercentage {
		return s.Percentage
	}
	return s.Keyword.Percentage()
}

// ToKeyword returns the keyword spelling of the width, if one exists.
func (s FontStretch) ToKeyword() (FontStretchKeyword, bool) {
	if s.Kind == StretchKeyword {
		return s.Keyword, true
	}
	for i, pc := range stretchPercentages {
		if pc == s.Percentage {
			return FontStretchKeyword(i), true
		}
	}
	return 0, false
}

// ToCSS implements values.Value. Minify mode always prints the percentage.
func (s FontStretch) ToCSS(p *values.Printer) error {
	if p.Minify {
		return s.ToPercentage().ToCSS(p)
	}
	if s.Kind == StretchPercentage {
		return s.Percentage.ToCSS(p)
	}
	return s.Keyword.ToCSS(p)
}

// ToCSS implements values.Value.
func (g GenericFontFamily) ToCSS(p *values.Printer) error {
	return values.PrintKeyword(p, g)
}

// FontFamilyKind selects the form of a FontFamily.
type FontFamilyKind int

const (
	FamilyName FontFamilyKind = iota
	FamilyGeneric
)

// FontFamily is a single entry of a font-family list.
type FontFamily struct {
	Kind    FontFamilyKind
	Name    string
	Generic GenericFontFamily
}

// NamedFamily returns a custom family entry.
func NamedFamily(name string) FontFamily {
	return FontFamily{Name: name}
}

// GenericFamily returns a generic family entry.
func GenericFamily(g GenericFontFamily) FontFamily {
	return FontFamily{Kind: FamilyGeneric, Generic: g}
}

// ParseFontFamily parses a quoted name, a generic family or a sequence of
// identifiers joined by single spaces.
func ParseFontFamily(c *values.Cursor) (FontFamily, error) {
	if s, err := values.TryParse(c, (*values.Cursor).ExpectString); err == nil {
		return NamedFamily(s), nil
	}
	if g, err := values.TryParse(c, values.Keyword(ParseGenericFontFamily)); err == nil {
		return GenericFamily(g), nil
	}
	name, err := c.ExpectIdent()
	if err != nil {
		return FontFamily{}, err
	}
	for {
		ident, err := values.TryParse(c, (*values.Cursor).ExpectIdent)
		if err != nil {
			break
		}
		name += " " + ident
	}
	return NamedFamily(name), nil
}

// ToCSS implements values.Value. Names are printed as identifiers when that
// is shorter than quoting them; names spelled like a generic family are
// always quoted.
func (f FontFamily) ToCSS(p *values.Printer) error {
	if f.Kind == FamilyGeneric {
		return f.Generic.ToCSS(p)
	}
	if id, ok := familyIdentifier(f.Name); ok && len(id) < len(f.Name)+2 {
		return p.WriteString(id)
	}
	return p.WriteString(values.SerializeString(f.Name))
}

func familyIdentifier(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if _, err := ParseGenericFontFamily(name); err == nil && values.IsASCII(name) {
		return "", false
	}
	words := strings.Split(name, " ")
	for i, w := range words {
		if w == "" {
			return "", false
		}
		words[i] = values.SerializeIdentifier(w)
	}
	return strings.Join(words, " "), true
}

// FontFamilyList is a value of font-family.
type FontFamilyList []FontFamily

// ParseFontFamilyList parses a comma separated family list.
func ParseFontFamilyList(c *values.Cursor) (FontFamilyList, error) {
	return values.ParseCommaSeparated(c, ParseFontFamily)
}

// ToCSS implements values.Value.
func (l FontFamilyList) ToCSS(p *values.Printer) error {
	for i, f := range l {
		if i > 0 {
			p.Delim(',', false)
		}
		f.ToCSS(p)
	}
	return p.Err()
}

// Equal reports whether both lists name the same families in order.
func (l FontFamilyList) Equal(o FontFamilyList) bool {
	return slices.Equal(l, o)
}

// DefaultObliqueAngle is the angle implied by a bare `oblique`.
var DefaultObliqueAngle = values.Deg(14)

// FontStyle is a value of font-style. The zero value is normal.
type FontStyle struct {
	Kind  FontStyleKind
	Angle values.Angle // only for oblique
}

// ParseFontStyle parses `normal`, `italic` or `oblique` with optional angle.
func ParseFontStyle(c *values.Cursor) (FontStyle, error) {
	kind, err := values.ParseKeyword(c, ParseFontStyleKind)
	if err != nil {
		return FontStyle{}, err
	}
	if kind != FontStyleKindOblique {
		return FontStyle{Kind: kind}, nil
	}
	angle, err := values.TryParse(c, values.ParseAngle)
	if err != nil {
		angle = DefaultObliqueAngle
	}
	return FontStyle{Kind: kind, Angle: angle}, nil
}

// ToCSS implements values.Value.
func (s FontStyle) ToCSS(p *values.Printer) error {
	values.PrintKeyword(p, s.Kind)
	if s.Kind == FontStyleKindOblique && s.Angle != DefaultObliqueAngle {
		p.WriteByte(' ')
		return s.Angle.ToCSS(p)
	}
	return p.Err()
}

// ToCSS implements values.Value.
func (v FontVariantCaps) ToCSS(p *values.Printer) error {
	return values.PrintKeyword(p, v)
}

// ToCSS2 returns the CSS 2.1 form of the value, if it has one.
func (v FontVariantCaps) ToCSS2() (FontVariantCapsCSS2, bool) {
	switch v {
	case FontVariantCapsNormal:
		return FontVariantCapsCSS2Normal, true
	case FontVariantCapsSmallCaps:
		return FontVariantCapsCSS2SmallCaps, true
	default:
		return FontVariantCapsCSS2Normal, false
	}
}

// ToCSS implements values.Value.
func (v FontVariantCapsCSS2) ToCSS(p *values.Printer) error {
	return values.PrintKeyword(p, v)
}

// ToFontVariantCaps widens the value to font-variant-caps.
func (v FontVariantCapsCSS2) ToFontVariantCaps() FontVariantCaps {
	if v == FontVariantCapsCSS2SmallCaps {
		return FontVariantCapsSmallCaps
	}
	return FontVariantCapsNormal
}

// LineHeightKind selects the form of a LineHeight.
type LineHeightKind int

const (
	LineHeightNormal LineHeightKind = iota
	LineHeightNumber
	LineHeightLength
)

// LineHeight is a value of line-height. The zero value is normal.
type LineHeight struct {
	Kind   LineHeightKind
	Number values.Number
	Length values.LengthPercentage
}

// ParseLineHeight tries `normal`, a number, then a length or percentage.
func ParseLineHeight(c *values.Cursor) (LineHeight, error) {
	if c.Try(func(c *values.Cursor) error { return c.ExpectIdentMatching("normal") }) == nil {
		return LineHeight{}, nil
	}
	if n, err := values.TryParse(c, values.ParseNumber); err == nil {
		return LineHeight{Kind: LineHeightNumber, Number: n}, nil
	}
	l, err := values.ParseLengthPercentage(c)
	if err != nil {
		return LineHeight{}, err
	}
	return LineHeight{Kind: LineHeightLength, Length: l}, nil
}

// ToCSS implements values.Value.
func (l LineHeight) ToCSS(p *values.Printer) error {
	switch l.Kind {
	case LineHeightNumber:
		return l.Number.ToCSS(p)
	case LineHeightLength:
		return l.Length.ToCSS(p)
	default:
		return p.WriteString("normal")
	}
}

// VerticalAlign is a value of vertical-align.
type VerticalAlign struct {
	Keyword VerticalAlignKeyword
	Length  values.LengthPercentage // set for explicit shifts
}

// ParseVerticalAlign tries a length or percentage, then a keyword.
func ParseVerticalAlign(c *values.Cursor) (VerticalAlign, error) {
	if l, err := values.TryParse(c, values.ParseLengthPercentage); err == nil {
		return VerticalAlign{Length: l}, nil
	}
	k, err := values.ParseKeyword(c, ParseVerticalAlignKeyword)
	if err != nil {
		return VerticalAlign{}, err
	}
	return VerticalAlign{Keyword: k}, nil
}

// ToCSS implements values.Value.
func (v VerticalAlign) ToCSS(p *values.Printer) error {
	if v.Length != nil {
		return v.Length.ToCSS(p)
	}
	return values.PrintKeyword(p, v.Keyword)
}

// Font is a value of the font shorthand.
type Font struct {
	Family      FontFamilyList
	Size        FontSize
	Style       FontStyle
	Weight      FontWeight
	Stretch     FontStretch
	LineHeight  LineHeight
	VariantCaps FontVariantCapsCSS2 // the shorthand only takes CSS 2.1 values
}

// ParseFont parses the font shorthand. Style, weight, variant caps and
// stretch may come in any order before the mandatory size; `normal` is valid
// for all of them and is only counted. More than four of these leading
// components make the declaration invalid.
func ParseFont(c *values.Cursor) (Font, error) {
	var (
		f     Font
		seen  fontPrefix
		count int
	)
	for seen.next(c, &f) {
		count++
		if count > 4 {
			return Font{}, c.InvalidDeclarationError()
		}
	}

	size, err := values.TryParse(c, ParseFontSize)
	if err != nil {
		return Font{}, c.InvalidDeclarationError()
	}
	f.Size = size

	if c.Try(func(c *values.Cursor) error { return c.ExpectDelim('/') }) == nil {
		if f.LineHeight, err = ParseLineHeight(c); err != nil {
			return Font{}, err
		}
	}

	if f.Family, err = ParseFontFamilyList(c); err != nil {
		return Font{}, err
	}
	return f, nil
}

// fontPrefix remembers which leading font components were already assigned.
type fontPrefix struct {
	style, weight, caps, stretch bool
}

func (s *fontPrefix) next(c *values.Cursor, f *Font) bool {
	if c.Try(func(c *values.Cursor) error { return c.ExpectIdentMatching("normal") }) == nil {
		return true
	}
	if !s.style {
		if v, err := values.TryParse(c, ParseFontStyle); err == nil {
			f.Style, s.style = v, true
			return true
		}
	}
	if !s.weight {
		if v, err := values.TryParse(c, ParseFontWeight); err == nil {
			f.Weight, s.weight = v, true
			return true
		}
	}
	if !s.caps {
		if v, err := values.TryParse(c, values.Keyword(ParseFontVariantCapsCSS2)); err == nil {
			f.VariantCaps, s.caps = v, true
			return true
		}
	}
	if !s.stretch {
		if v, err := values.TryParse(c, values.Keyword(ParseFontStretchKeyword)); err == nil {
			f.Stretch, s.stretch = FontStretch{Keyword: v}, true
			return true
		}
	}
	return false
}

// ToCSS implements values.Value. Components equal to their default are
// omitted; the stretch is written as a keyword since the shorthand accepts
// no percentages.
func (f Font) ToCSS(p *values.Printer) error {
	if f.Style != (FontStyle{}) {
		f.Style.ToCSS(p)
		p.WriteByte(' ')
	}
	if f.VariantCaps != FontVariantCapsCSS2Normal {
		f.VariantCaps.ToCSS(p)
		p.WriteByte(' ')
	}
	if f.Weight != (FontWeight{}) {
		f.Weight.ToCSS(p)
		p.WriteByte(' ')
	}
	if k, ok := f.Stretch.ToKeyword(); !ok {
		f.Stretch.Percentage.ToCSS(p)
		p.WriteByte(' ')
	} else if k != FontStretchKeywordNormal {
		k.ToCSS(p)
		p.WriteByte(' ')
	}
	f.Size.ToCSS(p)
	if f.LineHeight != (LineHeight{}) {
		p.Delim('/', true)
		f.LineHeight.ToCSS(p)
	}
	p.WriteByte(' ')
	return f.Family.ToCSS(p)
}

// Equal reports structural equality.
func (f Font) Equal(o Font) bool {
	return f.Family.Equal(o.Family) && f.Size == o.Size && f.Style == o.Style &&
		f.Weight == o.Weight && f.Stretch == o.Stretch && f.LineHeight == o.LineHeight &&
		f.VariantCaps == o.VariantCaps
}
