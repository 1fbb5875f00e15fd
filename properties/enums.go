package properties

//go:generate go tool go-enum --nocase --names

// Absolute font weight keyword.
// ENUM(normal, bold)
type FontWeightKeyword int

// Font weight relative to the inherited one.
// ENUM(bolder, lighter)
type RelativeFontWeight int

// Absolute font size keyword.
// ENUM(xx-small, x-small, small, medium, large, x-large, xx-large)
type AbsoluteFontSize int

// Relative font size keyword.
// ENUM(smaller, larger)
type RelativeFontSize int

// Font-stretch keyword. The zero value is normal.
// ENUM(normal, ultra-condensed, extra-condensed, condensed, semi-condensed, semi-expanded, expanded, extra-expanded, ultra-expanded)
type FontStretchKeyword int

// Generic family name. CSS-wide and defaulting keywords are included so that
// family names spelled like them get quoted.
// ENUM(serif, sans-serif, cursive, fantasy, monospace, system-ui, emoji, math, fangsong, ui-serif, ui-sans-serif, ui-monospace, ui-rounded, initial, inherit, unset, default, revert, revert-layer)
type GenericFontFamily int

// Form of a FontStyle, oblique may carry an angle.
// ENUM(normal, italic, oblique)
type FontStyleKind int

// Value of font-variant-caps. The zero value is normal.
// ENUM(normal, small-caps, all-small-caps, petite-caps, all-petite-caps, unicase, titling-caps)
type FontVariantCaps int

// Subset of font-variant-caps the font shorthand accepts.
// ENUM(normal, small-caps)
type FontVariantCapsCSS2 int

// Vertical-align keyword.
// ENUM(baseline, sub, super, top, text-top, middle, bottom, text-bottom)
type VerticalAlignKeyword int
