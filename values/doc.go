// Package values holds the leaf value model shared by every CSS property: the
// token cursor used by all parsers, the printer used by all serializers, parse
// errors and the primitive value types (numbers, lengths, percentages, angles
// and keyword enumerations).
//
// Every value type follows the same contract. A package level ParseXxx function
// consumes tokens from a *Cursor and either returns the typed value or a
// *ParseError, and a ToCSS method writes the value through a *Printer, choosing
// the shortest form when the printer minifies.
//
// Alternatives that share leading tokens must be attempted through Cursor.Try
// or TryParse so that a failed attempt leaves the cursor where it started.
package values
