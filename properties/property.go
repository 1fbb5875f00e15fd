package properties

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"cssfold/values"
)

// Property is one declaration value tagged with the property it sets. It is
// either Typed (a specialized, parsed value) or Unparsed (raw tokens).
type Property interface {
	ID() PropertyID
	Name() string
	ValueToCSS(p *values.Printer) error
	sealed()
}

// Typed carries the parsed value of a specialized property.
type Typed[V values.Value] struct {
	Prop  PropertyID
	Value V
}

// NewTyped tags v with id.
func NewTyped[V values.Value](id PropertyID, v V) Property {
	return Typed[V]{Prop: id, Value: v}
}

func (t Typed[V]) ID() PropertyID { return t.Prop }

func (t Typed[V]) Name() string { return t.Prop.String() }

func (t Typed[V]) ValueToCSS(p *values.Printer) error { return t.Value.ToCSS(p) }

func (Typed[V]) sealed() {}

func (t Typed[V]) anyValue() values.Value { return t.Value }

// valueOf extracts the value of p as V. A Typed built with a concrete type
// satisfying an interface V is accepted; any other value is reported as a
// mismatch.
func valueOf[V values.Value](p Property) (V, bool) {
	if t, ok := p.(interface{ anyValue() values.Value }); ok {
		v, ok := t.anyValue().(V)
		return v, ok
	}
	var zero V
	return zero, false
}

// Unparsed keeps the raw value tokens of a declaration the engine cannot
// specialize: CSS-wide keywords, var() references, values kept verbatim
// after a parse error, and properties it does not know (PropUnknown).
type Unparsed struct {
	Prop     PropertyID
	PropName string // as written, used for PropUnknown
	Tokens   []css.Token
}

func (u Unparsed) ID() PropertyID { return u.Prop }

func (u Unparsed) Name() string {
	if u.Prop != PropUnknown {
		return u.Prop.String()
	}
	if strings.HasPrefix(u.PropName, "--") {
		return u.PropName
	}
	return string(parse.ToLower([]byte(u.PropName)))
}

// ValueToCSS writes the tokens back with whitespace runs collapsed.
func (u Unparsed) ValueToCSS(p *values.Printer) error {
	pendingSpace := false
	written := false
	for _, t := range u.Tokens {
		if t.TokenType == css.WhitespaceToken {
			pendingSpace = written
			continue
		}
		if pendingSpace {
			p.WriteByte(' ')
			pendingSpace = false
		}
		p.WriteString(string(t.Data))
		written = true
	}
	return p.Err()
}

func (Unparsed) sealed() {}
