package css

import (
	"io"
	"strings"

	"cssfold/declaration"
	"cssfold/values"
)

// StyleRule is a qualified rule: a selector list and its declarations.
// Selectors are kept as written, with whitespace collapsed.
type StyleRule struct {
	Selectors    []string
	Declarations declaration.Block
	Line         int // line of the opening brace in the source
}

// Minify folds the declarations of the rule.
func (r *StyleRule) Minify(handler, important *declaration.Handler) {
	r.Declarations.Minify(handler, important)
}

// ToCSS implements values.Value.
func (r *StyleRule) ToCSS(p *values.Printer) error {
	for i, sel := range r.Selectors {
		if i > 0 {
			p.Delim(',', false)
		}
		p.WriteString(sel)
	}
	p.Whitespace()
	return r.Declarations.ToCSS(p)
}

// AtRule is any at-rule. Blockless rules (@import, @namespace) only carry a
// prelude. Rules with a body hold either declarations (@font-face, @page),
// nested rules (@media, @supports, @keyframes) or, for at-rules the parser
// does not understand, the raw body text.
type AtRule struct {
	Name         string // lower case, without the @
	Prelude      string
	HasBlock     bool
	Declarations *declaration.Block
	Rules        []StylesheetItem
	Raw          string
	Line         int
}

// ToCSS implements values.Value.
func (r *AtRule) ToCSS(p *values.Printer) error {
	p.WriteByte('@')
	p.WriteString(r.Name)
	if r.Prelude != "" {
		p.WriteByte(' ')
		p.WriteString(r.Prelude)
	}
	switch {
	case !r.HasBlock:
		return p.WriteByte(';')
	case r.Declarations != nil:
		p.Whitespace()
		return r.Declarations.ToCSS(p)
	case r.Raw != "":
		p.Whitespace()
		p.WriteByte('{')
		p.WriteString(r.Raw)
		return p.WriteByte('}')
	}

	p.Whitespace()
	p.WriteByte('{')
	p.Indent()
	for i := range r.Rules {
		if i > 0 && !p.Minify {
			p.WriteByte('\n')
		}
		p.Newline()
		r.Rules[i].ToCSS(p)
	}
	p.Dedent()
	if len(r.Rules) > 0 {
		p.Newline()
	}
	return p.WriteByte('}')
}

// StylesheetItem is a single item in a stylesheet or at-rule body.
// Exactly one of Rule or AtRule is non-nil.
type StylesheetItem struct {
	Rule   *StyleRule
	AtRule *AtRule
}

// ToCSS implements values.Value.
func (it StylesheetItem) ToCSS(p *values.Printer) error {
	if it.Rule != nil {
		return it.Rule.ToCSS(p)
	}
	return it.AtRule.ToCSS(p)
}

// Stylesheet is a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // all top-level items in source order
	Charset  string           // encoding the source was decoded from
	Warnings []string         // declarations kept verbatim and other recoverable problems
}

// Imports returns all @import preludes in source order.
func (s *Stylesheet) Imports() []string {
	var out []string
	for _, item := range s.Items {
		if item.AtRule != nil && item.AtRule.Name == "import" {
			out = append(out, item.AtRule.Prelude)
		}
	}
	return out
}

// RulesBySelector returns all style rules, nested ones included, whose
// selector list contains selector.
func (s *Stylesheet) RulesBySelector(selector string) []*StyleRule {
	var matches []*StyleRule
	walkRules(s.Items, func(r *StyleRule) {
		for _, sel := range r.Selectors {
			if sel == selector {
				matches = append(matches, r)
				return
			}
		}
	})
	return matches
}

// Minify folds every declaration block, each with a fresh handler pair.
// Of the at-rules only @page holds real properties; descriptor blocks such as
// @font-face are left in source order.
func (s *Stylesheet) Minify() {
	walkRules(s.Items, func(r *StyleRule) {
		r.Minify(declaration.NewHandler(), declaration.NewHandler())
	})
	walkAtRules(s.Items, func(r *AtRule) {
		if r.Declarations != nil && r.Name == "page" {
			r.Declarations.Minify(declaration.NewHandler(), declaration.NewHandler())
		}
	})
}

func walkRules(items []StylesheetItem, fn func(*StyleRule)) {
	for _, item := range items {
		switch {
		case item.Rule != nil:
			fn(item.Rule)
		case item.AtRule != nil:
			walkRules(item.AtRule.Rules, fn)
		}
	}
}

func walkAtRules(items []StylesheetItem, fn func(*AtRule)) {
	for _, item := range items {
		if item.AtRule != nil {
			fn(item.AtRule)
			walkAtRules(item.AtRule.Rules, fn)
		}
	}
}

// PrintOptions controls stylesheet output.
type PrintOptions struct {
	Minify      bool
	IndentWidth int // spaces per nesting level in pretty output, 2 when zero
}

// ToCSS writes the stylesheet through p. Pretty output separates top-level
// items with a blank line and ends with a newline.
func (s *Stylesheet) ToCSS(p *values.Printer) error {
	for i, item := range s.Items {
		if i > 0 && !p.Minify {
			p.WriteString("\n\n")
		}
		item.ToCSS(p)
	}
	if len(s.Items) > 0 && !p.Minify {
		p.WriteByte('\n')
	}
	return p.Err()
}

// Print writes the stylesheet to w with the given options.
func (s *Stylesheet) Print(w io.Writer, opts PrintOptions) (int64, error) {
	cw := &countingWriter{w: w}
	p := values.NewPrinter(cw, opts.Minify)
	if opts.IndentWidth > 0 {
		p.IndentWidth = opts.IndentWidth
	}
	err := s.ToCSS(p)
	return cw.n, err
}

// WriteTo writes the stylesheet in pretty form, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	return s.Print(w, PrintOptions{})
}

// String returns the pretty CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
