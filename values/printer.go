package values

import (
	"io"
	"strings"
)

// Value is implemented by everything that can print itself as CSS.
type Value interface {
	ToCSS(p *Printer) error
}

// Printer writes CSS text. Minify selects the shortest form of every value
// and drops optional whitespace. The first write error sticks and is returned
// by every later call.
type Printer struct {
	Minify      bool
	IndentWidth int

	dest   io.Writer
	indent int
	err    error
}

// NewPrinter returns a printer writing to dest.
func NewPrinter(dest io.Writer, minify bool) *Printer {
	return &Printer{Minify: minify, IndentWidth: 2, dest: dest}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

// WriteString writes s verbatim.
func (p *Printer) WriteString(s string) error {
	if p.err != nil {
		return p.err
	}
	_, p.err = io.WriteString(p.dest, s)
	return p.err
}

// WriteByte writes a single byte verbatim.
func (p *Printer) WriteByte(c byte) error {
	if p.err != nil {
		return p.err
	}
	_, p.err = p.dest.Write([]byte{c})
	return p.err
}

// Delim writes a delimiter. Outside of minify mode it is followed by a space
// and, when spaceBefore is set, preceded by one.
func (p *Printer) Delim(c byte, spaceBefore bool) error {
	if p.Minify {
		return p.WriteByte(c)
	}
	if spaceBefore {
		p.WriteByte(' ')
	}
	p.WriteByte(c)
	return p.WriteByte(' ')
}

// Whitespace writes a space unless minifying.
func (p *Printer) Whitespace() error {
	if p.Minify {
		return p.err
	}
	return p.WriteByte(' ')
}

// Newline starts a new indented line unless minifying.
func (p *Printer) Newline() error {
	if p.Minify {
		return p.err
	}
	p.WriteByte('\n')
	if p.indent > 0 {
		return p.WriteString(strings.Repeat(" ", p.indent))
	}
	return p.err
}

// Indent increases indentation for following lines.
func (p *Printer) Indent() {
	p.indent += p.IndentWidth
}

// Dedent decreases indentation for following lines.
func (p *Printer) Dedent() {
	p.indent -= p.IndentWidth
	if p.indent < 0 {
		p.indent = 0
	}
}

// ToString renders v with a throw-away printer.
func ToString(v Value, minify bool) string {
	var sb strings.Builder
	v.ToCSS(NewPrinter(&sb, minify)) //nolint:errcheck
	return sb.String()
}
