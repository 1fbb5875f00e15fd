package css

import (
	"fmt"
	"strconv"
	"strings"

	"cssfold/declaration"
	"cssfold/properties"
	"cssfold/values"
)

type treeWriter struct {
	w *strings.Builder
}

func newTreeWriter() treeWriter {
	return treeWriter{w: &strings.Builder{}}
}

func (tw treeWriter) String() string {
	return tw.w.String()
}

func (tw treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw treeWriter) text(depth int, label, value string) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	if value != "" {
		value = strconv.Quote(value)
	}
	tw.w.WriteString(value)
	tw.w.WriteByte('\n')
}

// Dump renders stylesheet structure for debugging. Every declaration is shown
// with the way it was understood: typed or kept unparsed.
func (s *Stylesheet) Dump() string {
	tw := newTreeWriter()
	tw.line(0, "stylesheet charset=%s items=%d", s.Charset, len(s.Items))
	dumpItems(tw, 1, s.Items)
	for _, w := range s.Warnings {
		tw.text(1, "warning", w)
	}
	return tw.String()
}

func dumpItems(tw treeWriter, depth int, items []StylesheetItem) {
	for _, it := range items {
		if it.Rule != nil {
			tw.line(depth, "rule line=%d", it.Rule.Line)
			tw.text(depth+1, "selectors", strings.Join(it.Rule.Selectors, ", "))
			dumpBlock(tw, depth+1, &it.Rule.Declarations)
			continue
		}

		r := it.AtRule
		tw.line(depth, "@%s line=%d", r.Name, r.Line)
		if r.Prelude != "" {
			tw.text(depth+1, "prelude", r.Prelude)
		}
		switch {
		case r.Declarations != nil:
			dumpBlock(tw, depth+1, r.Declarations)
		case r.Raw != "":
			tw.text(depth+1, "raw", r.Raw)
		default:
			dumpItems(tw, depth+1, r.Rules)
		}
	}
}

func dumpBlock(tw treeWriter, depth int, b *declaration.Block) {
	dumpList(tw, depth, "", b.Declarations)
	dumpList(tw, depth, " !important", b.ImportantDeclarations)
}

func dumpList(tw treeWriter, depth int, suffix string, list properties.DeclarationList) {
	for _, d := range list {
		kind := "typed"
		if _, ok := d.(properties.Unparsed); ok {
			kind = "unparsed"
		}
		var sb strings.Builder
		d.ValueToCSS(values.NewPrinter(&sb, false))
		tw.text(depth, d.Name()+" "+kind+suffix, sb.String())
	}
}
