package declaration_test

import (
	"strings"
	"testing"

	"go.uber.org/multierr"

	"cssfold/declaration"
	"cssfold/properties"
	"cssfold/values"
)

func render(b declaration.Block, minify bool) string {
	var sb strings.Builder
	b.ToCSS(values.NewPrinter(&sb, minify))
	return sb.String()
}

func minifyBlock(t *testing.T, text string) declaration.Block {
	t.Helper()
	b, err := declaration.ParseBlock(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	b.Minify(declaration.NewHandler(), declaration.NewHandler())
	return b
}

func TestStripImportant(t *testing.T) {
	tests := []struct {
		in        string
		important bool
		rest      string
	}{
		{"12px", false, "12px"},
		{"12px !important", true, "12px"},
		{"12px!IMPORTANT  ", true, "12px"},
		{"12px ! important", true, "12px"},
		{"important", false, "important"},
		{"12px important", false, "12px important"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			rest, important := declaration.StripImportant(values.Tokenize(tt.in))
			if important != tt.important {
				t.Errorf("expected important=%v, got %v", tt.important, important)
			}
			var sb strings.Builder
			for _, tok := range rest {
				sb.Write(tok.Data)
			}
			if got := strings.TrimSpace(sb.String()); got != tt.rest {
				t.Errorf("expected rest %q, got %q", tt.rest, got)
			}
		})
	}
}

func TestParseDeclaration(t *testing.T) {
	p, important, err := declaration.ParseDeclaration("font-weight", values.Tokenize("bold !important"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !important {
		t.Error("expected important flag")
	}
	if p.ID() != properties.PropFontWeight {
		t.Errorf("expected font-weight, got %s", p.Name())
	}

	_, _, err = declaration.ParseDeclaration("font-weight", values.Tokenize("heavy"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !values.IsKind(err, values.UnexpectedToken) {
		t.Errorf("expected wrapped parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), `property "font-weight"`) {
		t.Errorf("expected property context in %q", err.Error())
	}
}

func TestParseBlock_Errors(t *testing.T) {
	b, err := declaration.ParseBlock("font-size: 12px; font-weight: heavy; line-height: auto; color: red")
	if err == nil {
		t.Fatal("expected errors")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("expected 2 errors, got %d: %v", n, err)
	}
	if b.Len() != 2 {
		t.Errorf("expected valid declarations to be kept, got %d", b.Len())
	}
}

func TestBlock_Minify(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		pretty string
		minify string
	}{
		{
			name:   "longhands fold into font",
			in:     "font-family: Arial; font-size: 12px; font-style: normal; font-weight: bold; font-stretch: normal; line-height: 1.5; font-variant-caps: normal",
			pretty: "{\n  font: bold 12px / 1.5 Arial;\n}",
			minify: "{font:700 12px/1.5 Arial}",
		},
		{
			name:   "pass-through keeps position",
			in:     "color: red; font-size: 12px; text-align: center; font-weight: bold",
			pretty: "{\n  color: red;\n  text-align: center;\n  font-size: 12px;\n  font-weight: bold;\n}",
			minify: "{color:red;text-align:center;font-size:12px;font-weight:700}",
		},
		{
			name:   "groups flush in registration order",
			in:     "padding-top: 1px; margin: 0 auto; font-size: 2em",
			pretty: "{\n  font-size: 2em;\n  margin: 0 auto;\n  padding-top: 1px;\n}",
			minify: "{font-size:2em;margin:0 auto;padding-top:1px}",
		},
		{
			name:   "important kept apart",
			in:     "margin: 1px; margin-left: 2px !important; margin-top: 3px",
			pretty: "{\n  margin: 3px 1px 1px;\n  margin-left: 2px !important;\n}",
			minify: "{margin:3px 1px 1px;margin-left:2px!important}",
		},
		{
			name:   "css3 caps split",
			in:     "font: 12px serif; font-variant-caps: all-small-caps",
			pretty: "{\n  font: 12px serif;\n  font-variant-caps: all-small-caps;\n}",
			minify: "{font:12px serif;font-variant-caps:all-small-caps}",
		},
		{
			name:   "raw declaration interrupts",
			in:     "font-style: italic; font-size: var(--s); font-weight: bold",
			pretty: "{\n  font-style: italic;\n  font-size: var(--s);\n  font-weight: bold;\n}",
			minify: "{font-style:italic;font-size:var(--s);font-weight:700}",
		},
		{
			name:   "empty",
			in:     "",
			pretty: "{}",
			minify: "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := minifyBlock(t, tt.in)
			if got := render(b, false); got != tt.pretty {
				t.Errorf("pretty: expected\n%s\ngot\n%s", tt.pretty, got)
			}
			if got := render(b, true); got != tt.minify {
				t.Errorf("minify: expected %s, got %s", tt.minify, got)
			}
		})
	}
}

func TestBlock_MinifyIdempotent(t *testing.T) {
	b := minifyBlock(t, "font: italic bold 12px/30px Georgia, serif")
	first := render(b, true)
	b.Minify(declaration.NewHandler(), declaration.NewHandler())
	if second := render(b, true); second != first {
		t.Errorf("second pass changed output: %s -> %s", first, second)
	}
	if first != "{font:italic 700 12px/30px Georgia,serif}" {
		t.Errorf("unexpected output %s", first)
	}
}

func TestHandler_Reuse(t *testing.T) {
	h, imp := declaration.NewHandler(), declaration.NewHandler()

	first, err := declaration.ParseBlock("font-size: 12px")
	if err != nil {
		t.Fatal(err)
	}
	first.Minify(h, imp)

	second, err := declaration.ParseBlock("font-weight: bold")
	if err != nil {
		t.Fatal(err)
	}
	second.Minify(h, imp)

	if got := render(second, true); got != "{font-weight:700}" {
		t.Errorf("state leaked between blocks: %s", got)
	}
}

func TestHandler_CustomRegistration(t *testing.T) {
	h := declaration.NewHandlerWith(properties.NewMarginHandler())
	for _, d := range [][2]string{{"font-size", "1px"}, {"margin-top", "1px"}, {"font-weight", "bold"}} {
		p, err := properties.ParseString(d[0], d[1])
		if err != nil {
			t.Fatal(err)
		}
		h.HandleProperty(p)
	}
	out := h.Finalize()
	var names []string
	for _, p := range out {
		names = append(names, p.Name())
	}
	if got := strings.Join(names, ","); got != "font-size,font-weight,margin-top" {
		t.Errorf("unexpected order %s", got)
	}
}
