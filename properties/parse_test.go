package properties_test

import (
	"testing"

	"cssfold/properties"
	"cssfold/values"
)

func TestLookupPropertyID(t *testing.T) {
	tests := []struct {
		name string
		want properties.PropertyID
	}{
		{"font", properties.PropFont},
		{"FONT-Family", properties.PropFontFamily},
		{"line-height", properties.PropLineHeight},
		{"margin-left", properties.PropMarginLeft},
		{"padding", properties.PropPadding},
		{"color", properties.PropUnknown},
		{"--font", properties.PropUnknown},
		{"font-ſize", properties.PropUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := properties.LookupPropertyID(tt.name); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPropertyID_Info(t *testing.T) {
	if !properties.PropFont.IsShorthand() || properties.PropFontSize.IsShorthand() {
		t.Error("unexpected shorthand flags")
	}
	if got := properties.PropMargin.Longhands(); len(got) != 4 || got[0] != properties.PropMarginTop || got[3] != properties.PropMarginLeft {
		t.Errorf("unexpected margin longhands %v", got)
	}
	if properties.PropLineHeight.Group() != properties.GroupFont {
		t.Error("line-height belongs to the font group")
	}
	if properties.PropVerticalAlign.Group() != properties.GroupNone {
		t.Error("vertical-align is not folded")
	}
	for _, id := range properties.PropFont.Longhands() {
		if id.Group() != properties.GroupFont {
			t.Errorf("%s is not in the font group", id)
		}
	}
}

func TestParse_Typed(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		id      properties.PropertyID
		verbose string
	}{
		{"font", "bold 1em/1.2 Georgia", properties.PropFont, "bold 1em / 1.2 Georgia"},
		{"font-family", "Arial , sans-serif", properties.PropFontFamily, "Arial, sans-serif"},
		{"Font-Size", "12PX", properties.PropFontSize, "12px"},
		{"font-style", "italic", properties.PropFontStyle, "italic"},
		{"font-weight", "600", properties.PropFontWeight, "600"},
		{"font-stretch", "expanded", properties.PropFontStretch, "expanded"},
		{"font-variant-caps", "unicase", properties.PropFontVariantCaps, "unicase"},
		{"line-height", "1.25", properties.PropLineHeight, "1.25"},
		{"vertical-align", "super", properties.PropVerticalAlign, "super"},
		{"margin", "1px 2px 1px 2px", properties.PropMargin, "1px 2px"},
		{"margin-top", "auto", properties.PropMarginTop, "auto"},
		{"margin-right", "-1em", properties.PropMarginRight, "-1em"},
		{"margin-bottom", "5%", properties.PropMarginBottom, "5%"},
		{"margin-left", "0", properties.PropMarginLeft, "0"},
		{"padding", "1px 2px 3px", properties.PropPadding, "1px 2px 3px"},
		{"padding-top", "1px", properties.PropPaddingTop, "1px"},
		{"padding-right", "2px", properties.PropPaddingRight, "2px"},
		{"padding-bottom", "3%", properties.PropPaddingBottom, "3%"},
		{"padding-left", "0", properties.PropPaddingLeft, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.name, tt.value)
			if _, raw := p.(properties.Unparsed); raw {
				t.Fatalf("expected typed property, got unparsed")
			}
			if p.ID() != tt.id {
				t.Errorf("expected id %v, got %v", tt.id, p.ID())
			}
			if p.Name() != tt.id.String() {
				t.Errorf("expected canonical name %q, got %q", tt.id.String(), p.Name())
			}
			if got := render(properties.DeclarationList{p}, false)[0]; got != tt.id.String()+": "+tt.verbose {
				t.Errorf("expected %q, got %q", tt.id.String()+": "+tt.verbose, got)
			}
		})
	}
}

func TestParse_Unparsed(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		id       properties.PropertyID
		wantName string
		wantText string
	}{
		{"font-size", "inherit", properties.PropFontSize, "font-size", "inherit"},
		{"margin", " REVERT-LAYER ", properties.PropMargin, "margin", "REVERT-LAYER"},
		{"font", "var(--base)  ,  serif", properties.PropFont, "font", "var(--base) , serif"},
		{"padding-top", "env(safe-area-inset-top)", properties.PropPaddingTop, "padding-top", "env(safe-area-inset-top)"},
		{"Color", "red", properties.PropUnknown, "color", "red"},
		{"--Main-Color", "  #fff ", properties.PropUnknown, "--Main-Color", "#fff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.name, tt.value)
			u, ok := p.(properties.Unparsed)
			if !ok {
				t.Fatalf("expected unparsed, got %T", p)
			}
			if u.ID() != tt.id {
				t.Errorf("expected id %v, got %v", tt.id, u.ID())
			}
			if u.Name() != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, u.Name())
			}
			if got := values.ToString(valueOnly{u}, false); got != tt.wantText {
				t.Errorf("expected %q, got %q", tt.wantText, got)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"font-size", "12px 14px"},
		{"font-size", ""},
		{"font-weight", "heavy"},
		{"font", "bold serif"},
		{"line-height", "auto"},
		{"margin-top", "1deg"},
		{"padding", "1px,2px"},
		{"font-variant-caps", "ſmall-caps"},
		{"font-size", "ſmall"},
		{"font-stretch", "ſemi-condensed"},
		{"font-size", "12pẋ"},
	}

	for _, tt := range tests {
		t.Run(tt.name+":"+tt.value, func(t *testing.T) {
			_, err := properties.ParseString(tt.name, tt.value)
			if err == nil {
				t.Fatal("expected error")
			}
			if !values.IsKind(err, values.UnexpectedToken) && !values.IsKind(err, values.InvalidDeclaration) {
				t.Errorf("expected *values.ParseError, got %T", err)
			}
		})
	}
}

type valueOnly struct{ p properties.Property }

func (v valueOnly) ToCSS(p *values.Printer) error { return v.p.ValueToCSS(p) }
