package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssfold/declaration"
	"cssfold/properties"
)

// Parser parses CSS stylesheets into rules with typed declarations.
type Parser struct {
	log    *zap.Logger
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes invalid declarations fail the parse instead of being kept
// verbatim with a warning.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("css-parser")}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type parseState struct {
	parser *css.Parser
	input  *parse.Input
	text   []byte
	sheet  *Stylesheet
	errs   error
}

// line returns the current line of the lexer.
func (ps *parseState) line() int {
	off := min(ps.input.Offset(), len(ps.text))
	return bytes.Count(ps.text[:off], []byte{'\n'}) + 1
}

// Parse parses CSS text into a Stylesheet. The optional source parameter
// identifies what's being parsed (for logging and messages). In strict mode
// every invalid declaration is reported in the returned error, which
// combines them with multierr; the stylesheet is returned regardless.
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	src := "<input>"
	if len(source) > 0 && source[0] != "" {
		src = source[0]
	}

	text, label, err := DecodeInput(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	p.log.Debug("Parsing CSS", zap.String("source", src), zap.Int("bytes", len(text)), zap.String("charset", label))

	sheet := &Stylesheet{Charset: label, Warnings: make([]string, 0)}
	input := parse.NewInput(bytes.NewReader(text))
	ps := &parseState{
		parser: css.NewParser(input, false),
		input:  input,
		text:   text,
		sheet:  sheet,
	}
	sheet.Items = p.parseItems(ps, src, false)

	p.log.Debug("Parsed CSS", zap.String("source", src), zap.Int("items", len(sheet.Items)), zap.Int("warnings", len(sheet.Warnings)))
	return sheet, ps.errs
}

// parseItems reads rules until the end of input or, when nested, the end of
// the enclosing at-rule.
func (p *Parser) parseItems(ps *parseState, src string, nested bool) []StylesheetItem {
	var (
		items     []StylesheetItem
		selectors strings.Builder
	)
	for {
		gt, _, data := ps.parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := ps.parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.warn(ps, fmt.Sprintf("%s: %v", src, err))
				p.log.Debug("CSS parse error", zap.String("source", src), zap.Error(err))
			}
			return items

		case css.EndAtRuleGrammar:
			if nested {
				return items
			}

		case css.QualifiedRuleGrammar:
			// one part of a comma separated selector list
			writeTokens(&selectors, data, ps.parser.Values())
			selectors.WriteByte(',')

		case css.BeginRulesetGrammar:
			writeTokens(&selectors, data, ps.parser.Values())
			rule := &StyleRule{Selectors: splitSelectors(selectors.String()), Line: ps.line()}
			selectors.Reset()
			p.parseRuleBody(ps, src, rule)
			items = append(items, StylesheetItem{Rule: rule})

		case css.BeginAtRuleGrammar:
			rule := &AtRule{
				Name:     atRuleName(data),
				Prelude:  joinTokens(ps.parser.Values()),
				HasBlock: true,
				Line:     ps.line(),
			}
			p.parseAtRuleBody(ps, src, rule)
			p.log.Debug("Parsed @-rule", zap.String("rule", rule.Name), zap.String("prelude", rule.Prelude))
			items = append(items, StylesheetItem{AtRule: rule})

		case css.AtRuleGrammar:
			name := atRuleName(data)
			if name == "charset" {
				// output is always UTF-8
				continue
			}
			items = append(items, StylesheetItem{AtRule: &AtRule{
				Name:    name,
				Prelude: joinTokens(ps.parser.Values()),
				Line:    ps.line(),
			}})

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			p.warn(ps, fmt.Sprintf("%s:%d: declaration %q outside of a rule ignored", src, ps.line(), string(data)))
		}
	}
}

// parseRuleBody reads declarations until EndRulesetGrammar.
func (p *Parser) parseRuleBody(ps *parseState, src string, rule *StyleRule) {
	context := strings.Join(rule.Selectors, ", ")
	for {
		gt, _, data := ps.parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			p.addDeclaration(ps, src, context, &rule.Declarations, string(data), ps.parser.Values())

		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			// nesting is not supported, skip the whole nested block
			p.warn(ps, fmt.Sprintf("%s:%d: %s: nested rule skipped", src, ps.line(), context))
			skipBlock(ps.parser)
		}
	}
}

// parseAtRuleBody reads the body of an at-rule until EndAtRuleGrammar. The
// tdewolff parser decides per at-rule name whether the body is a declaration
// list, a rule list or unknown tokens.
func (p *Parser) parseAtRuleBody(ps *parseState, src string, rule *AtRule) {
	var (
		raw       strings.Builder
		selectors strings.Builder
	)
	defer func() {
		rule.Raw = strings.TrimSpace(raw.String())
	}()

	context := "@" + rule.Name
	for {
		gt, _, data := ps.parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := ps.parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.warn(ps, fmt.Sprintf("%s: %v", src, err))
			}
			return

		case css.EndAtRuleGrammar:
			return

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if rule.Declarations == nil {
				rule.Declarations = &declaration.Block{}
			}
			p.addDeclaration(ps, src, context, rule.Declarations, string(data), ps.parser.Values())

		case css.QualifiedRuleGrammar:
			writeTokens(&selectors, data, ps.parser.Values())
			selectors.WriteByte(',')

		case css.BeginRulesetGrammar:
			writeTokens(&selectors, data, ps.parser.Values())
			nested := &StyleRule{Selectors: splitSelectors(selectors.String()), Line: ps.line()}
			selectors.Reset()
			p.parseRuleBody(ps, src, nested)
			rule.Rules = append(rule.Rules, StylesheetItem{Rule: nested})

		case css.BeginAtRuleGrammar:
			nested := &AtRule{
				Name:     atRuleName(data),
				Prelude:  joinTokens(ps.parser.Values()),
				HasBlock: true,
				Line:     ps.line(),
			}
			p.parseAtRuleBody(ps, src, nested)
			rule.Rules = append(rule.Rules, StylesheetItem{AtRule: nested})

		case css.AtRuleGrammar:
			rule.Rules = append(rule.Rules, StylesheetItem{AtRule: &AtRule{
				Name:    atRuleName(data),
				Prelude: joinTokens(ps.parser.Values()),
				Line:    ps.line(),
			}})

		case css.TokenGrammar:
			raw.Write(data)
		}
	}
}

// addDeclaration parses one declaration into block. Invalid values are an
// error in strict mode and kept verbatim with a warning otherwise.
func (p *Parser) addDeclaration(ps *parseState, src, context string, block *declaration.Block, name string, tokens []css.Token) {
	tokens = copyTokens(tokens)
	prop, important, err := declaration.ParseDeclaration(name, tokens)
	if err == nil {
		block.Add(prop, important)
		return
	}

	err = fmt.Errorf("%s:%d: %s: %w", src, ps.line(), context, err)
	if p.strict {
		ps.errs = multierr.Append(ps.errs, err)
		return
	}
	p.warn(ps, err.Error()+" (kept as is)")
	rest, _ := declaration.StripImportant(tokens)
	block.Add(properties.NewUnparsed(name, rest), important)
}

func (p *Parser) warn(ps *parseState, msg string) {
	ps.sheet.Warnings = append(ps.sheet.Warnings, msg)
	p.log.Debug("CSS warning", zap.String("warning", msg))
}

// skipBlock skips tokens until the matching end of a block.
func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

func atRuleName(data []byte) string {
	return string(parse.ToLower(bytes.Clone(bytes.TrimPrefix(data, []byte("@")))))
}

func writeTokens(sb *strings.Builder, data []byte, tokens []css.Token) {
	sb.Write(data)
	for _, t := range tokens {
		sb.Write(t.Data)
	}
}

// joinTokens renders tokens with whitespace runs collapsed and trimmed.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.Write(t.Data)
	}
	return sb.String()
}

// splitSelectors splits a selector list at top-level commas and collapses
// whitespace in each selector.
func splitSelectors(list string) []string {
	var (
		out   []string
		depth int
		start int
	)
	flush := func(s string) {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			out = append(out, s)
		}
	}
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				flush(list[start:i])
				start = i + 1
			}
		}
	}
	flush(list[start:])
	return out
}

func copyTokens(tokens []css.Token) []css.Token {
	out := make([]css.Token, len(tokens))
	for i, t := range tokens {
		out[i] = css.Token{TokenType: t.TokenType, Data: parse.Copy(t.Data)}
	}
	return out
}
