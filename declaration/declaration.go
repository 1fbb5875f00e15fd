package declaration

import (
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"

	"cssfold/properties"
	"cssfold/values"
)

// Block is the body of a rule: normal and !important declarations are kept
// apart so they are never folded into the same shorthand.
type Block struct {
	Declarations          properties.DeclarationList
	ImportantDeclarations properties.DeclarationList
}

// Add appends p to the list selected by important.
func (b *Block) Add(p properties.Property, important bool) {
	if important {
		b.ImportantDeclarations.Push(p)
		return
	}
	b.Declarations.Push(p)
}

// Len returns the number of declarations in both lists.
func (b *Block) Len() int {
	return len(b.Declarations) + len(b.ImportantDeclarations)
}

// Minify folds both lists, normal declarations with handler and important
// ones with important.
func (b *Block) Minify(handler, important *Handler) {
	for _, p := range b.Declarations {
		handler.HandleProperty(p)
	}
	b.Declarations = handler.Finalize()

	for _, p := range b.ImportantDeclarations {
		important.HandleProperty(p)
	}
	b.ImportantDeclarations = important.Finalize()
}

// ToCSS writes the block including braces.
func (b *Block) ToCSS(p *values.Printer) error {
	p.WriteByte('{')
	if b.Len() == 0 {
		return p.WriteByte('}')
	}
	p.Indent()
	n := 0
	write := func(list properties.DeclarationList, important bool) {
		for _, decl := range list {
			n++
			p.Newline()
			WriteDeclaration(p, decl, important)
			if n < b.Len() || !p.Minify {
				p.WriteByte(';')
			}
		}
	}
	write(b.Declarations, false)
	write(b.ImportantDeclarations, true)
	p.Dedent()
	p.Newline()
	return p.WriteByte('}')
}

// WriteDeclaration writes `name: value` with an optional !important flag.
func WriteDeclaration(p *values.Printer, decl properties.Property, important bool) error {
	p.WriteString(decl.Name())
	p.WriteByte(':')
	p.Whitespace()
	decl.ValueToCSS(p)
	if important {
		p.Whitespace()
		p.WriteString("!important")
	}
	return p.Err()
}

// String renders the block in pretty form.
func (b *Block) String() string {
	var sb strings.Builder
	b.ToCSS(values.NewPrinter(&sb, false)) //nolint:errcheck
	return sb.String()
}

// StripImportant removes a trailing `!important` from value tokens.
func StripImportant(tokens []css.Token) ([]css.Token, bool) {
	i := lastSignificant(tokens, len(tokens))
	if i < 0 || tokens[i].TokenType != css.IdentToken || !parse.EqualFold(tokens[i].Data, []byte("important")) {
		return tokens, false
	}
	j := lastSignificant(tokens, i)
	if j < 0 || tokens[j].TokenType != css.DelimToken || len(tokens[j].Data) != 1 || tokens[j].Data[0] != '!' {
		return tokens, false
	}
	return tokens[:j], true
}

func lastSignificant(tokens []css.Token, end int) int {
	for i := end - 1; i >= 0; i-- {
		switch tokens[i].TokenType {
		case css.WhitespaceToken, css.CommentToken:
			continue
		}
		return i
	}
	return -1
}

// ParseDeclaration parses one declaration. The returned flag reports a
// trailing !important.
func ParseDeclaration(name string, tokens []css.Token) (properties.Property, bool, error) {
	tokens, important := StripImportant(tokens)
	p, err := properties.Parse(name, tokens)
	if err != nil {
		return nil, important, fmt.Errorf("property %q: %w", name, err)
	}
	return p, important, nil
}

// ParseBlock parses the contents of a style attribute or rule body without
// braces. Declarations that fail to parse are skipped; their errors are
// combined in the returned error.
func ParseBlock(text string) (Block, error) {
	var (
		b    Block
		errs error
	)
	parser := css.NewParser(parse.NewInputString(text), true)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return b, errs
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			p, important, err := ParseDeclaration(string(data), copyTokens(parser.Values()))
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			b.Add(p, important)
		}
	}
}

func copyTokens(tokens []css.Token) []css.Token {
	out := make([]css.Token, len(tokens))
	for i, t := range tokens {
		out[i] = css.Token{TokenType: t.TokenType, Data: parse.Copy(t.Data)}
	}
	return out
}
