package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/core/syntax"
)

// importGrammar is the participle grammar for the text after `#import`.
// Examples: `"lib.typ"`, `"lib.typ": a, b`, `"@preview/x:0.1.0": *`,
// `"lib.typ" as lib`, `calc: pow as power`
//
//nolint:govet // participle grammar tags are not standard struct tags
type importGrammar struct {
	Source string       `( @String | @Ident ( @"." @Ident )* )`
	Alias  string       `( "as" @Ident )?`
	Items  *importItems `( ":" @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type importItems struct {
	Wildcard bool         `  @"*"`
	Names    []importName `| @@ ( "," @@ )* ","?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type importName struct {
	Name  string `@Ident`
	Alias string `( "as" @Ident )?`
}

// includeGrammar is the participle grammar for the text after `#include`.
//
//nolint:govet // participle grammar tags are not standard struct tags
type includeGrammar struct {
	Source string `( @String | @Ident ( @"." @Ident )* )`
}

var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: identPattern},
	{Name: "Punct", Pattern: `[:,.*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var importParser = participle.MustBuild[importGrammar](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
)

var includeParser = participle.MustBuild[includeGrammar](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
)

// parseDirective parses `#import`, `#include`, `#set`, `#show` and `#let`.
// Set, show and let rules run to the end of their line, or further while
// brackets are open. Imports and includes stop after their last item and
// leave the rest of the line to the markup.
func (p *parser) parseDirective() (syntax.Node, error) {
	tok := p.next()
	keyword := strings.TrimPrefix(tok.Value, "#")
	bodyStart := tokEnd(tok)
	end := directiveEnd(p.src, bodyStart)
	body := p.src[bodyStart:end]
	lead := len(body) - len(strings.TrimLeft(body, " \t"))
	text := strings.TrimSpace(body)

	var node syntax.Node
	switch keyword {
	case "import":
		parsed, size, err := parseLeading(importParser, p.filename, text)
		if err != nil {
			return nil, p.errorf(tok, "invalid import: %v", err)
		}
		imp := &syntax.ModuleImport{Source: parsed.Source, Alias: parsed.Alias}
		if parsed.Items != nil {
			imp.Wildcard = parsed.Items.Wildcard
			for _, n := range parsed.Items.Names {
				item := n.Name
				if n.Alias != "" {
					item += " as " + n.Alias
				}
				imp.Items = append(imp.Items, item)
			}
		}
		node, end = imp, bodyStart+lead+size

	case "include":
		parsed, size, err := parseLeading(includeParser, p.filename, text)
		if err != nil {
			return nil, p.errorf(tok, "invalid include: %v", err)
		}
		node, end = &syntax.ModuleInclude{Source: parsed.Source}, bodyStart+lead+size

	case "set":
		node = &syntax.SetRule{Text: text}
	case "show":
		node = &syntax.ShowRule{Text: text}
	default:
		node = &syntax.LetBinding{Text: text}
	}

	for !p.at(tokEOF) && tokEnd(p.peek()) <= end {
		p.next()
	}
	return node, nil
}

// parseLeading parses the longest prefix of text that forms a complete
// directive and reports its length. Trailing tokens the grammar cannot
// take end the directive; any other error is returned.
func parseLeading[G any](grammar *participle.Parser[G], filename, text string) (*G, int, error) {
	parsed, err := grammar.ParseString(filename, text)
	if err == nil {
		return parsed, len(text), nil
	}
	var perr participle.Error
	if !errors.As(err, &perr) {
		return nil, 0, err
	}
	cut := perr.Position().Offset
	if cut <= 0 || cut >= len(text) {
		return nil, 0, err
	}
	prefix := strings.TrimRight(text[:cut], " \t")
	parsed, retryErr := grammar.ParseString(filename, prefix)
	if retryErr != nil {
		return nil, 0, err
	}
	return parsed, len(prefix), nil
}

// directiveEnd finds the end of a directive body starting at from: the
// first newline outside brackets, or an unmatched `]`.
func directiveEnd(src string, from int) int {
	depth := 0
	inString := false
	for i := from; i < len(src); i++ {
		c := src[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '(', '[', '{':
			depth++
		case ')', '}':
			depth--
		case ']':
			if depth == 0 {
				return i
			}
			depth--
		case '\n':
			if depth <= 0 {
				return i
			}
		}
	}
	return len(src)
}
