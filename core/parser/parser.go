// Package parser turns typst markup into a syntax tree.
//
// Tokens come from a participle stateful lexer; the tree is built by a
// recursive descent over the token slice, since markup structure depends
// on line starts and indentation that a grammar cannot express.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/core/syntax"
)

// Parse parses markup source. filename is used in error messages only.
func Parse(filename, src string) (*syntax.Markup, error) {
	lex, err := markupLexer.LexString(filename, src)
	if err != nil {
		return nil, errors.NewParse("markup", filename, err.Error())
	}
	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.NewParse("markup", filename, err.Error())
	}

	p := &parser{filename: filename, src: src, toks: toks}
	children, err := p.parseMarkup(stop{indent: -1})
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != tokEOF {
		return nil, p.errorf(tok, "unexpected %q", tok.Value)
	}
	return &syntax.Markup{Children: children}, nil
}

type parser struct {
	filename string
	src      string
	toks     []lexer.Token
	pos      int
}

// stop describes where a markup run ends. The terminating token is left
// for the caller.
type stop struct {
	bracket bool            // `]` closes the run
	delim   lexer.TokenType // `*` or `_` closes the run
	line    bool            // a line break closes the run
	colon   bool            // `:` closes the run
	inline  bool            // block markers are plain text
	indent  int             // a line indented at most this much closes the run; -1 disables
}

func (p *parser) peek() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) lexer.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() lexer.Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) at(t lexer.TokenType) bool {
	return p.peek().Type == t
}

func (p *parser) errorf(tok lexer.Token, format string, args ...any) *errors.ParseError {
	msg := fmt.Sprintf("%d:%d: %s", tok.Pos.Line, tok.Pos.Column, fmt.Sprintf(format, args...))
	return errors.NewParse("markup", p.filename, msg)
}

func tokEnd(tok lexer.Token) int {
	return tok.Pos.Offset + len(tok.Value)
}

// adjacent reports whether the current token starts where the previous
// one ended.
func (p *parser) adjacent() bool {
	return p.pos > 0 && tokEnd(p.toks[p.pos-1]) == p.peek().Pos.Offset
}

func (p *parser) parseMarkup(st stop) ([]syntax.Node, error) {
	var nodes []syntax.Node
	for {
		tok := p.peek()
		switch {
		case tok.Type == tokEOF:
			return nodes, nil
		case st.bracket && tok.Type == tokRBracket:
			return nodes, nil
		case st.delim != 0 && tok.Type == st.delim && !p.intraword():
			return nodes, nil
		case st.delim != 0 && tok.Type == tokParbreak:
			return nodes, nil
		case st.colon && tok.Type == tokColon:
			return nodes, nil
		case tok.Type == tokNewline || tok.Type == tokParbreak:
			if st.line || (st.indent >= 0 && !p.continuesBody(st.indent)) {
				return nodes, nil
			}
			p.next()
			if tok.Type == tokParbreak {
				nodes = append(nodes, &syntax.Parbreak{})
			} else {
				nodes = append(nodes, &syntax.Space{Text: "\n"})
			}
			continue
		}

		if !st.inline && p.atLineStart() {
			item, err := p.parseBlockItem(st)
			if err != nil {
				return nil, err
			}
			if item != nil {
				nodes = append(nodes, item)
				continue
			}
		}

		parsed, err := p.parseInline(st)
		if err != nil {
			return nil, err
		}
		nodes = appendNodes(nodes, parsed...)
	}
}

// appendNodes appends, merging adjacent text runs.
func appendNodes(nodes []syntax.Node, more ...syntax.Node) []syntax.Node {
	for _, n := range more {
		if t, ok := n.(*syntax.Text); ok && len(nodes) > 0 {
			if prev, ok := nodes[len(nodes)-1].(*syntax.Text); ok {
				nodes[len(nodes)-1] = &syntax.Text{Text: prev.Text + t.Text}
				continue
			}
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func trimSpace(nodes []syntax.Node) []syntax.Node {
	for len(nodes) > 0 {
		if _, ok := nodes[0].(*syntax.Space); !ok {
			break
		}
		nodes = nodes[1:]
	}
	for len(nodes) > 0 {
		if _, ok := nodes[len(nodes)-1].(*syntax.Space); !ok {
			break
		}
		nodes = nodes[:len(nodes)-1]
	}
	return nodes
}

// continuesBody reports whether the line after the current break belongs
// to an item whose marker sits at the given indentation.
func (p *parser) continuesBody(indent int) bool {
	brk := p.peek()
	after := p.peekAt(1)
	if after.Type == tokEOF || after.Type == tokRBracket {
		return false
	}
	nl := strings.LastIndexByte(brk.Value, '\n')
	return len(brk.Value)-nl-1 > indent
}

// intraword reports whether the current token sits between two words, where
// `*` and `_` are plain text.
func (p *parser) intraword() bool {
	if p.pos == 0 || !p.adjacent() || p.toks[p.pos-1].Type != tokWord {
		return false
	}
	after := p.peekAt(1)
	return after.Type == tokWord && tokEnd(p.peek()) == after.Pos.Offset
}

func (p *parser) atLineStart() bool {
	if p.pos == 0 {
		return true
	}
	prev := p.toks[p.pos-1]
	switch prev.Type {
	case tokNewline, tokParbreak, tokLBracket:
		return true
	case tokSpace:
		return p.pos == 1
	}
	return false
}

// lineIndent measures the indentation of the line containing offset.
func (p *parser) lineIndent(offset int) int {
	start := strings.LastIndexByte(p.src[:offset], '\n') + 1
	n := 0
	for start+n < len(p.src) && (p.src[start+n] == ' ' || p.src[start+n] == '\t') {
		n++
	}
	return n
}

// parseBlockItem parses a heading or list-like item at the start of a
// line. It returns nil when the current token is not an item marker.
func (p *parser) parseBlockItem(st stop) (syntax.Node, error) {
	tok := p.peek()
	if p.peekAt(1).Type != tokSpace {
		return nil, nil
	}

	switch tok.Type {
	case tokEquals:
		p.next()
		p.next()
		body, err := p.parseMarkup(stop{bracket: st.bracket, line: true, inline: true, indent: -1})
		if err != nil {
			return nil, err
		}
		return &syntax.Heading{
			Depth: len(tok.Value),
			Body:  &syntax.Markup{Children: trimSpace(body)},
		}, nil

	case tokMinus, tokPlus, tokEnumNum:
		indent := p.lineIndent(tok.Pos.Offset)
		p.next()
		p.next()
		body, err := p.parseMarkup(stop{bracket: st.bracket, indent: indent})
		if err != nil {
			return nil, err
		}
		markup := &syntax.Markup{Children: trimSpace(body)}
		switch tok.Type {
		case tokMinus:
			return &syntax.ListItem{Body: markup}, nil
		case tokPlus:
			return &syntax.EnumItem{Body: markup}, nil
		default:
			n, _ := strconv.Atoi(strings.TrimSuffix(tok.Value, "."))
			return &syntax.EnumItem{Number: n, Body: markup}, nil
		}

	case tokSlash:
		indent := p.lineIndent(tok.Pos.Offset)
		p.next()
		p.next()
		term, err := p.parseMarkup(stop{bracket: st.bracket, colon: true, line: true, inline: true, indent: -1})
		if err != nil {
			return nil, err
		}
		var desc []syntax.Node
		if p.at(tokColon) {
			p.next()
			desc, err = p.parseMarkup(stop{bracket: st.bracket, indent: indent})
			if err != nil {
				return nil, err
			}
		}
		return &syntax.TermItem{
			Term:        &syntax.Markup{Children: trimSpace(term)},
			Description: &syntax.Markup{Children: trimSpace(desc)},
		}, nil
	}

	return nil, nil
}

func (p *parser) parseInline(st stop) ([]syntax.Node, error) {
	tok := p.peek()
	switch tok.Type {
	case tokRawBlock:
		p.next()
		return []syntax.Node{parseRawBlock(tok.Value)}, nil

	case tokRaw:
		p.next()
		return []syntax.Node{&syntax.Raw{Text: tok.Value[1 : len(tok.Value)-1]}}, nil

	case tokEscape:
		p.next()
		return []syntax.Node{&syntax.Escape{Text: unescapeMarkup(tok.Value)}}, nil

	case tokBackslash:
		p.next()
		return []syntax.Node{&syntax.Linebreak{}}, nil

	case tokLink:
		p.next()
		url := strings.TrimRight(tok.Value, ".,;:!?'")
		nodes := []syntax.Node{&syntax.Link{URL: url}}
		if rest := tok.Value[len(url):]; rest != "" {
			nodes = append(nodes, &syntax.Text{Text: rest})
		}
		return nodes, nil

	case tokLineComment, tokBlockComment:
		p.next()
		return nil, nil

	case tokDollar:
		eq, err := p.parseEquation()
		if err != nil {
			return nil, err
		}
		return []syntax.Node{eq}, nil

	case tokDirective:
		n, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		return []syntax.Node{n}, nil

	case tokHashIdent, tokHashCall:
		n, err := p.parseHash()
		if err != nil {
			return nil, err
		}
		return []syntax.Node{n}, nil

	case tokLBracket:
		p.next()
		body, err := p.parseMarkup(stop{bracket: true, inline: st.inline, indent: -1})
		if err != nil {
			return nil, err
		}
		if !p.at(tokRBracket) {
			return nil, p.errorf(tok, "unclosed bracket")
		}
		p.next()
		nodes := appendNodes([]syntax.Node{&syntax.Text{Text: "["}}, body...)
		return appendNodes(nodes, &syntax.Text{Text: "]"}), nil

	case tokStar, tokUnderscore:
		if p.intraword() {
			break
		}
		p.next()
		body, err := p.parseMarkup(stop{bracket: st.bracket, delim: tok.Type, inline: true, indent: -1})
		if err != nil {
			return nil, err
		}
		if !p.at(tok.Type) {
			if tok.Type == tokStar {
				return nil, p.errorf(tok, "unclosed strong emphasis")
			}
			return nil, p.errorf(tok, "unclosed emphasis")
		}
		p.next()
		markup := &syntax.Markup{Children: body}
		if tok.Type == tokStar {
			return []syntax.Node{&syntax.Strong{Body: markup}}, nil
		}
		return []syntax.Node{&syntax.Emph{Body: markup}}, nil

	case tokLabel:
		p.next()
		return []syntax.Node{&syntax.Label{Name: tok.Value[1 : len(tok.Value)-1]}}, nil

	case tokRefMark:
		p.next()
		return []syntax.Node{&syntax.Ref{Target: tok.Value[1:]}}, nil

	case tokShorthand:
		p.next()
		return []syntax.Node{&syntax.Shorthand{Text: tok.Value}}, nil

	case tokQuote:
		p.next()
		return []syntax.Node{&syntax.SmartQuote{Double: tok.Value == `"`}}, nil

	case tokSpace:
		p.next()
		return []syntax.Node{&syntax.Space{Text: " "}}, nil
	}

	p.next()
	return []syntax.Node{&syntax.Text{Text: tok.Value}}, nil
}

func parseRawBlock(value string) *syntax.Raw {
	inner := value[3 : len(value)-3]
	lang := ""
	for i, r := range inner {
		if !(r == '_' || r == '-' || r == '+' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || i > 0 && r >= '0' && r <= '9') {
			lang = inner[:i]
			break
		}
	}
	inner = inner[len(lang):]
	inner = strings.TrimPrefix(strings.TrimPrefix(inner, "\r"), "\n")
	if lang != "" && !strings.HasPrefix(value[3+len(lang):], "\n") {
		inner = strings.TrimPrefix(inner, " ")
	}
	return &syntax.Raw{Text: strings.TrimRight(inner, " \t\r\n"), Lang: lang, Block: true}
}

// unescapeMarkup decodes `\c` and `\u{hex}`.
func unescapeMarkup(value string) string {
	body := value[1:]
	if strings.HasPrefix(body, "u{") && strings.HasSuffix(body, "}") {
		if cp, err := strconv.ParseInt(body[2:len(body)-1], 16, 32); err == nil {
			return string(rune(cp))
		}
	}
	return body
}
