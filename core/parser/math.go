package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/mathlog/core/syntax"
)

// mathStop describes where a math run ends, besides the closing `$`.
type mathStop struct {
	close bool // a closing delimiter ends the run
	comma bool // `,` ends the run
}

// parseEquation parses `$...$`. The equation is a block when whitespace
// follows the opening and precedes the closing dollar.
func (p *parser) parseEquation() (*syntax.Equation, error) {
	open := p.next()
	openIdx := p.pos - 1

	children, err := p.parseMathSeq(mathStop{})
	if err != nil {
		return nil, err
	}
	if !p.at(tokDollar) {
		return nil, p.errorf(open, "unclosed equation")
	}
	closeIdx := p.pos
	p.next()

	block := p.toks[openIdx+1].Type == tokWhitespace && p.toks[closeIdx-1].Type == tokWhitespace
	return &syntax.Equation{
		Block: block,
		Body:  &syntax.Math{Children: trimSpace(children)},
	}, nil
}

func (p *parser) parseMathSeq(st mathStop) ([]syntax.Node, error) {
	var nodes []syntax.Node
	for {
		tok := p.peek()
		switch {
		case tok.Type == tokEOF, tok.Type == tokDollar:
			return nodes, nil
		case st.close && tok.Type == tokClose:
			return nodes, nil
		case st.comma && tok.Type == tokComma:
			return nodes, nil
		case tok.Type == tokWhitespace:
			p.next()
			nodes = append(nodes, &syntax.Space{Text: " "})
			continue
		}

		n, err := p.parseMathFrac()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

// parseMathFrac parses left-associative fractions: `a/b/c` is `(a/b)/c`.
func (p *parser) parseMathFrac() (syntax.Node, error) {
	num, err := p.parseMathAttach()
	if err != nil {
		return nil, err
	}

	for {
		j := p.pos
		for p.toks[j].Type == tokWhitespace {
			j++
		}
		if p.toks[j].Type != tokSlash {
			return num, nil
		}
		slash := p.toks[j]
		p.pos = j + 1
		p.skipMathSpace()
		if p.atMathEnd() {
			return nil, p.errorf(slash, "missing denominator")
		}
		denom, err := p.parseMathAttach()
		if err != nil {
			return nil, err
		}
		num = &syntax.MathFrac{Num: num, Denom: denom}
	}
}

func (p *parser) skipMathSpace() {
	for p.at(tokWhitespace) {
		p.next()
	}
}

func (p *parser) atMathEnd() bool {
	switch p.peek().Type {
	case tokEOF, tokDollar, tokClose, tokComma:
		return true
	}
	return false
}

func (p *parser) parseMathAttach() (syntax.Node, error) {
	base, err := p.parseMathPrimary()
	if err != nil {
		return nil, err
	}

	var bottom, top syntax.Node
	for {
		tok := p.peek()
		var slot *syntax.Node
		switch {
		case tok.Type == tokUnderscore && bottom == nil:
			slot = &bottom
		case tok.Type == tokCaret && top == nil:
			slot = &top
		default:
			if bottom == nil && top == nil {
				return base, nil
			}
			return &syntax.MathAttach{Base: base, Bottom: bottom, Top: top}, nil
		}

		p.next()
		if p.atMathEnd() || p.at(tokWhitespace) {
			return nil, p.errorf(tok, "missing %s attachment", attachName(tok.Type))
		}
		n, err := p.parseMathPrimary()
		if err != nil {
			return nil, err
		}
		*slot = n
	}
}

func attachName(t lexer.TokenType) string {
	if t == tokUnderscore {
		return "bottom"
	}
	return "top"
}

func (p *parser) parseMathPrimary() (syntax.Node, error) {
	tok := p.peek()
	switch tok.Type {
	case tokEOF, tokDollar:
		return nil, p.errorf(tok, "expected math expression")

	case tokLetter, tokMathNumber:
		p.next()
		return &syntax.Text{Text: tok.Value}, nil

	case tokMathIdent:
		p.next()
		names := strings.Split(tok.Value, ".")
		var n syntax.Node = &syntax.MathIdent{Name: names[0]}
		for _, field := range names[1:] {
			n = &syntax.FieldAccess{Target: n, Field: field}
		}
		if p.at(tokOpen) && p.peek().Value == "(" && p.adjacent() {
			return p.parseMathCall(n)
		}
		return n, nil

	case tokHashIdent, tokHashCall:
		return p.parseMathHash()

	case tokMathShort:
		p.next()
		return &syntax.Shorthand{Text: tok.Value}, nil

	case tokMathEscape:
		p.next()
		return &syntax.Escape{Text: tok.Value[1:]}, nil

	case tokBackslash:
		p.next()
		return &syntax.Linebreak{}, nil

	case tokAmp:
		p.next()
		return &syntax.MathAlignPoint{}, nil

	case tokString:
		p.next()
		return &syntax.Str{Value: unquote(tok.Value)}, nil

	case tokWhitespace:
		p.next()
		return &syntax.Space{Text: " "}, nil

	case tokOpen:
		p.next()
		body, err := p.parseMathSeq(mathStop{close: true})
		if err != nil {
			return nil, err
		}
		if !p.at(tokClose) {
			return nil, p.errorf(tok, "unclosed delimiter %q", tok.Value)
		}
		closeTok := p.next()
		return &syntax.MathDelimited{
			Open:  &syntax.Text{Text: tok.Value},
			Body:  &syntax.Math{Children: body},
			Close: &syntax.Text{Text: closeTok.Value},
		}, nil
	}

	p.next()
	return &syntax.Text{Text: tok.Value}, nil
}

// parseMathCall parses `(a, b)` after a callee; the opening parenthesis is
// the current token.
func (p *parser) parseMathCall(callee syntax.Node) (syntax.Node, error) {
	open := p.next()
	call := &syntax.FuncCall{Callee: callee}

	for {
		children, err := p.parseMathSeq(mathStop{close: true, comma: true})
		if err != nil {
			return nil, err
		}
		children = trimSpace(children)

		switch p.peek().Type {
		case tokComma:
			p.next()
			call.Args = append(call.Args, syntax.Arg{Value: &syntax.Math{Children: children}})
		case tokClose:
			p.next()
			if len(children) > 0 || len(call.Args) > 0 {
				call.Args = append(call.Args, syntax.Arg{Value: &syntax.Math{Children: children}})
			}
			return call, nil
		default:
			return nil, p.errorf(open, "unclosed argument list")
		}
	}
}

// parseMathHash parses embedded code inside an equation. Adjacent `[...]`
// blocks are lexed as math delimiters and become math arguments.
func (p *parser) parseMathHash() (syntax.Node, error) {
	n, err := p.parseHash()
	if err != nil {
		return nil, err
	}
	if !p.atMathBracket() {
		return n, nil
	}

	call, ok := n.(*syntax.FuncCall)
	if !ok {
		call = &syntax.FuncCall{Callee: n}
	}
	for p.atMathBracket() {
		open := p.next()
		body, err := p.parseMathSeq(mathStop{close: true})
		if err != nil {
			return nil, err
		}
		if !p.at(tokClose) || p.peek().Value != "]" {
			return nil, p.errorf(open, "unclosed content block")
		}
		p.next()
		call.Args = append(call.Args, syntax.Arg{Value: &syntax.Math{Children: trimSpace(body)}})
	}
	return call, nil
}

func (p *parser) atMathBracket() bool {
	return p.at(tokOpen) && p.peek().Value == "[" && p.adjacent()
}
