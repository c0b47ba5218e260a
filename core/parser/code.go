package parser

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/mathlog/core/syntax"
)

// parseHash parses an embedded code expression: `#name`, `#a.b`,
// `#f(args)` and any adjacent trailing content blocks.
func (p *parser) parseHash() (syntax.Node, error) {
	tok := p.next()
	value := strings.TrimPrefix(tok.Value, "#")
	isCall := tok.Type == tokHashCall
	if isCall {
		value = strings.TrimSuffix(value, "(")
	}

	names := strings.Split(value, ".")
	var callee syntax.Node = &syntax.Ident{Name: names[0]}
	for _, field := range names[1:] {
		callee = &syntax.FieldAccess{Target: callee, Field: field}
	}

	var call *syntax.FuncCall
	if isCall {
		args, err := p.parseCodeArgs()
		if err != nil {
			return nil, err
		}
		call = &syntax.FuncCall{Callee: callee, Args: args}
	}

	if p.at(tokLBracket) && p.adjacent() {
		if call == nil {
			call = &syntax.FuncCall{Callee: callee}
		}
		if err := p.parseTrailingContent(call); err != nil {
			return nil, err
		}
	}

	if call != nil {
		return call, nil
	}
	return callee, nil
}

// parseTrailingContent appends `[...]` blocks that directly follow a call.
func (p *parser) parseTrailingContent(call *syntax.FuncCall) error {
	for p.at(tokLBracket) && p.adjacent() {
		block, err := p.parseContentBlock()
		if err != nil {
			return err
		}
		call.Args = append(call.Args, syntax.Arg{Value: block})
	}
	return nil
}

func (p *parser) parseContentBlock() (*syntax.ContentBlock, error) {
	open := p.next()
	body, err := p.parseMarkup(stop{bracket: true, indent: -1})
	if err != nil {
		return nil, err
	}
	if !p.at(tokRBracket) {
		return nil, p.errorf(open, "unclosed content block")
	}
	p.next()
	return &syntax.ContentBlock{Body: &syntax.Markup{Children: body}}, nil
}

func (p *parser) skipCodeSpace() {
	for p.at(tokWhitespace) {
		p.next()
	}
}

// parseCodeArgs parses arguments up to and including the closing
// parenthesis.
func (p *parser) parseCodeArgs() ([]syntax.Arg, error) {
	var args []syntax.Arg
	for {
		p.skipCodeSpace()
		tok := p.peek()
		switch tok.Type {
		case tokRParen:
			p.next()
			return args, nil
		case tokEOF:
			return nil, p.errorf(tok, "unclosed argument list")
		}

		var name string
		if tok.Type == tokIdent {
			j := p.pos + 1
			for p.toks[j].Type == tokWhitespace {
				j++
			}
			if p.toks[j].Type == tokColon {
				name = tok.Value
				p.pos = j + 1
				p.skipCodeSpace()
			}
		}

		value, err := p.parseCodeExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, syntax.Arg{Name: name, Value: value})

		p.skipCodeSpace()
		switch tok := p.peek(); tok.Type {
		case tokComma:
			p.next()
		case tokRParen:
			p.next()
			return args, nil
		default:
			return nil, p.errorf(tok, "expected ',' or ')' in arguments, found %q", tok.Value)
		}
	}
}

func (p *parser) parseCodeExpr() (syntax.Node, error) {
	tok := p.peek()
	switch tok.Type {
	case tokString:
		p.next()
		return &syntax.Str{Value: unquote(tok.Value)}, nil

	case tokNumber:
		p.next()
		return parseNumber(tok.Value), nil

	case tokLBracket:
		return p.parseContentBlock()

	case tokDollar:
		return p.parseEquation()

	case tokIdent:
		p.next()
		var n syntax.Node = &syntax.Ident{Name: tok.Value}
		for p.at(tokDot) && p.peekAt(1).Type == tokIdent {
			p.next()
			n = &syntax.FieldAccess{Target: n, Field: p.next().Value}
		}
		if p.at(tokLParen) && p.adjacent() {
			p.next()
			args, err := p.parseCodeArgs()
			if err != nil {
				return nil, err
			}
			call := &syntax.FuncCall{Callee: n, Args: args}
			if err := p.parseTrailingContent(call); err != nil {
				return nil, err
			}
			return call, nil
		}
		if p.at(tokLBracket) && p.adjacent() {
			call := &syntax.FuncCall{Callee: n}
			if err := p.parseTrailingContent(call); err != nil {
				return nil, err
			}
			return call, nil
		}
		return n, nil
	}

	return nil, p.errorf(tok, "unexpected %q in code", tok.Value)
}

// parseNumber splits a numeric literal into its value and unit.
func parseNumber(value string) syntax.Node {
	digits := strings.TrimRightFunc(value, func(r rune) bool {
		return r == '%' || r >= 'a' && r <= 'z'
	})
	// An exponent is part of the number, not a unit.
	if strings.HasSuffix(digits, "e") || strings.HasSuffix(digits, "E") {
		digits = value
	}
	unit := value[len(digits):]

	if unit == "" && !strings.ContainsAny(digits, ".eE") {
		if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
			return &syntax.Int{Value: n}
		}
	}
	f, _ := strconv.ParseFloat(digits, 64)
	if unit != "" {
		return &syntax.Numeric{Value: f, Unit: unit}
	}
	return &syntax.Float{Value: f}
}

// unquote decodes a typst string literal, quotes included.
func unquote(lit string) string {
	body := lit[1 : len(lit)-1]
	if !strings.Contains(body, `\`) {
		return body
	}

	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'u':
			if end := strings.IndexByte(body[i:], '}'); i+1 < len(body) && body[i+1] == '{' && end > 0 {
				if cp, err := strconv.ParseInt(body[i+2:i+end], 16, 32); err == nil {
					sb.WriteRune(rune(cp))
					i += end
					continue
				}
			}
			sb.WriteByte('u')
		default:
			sb.WriteByte(body[i])
		}
	}
	return sb.String()
}
