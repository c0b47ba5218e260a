package translate

import (
	"github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/core/mathlog"
	"github.com/FocuswithJustin/mathlog/core/syntax"
)

// mathShorthands maps math shorthands to their symbol paths in the
// dictionary. A shorthand the dictionary cannot resolve is kept as text.
var mathShorthands = map[string][]string{
	"->":   {"arrow", "r"},
	"-->":  {"arrow", "r", "long"},
	"=>":   {"arrow", "r", "double"},
	"==>":  {"arrow", "r", "double", "long"},
	"<-":   {"arrow", "l"},
	"<--":  {"arrow", "l", "long"},
	"<->":  {"arrow", "l", "r"},
	"<=>":  {"arrow", "l", "r", "double"},
	"<==>": {"arrow", "l", "r", "double", "long"},
	"<=":   {"lt", "eq"},
	">=":   {"gt", "eq"},
	"!=":   {"eq", "not"},
	":=":   {"colon", "eq"},
	"...":  {"dots", "h"},
	"<<":   {"lt", "double"},
	">>":   {"gt", "double"},
}

// mathEscapes are escaped characters that need a backslash in the output.
var mathEscapes = map[string]string{
	"{": `\{`,
	"}": `\}`,
	"#": `\#`,
	"$": `\$`,
	"%": `\%`,
	"&": `\&`,
	"_": `\_`,
	`\`: `\backslash`,
}

// mathBody translates the body of an equation.
func (t *translator) mathBody(m *syntax.Math) (mathlog.Segments, error) {
	var w segmentWriter
	if err := t.mathChildren(&w, m); err != nil {
		return nil, err
	}
	w.trimRight()
	return w.take(), nil
}

func (t *translator) mathChildren(w *segmentWriter, m *syntax.Math) error {
	if m == nil {
		return nil
	}
	for _, n := range m.Children {
		if err := t.math(w, n); err != nil {
			return err
		}
	}
	return nil
}

// mathSegments translates one node into its own run. The result is never
// nil, so an attachment that is present stays present.
func (t *translator) mathSegments(n syntax.Node) (mathlog.Segments, error) {
	var w segmentWriter
	if err := t.math(&w, n); err != nil {
		return nil, err
	}
	w.trimRight()
	if w.empty() {
		return mathlog.Segments{}, nil
	}
	return w.take(), nil
}

// unparen strips the parentheses that group an attachment or fraction
// operand: `a_(i+1)` attaches `i+1`.
func unparen(n syntax.Node) syntax.Node {
	d, ok := n.(*syntax.MathDelimited)
	if !ok {
		return n
	}
	open, ok := d.Open.(*syntax.Text)
	if !ok || open.Text != "(" {
		return n
	}
	closing, ok := d.Close.(*syntax.Text)
	if !ok || closing.Text != ")" {
		return n
	}
	if d.Body == nil {
		return &syntax.Math{}
	}
	return d.Body
}

// math handles a node inside an equation.
func (t *translator) math(w *segmentWriter, n syntax.Node) error {
	switch v := n.(type) {
	case *syntax.Math:
		return t.mathChildren(w, v)
	case *syntax.Text:
		w.text(v.Text)
	case *syntax.Space:
		w.space()
	case *syntax.Linebreak:
		w.push(mathlog.Linebreak{})
	case *syntax.MathAlignPoint:
		w.push(mathlog.MathAlignPoint{})
	case *syntax.Escape:
		if s, ok := mathEscapes[v.Text]; ok {
			w.text(s)
		} else {
			w.text(v.Text)
		}
	case *syntax.Shorthand:
		t.mathShorthand(w, v.Text)
	case *syntax.Str:
		content := mathlog.Segments{}
		if v.Value != "" {
			content = append(content, mathlog.Text{Text: v.Value})
		}
		w.push(mathlog.Command{Name: "text", Args: []mathlog.Arg{{Content: content}}})

	case *syntax.MathIdent, *syntax.Ident, *syntax.FieldAccess:
		return t.ident(w, n)

	case *syntax.MathAttach:
		return t.mathAttach(w, v)

	case *syntax.MathDelimited:
		open, err := t.delimiter(v.Open)
		if err != nil {
			return err
		}
		body, err := t.mathSegments(v.Body)
		if err != nil {
			return err
		}
		closing, err := t.delimiter(v.Close)
		if err != nil {
			return err
		}
		w.push(mathlog.MathDelimited{Open: open, Body: body, Close: closing})

	case *syntax.MathFrac:
		num, err := t.mathSegments(unparen(v.Num))
		if err != nil {
			return err
		}
		denom, err := t.mathSegments(unparen(v.Denom))
		if err != nil {
			return err
		}
		w.push(mathlog.Command{Name: "frac", Args: []mathlog.Arg{{Content: num}, {Content: denom}}})

	case *syntax.FuncCall:
		return t.call(w, v, contextMath)

	case *syntax.Markup, *syntax.Parbreak, *syntax.SmartQuote, *syntax.Strong, *syntax.Emph,
		*syntax.Raw, *syntax.Link, *syntax.Label, *syntax.Ref, *syntax.Heading, *syntax.ListItem,
		*syntax.EnumItem, *syntax.TermItem, *syntax.Equation, *syntax.ContentBlock, *syntax.Int,
		*syntax.Float, *syntax.Numeric, *syntax.ModuleImport, *syntax.ModuleInclude,
		*syntax.SetRule, *syntax.ShowRule, *syntax.LetBinding:
		return errors.NewUnexpectedNode(n.Kind().String(), contextMath)

	default:
		return errors.NewUnexpectedNode(kindName(n), contextMath)
	}
	return nil
}

func (t *translator) mathAttach(w *segmentWriter, v *syntax.MathAttach) error {
	base, err := t.mathSegments(v.Base)
	if err != nil {
		return err
	}
	attach := mathlog.MathAttach{Base: base}
	if v.Bottom != nil {
		if attach.Bottom, err = t.mathSegments(unparen(v.Bottom)); err != nil {
			return err
		}
	}
	if v.Top != nil {
		if attach.Top, err = t.mathSegments(unparen(v.Top)); err != nil {
			return err
		}
	}
	w.push(attach)
	return nil
}

// delimiter translates one side of a delimited group. Braces are escaped.
func (t *translator) delimiter(n syntax.Node) (mathlog.Segments, error) {
	if d, ok := n.(*syntax.Text); ok && (d.Text == "{" || d.Text == "}") {
		return mathlog.Segments{mathlog.Text{Text: `\` + d.Text}}, nil
	}
	return t.mathSegments(n)
}

func (t *translator) mathShorthand(w *segmentWriter, s string) {
	if path, ok := mathShorthands[s]; ok {
		if fragment, err := t.dic.Lookup(path...); err == nil {
			w.push(mathlog.RawCommand{Command: fragment})
			return
		}
	}
	w.text(s)
}
