// Package translate converts a typst syntax tree into a mathlog Document.
//
// The walk has three contexts. Block context (a paragraphWriter) decides
// paragraph boundaries; inline context (a segmentWriter) handles running
// text; math context resolves identifiers through the Dictionary. Every
// node kind is handled explicitly in each context, and the first error
// aborts the whole translation.
package translate

import (
	"strings"

	"github.com/FocuswithJustin/mathlog/core/dictionary"
	"github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/core/mathlog"
	"github.com/FocuswithJustin/mathlog/core/syntax"
)

// Translate converts markup into a Document. dic is only read.
func Translate(markup *syntax.Markup, dic *dictionary.Dictionary) (*mathlog.Document, error) {
	t := &translator{dic: dic}
	paragraphs, err := t.paragraphs(markup)
	if err != nil {
		return nil, err
	}
	return &mathlog.Document{Paragraphs: paragraphs}, nil
}

type translator struct {
	dic *dictionary.Dictionary
}

// paragraphs translates markup as a nested document.
func (t *translator) paragraphs(markup *syntax.Markup) ([]mathlog.Paragraph, error) {
	var w paragraphWriter
	if markup != nil {
		for _, n := range markup.Children {
			if err := t.block(&w, n); err != nil {
				return nil, err
			}
		}
	}
	return w.finish(), nil
}

// block handles a node in block context. Nodes that do not affect
// paragraph structure are passed to the inline handler.
func (t *translator) block(w *paragraphWriter, n syntax.Node) error {
	switch v := n.(type) {
	case *syntax.Parbreak:
		w.flush()
		return nil

	case *syntax.Heading:
		var body segmentWriter
		if err := t.inlineMarkup(&body, v.Body); err != nil {
			return err
		}
		body.trimRight()
		w.inline.trimRight()
		w.inline.push(mathlog.Heading{Level: v.Depth, Content: body.take()})
		w.flush()
		return nil

	case *syntax.Equation:
		if !v.Block {
			return t.inline(&w.inline, n)
		}
		content, err := t.mathBody(v.Body)
		if err != nil {
			return err
		}
		w.flush()
		w.inline.push(mathlog.MathDisplay{Content: content})
		w.flush()
		return nil

	case *syntax.ListItem:
		return t.listItem(w, v.Body, mathlog.Bullet())

	case *syntax.EnumItem:
		number := v.Number
		if number == 0 {
			number = 1
		}
		return t.listItem(w, v.Body, mathlog.Numbered(number))

	case *syntax.FuncCall:
		path, kind, ok := envCall(v)
		if !ok {
			return t.inline(&w.inline, n)
		}
		env, err := t.env(path, kind, v)
		if err != nil {
			return err
		}
		w.flush()
		w.inline.push(env)
		w.flush()
		return nil

	case *syntax.ModuleImport, *syntax.ModuleInclude, *syntax.SetRule, *syntax.ShowRule:
		w.flush()
		w.inline.push(mathlog.ExportComment{Text: reconstruct(n)})
		w.flush()
		return nil

	case *syntax.TermItem:
		return errors.NewNotImplemented("term item")
	}

	return t.inline(&w.inline, n)
}

func (t *translator) listItem(w *paragraphWriter, body *syntax.Markup, symbol mathlog.ListSymbol) error {
	contents, err := t.paragraphs(body)
	if err != nil {
		return err
	}
	w.flush()
	w.inline.push(mathlog.ListItem{Symbol: symbol, Contents: contents})
	w.flush()
	return nil
}

func (t *translator) inlineMarkup(w *segmentWriter, markup *syntax.Markup) error {
	if markup == nil {
		return nil
	}
	for _, n := range markup.Children {
		if err := t.inline(w, n); err != nil {
			return err
		}
	}
	return nil
}

// markupShorthands maps markup shorthands to the characters they stand for.
var markupShorthands = map[string]string{
	"--":  "\u2013",
	"---": "\u2014",
	"...": "\u2026",
	"~":   "\u00a0",
	"-?":  "\u00ad",
}

// inline handles a node in running text.
func (t *translator) inline(w *segmentWriter, n syntax.Node) error {
	switch v := n.(type) {
	case *syntax.Text:
		w.text(v.Text)
	case *syntax.Space:
		w.space()
	case *syntax.Linebreak:
		w.trimRight()
		w.push(mathlog.Linebreak{})
	case *syntax.Escape:
		w.text(v.Text)
	case *syntax.Shorthand:
		if s, ok := markupShorthands[v.Text]; ok {
			w.text(s)
		} else {
			w.text(v.Text)
		}
	case *syntax.SmartQuote:
		if v.Double {
			w.text(`"`)
		} else {
			w.text("'")
		}
	case *syntax.Str:
		w.text(v.Value)

	case *syntax.Strong:
		var body segmentWriter
		if err := t.inlineMarkup(&body, v.Body); err != nil {
			return err
		}
		w.push(mathlog.Strong{Content: body.take()})
	case *syntax.Emph:
		var body segmentWriter
		if err := t.inlineMarkup(&body, v.Body); err != nil {
			return err
		}
		w.push(mathlog.Emph{Content: body.take()})
	case *syntax.ContentBlock:
		return t.inlineMarkup(w, v.Body)

	case *syntax.Raw:
		if v.Block {
			return errors.NewUnsupportedNode("raw block")
		}
		w.push(mathlog.CodeInline{Code: v.Text})

	case *syntax.Equation:
		// A display equation inside running text is kept inline.
		content, err := t.mathBody(v.Body)
		if err != nil {
			return err
		}
		w.push(mathlog.MathInline{Content: content})

	case *syntax.Ident, *syntax.FieldAccess:
		return t.ident(w, n)

	case *syntax.FuncCall:
		return t.call(w, v, contextInline)

	case *syntax.ModuleImport, *syntax.ModuleInclude, *syntax.SetRule, *syntax.ShowRule:
		w.push(mathlog.ExportComment{Text: reconstruct(n)})

	case *syntax.LetBinding:
		return errors.NewUnsupportedNode(v.Kind().String())
	case *syntax.Int, *syntax.Float, *syntax.Numeric:
		return errors.NewUnsupportedNode(n.Kind().String())

	case *syntax.Link:
		return errors.NewNotImplemented("link")
	case *syntax.Label:
		return errors.NewNotImplemented("label")
	case *syntax.Ref:
		return errors.NewNotImplemented("reference")
	case *syntax.TermItem:
		return errors.NewNotImplemented("term item")

	case *syntax.Markup, *syntax.Parbreak, *syntax.Heading, *syntax.ListItem, *syntax.EnumItem,
		*syntax.Math, *syntax.MathIdent, *syntax.MathAlignPoint, *syntax.MathDelimited,
		*syntax.MathAttach, *syntax.MathFrac:
		return errors.NewUnexpectedNode(n.Kind().String(), contextInline)

	default:
		return errors.NewUnexpectedNode(kindName(n), contextInline)
	}
	return nil
}

// ident resolves an identifier or field access chain through the
// dictionary.
func (t *translator) ident(w *segmentWriter, n syntax.Node) error {
	path, ok := syntax.Path(n)
	if !ok {
		return errors.NewUnexpectedNode(kindName(n), "identifier")
	}
	fragment, err := t.dic.Lookup(path...)
	if err != nil {
		return err
	}
	w.push(mathlog.RawCommand{Command: fragment})
	return nil
}

// reconstruct renders a directive back into readable source form.
func reconstruct(n syntax.Node) string {
	switch v := n.(type) {
	case *syntax.ModuleImport:
		var sb strings.Builder
		sb.WriteString("import ")
		sb.WriteString(v.Source)
		if v.Alias != "" {
			sb.WriteString(" as " + v.Alias)
		}
		switch {
		case v.Wildcard:
			sb.WriteString(": *")
		case len(v.Items) > 0:
			sb.WriteString(": " + strings.Join(v.Items, ", "))
		}
		return sb.String()
	case *syntax.ModuleInclude:
		return "include " + v.Source
	case *syntax.SetRule:
		return "set " + v.Text
	case *syntax.ShowRule:
		return "show " + v.Text
	}
	return kindName(n)
}

func kindName(n syntax.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}
