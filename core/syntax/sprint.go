package syntax

import (
	"strconv"
	"strings"
)

// Sprint renders a tree as a compact s-expression, for debugging and
// test expectations:
//
//	(markup (heading 2 (markup (text "Hello"))))
func Sprint(n Node) string {
	var sb strings.Builder
	sprint(&sb, n)
	return sb.String()
}

func sprint(sb *strings.Builder, n Node) {
	if n == nil {
		sb.WriteString("nil")
		return
	}

	open := func(name string) { sb.WriteString("(" + name) }
	str := func(s string) { sb.WriteString(" " + strconv.Quote(s)) }
	child := func(c Node) {
		sb.WriteByte(' ')
		sprint(sb, c)
	}
	children := func(cs []Node) {
		for _, c := range cs {
			child(c)
		}
	}

	switch v := n.(type) {
	case *Markup:
		if v == nil {
			sb.WriteString("nil")
			return
		}
		open("markup")
		children(v.Children)
	case *Math:
		if v == nil {
			sb.WriteString("nil")
			return
		}
		open("math")
		children(v.Children)
	case *Text:
		open("text")
		str(v.Text)
	case *Space:
		open("space")
		str(v.Text)
	case *Linebreak:
		open("linebreak")
	case *Parbreak:
		open("parbreak")
	case *Escape:
		open("escape")
		str(v.Text)
	case *Shorthand:
		open("shorthand")
		str(v.Text)
	case *SmartQuote:
		open("smartquote")
		if v.Double {
			sb.WriteString(" double")
		}
	case *Strong:
		open("strong")
		child(v.Body)
	case *Emph:
		open("emph")
		child(v.Body)
	case *Raw:
		open("raw")
		if v.Block {
			sb.WriteString(" block")
		}
		if v.Lang != "" {
			str(v.Lang)
		}
		str(v.Text)
	case *Link:
		open("link")
		str(v.URL)
	case *Label:
		open("label")
		str(v.Name)
	case *Ref:
		open("ref")
		str(v.Target)
	case *Heading:
		open("heading " + strconv.Itoa(v.Depth))
		child(v.Body)
	case *ListItem:
		open("list")
		child(v.Body)
	case *EnumItem:
		open("enum " + strconv.Itoa(v.Number))
		child(v.Body)
	case *TermItem:
		open("term")
		child(v.Term)
		child(v.Description)
	case *Equation:
		open("equation")
		if v.Block {
			sb.WriteString(" block")
		}
		child(v.Body)
	case *MathIdent:
		open("ident")
		str(v.Name)
	case *MathAlignPoint:
		open("align")
	case *MathDelimited:
		open("delimited")
		child(v.Open)
		child(v.Body)
		child(v.Close)
	case *MathAttach:
		open("attach")
		child(v.Base)
		child(v.Bottom)
		child(v.Top)
	case *MathFrac:
		open("frac")
		child(v.Num)
		child(v.Denom)
	case *Ident:
		open("ident")
		str(v.Name)
	case *FieldAccess:
		open("field")
		child(v.Target)
		str(v.Field)
	case *FuncCall:
		open("call")
		child(v.Callee)
		for _, a := range v.Args {
			if a.Name != "" {
				sb.WriteString(" " + a.Name + ":")
			}
			child(a.Value)
		}
	case *ContentBlock:
		open("content")
		child(v.Body)
	case *Str:
		open("str")
		str(v.Value)
	case *Int:
		open("int " + strconv.FormatInt(v.Value, 10))
	case *Float:
		open("float " + strconv.FormatFloat(v.Value, 'g', -1, 64))
	case *Numeric:
		open("numeric " + strconv.FormatFloat(v.Value, 'g', -1, 64) + v.Unit)
	case *ModuleImport:
		open("import")
		str(v.Source)
		if v.Alias != "" {
			sb.WriteString(" as " + v.Alias)
		}
		for _, item := range v.Items {
			sb.WriteString(" " + item)
		}
		if v.Wildcard {
			sb.WriteString(" *")
		}
	case *ModuleInclude:
		open("include")
		str(v.Source)
	case *SetRule:
		open("set")
		str(v.Text)
	case *ShowRule:
		open("show")
		str(v.Text)
	case *LetBinding:
		open("let")
		str(v.Text)
	default:
		open("unknown")
	}
	sb.WriteByte(')')
}
