// Package compose renders a mathlog Document as text.
//
// Rendering is a single pass over the document with a line buffer and an
// indent depth. It cannot fail, and equal documents always render to
// identical text.
package compose

import (
	"strings"

	"github.com/FocuswithJustin/mathlog/core/mathlog"
)

// indentUnit is the indentation of one nesting level.
const indentUnit = "    "

// Compose renders doc. Paragraphs are separated by a blank line and the
// output ends with a newline; an empty document renders as "".
func Compose(doc *mathlog.Document) string {
	if doc == nil || len(doc.Paragraphs) == 0 {
		return ""
	}

	c := &composer{}
	for i, p := range doc.Paragraphs {
		if i > 0 {
			c.newline()
			c.newline()
		}
		c.segments(p.Segments)
	}
	c.newline()
	return c.String()
}

type composer struct {
	indent  int
	lines   []string
	current string
}

func (c *composer) String() string {
	return strings.Join(c.lines, "\n") + "\n" + c.current
}

// newline ends the current line and starts an indented one. Trailing
// blanks are dropped from the finished line.
func (c *composer) newline() {
	c.lines = append(c.lines, strings.TrimRight(c.current, " \t"))
	c.current = strings.Repeat(indentUnit, c.indent)
}

// freshLine starts a new line unless the current one holds only
// indentation.
func (c *composer) freshLine() {
	if strings.TrimSpace(c.current) != "" {
		c.newline()
	}
}

func (c *composer) add(s string) {
	c.current += s
}

// paragraphs renders nested paragraphs one per line.
func (c *composer) paragraphs(ps []mathlog.Paragraph) {
	for i, p := range ps {
		if i > 0 {
			c.newline()
		}
		c.segments(p.Segments)
	}
}

func (c *composer) segments(segs mathlog.Segments) {
	for _, s := range segs {
		c.segment(s)
	}
}

func (c *composer) segment(s mathlog.Segment) {
	switch v := s.(type) {
	case mathlog.Linebreak:
		c.add(`\\`)
		c.newline()
	case mathlog.Heading:
		c.freshLine()
		c.add(strings.Repeat("#", v.Level) + " ")
		c.segments(v.Content)
	case mathlog.Text:
		c.add(v.Text)
	case mathlog.CodeInline:
		c.add("`" + v.Code + "`")
	case mathlog.Strong:
		c.add("**")
		c.segments(v.Content)
		c.add("**")
	case mathlog.Emph:
		c.add("*")
		c.segments(v.Content)
		c.add("*")
	case mathlog.MathInline:
		c.add("$")
		c.segments(v.Content)
		c.add("$")
	case mathlog.MathDisplay:
		c.mathDisplay(v)
	case mathlog.ListItem:
		c.listItem(v)
	case mathlog.MathDelimited:
		c.add(`\left`)
		c.segments(v.Open)
		c.segments(v.Body)
		c.add(`\right`)
		c.segments(v.Close)
	case mathlog.MathAttach:
		c.segments(v.Base)
		if v.Bottom != nil {
			c.add("_{")
			c.segments(v.Bottom)
			c.add("}")
		}
		if v.Top != nil {
			c.add("^{")
			c.segments(v.Top)
			c.add("}")
		}
	case mathlog.MathAlignPoint:
		c.add("&")
	case mathlog.Command:
		c.command(v)
	case mathlog.RawCommand:
		c.add(v.Command)
	case mathlog.Env:
		c.env(v)
	case mathlog.ExportComment:
		c.freshLine()
		c.add("<!-- " + v.Text + " -->")
	}
}

func (c *composer) mathDisplay(m mathlog.MathDisplay) {
	c.freshLine()
	c.add(`\begin{align*}`)
	c.indent++
	c.newline()
	c.segments(m.Content)
	c.indent--
	c.newline()
	c.add(`\end{align*}`)
}

func (c *composer) listItem(item mathlog.ListItem) {
	c.freshLine()
	c.add(item.Symbol.String() + " ")
	c.indent++
	c.paragraphs(item.Contents)
	c.indent--
}

func (c *composer) command(cmd mathlog.Command) {
	c.add(`\` + cmd.Name)
	for _, arg := range cmd.Args {
		if arg.Optional {
			c.add("[")
			c.segments(arg.Content)
			c.add("]")
		} else {
			c.add("{")
			c.segments(arg.Content)
			c.add("}")
		}
	}
}

func (c *composer) env(env mathlog.Env) {
	c.freshLine()
	c.add("&&&" + env.Kind.Name())
	if env.Title != nil {
		c.add(" ")
		c.segments(env.Title)
	}
	c.newline()
	c.paragraphs(env.Contents)
	c.newline()
	c.add("&&&")
}
