// Package syntax defines the typst source tree consumed by the translator.
//
// Nodes form a closed set: every type implements Node through an
// unexported marker, so code outside this package cannot add variants.
package syntax

// Node is a source syntax tree node.
type Node interface {
	Kind() Kind
	node()
}

// Markup is a sequence of markup-mode nodes; the root of every document.
type Markup struct {
	Children []Node
}

// Text is a run of literal text.
type Text struct {
	Text string
}

// Space is whitespace between other nodes. It may hold a single newline.
type Space struct {
	Text string
}

// Linebreak is a forced line break (`\` at end of line).
type Linebreak struct{}

// Parbreak is a paragraph break (one or more blank lines).
type Parbreak struct{}

// Escape is a backslash-escaped character, stored unescaped.
type Escape struct {
	Text string
}

// Shorthand is a symbol shorthand such as `--` or `->`, stored as written.
type Shorthand struct {
	Text string
}

// SmartQuote is a straight quote to be typeset as a curly one.
type SmartQuote struct {
	Double bool
}

// Strong is strong emphasis: `*body*`.
type Strong struct {
	Body *Markup
}

// Emph is emphasis: `_body_`.
type Emph struct {
	Body *Markup
}

// Raw is inline or fenced raw text.
type Raw struct {
	Text  string
	Lang  string
	Block bool
}

// Link is a bare URL.
type Link struct {
	URL string
}

// Label is `<name>`.
type Label struct {
	Name string
}

// Ref is `@target`.
type Ref struct {
	Target string
}

// Heading is `= body` with Depth equal signs.
type Heading struct {
	Depth int
	Body  *Markup
}

// ListItem is a bullet item: `- body`.
type ListItem struct {
	Body *Markup
}

// EnumItem is a numbered item: `+ body` or `N. body`. Number is 0 when
// the source gives none.
type EnumItem struct {
	Number int
	Body   *Markup
}

// TermItem is `/ term: description`.
type TermItem struct {
	Term        *Markup
	Description *Markup
}

// Equation is `$body$`. Block equations have whitespace inside both
// dollar signs.
type Equation struct {
	Block bool
	Body  *Math
}

// Math is a sequence of math-mode nodes.
type Math struct {
	Children []Node
}

// MathIdent is a multi-letter identifier in math mode.
type MathIdent struct {
	Name string
}

// MathAlignPoint is `&`.
type MathAlignPoint struct{}

// MathDelimited is a group between matching delimiters.
type MathDelimited struct {
	Open  Node
	Body  *Math
	Close Node
}

// MathAttach is a base with optional subscript and superscript. Nil
// means absent.
type MathAttach struct {
	Base   Node
	Bottom Node
	Top    Node
}

// MathFrac is `num/denom`.
type MathFrac struct {
	Num   Node
	Denom Node
}

// Ident is an identifier in code.
type Ident struct {
	Name string
}

// FieldAccess is `target.field`.
type FieldAccess struct {
	Target Node
	Field  string
}

// Arg is one call argument. Name is empty for positional arguments.
type Arg struct {
	Name  string
	Value Node
}

// FuncCall is `callee(args)[content]...`. Trailing content blocks are
// appended to Args as positional arguments.
type FuncCall struct {
	Callee Node
	Args   []Arg
}

// ContentBlock is `[body]` in code.
type ContentBlock struct {
	Body *Markup
}

// Str is a string literal, stored unescaped.
type Str struct {
	Value string
}

// Int is an integer literal.
type Int struct {
	Value int64
}

// Float is a float literal.
type Float struct {
	Value float64
}

// Numeric is a number with a unit, such as `2pt` or `50%`.
type Numeric struct {
	Value float64
	Unit  string
}

// ModuleImport is `#import source`, optionally renamed with `as` or
// followed by `: items`. Source is kept as written, quotes included.
type ModuleImport struct {
	Source   string
	Alias    string
	Items    []string
	Wildcard bool
}

// ModuleInclude is `#include source`.
type ModuleInclude struct {
	Source string
}

// SetRule is `#set ...`; Text holds everything after the keyword.
type SetRule struct {
	Text string
}

// ShowRule is `#show ...`; Text holds everything after the keyword.
type ShowRule struct {
	Text string
}

// LetBinding is `#let ...`; Text holds everything after the keyword.
type LetBinding struct {
	Text string
}

func (*Markup) Kind() Kind         { return KindMarkup }
func (*Text) Kind() Kind           { return KindText }
func (*Space) Kind() Kind          { return KindSpace }
func (*Linebreak) Kind() Kind      { return KindLinebreak }
func (*Parbreak) Kind() Kind       { return KindParbreak }
func (*Escape) Kind() Kind         { return KindEscape }
func (*Shorthand) Kind() Kind      { return KindShorthand }
func (*SmartQuote) Kind() Kind     { return KindSmartQuote }
func (*Strong) Kind() Kind         { return KindStrong }
func (*Emph) Kind() Kind           { return KindEmph }
func (*Raw) Kind() Kind            { return KindRaw }
func (*Link) Kind() Kind           { return KindLink }
func (*Label) Kind() Kind          { return KindLabel }
func (*Ref) Kind() Kind            { return KindRef }
func (*Heading) Kind() Kind        { return KindHeading }
func (*ListItem) Kind() Kind       { return KindListItem }
func (*EnumItem) Kind() Kind       { return KindEnumItem }
func (*TermItem) Kind() Kind       { return KindTermItem }
func (*Equation) Kind() Kind       { return KindEquation }
func (*Math) Kind() Kind           { return KindMath }
func (*MathIdent) Kind() Kind      { return KindMathIdent }
func (*MathAlignPoint) Kind() Kind { return KindMathAlignPoint }
func (*MathDelimited) Kind() Kind  { return KindMathDelimited }
func (*MathAttach) Kind() Kind     { return KindMathAttach }
func (*MathFrac) Kind() Kind       { return KindMathFrac }
func (*Ident) Kind() Kind          { return KindIdent }
func (*FieldAccess) Kind() Kind    { return KindFieldAccess }
func (*FuncCall) Kind() Kind       { return KindFuncCall }
func (*ContentBlock) Kind() Kind   { return KindContentBlock }
func (*Str) Kind() Kind            { return KindStr }
func (*Int) Kind() Kind            { return KindInt }
func (*Float) Kind() Kind          { return KindFloat }
func (*Numeric) Kind() Kind        { return KindNumeric }
func (*ModuleImport) Kind() Kind   { return KindModuleImport }
func (*ModuleInclude) Kind() Kind  { return KindModuleInclude }
func (*SetRule) Kind() Kind        { return KindSetRule }
func (*ShowRule) Kind() Kind       { return KindShowRule }
func (*LetBinding) Kind() Kind     { return KindLetBinding }

func (*Markup) node()         {}
func (*Text) node()           {}
func (*Space) node()          {}
func (*Linebreak) node()      {}
func (*Parbreak) node()       {}
func (*Escape) node()         {}
func (*Shorthand) node()      {}
func (*SmartQuote) node()     {}
func (*Strong) node()         {}
func (*Emph) node()           {}
func (*Raw) node()            {}
func (*Link) node()           {}
func (*Label) node()          {}
func (*Ref) node()            {}
func (*Heading) node()        {}
func (*ListItem) node()       {}
func (*EnumItem) node()       {}
func (*TermItem) node()       {}
func (*Equation) node()       {}
func (*Math) node()           {}
func (*MathIdent) node()      {}
func (*MathAlignPoint) node() {}
func (*MathDelimited) node()  {}
func (*MathAttach) node()     {}
func (*MathFrac) node()       {}
func (*Ident) node()          {}
func (*FieldAccess) node()    {}
func (*FuncCall) node()       {}
func (*ContentBlock) node()   {}
func (*Str) node()            {}
func (*Int) node()            {}
func (*Float) node()          {}
func (*Numeric) node()        {}
func (*ModuleImport) node()   {}
func (*ModuleInclude) node()  {}
func (*SetRule) node()        {}
func (*ShowRule) node()       {}
func (*LetBinding) node()     {}

// Path flattens an identifier or field-access chain into its dotted
// names, outermost first. It reports false for any other node.
func Path(n Node) ([]string, bool) {
	var reversed []string
	for {
		switch v := n.(type) {
		case *Ident:
			reversed = append(reversed, v.Name)
		case *MathIdent:
			reversed = append(reversed, v.Name)
		case *FieldAccess:
			reversed = append(reversed, v.Field)
			n = v.Target
			continue
		default:
			return nil, false
		}
		break
	}

	path := make([]string, len(reversed))
	for i, name := range reversed {
		path[len(path)-1-i] = name
	}
	return path, true
}
