package mathlog

// types.go - Document Model type definitions

// Document is the root of a translated document.
type Document struct {
	Paragraphs []Paragraph
}

// Paragraph is a non-empty sequence of segments. The translator only
// materializes a paragraph when it holds at least one segment.
type Paragraph struct {
	Segments Segments
}

// Segments is an ordered run of segments rendered without separators.
type Segments []Segment

// Segment is one node of the Document Model. The set of implementations is
// closed: only types in this package satisfy it.
type Segment interface {
	segment()
}

// Linebreak is an explicit line break.
type Linebreak struct{}

// Heading is a section heading of the given level (1 = top level).
type Heading struct {
	Level   int
	Content Segments
}

// Text is plain text, including any whitespace between other segments.
type Text struct {
	Text string
}

// CodeInline is an inline raw code span.
type CodeInline struct {
	Code string
}

// Strong is a bold run.
type Strong struct {
	Content Segments
}

// Emph is an italic run.
type Emph struct {
	Content Segments
}

// MathInline is math embedded in running text.
type MathInline struct {
	Content Segments
}

// MathDisplay is a displayed math block.
type MathDisplay struct {
	Content Segments
}

// ListItem is one list entry. Its body is a nested paragraph sequence, which
// is how lists nest.
type ListItem struct {
	Symbol   ListSymbol
	Contents []Paragraph
}

// MathDelimited is a group wrapped in scaling delimiters.
type MathDelimited struct {
	Open  Segments
	Body  Segments
	Close Segments
}

// MathAttach is a base with optional sub- and superscript. A nil Top or
// Bottom means the attachment is absent; an empty non-nil one is present.
type MathAttach struct {
	Base   Segments
	Top    Segments
	Bottom Segments
}

// MathAlignPoint is an alignment marker inside math.
type MathAlignPoint struct{}

// Command is a named command with ordered arguments.
type Command struct {
	Name string
	Args []Arg
}

// Arg is a single command argument.
type Arg struct {
	Optional bool
	Content  Segments
}

// RawCommand is a command string passed through verbatim, typically a
// dictionary fragment such as `\alpha`.
type RawCommand struct {
	Command string
}

// Env is a block environment. A nil Title means the environment has none.
type Env struct {
	Kind     EnvKind
	Title    Segments
	Contents []Paragraph
}

// ExportComment preserves an untranslatable source construct as a comment.
type ExportComment struct {
	Text string
}

func (Linebreak) segment()      {}
func (Heading) segment()        {}
func (Text) segment()           {}
func (CodeInline) segment()     {}
func (Strong) segment()         {}
func (Emph) segment()           {}
func (MathInline) segment()     {}
func (MathDisplay) segment()    {}
func (ListItem) segment()       {}
func (MathDelimited) segment()  {}
func (MathAttach) segment()     {}
func (MathAlignPoint) segment() {}
func (Command) segment()        {}
func (RawCommand) segment()     {}
func (Env) segment()            {}
func (ExportComment) segment()  {}
