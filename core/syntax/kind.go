package syntax

import "fmt"

// Kind enumerates syntax node types.
type Kind int

const (
	KindMarkup Kind = iota
	KindText
	KindSpace
	KindLinebreak
	KindParbreak
	KindEscape
	KindShorthand
	KindSmartQuote
	KindStrong
	KindEmph
	KindRaw
	KindLink
	KindLabel
	KindRef
	KindHeading
	KindListItem
	KindEnumItem
	KindTermItem
	KindEquation
	KindMath
	KindMathIdent
	KindMathAlignPoint
	KindMathDelimited
	KindMathAttach
	KindMathFrac
	KindIdent
	KindFieldAccess
	KindFuncCall
	KindContentBlock
	KindStr
	KindInt
	KindFloat
	KindNumeric
	KindModuleImport
	KindModuleInclude
	KindSetRule
	KindShowRule
	KindLetBinding
)

var kindNames = [...]string{
	KindMarkup:         "markup",
	KindText:           "text",
	KindSpace:          "space",
	KindLinebreak:      "linebreak",
	KindParbreak:       "parbreak",
	KindEscape:         "escape",
	KindShorthand:      "shorthand",
	KindSmartQuote:     "smart quote",
	KindStrong:         "strong",
	KindEmph:           "emph",
	KindRaw:            "raw",
	KindLink:           "link",
	KindLabel:          "label",
	KindRef:            "reference",
	KindHeading:        "heading",
	KindListItem:       "list item",
	KindEnumItem:       "enum item",
	KindTermItem:       "term item",
	KindEquation:       "equation",
	KindMath:           "math",
	KindMathIdent:      "math identifier",
	KindMathAlignPoint: "math align point",
	KindMathDelimited:  "math delimited",
	KindMathAttach:     "math attach",
	KindMathFrac:       "math fraction",
	KindIdent:          "identifier",
	KindFieldAccess:    "field access",
	KindFuncCall:       "function call",
	KindContentBlock:   "content block",
	KindStr:            "string",
	KindInt:            "integer",
	KindFloat:          "float",
	KindNumeric:        "numeric",
	KindModuleImport:   "module import",
	KindModuleInclude:  "module include",
	KindSetRule:        "set rule",
	KindShowRule:       "show rule",
	KindLetBinding:     "let binding",
}

// String returns the human-readable name used in diagnostics.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
