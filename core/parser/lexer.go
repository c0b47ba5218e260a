package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

const identPattern = `[A-Za-z_][A-Za-z0-9_-]*`

// markupLexer tokenizes typst source. Root and Content share the markup
// rules; `[` pushes Content, `(` after a hash call pushes Code and `$`
// pushes Math.
var markupLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		lexer.Include("Markup"),
	},
	"Content": {
		{Name: "RBracket", Pattern: `\]`, Action: lexer.Pop()},
		lexer.Include("Markup"),
	},
	"Markup": {
		{Name: "RawBlock", Pattern: "```(?s:.*?)```"},
		{Name: "Raw", Pattern: "`[^`]*`"},
		{Name: "Escape", Pattern: `\\(?:u\{[0-9A-Fa-f]+\}|\S)`},
		{Name: "Backslash", Pattern: `\\`},
		{Name: "Link", Pattern: `https?://[^\s<>\[\]()"]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "BlockComment", Pattern: `/\*(?s:.*?)\*/`},
		{Name: "Dollar", Pattern: `\$`, Action: lexer.Push("Math")},
		{Name: "Directive", Pattern: `#(?:import|include|set|show|let)\b`},
		{Name: "HashCall", Pattern: `#` + identPattern + `(?:\.` + identPattern + `)*\(`, Action: lexer.Push("Code")},
		{Name: "HashIdent", Pattern: `#` + identPattern + `(?:\.` + identPattern + `)*`},
		{Name: "LBracket", Pattern: `\[`, Action: lexer.Push("Content")},
		{Name: "Star", Pattern: `\*`},
		{Name: "Underscore", Pattern: `_`},
		{Name: "Label", Pattern: `<` + identPattern + `(?:[:.]` + `[A-Za-z0-9_-]+)*>`},
		{Name: "RefMark", Pattern: `@` + identPattern + `(?:[:.][A-Za-z0-9_-]+)*`},
		{Name: "Shorthand", Pattern: `---|--|\.\.\.|-\?|~`},
		{Name: "Quote", Pattern: `["']`},
		{Name: "Parbreak", Pattern: `[ \t]*(?:\r?\n[ \t]*){2,}`},
		{Name: "Newline", Pattern: `[ \t]*\r?\n[ \t]*`},
		{Name: "Space", Pattern: `[ \t]+`},
		{Name: "Equals", Pattern: `=+`},
		{Name: "Minus", Pattern: `-`},
		{Name: "Plus", Pattern: `\+`},
		{Name: "EnumNum", Pattern: `[0-9]+\.`},
		{Name: "Slash", Pattern: `/`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Word", Pattern: `[\p{L}\p{N}]+`},
		{Name: "Char", Pattern: `.`},
	},
	"Code": {
		{Name: "RParen", Pattern: `\)`, Action: lexer.Pop()},
		{Name: "LParen", Pattern: `\(`, Action: lexer.Push("Code")},
		{Name: "LBracket", Pattern: `\[`, Action: lexer.Push("Content")},
		{Name: "Dollar", Pattern: `\$`, Action: lexer.Push("Math")},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?(?:pt|mm|cm|in|em|deg|rad|fr|%)?`},
		{Name: "Ident", Pattern: identPattern},
		{Name: "Comma", Pattern: `,`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Char", Pattern: `.`},
	},
	"Math": {
		{Name: "Dollar", Pattern: `\$`, Action: lexer.Pop()},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "MathEscape", Pattern: `\\\S`},
		{Name: "Backslash", Pattern: `\\`},
		{Name: "HashCall", Pattern: `#` + identPattern + `(?:\.` + identPattern + `)*\(`, Action: lexer.Push("Code")},
		{Name: "HashIdent", Pattern: `#` + identPattern + `(?:\.` + identPattern + `)*`},
		{Name: "MathShorthand", Pattern: `<==>|<=>|<->|==>|-->|<--|->|<-|=>|<=|>=|!=|:=|\.\.\.|<<|>>|~~`},
		{Name: "MathIdent", Pattern: `\p{L}\p{L}+(?:\.\p{L}+)*`},
		{Name: "Letter", Pattern: `\p{L}`},
		{Name: "MathNumber", Pattern: `[0-9]+(?:\.[0-9]+)?`},
		{Name: "Underscore", Pattern: `_`},
		{Name: "Caret", Pattern: `\^`},
		{Name: "Amp", Pattern: `&`},
		{Name: "Slash", Pattern: `/`},
		{Name: "Open", Pattern: `[(\[{]`},
		{Name: "Close", Pattern: `[)\]}]`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Char", Pattern: `.`},
	},
})

// Token types, resolved once from the lexer's symbol table.
var (
	tokEOF          = lexer.EOF
	tokRBracket     lexer.TokenType
	tokRawBlock     lexer.TokenType
	tokRaw          lexer.TokenType
	tokEscape       lexer.TokenType
	tokBackslash    lexer.TokenType
	tokLink         lexer.TokenType
	tokLineComment  lexer.TokenType
	tokBlockComment lexer.TokenType
	tokDollar       lexer.TokenType
	tokDirective    lexer.TokenType
	tokHashCall     lexer.TokenType
	tokHashIdent    lexer.TokenType
	tokLBracket     lexer.TokenType
	tokStar         lexer.TokenType
	tokUnderscore   lexer.TokenType
	tokLabel        lexer.TokenType
	tokRefMark      lexer.TokenType
	tokShorthand    lexer.TokenType
	tokQuote        lexer.TokenType
	tokParbreak     lexer.TokenType
	tokNewline      lexer.TokenType
	tokSpace        lexer.TokenType
	tokEquals       lexer.TokenType
	tokMinus        lexer.TokenType
	tokPlus         lexer.TokenType
	tokEnumNum      lexer.TokenType
	tokSlash        lexer.TokenType
	tokColon        lexer.TokenType
	tokWord         lexer.TokenType
	tokChar         lexer.TokenType
	tokRParen       lexer.TokenType
	tokLParen       lexer.TokenType
	tokString       lexer.TokenType
	tokNumber       lexer.TokenType
	tokIdent        lexer.TokenType
	tokComma        lexer.TokenType
	tokDot          lexer.TokenType
	tokWhitespace   lexer.TokenType
	tokMathIdent    lexer.TokenType
	tokMathEscape   lexer.TokenType
	tokMathShort    lexer.TokenType
	tokMathNumber   lexer.TokenType
	tokLetter       lexer.TokenType
	tokCaret        lexer.TokenType
	tokAmp          lexer.TokenType
	tokOpen         lexer.TokenType
	tokClose        lexer.TokenType
)

func init() {
	sym := markupLexer.Symbols()
	for name, dst := range map[string]*lexer.TokenType{
		"RBracket":      &tokRBracket,
		"RawBlock":      &tokRawBlock,
		"Raw":           &tokRaw,
		"Escape":        &tokEscape,
		"Backslash":     &tokBackslash,
		"Link":          &tokLink,
		"LineComment":   &tokLineComment,
		"BlockComment":  &tokBlockComment,
		"Dollar":        &tokDollar,
		"Directive":     &tokDirective,
		"HashCall":      &tokHashCall,
		"HashIdent":     &tokHashIdent,
		"LBracket":      &tokLBracket,
		"Star":          &tokStar,
		"Underscore":    &tokUnderscore,
		"Label":         &tokLabel,
		"RefMark":       &tokRefMark,
		"Shorthand":     &tokShorthand,
		"Quote":         &tokQuote,
		"Parbreak":      &tokParbreak,
		"Newline":       &tokNewline,
		"Space":         &tokSpace,
		"Equals":        &tokEquals,
		"Minus":         &tokMinus,
		"Plus":          &tokPlus,
		"EnumNum":       &tokEnumNum,
		"Slash":         &tokSlash,
		"Colon":         &tokColon,
		"Word":          &tokWord,
		"Char":          &tokChar,
		"RParen":        &tokRParen,
		"LParen":        &tokLParen,
		"String":        &tokString,
		"Number":        &tokNumber,
		"Ident":         &tokIdent,
		"Comma":         &tokComma,
		"Dot":           &tokDot,
		"Whitespace":    &tokWhitespace,
		"MathIdent":     &tokMathIdent,
		"MathEscape":    &tokMathEscape,
		"MathShorthand": &tokMathShort,
		"MathNumber":    &tokMathNumber,
		"Letter":        &tokLetter,
		"Caret":         &tokCaret,
		"Amp":           &tokAmp,
		"Open":          &tokOpen,
		"Close":         &tokClose,
	} {
		t, ok := sym[name]
		if !ok {
			panic("parser: lexer has no symbol " + name)
		}
		*dst = t
	}
}
