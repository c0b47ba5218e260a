package mathlog

import (
	"strconv"
	"strings"
)

// ListStyle is a list numbering and bracket scheme.
type ListStyle int

// List styles.
const (
	ListNoNum      ListStyle = iota // -
	ListNumDot                      // 1.
	ListNumParen                    // (1)
	ListNumBrak                     // [1]
	ListRomanDot                    // I.
	ListRomanParen                  // (I)
	ListRomanBrak                   // [I]
)

// ListSymbol is the marker of a list item.
type ListSymbol struct {
	Style  ListStyle
	Number int
}

// Bullet returns the symbol of an unordered item.
func Bullet() ListSymbol {
	return ListSymbol{Style: ListNoNum}
}

// Numbered returns an arabic, dot-terminated symbol.
func Numbered(n int) ListSymbol {
	return ListSymbol{Style: ListNumDot, Number: n}
}

// String renders the marker without trailing space.
func (s ListSymbol) String() string {
	switch s.Style {
	case ListNumDot:
		return strconv.Itoa(s.Number) + "."
	case ListNumParen:
		return "(" + strconv.Itoa(s.Number) + ")"
	case ListNumBrak:
		return "[" + strconv.Itoa(s.Number) + "]"
	case ListRomanDot:
		return Roman(s.Number) + "."
	case ListRomanParen:
		return "(" + Roman(s.Number) + ")"
	case ListRomanBrak:
		return "[" + Roman(s.Number) + "]"
	default:
		return "-"
	}
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Roman renders n in subtractive roman notation. Zero has no roman numeral
// and renders as "0"; negative numbers render in decimal.
func Roman(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String()
}
