package dictionary

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/mathlog/core/errors"
)

// pathGrammar is the participle grammar for dotted identifier paths.
// Examples: "pi", "arrow.r", "arrow.r.long"
//
//nolint:govet // participle grammar tags are not standard struct tags
type pathGrammar struct {
	Head string   `@Ident`
	Tail []string `( "." @Ident )*`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_-]*`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var pathParser = participle.MustBuild[pathGrammar](
	participle.Lexer(pathLexer),
	participle.Elide("Whitespace"),
)

// ParsePath splits a dotted identifier path into its names.
func ParsePath(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.NewParse("identifier path", "", "empty path")
	}

	parsed, err := pathParser.ParseString("", s)
	if err != nil {
		return nil, &errors.ParseError{
			Format:  "identifier path",
			Message: err.Error(),
			Err:     errors.Wrapf(errors.ErrInvalidInput, "path %q", s),
		}
	}

	return append([]string{parsed.Head}, parsed.Tail...), nil
}

// JoinPath renders a path the way it is written in source.
func JoinPath(path []string) string {
	return strings.Join(path, ".")
}
