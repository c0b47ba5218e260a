package translate

import (
	"fmt"

	"github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/core/mathlog"
	"github.com/FocuswithJustin/mathlog/core/syntax"
)

// Contexts named in errors for calls outside block position.
const (
	contextInline = "inline"
	contextMath   = "math"
)

// mathStyles maps styling functions to the commands that replace them.
var mathStyles = map[string]string{
	"upright": "mathrm",
	"italic":  "mathit",
	"bold":    "mathbf",
	"cal":     "mathcal",
	"bb":      "mathbb",
	"frak":    "mathfrak",
}

// envKind resolves a callee name to an environment kind. `block` names
// the generic kind, whose notation name is empty.
func envKind(name string) (mathlog.EnvKind, bool) {
	if name == "block" {
		return mathlog.EnvBlock, true
	}
	if name == "" {
		return mathlog.EnvBlock, false
	}
	return mathlog.EnvKindFromName(name)
}

// envCall reports whether call opens a block environment.
func envCall(call *syntax.FuncCall) ([]string, mathlog.EnvKind, bool) {
	path, ok := syntax.Path(call.Callee)
	if !ok || len(path) != 1 {
		return path, mathlog.EnvBlock, false
	}
	kind, ok := envKind(path[0])
	return path, kind, ok
}

// env builds an environment from its call. The single positional
// argument is the body; `title` is the only named argument accepted.
func (t *translator) env(path []string, kind mathlog.EnvKind, call *syntax.FuncCall) (mathlog.Env, error) {
	var body, title syntax.Node
	for _, arg := range call.Args {
		switch arg.Name {
		case "":
			if body != nil {
				return mathlog.Env{}, errors.NewUnsupportedCall(path, "expected exactly one body argument")
			}
			body = arg.Value
		case "title":
			if title != nil {
				return mathlog.Env{}, errors.NewUnsupportedCall(path, "duplicate title argument")
			}
			title = arg.Value
		default:
			return mathlog.Env{}, errors.NewUnsupportedCall(path, fmt.Sprintf("unexpected argument %q", arg.Name))
		}
	}
	if body == nil {
		return mathlog.Env{}, errors.NewUnsupportedCall(path, "missing body")
	}

	contents, err := t.blockArgument(path, body)
	if err != nil {
		return mathlog.Env{}, err
	}
	env := mathlog.Env{Kind: kind, Contents: contents}

	if title != nil {
		paragraphs, err := t.blockArgument(path, title)
		if err != nil {
			return mathlog.Env{}, err
		}
		if len(paragraphs) != 1 {
			return mathlog.Env{}, errors.NewUnsupportedCall(path,
				fmt.Sprintf("title must be exactly one paragraph, got %d", len(paragraphs)))
		}
		env.Title = paragraphs[0].Segments
	}
	return env, nil
}

// blockArgument translates content or a string as a nested document.
func (t *translator) blockArgument(path []string, n syntax.Node) ([]mathlog.Paragraph, error) {
	switch v := n.(type) {
	case *syntax.ContentBlock:
		return t.paragraphs(v.Body)
	case *syntax.Str:
		return t.paragraphs(&syntax.Markup{Children: []syntax.Node{&syntax.Text{Text: v.Value}}})
	}
	return nil, errors.NewUnsupportedCall(path, "expected content or string, got "+kindName(n))
}

// call handles a call outside block position. Environments are rejected
// here; styling functions become commands.
func (t *translator) call(w *segmentWriter, call *syntax.FuncCall, context string) error {
	path, ok := syntax.Path(call.Callee)
	if !ok {
		return errors.NewUnexpectedNode(kindName(call.Callee), "callee")
	}

	if len(path) == 1 {
		if _, ok := envKind(path[0]); ok {
			return errors.NewEnvContext(path[0], context)
		}
		if name, ok := mathStyles[path[0]]; ok {
			return t.style(w, path, name, call, context)
		}
	}
	return errors.NewUnsupportedCall(path, "")
}

func (t *translator) style(w *segmentWriter, path []string, name string, call *syntax.FuncCall, context string) error {
	if len(call.Args) != 1 || call.Args[0].Name != "" {
		return errors.NewUnsupportedCall(path, "expected exactly one argument")
	}
	content, err := t.argument(call.Args[0].Value, context)
	if err != nil {
		return err
	}
	w.push(mathlog.Command{Name: name, Args: []mathlog.Arg{{Content: content}}})
	return nil
}

// argument translates a call argument into one run.
func (t *translator) argument(n syntax.Node, context string) (mathlog.Segments, error) {
	if context == contextMath {
		return t.mathSegments(n)
	}
	var w segmentWriter
	if err := t.inline(&w, n); err != nil {
		return nil, err
	}
	w.trimRight()
	if w.empty() {
		return mathlog.Segments{}, nil
	}
	return w.take(), nil
}
