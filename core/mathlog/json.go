package mathlog

import (
	"encoding/json"
	"fmt"
)

// jsonMarshal is a variable to allow testing of marshal errors.
var jsonMarshal = json.MarshalIndent

// MarshalDocument encodes the document as tagged JSON. Each segment becomes
// an object whose "type" field names the variant. The encoding is meant for
// inspection and is not read back. A nil document encodes as an empty one.
func MarshalDocument(doc *Document) ([]byte, error) {
	var paragraphs []Paragraph
	if doc != nil {
		paragraphs = doc.Paragraphs
	}
	return jsonMarshal(map[string]any{
		"paragraphs": encodeParagraphs(paragraphs),
	}, "", "  ")
}

func encodeParagraphs(ps []Paragraph) []any {
	out := make([]any, 0, len(ps))
	for _, p := range ps {
		out = append(out, encodeSegments(p.Segments))
	}
	return out
}

func encodeSegments(segs Segments) []any {
	out := make([]any, 0, len(segs))
	for _, s := range segs {
		out = append(out, encodeSegment(s))
	}
	return out
}

// encodeOptional keeps the nil/empty distinction of optional segments.
func encodeOptional(segs Segments) any {
	if segs == nil {
		return nil
	}
	return encodeSegments(segs)
}

func encodeSegment(s Segment) map[string]any {
	switch s := s.(type) {
	case Linebreak:
		return map[string]any{"type": "linebreak"}
	case Heading:
		return map[string]any{"type": "heading", "level": s.Level, "content": encodeSegments(s.Content)}
	case Text:
		return map[string]any{"type": "text", "text": s.Text}
	case CodeInline:
		return map[string]any{"type": "code", "code": s.Code}
	case Strong:
		return map[string]any{"type": "strong", "content": encodeSegments(s.Content)}
	case Emph:
		return map[string]any{"type": "emph", "content": encodeSegments(s.Content)}
	case MathInline:
		return map[string]any{"type": "math_inline", "content": encodeSegments(s.Content)}
	case MathDisplay:
		return map[string]any{"type": "math_display", "content": encodeSegments(s.Content)}
	case ListItem:
		return map[string]any{"type": "list_item", "symbol": s.Symbol.String(), "contents": encodeParagraphs(s.Contents)}
	case MathDelimited:
		return map[string]any{
			"type":  "math_delimited",
			"open":  encodeSegments(s.Open),
			"body":  encodeSegments(s.Body),
			"close": encodeSegments(s.Close),
		}
	case MathAttach:
		return map[string]any{
			"type":   "math_attach",
			"base":   encodeSegments(s.Base),
			"top":    encodeOptional(s.Top),
			"bottom": encodeOptional(s.Bottom),
		}
	case MathAlignPoint:
		return map[string]any{"type": "math_align_point"}
	case Command:
		args := make([]any, 0, len(s.Args))
		for _, a := range s.Args {
			args = append(args, map[string]any{"optional": a.Optional, "content": encodeSegments(a.Content)})
		}
		return map[string]any{"type": "command", "name": s.Name, "args": args}
	case RawCommand:
		return map[string]any{"type": "raw_command", "command": s.Command}
	case Env:
		return map[string]any{
			"type":     "env",
			"kind":     s.Kind.String(),
			"title":    encodeOptional(s.Title),
			"contents": encodeParagraphs(s.Contents),
		}
	case ExportComment:
		return map[string]any{"type": "export_comment", "text": s.Text}
	default:
		return map[string]any{"type": fmt.Sprintf("unknown(%T)", s)}
	}
}
