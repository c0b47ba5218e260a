// Package mathlog provides the Document Model of the mathlog notation: the
// intermediate tree produced by the translator and rendered by the composer.
//
// # Core Types
//
// The model is a strict tree without back-references:
//
//   - Document: ordered paragraphs
//   - Paragraph: a non-empty run of segments
//   - Segment: one styled span, math fragment, list item or environment
//
// Segments nest through Segments (math sub-trees, emphasis bodies, command
// arguments) and through []Paragraph (list items and environments), so lists
// and environments nest arbitrarily.
//
// # Environments
//
// EnvKind is a closed set of 13 block kinds. The table in env.go is the only
// mapping between kinds and their notation names; the generic block kind is
// named by the empty string.
//
// # Example
//
//	doc := &mathlog.Document{Paragraphs: []mathlog.Paragraph{{
//	    Segments: mathlog.Segments{
//	        mathlog.Heading{Level: 2, Content: mathlog.Segments{mathlog.Text{Text: "Hello"}}},
//	    },
//	}}}
package mathlog
