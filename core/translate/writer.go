package translate

import (
	"strings"

	"github.com/FocuswithJustin/mathlog/core/mathlog"
)

// segmentWriter accumulates one inline run of segments.
type segmentWriter struct {
	segments mathlog.Segments
}

func (w *segmentWriter) empty() bool {
	return len(w.segments) == 0
}

func (w *segmentWriter) push(s mathlog.Segment) {
	w.segments = append(w.segments, s)
}

// text appends s, merging it into a preceding Text segment.
func (w *segmentWriter) text(s string) {
	if s == "" {
		return
	}
	if n := len(w.segments); n > 0 {
		if prev, ok := w.segments[n-1].(mathlog.Text); ok {
			w.segments[n-1] = mathlog.Text{Text: prev.Text + s}
			return
		}
	}
	w.push(mathlog.Text{Text: s})
}

// space appends one space. Spaces at the start of a run or a line, and
// repeated spaces, are dropped.
func (w *segmentWriter) space() {
	n := len(w.segments)
	if n == 0 {
		return
	}
	switch prev := w.segments[n-1].(type) {
	case mathlog.Linebreak:
		return
	case mathlog.Text:
		if strings.HasSuffix(prev.Text, " ") {
			return
		}
	}
	w.text(" ")
}

// trimRight drops trailing spaces, and any Text segment left empty.
func (w *segmentWriter) trimRight() {
	for n := len(w.segments); n > 0; n = len(w.segments) {
		prev, ok := w.segments[n-1].(mathlog.Text)
		if !ok {
			return
		}
		trimmed := strings.TrimRight(prev.Text, " ")
		if trimmed != "" {
			w.segments[n-1] = mathlog.Text{Text: trimmed}
			return
		}
		w.segments = w.segments[:n-1]
	}
}

// take returns the accumulated run and resets the writer.
func (w *segmentWriter) take() mathlog.Segments {
	s := w.segments
	w.segments = nil
	return s
}

// paragraphWriter owns the inline run of the current paragraph and the
// paragraphs completed so far.
type paragraphWriter struct {
	paragraphs []mathlog.Paragraph
	inline     segmentWriter
}

// flush completes the current paragraph. Nothing is emitted when the run
// is empty once trailing spaces are dropped.
func (w *paragraphWriter) flush() {
	w.inline.trimRight()
	if w.inline.empty() {
		return
	}
	w.paragraphs = append(w.paragraphs, mathlog.Paragraph{Segments: w.inline.take()})
}

// finish performs the final flush and returns every paragraph.
func (w *paragraphWriter) finish() []mathlog.Paragraph {
	w.flush()
	return w.paragraphs
}
