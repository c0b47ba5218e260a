package mathlog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMarshalDocument(t *testing.T) {
	doc := &Document{Paragraphs: []Paragraph{
		{Segments: Segments{Heading{Level: 2, Content: Segments{Text{Text: "Hello"}}}}},
		{Segments: Segments{MathInline{Content: Segments{
			MathAttach{Base: Segments{Text{Text: "a"}}, Bottom: Segments{Text{Text: "i"}}},
		}}}},
		{Segments: Segments{Env{Kind: EnvDefinition, Contents: []Paragraph{
			{Segments: Segments{Text{Text: "body"}}},
		}}}},
	}}

	data, err := MarshalDocument(doc)
	if err != nil {
		t.Fatalf("MarshalDocument() error: %v", err)
	}

	var decoded struct {
		Paragraphs [][]map[string]any `json:"paragraphs"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Paragraphs) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(decoded.Paragraphs))
	}
	if got := decoded.Paragraphs[0][0]["type"]; got != "heading" {
		t.Errorf("first segment type = %v, want heading", got)
	}

	attach := decoded.Paragraphs[1][0]["content"].([]any)[0].(map[string]any)
	if attach["top"] != nil {
		t.Errorf("absent superscript encoded as %v, want null", attach["top"])
	}
	if attach["bottom"] == nil {
		t.Error("present subscript encoded as null")
	}

	env := decoded.Paragraphs[2][0]
	if env["kind"] != "def" {
		t.Errorf("env kind = %v, want def", env["kind"])
	}
	if env["title"] != nil {
		t.Errorf("absent title encoded as %v", env["title"])
	}
}

func TestMarshalDocumentError(t *testing.T) {
	orig := jsonMarshal
	defer func() { jsonMarshal = orig }()
	jsonMarshal = func(any, string, string) ([]byte, error) {
		return nil, errors.New("boom")
	}

	_, err := MarshalDocument(&Document{})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("MarshalDocument() error = %v, want boom", err)
	}
}

func TestMarshalDocumentNil(t *testing.T) {
	got, err := MarshalDocument(nil)
	if err != nil {
		t.Fatalf("MarshalDocument(nil) error = %v", err)
	}
	want, err := MarshalDocument(&Document{})
	if err != nil {
		t.Fatalf("MarshalDocument(empty) error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("MarshalDocument(nil) = %s, want %s", got, want)
	}
	if !strings.Contains(string(got), `"paragraphs": []`) {
		t.Errorf("MarshalDocument(nil) = %s, want empty paragraph list", got)
	}
}
