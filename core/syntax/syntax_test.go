package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindMarkup, "markup"},
		{KindHeading, "heading"},
		{KindMathAttach, "math attach"},
		{KindFuncCall, "function call"},
		{KindLetBinding, "let binding"},
		{Kind(999), "Kind(999)"},
		{Kind(-1), "Kind(-1)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestEveryKindNamed(t *testing.T) {
	for k := KindMarkup; k <= KindLetBinding; k++ {
		if kindNames[k] == "" {
			t.Errorf("Kind(%d) has no name", int(k))
		}
	}
}

func TestNodeKinds(t *testing.T) {
	tests := []struct {
		node Node
		want Kind
	}{
		{&Markup{}, KindMarkup},
		{&Text{}, KindText},
		{&Strong{}, KindStrong},
		{&Equation{}, KindEquation},
		{&MathFrac{}, KindMathFrac},
		{&FieldAccess{}, KindFieldAccess},
		{&ModuleImport{}, KindModuleImport},
		{&ShowRule{}, KindShowRule},
	}
	for _, tt := range tests {
		if got := tt.node.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %v, want %v", tt.node, got, tt.want)
		}
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		name   string
		node   Node
		want   []string
		wantOK bool
	}{
		{"ident", &Ident{Name: "thm"}, []string{"thm"}, true},
		{"math ident", &MathIdent{Name: "alpha"}, []string{"alpha"}, true},
		{
			name: "field access chain",
			node: &FieldAccess{
				Target: &FieldAccess{Target: &MathIdent{Name: "arrow"}, Field: "r"},
				Field:  "long",
			},
			want:   []string{"arrow", "r", "long"},
			wantOK: true,
		},
		{"text", &Text{Text: "x"}, nil, false},
		{
			name:   "field access on call",
			node:   &FieldAccess{Target: &FuncCall{Callee: &Ident{Name: "f"}}, Field: "x"},
			wantOK: false,
		},
		{"nil", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Path(tt.node)
			if ok != tt.wantOK {
				t.Fatalf("Path() ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Path() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSprint(t *testing.T) {
	tree := &Markup{Children: []Node{
		&Heading{Depth: 2, Body: &Markup{Children: []Node{&Text{Text: "Hello"}}}},
		&Parbreak{},
		&Equation{Body: &Math{Children: []Node{
			&MathAttach{Base: &Text{Text: "a"}, Bottom: &Text{Text: "i"}},
		}}},
		&FuncCall{
			Callee: &Ident{Name: "def"},
			Args: []Arg{
				{Name: "title", Value: &Str{Value: "Group"}},
				{Value: &ContentBlock{Body: &Markup{}}},
			},
		},
	}}

	want := `(markup (heading 2 (markup (text "Hello"))) (parbreak) ` +
		`(equation (math (attach (text "a") (text "i") nil))) ` +
		`(call (ident "def") title: (str "Group") (content (markup))))`
	if got := Sprint(tree); got != want {
		t.Errorf("Sprint() =\n%s\nwant\n%s", got, want)
	}
}
