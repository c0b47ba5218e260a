package embedded_test

import (
	"testing"

	"github.com/FocuswithJustin/mathlog/internal/embedded"
)

func TestDictionary(t *testing.T) {
	d, err := embedded.Dictionary()
	if err != nil {
		t.Fatalf("Dictionary() error: %v", err)
	}

	lookups := []struct {
		path []string
		want string
	}{
		{[]string{"alpha"}, `\alpha`},
		{[]string{"pi"}, `\pi`},
		{[]string{"arrow", "r"}, `\rightarrow`},
		{[]string{"arrow", "r", "long"}, `\longrightarrow`},
		{[]string{"arrow", "r", "double", "long"}, `\Longrightarrow`},
		{[]string{"arrow", "l", "r", "double", "long"}, `\Longleftrightarrow`},
		{[]string{"lt", "eq"}, `\leq`},
		{[]string{"eq", "not"}, `\neq`},
		{[]string{"dots", "h"}, `\ldots`},
	}
	for _, l := range lookups {
		got, err := d.Lookup(l.path...)
		if err != nil {
			t.Errorf("Lookup(%v) error: %v", l.path, err)
			continue
		}
		if got != l.want {
			t.Errorf("Lookup(%v) = %q, want %q", l.path, got, l.want)
		}
	}
}

func TestDictionaryFreshCopy(t *testing.T) {
	a, err := embedded.Dictionary()
	if err != nil {
		t.Fatal(err)
	}
	a.Idents["alpha"] = "changed"

	b, err := embedded.Dictionary()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := b.Lookup("alpha"); got != `\alpha` {
		t.Errorf("built-in dictionary was mutated: alpha = %q", got)
	}
}

func TestDictionaryJSONCopy(t *testing.T) {
	raw := embedded.DictionaryJSON()
	if len(raw) == 0 {
		t.Fatal("DictionaryJSON() is empty")
	}
	raw[0] = 'x'
	if embedded.DictionaryJSON()[0] != '{' {
		t.Error("DictionaryJSON() exposes the embedded bytes")
	}
}
