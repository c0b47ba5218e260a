package mathlog

import "testing"

func TestEnvKindNameRoundTrip(t *testing.T) {
	kinds := EnvKinds()
	if len(kinds) != 13 {
		t.Fatalf("EnvKinds() returned %d kinds, want 13", len(kinds))
	}

	seen := make(map[string]bool)
	for _, kind := range kinds {
		name := kind.Name()
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true

		got, ok := EnvKindFromName(name)
		if !ok {
			t.Errorf("EnvKindFromName(%q) not found", name)
			continue
		}
		if got != kind {
			t.Errorf("EnvKindFromName(%q) = %v, want %v", name, got, kind)
		}
	}
}

func TestEnvKindNames(t *testing.T) {
	tests := []struct {
		kind EnvKind
		name string
	}{
		{EnvBlock, ""},
		{EnvConjecture, "conj"},
		{EnvAxiom, "axm"},
		{EnvDefinition, "def"},
		{EnvProposition, "prop"},
		{EnvFormula, "fml"},
		{EnvLemma, "lem"},
		{EnvTheorem, "thm"},
		{EnvCorollary, "cor"},
		{EnvProof, "prf"},
		{EnvExample, "ex"},
		{EnvExercise, "exc"},
		{EnvRemark, "rem"},
	}
	for _, tt := range tests {
		if got := tt.kind.Name(); got != tt.name {
			t.Errorf("%d.Name() = %q, want %q", int(tt.kind), got, tt.name)
		}
		if !tt.kind.IsValid() {
			t.Errorf("%q should be valid", tt.name)
		}
	}
}

func TestEnvKindUnknown(t *testing.T) {
	if _, ok := EnvKindFromName("theorem"); ok {
		t.Error("EnvKindFromName(\"theorem\") should not match; names are abbreviated")
	}
	bad := EnvKind(99)
	if bad.IsValid() {
		t.Error("EnvKind(99) should be invalid")
	}
	if got := bad.Name(); got != "EnvKind(99)" {
		t.Errorf("Name() = %q", got)
	}
	if got := EnvBlock.String(); got != "block" {
		t.Errorf("EnvBlock.String() = %q, want block", got)
	}
}
