package mathlog

import "fmt"

// EnvKind identifies a block environment.
type EnvKind int

// Environment kinds. EnvBlock is the generic, unnamed kind.
const (
	EnvBlock EnvKind = iota
	EnvConjecture
	EnvAxiom
	EnvDefinition
	EnvProposition
	EnvFormula
	EnvLemma
	EnvTheorem
	EnvCorollary
	EnvProof
	EnvExample
	EnvExercise
	EnvRemark
)

// envNames is the single source of truth for kind <-> name mapping.
var envNames = [...]struct {
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

// EnvKinds returns all environment kinds in table order.
func EnvKinds() []EnvKind {
	kinds := make([]EnvKind, len(envNames))
	for i, e := range envNames {
		kinds[i] = e.kind
	}
	return kinds
}

// IsValid returns true if the kind is one of the 13 known kinds.
func (k EnvKind) IsValid() bool {
	for _, e := range envNames {
		if e.kind == k {
			return true
		}
	}
	return false
}

// Name returns the notation name of the kind. EnvBlock is named "".
func (k EnvKind) Name() string {
	for _, e := range envNames {
		if e.kind == k {
			return e.name
		}
	}
	return fmt.Sprintf("EnvKind(%d)", int(k))
}

// String returns the name, or "block" for the generic kind.
func (k EnvKind) String() string {
	if k == EnvBlock {
		return "block"
	}
	return k.Name()
}

// EnvKindFromName returns the kind named name. The empty string yields EnvBlock.
func EnvKindFromName(name string) (EnvKind, bool) {
	for _, e := range envNames {
		if e.name == name {
			return e.kind, true
		}
	}
	return EnvBlock, false
}
