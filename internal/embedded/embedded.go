// Package embedded carries the symbol dictionary built into the mathlog
// binary. It is used when no dictionary file is configured or installed.
package embedded

import (
	"bytes"
	_ "embed"

	"github.com/FocuswithJustin/mathlog/core/dictionary"
)

//go:embed dictionary.json
var dictionaryJSON []byte

// Name identifies the built-in dictionary in logs.
const Name = "builtin"

// Dictionary decodes a fresh copy of the built-in dictionary.
func Dictionary() (*dictionary.Dictionary, error) {
	return dictionary.Read(bytes.NewReader(dictionaryJSON))
}

// DictionaryJSON returns the raw asset.
func DictionaryJSON() []byte {
	return bytes.Clone(dictionaryJSON)
}
