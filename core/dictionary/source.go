package dictionary

import (
	"bufio"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/mathlog/core/errors"
)

// ReadFlatYAML builds a dictionary from a YAML mapping of dotted paths to
// fragments:
//
//	alpha: \alpha
//	arrow.r: \rightarrow
//	arrow.r.long: \longrightarrow
func ReadFlatYAML(r io.Reader) (*Dictionary, error) {
	var entries map[string]string
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return New(), nil
		}
		return nil, &errors.ParseError{Format: "symbol yaml", Message: err.Error(), Err: err}
	}
	return FromFlat(entries)
}

// ReadSymbolList builds a dictionary from a symbol listing made of
// four-line records: dotted name, decimal code point, character, command.
// The character becomes the fragment. Trailing blank lines are ignored.
func ReadSymbolList(r io.Reader) (*Dictionary, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read symbol list")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines)%4 != 0 {
		return nil, errors.NewParse("symbol list", "", "record count is not a multiple of four lines")
	}

	d := New()
	for i := 0; i < len(lines); i += 4 {
		path, err := ParsePath(lines[i])
		if err != nil {
			return nil, err
		}
		if err := d.Insert(path, lines[i+2]); err != nil {
			return nil, err
		}
	}
	return d, nil
}
