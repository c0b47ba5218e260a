// Package validation checks paths given on the command line before any
// file is read or written.
package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits applied to command-line input.
const (
	// MaxFileSize is the maximum accepted source or dictionary size (64 MB).
	MaxFileSize = 64 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrNotRegular       = errors.New("not a regular file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrSameFile         = errors.New("output would overwrite input")
)

// ValidatePath performs path validation without requiring a base directory.
// It checks length limits and invalid characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ValidateInputFile checks that path names a readable regular file no
// larger than MaxFileSize.
func ValidateInputFile(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() > MaxFileSize {
		return fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, path, info.Size())
	}
	return nil
}

// ValidateOutputPath checks output and rejects an output that resolves to
// the input file.
func ValidateOutputPath(input, output string) error {
	if err := ValidatePath(output); err != nil {
		return err
	}
	in, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	if in == out {
		return fmt.Errorf("%w: %s", ErrSameFile, output)
	}
	if inInfo, err := os.Stat(in); err == nil {
		if outInfo, err := os.Stat(out); err == nil && os.SameFile(inInfo, outInfo) {
			return fmt.Errorf("%w: %s", ErrSameFile, output)
		}
	}
	return nil
}
