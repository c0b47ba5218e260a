package validation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantError error
	}{
		{
			name:      "valid relative path",
			path:      "notes.typ",
			wantError: nil,
		},
		{
			name:      "valid absolute path",
			path:      "/tmp/notes.typ",
			wantError: nil,
		},
		{
			name:      "valid nested path",
			path:      "dir/subdir/notes.typ",
			wantError: nil,
		},
		{
			name:      "empty path",
			path:      "",
			wantError: ErrEmptyPath,
		},
		{
			name:      "path with null byte",
			path:      "file\x00.typ",
			wantError: ErrInvalidCharacter,
		},
		{
			name:      "path with control character",
			path:      "dir/file\n.typ",
			wantError: ErrInvalidCharacter,
		},
		{
			name:      "very long path",
			path:      strings.Repeat("a/", 2048) + "file.typ",
			wantError: ErrPathTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("ValidatePath() error = %v, want %v", err, tt.wantError)
				}
				return
			}

			if err != nil {
				t.Errorf("ValidatePath() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.typ")
	if err := os.WriteFile(file, []byte("= Hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := ValidateInputFile(file); err != nil {
		t.Errorf("ValidateInputFile(file) = %v", err)
	}
	if err := ValidateInputFile(dir); !errors.Is(err, ErrNotRegular) {
		t.Errorf("ValidateInputFile(dir) = %v, want %v", err, ErrNotRegular)
	}
	if err := ValidateInputFile(filepath.Join(dir, "missing.typ")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ValidateInputFile(missing) = %v, want not exist", err)
	}
	if err := ValidateInputFile(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("ValidateInputFile(\"\") = %v, want %v", err, ErrEmptyPath)
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.typ")
	if err := os.WriteFile(in, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := ValidateOutputPath(in, filepath.Join(dir, "out.md")); err != nil {
		t.Errorf("ValidateOutputPath() = %v", err)
	}
	if err := ValidateOutputPath(in, in); !errors.Is(err, ErrSameFile) {
		t.Errorf("ValidateOutputPath(same) = %v, want %v", err, ErrSameFile)
	}
	if err := ValidateOutputPath(in, filepath.Join(dir, ".", "in.typ")); !errors.Is(err, ErrSameFile) {
		t.Errorf("ValidateOutputPath(equivalent) = %v, want %v", err, ErrSameFile)
	}
	if err := ValidateOutputPath(in, ""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("ValidateOutputPath(empty) = %v, want %v", err, ErrEmptyPath)
	}
}
