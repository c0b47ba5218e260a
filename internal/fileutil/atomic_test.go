package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.md")

	if err := WriteFileAtomic(path, []byte("## Hello\n"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "## Hello\n" {
		t.Errorf("content = %q, want %q", got, "## Hello\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("new"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteFileAtomic_RenameError(t *testing.T) {
	orig := osRename
	defer func() { osRename = orig }()
	osRename = func(string, string) error { return errors.New("rename failed") }

	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")
	if err := WriteFileAtomic(path, []byte("x"), 0644); err == nil {
		t.Fatal("expected error")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("destination should not exist after failed rename")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp file left behind: %v", entries)
	}
}

func TestWriteFileAtomic_WriteError(t *testing.T) {
	orig := tempFileWrite
	defer func() { tempFileWrite = orig }()
	tempFileWrite = func(*os.File, []byte) (int, error) { return 0, errors.New("disk full") }

	dir := t.TempDir()
	if err := WriteFileAtomic(filepath.Join(dir, "out.md"), []byte("x"), 0644); err == nil {
		t.Fatal("expected error")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp file left behind: %v", entries)
	}
}

func TestWriteFileAtomic_CreateTempError(t *testing.T) {
	orig := osCreateTemp
	defer func() { osCreateTemp = orig }()
	osCreateTemp = func(string, string) (*os.File, error) { return nil, errors.New("no space") }

	if err := WriteFileAtomic(filepath.Join(t.TempDir(), "out.md"), []byte("x"), 0644); err == nil {
		t.Fatal("expected error")
	}
}
