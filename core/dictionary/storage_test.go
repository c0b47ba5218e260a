package dictionary

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	mlerrors "github.com/FocuswithJustin/mathlog/core/errors"
)

func TestReadWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"idents"`) || !strings.Contains(buf.String(), `"modules"`) {
		t.Errorf("encoded dictionary missing keys:\n%s", buf.String())
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if diff := cmp.Diff(sample(), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadToleratesMissingMaps(t *testing.T) {
	src := `{"idents": {"pi": "\\pi"}, "modules": {"arrow": {"idents": {"r": "\\to"}}, "gone": null}}`
	d, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got, _ := d.Lookup("arrow", "r"); got != `\to` {
		t.Errorf("Lookup(arrow.r) = %q", got)
	}
	arrow := d.Modules["arrow"]
	if arrow.Modules == nil {
		t.Error("missing modules map should be filled")
	}
	if _, ok := d.Modules["gone"]; ok {
		t.Error("null module should be dropped")
	}
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader(`{"idents": [1, 2]}`))
	if err == nil {
		t.Fatal("Read() should fail on malformed input")
	}
	var parseErr *mlerrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error = %T, want *ParseError", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00}, FormatXZ},
		{"sqlite", []byte("SQLite format 3\x00rest"), FormatSQLite},
		{"json", []byte(`{"idents": {}}`), FormatJSON},
		{"short", []byte{0xfd}, FormatJSON},
		{"empty", nil, FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.data); got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"dictionary.json":    FormatJSON,
		"dictionary.json.xz": FormatXZ,
		"dictionary.XZ":      FormatXZ,
		"dictionary.db":      FormatSQLite,
		"dictionary.sqlite":  FormatSQLite,
		"dictionary.sqlite3": FormatSQLite,
		"dictionary":         FormatJSON,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestSaveOpenRoundTrip(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		file string
		want Format
	}{
		{"dictionary.json", FormatJSON},
		{"dictionary.json.xz", FormatXZ},
		{"dictionary.db", FormatSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := Save(ctx, path, sample()); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if got := DetectFormat(data); got != tt.want {
				t.Errorf("stored format = %q, want %q", got, tt.want)
			}

			got, format, err := Open(ctx, path)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if format != tt.want {
				t.Errorf("Open() format = %q, want %q", format, tt.want)
			}
			if diff := cmp.Diff(sample(), got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveSQLiteReplacesExisting(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dictionary.db")

	if err := Save(ctx, path, sample()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	small := New()
	small.Idents["x"] = "y"
	if err := Save(ctx, path, small); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, _, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if diff := cmp.Diff(small, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stale rows survived (-want +got):\n%s", diff)
	}
}

func TestOpenMissing(t *testing.T) {
	_, _, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, want os.ErrNotExist", err)
	}
	var nf *mlerrors.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error = %T, want *NotFoundError", err)
	}
}

func TestOpenCorruptXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xz")
	data := append([]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, []byte("garbage")...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Open(context.Background(), path); err == nil {
		t.Error("Open() should fail on corrupt xz")
	}
}

func TestSaveWriteError(t *testing.T) {
	orig := writeFileAtomic
	defer func() { writeFileAtomic = orig }()
	writeFileAtomic = func(string, []byte, os.FileMode) error { return errors.New("disk full") }

	err := Save(context.Background(), filepath.Join(t.TempDir(), "d.json"), sample())
	var ioErr *mlerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("Save() error = %v, want *IOError", err)
	}
}
