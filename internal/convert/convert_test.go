package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FocuswithJustin/mathlog/core/dictionary"
	mlerrors "github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/internal/validation"
)

func testDictionary(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.FromFlat(map[string]string{
		"alpha":   `\alpha`,
		"beta":    `\beta`,
		"arrow.r": `\rightarrow`,
	})
	if err != nil {
		t.Fatalf("FromFlat() error: %v", err)
	}
	return d
}

const source = "= Hello\n\nThe value $alpha -> beta$ holds.\n"

const want = "# Hello\n\nThe value $\\alpha \\rightarrow \\beta$ holds.\n"

func TestConvert(t *testing.T) {
	res, err := Convert(context.Background(), "doc.typ", source, testDictionary(t))
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if diff := cmp.Diff(want, res.Output); diff != "" {
		t.Errorf("Convert() output mismatch (-want +got):\n%s", diff)
	}
	if res.Tree == nil || res.Document == nil {
		t.Fatal("Convert() dropped intermediate results")
	}
	if got := len(res.Document.Paragraphs); got != 2 {
		t.Errorf("paragraphs = %d, want 2", got)
	}
	if res.Digest != Digest([]byte(want)) {
		t.Errorf("Digest = %s, want digest of output", res.Digest)
	}
	if len(res.Digest) != 64 {
		t.Errorf("Digest length = %d, want 64", len(res.Digest))
	}
}

func TestConvertStages(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantStage string
		wantType  any
	}{
		{
			name:      "parse failure",
			src:       "$unclosed",
			wantStage: StageParse,
			wantType:  &mlerrors.ParseError{},
		},
		{
			name:      "translation failure",
			src:       "$gamma$",
			wantStage: StageTranslate,
			wantType:  &mlerrors.UnsupportedIdentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Convert(context.Background(), "doc.typ", tt.src, testDictionary(t))
			if err == nil {
				t.Fatalf("Convert() = %q, want error", res.Output)
			}
			if res != nil {
				t.Error("Convert() returned a partial result")
			}
			var se *StageError
			if !errors.As(err, &se) {
				t.Fatalf("error %v is not a StageError", err)
			}
			if se.Stage != tt.wantStage {
				t.Errorf("Stage = %q, want %q", se.Stage, tt.wantStage)
			}
			switch tt.wantType.(type) {
			case *mlerrors.ParseError:
				var pe *mlerrors.ParseError
				if !errors.As(err, &pe) {
					t.Errorf("error %v is not a ParseError", err)
				}
			case *mlerrors.UnsupportedIdentError:
				var ue *mlerrors.UnsupportedIdentError
				if !errors.As(err, &ue) {
					t.Errorf("error %v is not an UnsupportedIdentError", err)
				}
			}
		})
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.typ")
	out := filepath.Join(dir, "out.md")
	if err := os.WriteFile(in, []byte(source), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := ConvertFile(context.Background(), in, out, testDictionary(t))
	if err != nil {
		t.Fatalf("ConvertFile() error: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("output file mismatch (-want +got):\n%s", diff)
	}
	if res.Output != string(got) {
		t.Error("Result.Output differs from the written file")
	}
}

func TestConvertFileLeavesOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.typ")
	out := filepath.Join(dir, "out.md")
	if err := os.WriteFile(in, []byte("#foo(1)"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(out, []byte("previous"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := ConvertFile(context.Background(), in, out, testDictionary(t))
	var ce *mlerrors.UnsupportedCallError
	if !errors.As(err, &ce) {
		t.Fatalf("ConvertFile() = %v, want UnsupportedCallError", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "previous" {
		t.Errorf("output overwritten on failure: %q", got)
	}
}

func TestConvertFileErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.typ")
	if err := os.WriteFile(in, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := ConvertFile(context.Background(), filepath.Join(dir, "missing.typ"), filepath.Join(dir, "out.md"), testDictionary(t))
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageRead {
		t.Errorf("missing input: got %v, want read stage error", err)
	}

	_, err = ConvertFile(context.Background(), in, in, testDictionary(t))
	if !errors.Is(err, validation.ErrSameFile) {
		t.Errorf("same file: got %v, want %v", err, validation.ErrSameFile)
	}
}

func TestConvertFileWriteError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.typ")
	if err := os.WriteFile(in, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	orig := writeFileAtomic
	defer func() { writeFileAtomic = orig }()
	writeFileAtomic = func(string, []byte, os.FileMode) error {
		return errors.New("disk full")
	}

	_, err := ConvertFile(context.Background(), in, filepath.Join(dir, "out.md"), testDictionary(t))
	var ioErr *mlerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("ConvertFile() = %v, want IOError", err)
	}
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageWrite {
		t.Errorf("ConvertFile() stage = %v, want %s", err, StageWrite)
	}
}

func TestLoadDictionary(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	orig := osExecutable
	defer func() { osExecutable = orig }()
	osExecutable = func() (string, error) {
		return filepath.Join(dir, "bin", "mathlog"), nil
	}

	t.Run("built-in", func(t *testing.T) {
		d, err := LoadDictionary(ctx, "")
		if err != nil {
			t.Fatalf("LoadDictionary() error: %v", err)
		}
		if got, _ := d.Lookup("alpha"); got != `\alpha` {
			t.Errorf("alpha = %q", got)
		}
	})

	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(dir, "custom.json.xz")
		if err := dictionary.Save(ctx, path, testDictionary(t)); err != nil {
			t.Fatal(err)
		}
		d, err := LoadDictionary(ctx, path)
		if err != nil {
			t.Fatalf("LoadDictionary() error: %v", err)
		}
		if got, _ := d.Lookup("arrow", "r"); got != `\rightarrow` {
			t.Errorf("arrow.r = %q", got)
		}
	})

	t.Run("installed", func(t *testing.T) {
		installed, err := InstalledDictionaryPath()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(filepath.Dir(installed), 0o755); err != nil {
			t.Fatal(err)
		}
		custom := dictionary.New()
		custom.Idents["alpha"] = "α"
		if err := dictionary.Save(ctx, installed, custom); err != nil {
			t.Fatal(err)
		}

		d, err := LoadDictionary(ctx, "")
		if err != nil {
			t.Fatalf("LoadDictionary() error: %v", err)
		}
		if got, _ := d.Lookup("alpha"); got != "α" {
			t.Errorf("alpha = %q, want installed fragment", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadDictionary(ctx, filepath.Join(dir, "nope.json"))
		var nf *mlerrors.NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("LoadDictionary(missing) = %v, want NotFoundError", err)
		}
	})
}
