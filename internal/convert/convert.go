// Package convert runs the parse, translate and compose pipeline for the
// mathlog command.
package convert

import (
	"context"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/mathlog/core/compose"
	"github.com/FocuswithJustin/mathlog/core/dictionary"
	mlerrors "github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/core/mathlog"
	"github.com/FocuswithJustin/mathlog/core/parser"
	"github.com/FocuswithJustin/mathlog/core/syntax"
	"github.com/FocuswithJustin/mathlog/core/translate"
	"github.com/FocuswithJustin/mathlog/internal/embedded"
	"github.com/FocuswithJustin/mathlog/internal/fileutil"
	"github.com/FocuswithJustin/mathlog/internal/logging"
	"github.com/FocuswithJustin/mathlog/internal/validation"
)

// Pipeline stages, as named in failure logs.
const (
	StageRead      = "read"
	StageParse     = "parse"
	StageTranslate = "translate"
	StageCompose   = "compose"
	StageWrite     = "write"
)

// Injectable functions for testing
var (
	osReadFile      = os.ReadFile
	osExecutable    = os.Executable
	writeFileAtomic = fileutil.WriteFileAtomic
)

// Result holds every intermediate product of one conversion.
type Result struct {
	Tree     *syntax.Markup
	Document *mathlog.Document
	Output   string
	// Digest is the BLAKE3 hex digest of Output.
	Digest string
}

// StageError records which stage of the pipeline failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Convert translates src. filename only labels parse errors. The first
// failing stage aborts the conversion.
func Convert(ctx context.Context, filename, src string, dic *dictionary.Dictionary) (*Result, error) {
	res := &Result{}

	err := logging.Stage(ctx, StageParse, func() error {
		tree, err := parser.Parse(filename, src)
		res.Tree = tree
		return err
	})
	if err != nil {
		return nil, &StageError{Stage: StageParse, Err: err}
	}

	err = logging.Stage(ctx, StageTranslate, func() error {
		doc, err := translate.Translate(res.Tree, dic)
		res.Document = doc
		return err
	})
	if err != nil {
		return nil, &StageError{Stage: StageTranslate, Err: err}
	}

	_ = logging.Stage(ctx, StageCompose, func() error {
		res.Output = compose.Compose(res.Document)
		return nil
	})
	res.Digest = Digest([]byte(res.Output))
	return res, nil
}

// Digest returns the BLAKE3 hex digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ConvertFile reads input, converts it and writes output atomically. The
// output file is left untouched when any stage fails.
func ConvertFile(ctx context.Context, input, output string, dic *dictionary.Dictionary) (*Result, error) {
	ctx, _ = logging.StartRun(ctx)
	start := time.Now()

	res, err := convertFile(ctx, input, output, dic)
	if err != nil {
		stage := StageRead
		var se *StageError
		if errors.As(err, &se) {
			stage = se.Stage
		}
		logging.ConversionFailed(ctx, input, stage, err)
		return nil, err
	}

	logging.ConversionDone(ctx, input, output, len(res.Document.Paragraphs), time.Since(start),
		"digest", res.Digest)
	return res, nil
}

func convertFile(ctx context.Context, input, output string, dic *dictionary.Dictionary) (*Result, error) {
	if err := validation.ValidateInputFile(input); err != nil {
		return nil, &StageError{Stage: StageRead, Err: err}
	}
	if err := validation.ValidateOutputPath(input, output); err != nil {
		return nil, &StageError{Stage: StageWrite, Err: err}
	}

	src, err := osReadFile(input)
	if err != nil {
		return nil, &StageError{Stage: StageRead, Err: mlerrors.NewIO("read", input, err)}
	}

	res, err := Convert(ctx, input, string(src), dic)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(output, []byte(res.Output), 0o644); err != nil {
		return nil, &StageError{Stage: StageWrite, Err: mlerrors.NewIO("write", output, err)}
	}
	return res, nil
}

// InstalledDictionaryPath is where a release layout keeps the dictionary:
// dictionary/dictionary.json next to the bin directory holding the
// executable.
func InstalledDictionaryPath() (string, error) {
	exe, err := osExecutable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "..", "dictionary", "dictionary.json"), nil
}

// LoadDictionary opens the dictionary at path. With an empty path the
// installed dictionary is tried, then the built-in one.
func LoadDictionary(ctx context.Context, path string) (*dictionary.Dictionary, error) {
	if path == "" {
		if installed, err := InstalledDictionaryPath(); err == nil {
			if _, err := os.Stat(installed); err == nil {
				path = installed
			}
		}
	}

	if path == "" {
		d, err := embedded.Dictionary()
		if err != nil {
			return nil, mlerrors.Wrap(err, "failed to decode built-in dictionary")
		}
		logDictionary(ctx, embedded.Name, string(dictionary.FormatJSON), d)
		return d, nil
	}

	if err := validation.ValidatePath(path); err != nil {
		return nil, mlerrors.NewValidation("dictionary", err.Error())
	}
	d, format, err := dictionary.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	logDictionary(ctx, path, string(format), d)
	return d, nil
}

func logDictionary(ctx context.Context, path, format string, d *dictionary.Dictionary) {
	stats := d.Stats()
	var extra []any
	if fingerprint, err := d.Fingerprint(); err == nil {
		extra = append(extra, "fingerprint", fingerprint)
	}
	logging.DictionaryLoaded(ctx, path, format, stats.Idents, stats.Modules, extra...)
}
