package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/internal/fileutil"
)

// Format identifies how a dictionary asset is stored on disk.
type Format string

const (
	FormatJSON   Format = "json"
	FormatXZ     Format = "xz"
	FormatSQLite Format = "sqlite"
)

var (
	xzMagic     = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	sqliteMagic = []byte("SQLite format 3\x00")
)

// Injectable functions for testing
var (
	osReadFile      = os.ReadFile
	xzNewReader     = xz.NewReader
	xzNewWriter     = xz.NewWriter
	writeFileAtomic = fileutil.WriteFileAtomic
)

// DetectFormat inspects the leading bytes of an asset.
func DetectFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, xzMagic):
		return FormatXZ
	case bytes.HasPrefix(data, sqliteMagic):
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// FormatForPath picks the storage format from a file suffix.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return FormatXZ
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// Read decodes a JSON dictionary.
func Read(r io.Reader) (*Dictionary, error) {
	d := New()
	dec := json.NewDecoder(r)
	if err := dec.Decode(d); err != nil {
		return nil, &errors.ParseError{Format: "dictionary", Message: err.Error(), Err: err}
	}
	d.fill()
	return d, nil
}

// fill replaces nil maps left by JSON null or missing keys.
func (d *Dictionary) fill() {
	d.init()
	for name, m := range d.Modules {
		if m == nil {
			delete(d.Modules, name)
			continue
		}
		m.fill()
	}
}

// Write encodes d as indented JSON.
func Write(w io.Writer, d *Dictionary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.normalized()); err != nil {
		return errors.Wrap(err, "failed to encode dictionary")
	}
	return nil
}

// Open loads a dictionary asset, detecting xz, SQLite or plain JSON from
// its magic bytes.
func Open(ctx context.Context, path string) (*Dictionary, Format, error) {
	data, err := osReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", &errors.NotFoundError{Resource: "dictionary", ID: path, Err: err}
		}
		return nil, "", errors.NewIO("read", path, err)
	}

	format := DetectFormat(data)
	var d *Dictionary
	switch format {
	case FormatXZ:
		d, err = readXZ(data)
	case FormatSQLite:
		d, err = readSQLite(ctx, path)
	default:
		d, err = Read(bytes.NewReader(data))
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to load dictionary %s", path)
	}
	return d, format, nil
}

func readXZ(data []byte) (*Dictionary, error) {
	r, err := xzNewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create xz reader")
	}
	return Read(r)
}

// Save writes d to path in the format chosen by its suffix. The file is
// replaced atomically.
func Save(ctx context.Context, path string, d *Dictionary) error {
	format := FormatForPath(path)
	if format == FormatSQLite {
		return saveSQLite(ctx, path, d)
	}

	var buf bytes.Buffer
	switch format {
	case FormatXZ:
		w, err := xzNewWriter(&buf)
		if err != nil {
			return errors.Wrap(err, "failed to create xz writer")
		}
		if err := Write(w, d); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return errors.Wrap(err, "failed to finish xz stream")
		}
	default:
		if err := Write(&buf, d); err != nil {
			return err
		}
	}

	if err := writeFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}
