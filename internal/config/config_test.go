package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	mlerrors "github.com/FocuswithJustin/mathlog/core/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dictionary != "" {
		t.Errorf("Dictionary = %q, want empty", cfg.Dictionary)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *Config
		wantErr bool
	}{
		{
			name: "empty document keeps defaults",
			data: "",
			want: DefaultConfig(),
		},
		{
			name: "full",
			data: "dictionary: sym.json.xz\nlog:\n  level: debug\n  format: json\n",
			want: &Config{Dictionary: "sym.json.xz", Log: Log{Level: "debug", Format: "json"}},
		},
		{
			name: "partial log section",
			data: "log:\n  level: warn\n",
			want: &Config{Log: Log{Level: "warn", Format: "text"}},
		},
		{
			name:    "unknown key",
			data:    "dictonary: typo.json\n",
			wantErr: true,
		},
		{
			name:    "bad level",
			data:    "log:\n  level: loud\n",
			wantErr: true,
		},
		{
			name:    "bad format",
			data:    "log:\n  format: xml\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			data:    "log: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultPath)
	data := "dictionary: assets/sym.json\nlog:\n  format: json\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if want := filepath.Join(dir, "assets", "sym.json"); cfg.Dictionary != want {
		t.Errorf("Dictionary = %q, want %q", cfg.Dictionary, want)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "info" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadAbsoluteDictionary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	abs := filepath.Join(t.TempDir(), "sym.db")
	if err := os.WriteFile(path, []byte("dictionary: "+abs+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Dictionary != abs {
		t.Errorf("Dictionary = %q, want %q", cfg.Dictionary, abs)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	var nf *mlerrors.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("Load(missing) = %v, want NotFoundError", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	var pe *mlerrors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load(bad) = %v, want ParseError", err)
	}
	if pe.Path != bad {
		t.Errorf("ParseError.Path = %q, want %q", pe.Path, bad)
	}
}
