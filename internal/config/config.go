// Package config loads the optional YAML configuration of the mathlog
// command.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	mlerrors "github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/internal/logging"
)

// DefaultPath is the file consulted when no config path is given.
const DefaultPath = "mathlog.yaml"

// Config holds settings shared by every subcommand.
type Config struct {
	// Dictionary is the symbol dictionary used for conversion. Relative
	// paths are resolved against the directory of the config file.
	Dictionary string `yaml:"dictionary"`
	Log        Log    `yaml:"log"`
}

// Log configures diagnostics.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads the config file at path. A missing file is reported as a
// NotFoundError so callers can fall back to DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, mlerrors.NewNotFound("config", path)
		}
		return nil, mlerrors.NewIO("read", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, mlerrors.NewParse("yaml", path, err.Error())
	}
	if cfg.Dictionary != "" && !filepath.IsAbs(cfg.Dictionary) {
		cfg.Dictionary = filepath.Join(filepath.Dir(path), cfg.Dictionary)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the log settings name a known level and format.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return mlerrors.NewValidation("log.level", err.Error())
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return mlerrors.NewValidation("log.format", err.Error())
	}
	return nil
}

// InitLogging applies the log settings to the global logger.
func (c *Config) InitLogging() {
	level, _ := logging.ParseLevel(c.Log.Level)
	format, _ := logging.ParseFormat(c.Log.Format)
	logging.InitLogger(level, format)
}
