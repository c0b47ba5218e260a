// Command mathlog converts typst-style markup documents to mathlog notation.
//
//	mathlog notes.typ notes.md
//	mathlog --dictionary sym.json.xz convert notes.typ notes.md --dump-ir notes.json
//	mathlog dict build sym.db symbols.txt patch.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/mathlog/core/dictionary"
	mlerrors "github.com/FocuswithJustin/mathlog/core/errors"
	"github.com/FocuswithJustin/mathlog/core/mathlog"
	"github.com/FocuswithJustin/mathlog/core/syntax"
	"github.com/FocuswithJustin/mathlog/internal/config"
	"github.com/FocuswithJustin/mathlog/internal/convert"
	"github.com/FocuswithJustin/mathlog/internal/fileutil"
	"github.com/FocuswithJustin/mathlog/internal/logging"
)

const version = "0.2.0"

// stdout receives command output; tests replace it.
var stdout io.Writer = os.Stdout

// CLI defines the command-line interface for mathlog.
var CLI struct {
	// Global flags
	Config     string `name:"config" short:"c" help:"Config file (default: mathlog.yaml if present)" type:"path"`
	Dictionary string `name:"dictionary" short:"d" help:"Symbol dictionary (JSON, xz or SQLite)" type:"path"`
	LogLevel   string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat  string `name:"log-format" help:"Log format: text or json"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert a markup document to mathlog"`
	Dict    DictGroup  `cmd:"" help:"Symbol dictionary operations"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// DictGroup contains dictionary operations.
type DictGroup struct {
	Build  DictBuildCmd  `cmd:"" help:"Build a dictionary from symbol lists and patches"`
	Lookup DictLookupCmd `cmd:"" help:"Resolve a dotted identifier path"`
	List   DictListCmd   `cmd:"" help:"List identifiers and their fragments"`
	Info   DictInfoCmd   `cmd:"" help:"Display dictionary statistics"`
}

// ConvertCmd converts one document.
type ConvertCmd struct {
	Input    string `arg:"" help:"Markup source file" type:"existingfile"`
	Output   string `arg:"" help:"Output file" type:"path"`
	DumpIR   string `name:"dump-ir" help:"Also write the document model as JSON" type:"path"`
	DumpTree string `name:"dump-tree" help:"Also write the parsed syntax tree" type:"path"`
}

// Run executes the convert command.
func (c *ConvertCmd) Run() error {
	ctx := context.Background()
	cfg, err := setup()
	if err != nil {
		return err
	}

	dic, err := convert.LoadDictionary(ctx, cfg.Dictionary)
	if err != nil {
		return err
	}

	res, err := convert.ConvertFile(ctx, c.Input, c.Output, dic)
	if err != nil {
		return err
	}

	if c.DumpTree != "" {
		tree := syntax.Sprint(res.Tree) + "\n"
		if err := fileutil.WriteFileAtomic(c.DumpTree, []byte(tree), 0o644); err != nil {
			return mlerrors.NewIO("write", c.DumpTree, err)
		}
	}
	if c.DumpIR != "" {
		data, err := mathlog.MarshalDocument(res.Document)
		if err != nil {
			return err
		}
		if err := fileutil.WriteFileAtomic(c.DumpIR, append(data, '\n'), 0o644); err != nil {
			return mlerrors.NewIO("write", c.DumpIR, err)
		}
	}
	return nil
}

// DictBuildCmd merges dictionary sources into one asset. Later sources
// override earlier ones.
type DictBuildCmd struct {
	Output  string   `arg:"" help:"Output dictionary (.json, .xz or .db)" type:"path"`
	Sources []string `arg:"" help:"Sources: symbol lists (.txt), flat YAML (.yaml) or dictionaries" type:"existingfile"`
}

// Run executes the dict build command.
func (c *DictBuildCmd) Run() error {
	ctx := context.Background()
	if _, err := setup(); err != nil {
		return err
	}

	d := dictionary.New()
	for _, src := range c.Sources {
		part, err := readSource(ctx, src)
		if err != nil {
			return err
		}
		d.Patch(part)
	}

	if err := dictionary.Save(ctx, c.Output, d); err != nil {
		return err
	}
	stats := d.Stats()
	fmt.Fprintf(stdout, "Wrote %s: %d idents, %d modules\n", c.Output, stats.Idents, stats.Modules)
	return nil
}

// readSource loads one build input, choosing the reader by suffix.
func readSource(ctx context.Context, path string) (*dictionary.Dictionary, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return readWith(path, dictionary.ReadSymbolList)
	case ".yaml", ".yml":
		return readWith(path, dictionary.ReadFlatYAML)
	}
	d, _, err := dictionary.Open(ctx, path)
	return d, err
}

func readWith(path string, read func(io.Reader) (*dictionary.Dictionary, error)) (*dictionary.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mlerrors.NewIO("open", path, err)
	}
	defer f.Close()

	d, err := read(f)
	if err != nil {
		return nil, mlerrors.Wrapf(err, "failed to read %s", path)
	}
	return d, nil
}

// DictLookupCmd resolves one identifier.
type DictLookupCmd struct {
	Path string `arg:"" help:"Dotted identifier path, e.g. arrow.r.long"`
}

// Run executes the dict lookup command.
func (c *DictLookupCmd) Run() error {
	d, err := loadDictionary()
	if err != nil {
		return err
	}
	path, err := dictionary.ParsePath(c.Path)
	if err != nil {
		return err
	}
	fragment, err := d.Lookup(path...)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, fragment)
	return nil
}

// DictListCmd lists identifiers, optionally below a module.
type DictListCmd struct {
	Module string `arg:"" optional:"" help:"Only list identifiers below this module path"`
}

// Run executes the dict list command.
func (c *DictListCmd) Run() error {
	d, err := loadDictionary()
	if err != nil {
		return err
	}

	var prefix []string
	if c.Module != "" {
		if prefix, err = dictionary.ParsePath(c.Module); err != nil {
			return err
		}
		if d, err = d.Module(prefix...); err != nil {
			return err
		}
	}

	return d.Walk(func(path []string, fragment string) error {
		full := append(append([]string(nil), prefix...), path...)
		_, err := fmt.Fprintf(stdout, "%s\t%s\n", dictionary.JoinPath(full), fragment)
		return err
	})
}

// DictInfoCmd prints dictionary statistics.
type DictInfoCmd struct{}

// Run executes the dict info command.
func (c *DictInfoCmd) Run() error {
	d, err := loadDictionary()
	if err != nil {
		return err
	}
	fingerprint, err := d.Fingerprint()
	if err != nil {
		return err
	}
	stats := d.Stats()
	fmt.Fprintf(stdout, "Idents:      %d\n", stats.Idents)
	fmt.Fprintf(stdout, "Modules:     %d\n", stats.Modules)
	fmt.Fprintf(stdout, "Max depth:   %d\n", stats.MaxDepth)
	fmt.Fprintf(stdout, "Fingerprint: %s\n", fingerprint)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Fprintf(stdout, "mathlog version %s\n", version)
	return nil
}

// Helper functions

// setup loads the config file, applies flag overrides and configures
// logging.
func setup() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if CLI.Config != "" {
		cfg, err = config.Load(CLI.Config)
	} else {
		cfg, err = config.Load(config.DefaultPath)
		var nf *mlerrors.NotFoundError
		if errors.As(err, &nf) {
			cfg, err = config.DefaultConfig(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	if CLI.Dictionary != "" {
		cfg.Dictionary = CLI.Dictionary
	}
	if CLI.LogLevel != "" {
		cfg.Log.Level = CLI.LogLevel
	}
	if CLI.LogFormat != "" {
		cfg.Log.Format = CLI.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.InitLogging()
	logging.Debug("config", "dictionary", cfg.Dictionary, "level", cfg.Log.Level)
	return cfg, nil
}

func loadDictionary() (*dictionary.Dictionary, error) {
	cfg, err := setup()
	if err != nil {
		return nil, err
	}
	return convert.LoadDictionary(context.Background(), cfg.Dictionary)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mathlog"),
		kong.Description("Convert typst-style markup to mathlog notation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
