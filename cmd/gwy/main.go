// Command gwy is the CLI tool for inspecting GWY container files.
// It provides commands for dumping object trees, running structural checks,
// and printing file statistics.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/gwyfile/core/errors"
	"github.com/FocuswithJustin/gwyfile/core/gwy"
	"github.com/FocuswithJustin/gwyfile/internal/fileutil"
	"github.com/FocuswithJustin/gwyfile/internal/logging"
	"github.com/FocuswithJustin/gwyfile/internal/validation"
)

const version = "0.2.0"

// CLI defines the command-line interface for gwy.
var CLI struct {
	// Global flags
	Config    string `name:"config" short:"c" help:"TOML config file path" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error; default info)"`
	LogFormat string `name:"log-format" help:"Log format (text, json; default text)"`

	Dump    DumpCmd    `cmd:"" help:"Print the object tree of a GWY file"`
	Check   CheckCmd   `cmd:"" help:"Run validity and warning checks on a GWY file"`
	Info    InfoCmd    `cmd:"" help:"Print file statistics and content digest"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("gwy"),
		kong.Description("Inspect GWY container files."),
		kong.UsageOnError(),
	)

	cfg := defaultConfig()
	if CLI.Config != "" {
		loaded, err := loadConfig(CLI.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gwy: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.applyFlags()

	format := logging.FormatText
	if cfg.Log.Format == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.ParseLevel(cfg.Log.Level), format)

	if err := ctx.Run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "gwy: %v\n", err)
		os.Exit(1)
	}
}

// readTree opens and decodes a GWY file, transparently decompressing
// xz-compressed input based on the file extension.
func readTree(path string, cfg *config) (*gwy.Object, error) {
	opts := &gwy.ReadOptions{
		MaxSize:  uint64(cfg.Limits.MaxSize),
		MaxDepth: cfg.Limits.MaxDepth,
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewSystem("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		if r, err = xz.NewReader(f); err != nil {
			return nil, errors.Wrapf(err, "open xz stream %s", path)
		}
		if opts.MaxSize == 0 {
			opts.MaxSize = validation.MaxFileSize
		}
	} else if opts.MaxSize == 0 {
		// Bound plain files by their actual size.
		info, err := f.Stat()
		if err != nil {
			return nil, errors.NewSystem("stat", path, err)
		}
		opts.MaxSize = uint64(info.Size())
	}
	return gwy.Read(r, opts)
}

// DumpCmd prints the decoded object tree.
type DumpCmd struct {
	Path string `arg:"" help:"GWY file (optionally .xz compressed)" type:"path"`
}

// Run executes the dump command.
func (c *DumpCmd) Run(cfg *config) error {
	logging.Debug("dumping file", "path", c.Path)
	obj, err := readTree(c.Path, cfg)
	if err != nil {
		return err
	}
	dumpObject(os.Stdout, obj, 0)
	return nil
}

func dumpObject(w io.Writer, o *gwy.Object, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%s%s (%d items, %d bytes)\n", pad, o.Name(), o.NItems(), o.Size())
	o.ForEach(func(it *gwy.Item) {
		dumpItem(w, it, indent+1)
	})
}

func dumpItem(w io.Writer, it *gwy.Item, indent int) {
	pad := strings.Repeat("  ", indent)
	switch it.Type() {
	case gwy.TypeObject:
		fmt.Fprintf(w, "%s%q object:\n", pad, it.Name())
		dumpObject(w, it.Object(), indent+1)
	case gwy.TypeObjectArray:
		fmt.Fprintf(w, "%s%q object array [%d]:\n", pad, it.Name(), it.ArrayLength())
		for _, o := range it.ObjectArray() {
			dumpObject(w, o, indent+1)
		}
	case gwy.TypeBool:
		fmt.Fprintf(w, "%s%q bool = %v\n", pad, it.Name(), it.Bool())
	case gwy.TypeChar:
		fmt.Fprintf(w, "%s%q char = %q\n", pad, it.Name(), it.Char())
	case gwy.TypeInt32:
		fmt.Fprintf(w, "%s%q int32 = %d\n", pad, it.Name(), it.Int32())
	case gwy.TypeInt64:
		fmt.Fprintf(w, "%s%q int64 = %d\n", pad, it.Name(), it.Int64())
	case gwy.TypeDouble:
		fmt.Fprintf(w, "%s%q double = %g\n", pad, it.Name(), it.Double())
	case gwy.TypeString:
		fmt.Fprintf(w, "%s%q string = %q\n", pad, it.Name(), it.String())
	default:
		fmt.Fprintf(w, "%s%q %s [%d] (%d bytes)\n", pad, it.Name(), it.Type(), it.ArrayLength(), it.DataSize())
	}
}

// CheckCmd runs the structural checker and lists findings.
type CheckCmd struct {
	Path       string `arg:"" help:"GWY file (optionally .xz compressed)" type:"path"`
	NoValidity bool   `help:"Skip validity checks"`
	NoWarnings bool   `help:"Skip warning checks"`
}

// Run executes the check command. It exits non-zero when findings exist.
func (c *CheckCmd) Run(cfg *config) error {
	obj, err := readTree(c.Path, cfg)
	if err != nil {
		return err
	}

	flags := gwy.CheckFlags(0)
	if !c.NoValidity {
		flags |= gwy.CheckValidity
	}
	if !c.NoWarnings {
		flags |= gwy.CheckWarning
	}

	var list errors.List
	if gwy.Check(obj, flags, &list) {
		logging.Info("no problems found", "path", c.Path)
		return nil
	}
	for _, f := range list.Findings {
		fmt.Printf("%s: %s: %s\n", f.Domain, f.Path, f.Message)
	}
	return fmt.Errorf("%d problem(s) found", list.Len())
}

// InfoCmd prints top-level statistics and a BLAKE3 digest of the file.
type InfoCmd struct {
	Path string `arg:"" help:"GWY file (optionally .xz compressed)" type:"path"`
}

// Run executes the info command.
func (c *InfoCmd) Run(cfg *config) error {
	data, err := fileutil.ReadFileCapped(c.Path, cfg.Limits.MaxSize)
	if err != nil {
		return err
	}
	digest := blake3.Sum256(data)

	obj, err := readTree(c.Path, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("file:   %s\n", c.Path)
	fmt.Printf("size:   %d bytes\n", len(data))
	fmt.Printf("blake3: %s\n", hex.EncodeToString(digest[:]))
	fmt.Printf("object: %s\n", obj.Name())
	fmt.Printf("items:  %d\n", obj.NItems())
	if ids := gwy.EnumerateChannels(obj); len(ids) > 0 {
		fmt.Printf("channels: %v\n", ids)
	}
	if ids := gwy.EnumerateGraphs(obj); len(ids) > 0 {
		fmt.Printf("graphs: %v\n", ids)
	}
	if ids := gwy.EnumerateVolume(obj); len(ids) > 0 {
		fmt.Printf("volume: %v\n", ids)
	}
	return nil
}

// VersionCmd prints the tool version.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(cfg *config) error {
	fmt.Printf("gwy %s\n", version)
	return nil
}
