package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/gg"

	"github.com/bondtoten/iconset/internal/catalog"
	"github.com/bondtoten/iconset/internal/config"
	"github.com/bondtoten/iconset/internal/icon"
	"github.com/bondtoten/iconset/internal/paths"
	"github.com/bondtoten/iconset/internal/runlog"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// overrides collects the flag values that take precedence over the
// config file.
type overrides struct {
	out      string
	source   string
	font     string
	manifest bool
	log      bool
}

func main() {
	args := os.Args[1:]
	configPath := ""
	verbose := false
	var o overrides

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 >= len(args) {
				fatal("--out requires a directory path")
			}
			o.out = args[i+1]
			i++
		case "--source", "-s":
			if i+1 >= len(args) {
				fatal("--source requires an image path")
			}
			o.source = args[i+1]
			i++
		case "--font":
			if i+1 >= len(args) {
				fatal("--font requires a font file path")
			}
			o.font = args[i+1]
			i++
		case "--config", "-c":
			if i+1 >= len(args) {
				fatal("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		case "--manifest":
			o.manifest = true
		case "--log":
			o.log = true
		case "--verbose":
			verbose = true
		default:
			filtered = append(filtered, args[i])
		}
	}

	if verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Bare invocation renders the full set with defaults.
	if len(filtered) == 0 {
		generateCmd(configPath, o)
		return
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "list", "-l", "--list":
		rejectArgs(filtered)
		listSizes()
	case "generate":
		rejectArgs(filtered)
		generateCmd(configPath, o)
	case "resize":
		rejectArgs(filtered)
		resizeCmd(configPath, o)
	case "init":
		rejectArgs(filtered)
		initCmd(configPath)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(os.Stderr, "Run 'iconset help' for usage.\n")
		os.Exit(1)
	}
}

// extraArgs reports the stray positionals left after a subcommand that
// takes none.
func extraArgs(cmd string, rest []string) error {
	if len(rest) == 0 {
		return nil
	}
	return fmt.Errorf("unexpected argument %q after %s", rest[0], cmd)
}

// rejectArgs exits with the usage hint when a subcommand got positional
// arguments it does not take.
func rejectArgs(filtered []string) {
	if err := extraArgs(filtered[0], filtered[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'iconset help' for usage.\n")
		os.Exit(1)
	}
}

// fatal prints an Error: line to stderr and exits non-zero.
func fatal(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
	os.Exit(1)
}

// loadConfig loads the config file and folds in the flag overrides.
func loadConfig(configPath string, o overrides) config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fatal("%v", err)
	}
	return apply(cfg, o)
}

// apply returns cfg with every set override replacing the config value.
func apply(cfg config.Config, o overrides) config.Config {
	if o.out != "" {
		cfg.Output = o.out
	}
	if o.source != "" {
		cfg.Source = o.source
	}
	if o.font != "" {
		cfg.Font = o.font
	}
	if o.manifest {
		cfg.Manifest = true
	}
	if o.log {
		cfg.Log = true
	}
	return cfg
}

// newRenderer builds the renderer, attaching the label font when one is
// configured and labels are enabled. A font that fails to load only
// costs the labels, never the batch.
func newRenderer(cfg config.Config) *icon.Renderer {
	r := icon.NewRenderer(cfg.Palette)
	if cfg.Font != "" && cfg.Labels {
		if err := r.LoadFont(cfg.Font); err != nil {
			fmt.Fprintf(os.Stderr, "warning: labels disabled: %v\n", err)
		}
	}
	return r
}

func generateCmd(configPath string, o overrides) {
	cfg := loadConfig(configPath, o)
	r := newRenderer(cfg)

	written, err := catalog.Generate(cfg.Output, r, os.Stdout)
	if cfg.Log {
		failed := 0
		if err != nil {
			failed = 1
		}
		runlog.Log("generate", cfg.Output, written, failed)
	}
	if err != nil {
		fatal("%v", err)
	}
	writeManifestIfEnabled(cfg)
	fmt.Println(green("Done."))
}

func resizeCmd(configPath string, o overrides) {
	cfg := loadConfig(configPath, o)

	written, failed, err := catalog.ResizeFrom(cfg.Output, cfg.Source, os.Stdout)
	// A batch that never started (unusable source) leaves no log entry.
	if cfg.Log && (err == nil || written > 0 || failed > 0) {
		runlog.Log("resize", cfg.Output, written, failed)
	}
	if err != nil {
		fatal("%v", err)
	}
	writeManifestIfEnabled(cfg)
	fmt.Println(green("Done."))
}

func writeManifestIfEnabled(cfg config.Config) {
	if !cfg.Manifest {
		return
	}
	if err := catalog.WriteManifest(cfg.Output); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("  wrote %s\n", paths.ManifestFileName)
}

func listSizes() {
	fmt.Println(cyan("Icon catalog:"))
	for _, s := range catalog.Sizes {
		name, err := s.FileName()
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("  %4dpx  %s (%gpt)  %s\n", s.Pixels, s.Scale, s.Base(), name)
	}
	fmt.Println(bold(fmt.Sprintf("%d entries", len(catalog.Sizes))))
}

// initCmd writes the built-in defaults to iconset-config.json (or the
// --config path) so users can start from a complete example.
func initCmd(configPath string) {
	path := configPath
	if path == "" {
		path = paths.ConfigFileName
	}
	if _, err := os.Stat(path); err == nil {
		fatal("%s already exists", path)
	}

	data, err := json.MarshalIndent(config.Default(), "", "  ")
	if err != nil {
		fatal("marshaling config: %v", err)
	}
	data = append(data, '\n')
	if err := paths.AtomicWrite(path, data); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Wrote default config to %s\n", path)
	fmt.Println("Edit it to change the output directory, palette, or font.")
}

func printVersion() {
	fmt.Printf("iconset %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("iconset %s - Generate the Bond to Ten iOS app icon set\n", version)
	fmt.Println(`
Usage:
  iconset [options]                Render all icons (same as 'iconset generate')
  iconset generate [options]       Render the base-10 blocks artwork at every size
  iconset resize [options]         Resample a source image to every size
  iconset list                     Print the size table and file names
  iconset init                     Write a default iconset-config.json

Options:
  --out, -o <dir>       Output directory (default: ios/Runner/Assets.xcassets/AppIcon.appiconset)
  --source, -s <path>   Source image for resize (default: icon/bond_to_ten_icon_167x167.png)
  --font <path>         TTF/OTF font for the "100"/"10"/"1" labels
  --config, -c <path>   Path to iconset-config.json
  --manifest            Also write the Contents.json manifest
  --log                 Append a run summary to the data-dir log
  --verbose             Print renderer diagnostics to stderr

Commands:
  generate              Render the artwork (default when no command given)
  resize                Resample the configured source image
  list, -l, --list      Show every (size, scale) entry and its file name
  init                  Write a starter config file
  version, -V           Show version and build date
  help, -h, --help      Show this help message

Config resolution:
  1. --config <path>           (explicit)
  2. ./iconset-config.json     (project-local)
  3. built-in defaults

https://github.com/bondtoten/iconset`)
}
