package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/bondtoten/iconset/internal/icon"
	"github.com/bondtoten/iconset/internal/paths"
)

// Config holds the generator settings. Every field has a default so a
// bare invocation works with no config file present.
type Config struct {
	// Output is the directory the icon set is written into.
	Output string `json:"output,omitempty"`
	// Source is the image the resize command resamples.
	Source string `json:"source,omitempty"`
	// Font is a TTF/OTF file for the "100"/"10"/"1" labels. Empty means
	// no labels.
	Font string `json:"font,omitempty"`
	// Labels disables label drawing when false, even with a font set.
	Labels bool `json:"labels"`
	// Manifest also writes the Contents.json asset-catalog manifest.
	Manifest bool `json:"manifest,omitempty"`
	// Log appends a history entry per batch to the data-dir log file.
	Log bool `json:"log,omitempty"`
	// Palette overrides the artwork colors ("#RGB" or "#RRGGBB").
	Palette icon.Palette `json:"palette,omitempty"`
}

// Default returns the built-in configuration used when no file is found.
func Default() Config {
	return Config{
		Output:  paths.DefaultOutputDir,
		Source:  paths.DefaultSourcePath,
		Labels:  true,
		Palette: icon.DefaultPalette(),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads the configuration. It tries, in order:
//  1. explicitPath (if non-empty; any failure is an error)
//  2. iconset-config.json in the current directory
//  3. built-in defaults
//
// A missing implicit file is not an error; the tool must run bare.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}
	if _, err := os.Stat(paths.ConfigFileName); err == nil {
		return readConfig(paths.ConfigFileName)
	}
	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := ValidatePalette(cfg.Palette); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// hexColor matches the palette formats we accept. The drawing layer
// silently falls back to black for anything it cannot parse, so a typo
// has to be caught here.
var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidatePalette checks that every palette entry is a "#RGB" or
// "#RRGGBB" hex string.
func ValidatePalette(p icon.Palette) error {
	colors := []struct {
		name, value string
	}{
		{"background", p.Background},
		{"hundred", p.Hundred},
		{"ten", p.Ten},
		{"unit", p.Unit},
		{"border", p.Border},
		{"label", p.Label},
		{"trim", p.Trim},
	}
	for _, c := range colors {
		if !hexColor.MatchString(c.value) {
			return fmt.Errorf("palette %s: %q is not a #RGB or #RRGGBB color", c.name, c.value)
		}
	}
	return nil
}
