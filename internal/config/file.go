package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional ambient tuning file the CLI accepts via
// --config or LOXCONFIG (spec §6's CLI surface describes the language's
// own invocation; this is the wrapper's own concern, same as argument
// parsing itself). None of its fields change language semantics.
type FileConfig struct {
	MaxCallDepth int    `yaml:"maxCallDepth"`
	Color        string `yaml:"color"` // "auto" | "always" | "never"
}

// Default returns the zero-config defaults applied when no file is given.
func Default() FileConfig {
	return FileConfig{MaxCallDepth: DefaultMaxCallDepth, Color: "auto"}
}

// LoadFile reads and parses a YAML config file, filling in defaults for
// any field the file omits.
func LoadFile(path string) (FileConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MaxCallDepth <= 0 {
		cfg.MaxCallDepth = DefaultMaxCallDepth
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}

// ColorModeFromString maps the file's "auto"/"always"/"never" string to a
// diagnostics.ColorMode-shaped int (0 auto, 1 always, 2 never); config does
// not import diagnostics, so these are plain values the CLI translates at
// the boundary.
func ColorModeFromString(s string) int {
	switch s {
	case "always":
		return 1
	case "never":
		return 2
	default:
		return 0
	}
}
