package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/FocuswithJustin/gwyfile/internal/validation"
)

// config holds the runtime settings of the gwy tool, loadable from a TOML
// file and overridable by command-line flags.
type config struct {
	Limits limitsConfig `toml:"limits"`
	Log    logConfig    `toml:"log"`
}

type limitsConfig struct {
	// MaxDepth is the decoder nesting ceiling; 0 keeps the library default.
	MaxDepth int `toml:"max_depth"`
	// MaxSize is the read budget in bytes for compressed or piped input.
	MaxSize int64 `toml:"max_size"`
}

type logConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func defaultConfig() config {
	return config{
		Limits: limitsConfig{
			MaxDepth: validation.MaxDecodeDepth,
			MaxSize:  0,
		},
		Log: logConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// loadConfig reads a TOML config file over the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// applyFlags overlays command-line flags onto the config.
func (c *config) applyFlags() {
	if CLI.LogLevel != "" {
		c.Log.Level = CLI.LogLevel
	}
	if CLI.LogFormat != "" {
		c.Log.Format = CLI.LogFormat
	}
}
