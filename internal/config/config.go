package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the tools look for a config file when -config is not
// given.
const DefaultPath = "nmskit.yaml"

// Number formats for derived values.
const (
	FormatDec = "dec"
	FormatHex = "hex"
)

// Colour modes.
const (
	ColourAuto   = "auto"
	ColourAlways = "always"
	ColourNever  = "never"
)

// Config holds settings shared by the command line tools and the glyph editor.
type Config struct {
	Output OutputConfig `yaml:"output"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig controls how codes and derived values are printed.
type OutputConfig struct {
	Separator       string `yaml:"separator"`
	NumberFormat    string `yaml:"number_format"`    // dec | hex
	CoordinateSpace string `yaml:"coordinate_space"` // signed | galactic
	Colour          string `yaml:"colour"`           // auto | always | never
}

// UIConfig controls the glyph editor.
type UIConfig struct {
	Theme string `yaml:"theme"` // telix | atlas
	// Code the editor starts with; empty starts blank.
	InitialCode string `yaml:"initial_code"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Separator:       ":",
			NumberFormat:    FormatDec,
			CoordinateSpace: "signed",
			Colour:          ColourAuto,
		},
		UI: UIConfig{
			Theme: "telix",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads config from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if c.Output.Separator == "" {
		return fmt.Errorf("output.separator must not be empty")
	}
	if err := oneOf("output.number_format", c.Output.NumberFormat, FormatDec, FormatHex); err != nil {
		return err
	}
	if err := oneOf("output.coordinate_space", c.Output.CoordinateSpace, "signed", "portal", "galactic"); err != nil {
		return err
	}
	if err := oneOf("output.colour", c.Output.Colour, ColourAuto, ColourAlways, ColourNever); err != nil {
		return err
	}
	if err := oneOf("ui.theme", c.UI.Theme, "telix", "atlas"); err != nil {
		return err
	}
	return oneOf("log.level", c.Log.Level, "debug", "info", "warn", "warning", "error")
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%s: %q is not one of %s", key, value, strings.Join(allowed, ", "))
}
