// Package config defines the preview configuration types.
// These are pure data structures; loading lives in yaml.go.
package config

import "fmt"

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Mode selects the decoration mode.
type Mode string

const (
	ModeEditable Mode = "editable"
	ModeReadOnly Mode = "read-only"
)

// IsValid returns true if the mode is one of the known values.
func (m Mode) IsValid() bool {
	switch m {
	case ModeEditable, ModeReadOnly:
		return true
	default:
		return false
	}
}

// ScansConfig toggles the pattern-driven scans.
type ScansConfig struct {
	Math      bool `yaml:"math"`
	Highlight bool `yaml:"highlight"`
	Embeds    bool `yaml:"embeds"`
	Tables    bool `yaml:"tables"`
}

// Config is the root configuration for gomdview.
type Config struct {
	// Mode is the default decoration mode.
	Mode Mode `yaml:"mode"`

	// Color controls colorized output: auto, always, never.
	Color ColorMode `yaml:"color"`

	// Vault is the root directory image embeds resolve against.
	// Empty means the directory of the previewed file.
	Vault string `yaml:"vault"`

	// Scans toggles the pattern-driven scans.
	Scans ScansConfig `yaml:"scans"`

	// LogLevel sets logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Mode:  ModeReadOnly,
		Color: ColorAuto,
		Scans: ScansConfig{
			Math:      true,
			Highlight: true,
			Embeds:    true,
			Tables:    true,
		},
		LogLevel: "info",
	}
}

// Validate checks enumerated fields, returning the first problem found.
func (c *Config) Validate() error {
	if !c.Mode.IsValid() {
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	return nil
}
