// Package config holds run settings unmarshalled from viper, which merges
// command-line flags, GREEDYASM_* environment variables and an optional
// settings file (see internal/app).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"greedyasm/core/fasta"
)

// EnvPrefix is the prefix for environment overrides, e.g. GREEDYASM_MIN_OVERLAP.
const EnvPrefix = "GREEDYASM"

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
	FormatFASTA = "fasta"
)

// Settings is the resolved configuration of one run.
type Settings struct {
	// Input
	InputFormat string `mapstructure:"input-format"`

	// Assembly
	MinOverlap    int  `mapstructure:"min-overlap"`
	RequireSingle bool `mapstructure:"require-single"`

	// Output
	Output    string `mapstructure:"output"`
	LineWidth int    `mapstructure:"line-width"`
	Sort      bool   `mapstructure:"sort"`
	NoHeader  bool   `mapstructure:"no-header"`
	Trace     bool   `mapstructure:"trace"`

	// Misc
	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		InputFormat: string(fasta.FormatFASTA),
		MinOverlap:  1,
		Output:      FormatText,
		LineWidth:   60,
	}
}

// SetDefaults registers Defaults() on v so file and env values have a base.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("input-format", d.InputFormat)
	v.SetDefault("min-overlap", d.MinOverlap)
	v.SetDefault("require-single", d.RequireSingle)
	v.SetDefault("output", d.Output)
	v.SetDefault("line-width", d.LineWidth)
	v.SetDefault("sort", d.Sort)
	v.SetDefault("no-header", d.NoHeader)
	v.SetDefault("trace", d.Trace)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("quiet", d.Quiet)
}

// NewViper returns a viper instance with defaults and environment lookup wired.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional settings file into v and decodes the result.
func Load(v *viper.Viper, file string) (Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read settings %s: %w", file, err)
		}
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.Output = strings.ToLower(strings.TrimSpace(s.Output))
	s.InputFormat = strings.ToLower(strings.TrimSpace(s.InputFormat))
	return s, s.Validate()
}

// Validate applies the invariants shared by every entry point.
func (s Settings) Validate() error {
	if s.MinOverlap < 1 {
		return errors.New("--min-overlap must be ≥ 1")
	}
	if s.LineWidth < 0 {
		return errors.New("--line-width must be ≥ 0")
	}
	switch s.Output {
	case FormatText, FormatJSON, FormatJSONL, FormatYAML, FormatFASTA:
	default:
		return fmt.Errorf("invalid --output %q", s.Output)
	}
	switch fasta.Format(s.InputFormat) {
	case fasta.FormatFASTA, fasta.FormatLines:
	default:
		return fmt.Errorf("invalid --input-format %q", s.InputFormat)
	}
	if s.Verbose && s.Quiet {
		return errors.New("--verbose conflicts with --quiet")
	}
	return nil
}
