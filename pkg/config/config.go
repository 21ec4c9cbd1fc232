// Package config defines core configuration types for subtext.
// These types are pure data structures with no dependencies on config loaders.
package config

import "github.com/yaklabco/subtext/pkg/subtitle"

// OutputFormat specifies the output format for decoded subtitles.
type OutputFormat string

const (
	FormatText   OutputFormat = "text"
	FormatJSON   OutputFormat = "json"
	FormatPretty OutputFormat = "pretty"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatPretty:
		return true
	default:
		return false
	}
}

// Justification is the default horizontal anchor for subtitles that
// carry no alignment markup of their own.
type Justification string

const (
	JustifyCenter Justification = "center"
	JustifyLeft   Justification = "left"
	JustifyRight  Justification = "right"
)

// IsValid returns true if the justification is known. The empty
// string is valid and means center.
func (j Justification) IsValid() bool {
	switch j {
	case "", JustifyCenter, JustifyLeft, JustifyRight:
		return true
	default:
		return false
	}
}

// Alignment returns the alignment bits for the justification.
func (j Justification) Alignment() subtitle.Alignment {
	switch j {
	case JustifyLeft:
		return subtitle.AlignLeft
	case JustifyRight:
		return subtitle.AlignRight
	default:
		return subtitle.AlignCenter
	}
}

// Config is the root configuration structure for subtext.
//
// AutodetectUTF8 and Formatted are pointers so that merging can tell
// "explicitly false" apart from "not set"; use the accessor methods
// to read them with their defaults applied.
type Config struct {
	// Encoding is the source charset name. Empty means UTF-8.
	Encoding string `mapstructure:"encoding" yaml:"encoding"`

	// AutodetectUTF8 lets valid UTF-8 input bypass the configured
	// charset. Defaults to true.
	AutodetectUTF8 *bool `mapstructure:"autodetect_utf8" yaml:"autodetect_utf8"`

	// Justify is the default horizontal anchor ("center", "left", "right").
	Justify Justification `mapstructure:"justify" yaml:"justify"`

	// Formatted enables markup parsing. Defaults to true.
	Formatted *bool `mapstructure:"formatted" yaml:"formatted"`

	// LogLevel is the logging verbosity ("debug", "info", "warn", "error").
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// CLI-level options (not persisted to config files).

	// Debug forces debug-level logging.
	Debug bool `mapstructure:"-" yaml:"-"`

	// NoColor disables styled terminal output.
	NoColor bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	autodetect := true
	formatted := true
	return &Config{
		Encoding:       "",
		AutodetectUTF8: &autodetect,
		Justify:        JustifyCenter,
		Formatted:      &formatted,
		LogLevel:       "info",
		Format:         FormatText,
	}
}

// AutodetectEnabled reports the autodetection setting with its
// default applied.
func (c *Config) AutodetectEnabled() bool {
	return c.AutodetectUTF8 == nil || *c.AutodetectUTF8
}

// FormattedEnabled reports the markup setting with its default applied.
func (c *Config) FormattedEnabled() bool {
	return c.Formatted == nil || *c.Formatted
}
