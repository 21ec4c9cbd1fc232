package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/subtext/pkg/config"
)

// envVarPrefix is the prefix for all subtext environment variables.
const envVarPrefix = "SUBTEXT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ENCODING":        {field: "encoding", typ: envTypeString},
	"AUTODETECT_UTF8": {field: "autodetect_utf8", typ: envTypeBool},
	"JUSTIFY":         {field: "justify", typ: envTypeString},
	"FORMATTED":       {field: "formatted", typ: envTypeBool},
	"LOG_LEVEL":       {field: "log_level", typ: envTypeString},
	"FORMAT":          {field: "format", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SUBTEXT_ (e.g., SUBTEXT_ENCODING).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "encoding":
		cfg.Encoding = value
	case "justify":
		cfg.Justify = config.Justification(value)
	case "log_level":
		cfg.LogLevel = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "autodetect_utf8":
		cfg.AutodetectUTF8 = &value
	case "formatted":
		cfg.Formatted = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"SUBTEXT_ENCODING":        "Source charset name (see 'subtext encodings')",
		"SUBTEXT_AUTODETECT_UTF8": "UTF-8 autodetection: true or false",
		"SUBTEXT_JUSTIFY":         "Default justification: center, left or right",
		"SUBTEXT_FORMATTED":       "Markup parsing: true or false",
		"SUBTEXT_LOG_LEVEL":       "Log level: debug, info, warn or error",
		"SUBTEXT_FORMAT":          "Output format: text, json or pretty",
	}
}
