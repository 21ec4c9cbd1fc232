package configloader

import "github.com/yaklabco/subtext/pkg/config"

// merge combines two configurations, with override taking precedence
// over base. Scalar string fields override when non-empty; the
// tri-state booleans override when their pointer is set, so an
// explicit "false" in a higher-precedence source wins.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.Encoding != "" {
		result.Encoding = override.Encoding
	}
	if override.AutodetectUTF8 != nil {
		result.AutodetectUTF8 = override.AutodetectUTF8
	}
	if override.Justify != "" {
		result.Justify = override.Justify
	}
	if override.Formatted != nil {
		result.Formatted = override.Formatted
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	// CLI-only booleans: a plain bool cannot express "explicitly
	// false", so only true overrides. Flags can enable but a config
	// file cannot unset them.
	if override.Debug {
		result.Debug = true
	}
	if override.NoColor {
		result.NoColor = true
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs
// taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
