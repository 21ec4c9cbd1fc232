package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/subtext/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies boolean pointers", func(t *testing.T) {
		original := config.NewConfig()
		clone := original.Clone()

		*clone.AutodetectUTF8 = false
		*clone.Formatted = false

		assert.True(t, *original.AutodetectUTF8, "clone mutation leaked into original")
		assert.True(t, *original.Formatted, "clone mutation leaked into original")
	})
}

func TestToYAMLRoundTrip(t *testing.T) {
	original := config.NewConfig()
	original.Encoding = "Windows-1251"
	original.Justify = config.JustifyLeft
	original.Format = config.FormatJSON

	data, err := original.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, original.Encoding, parsed.Encoding)
	assert.Equal(t, original.Justify, parsed.Justify)
	assert.Equal(t, original.Format, parsed.Format)
	require.NotNil(t, parsed.AutodetectUTF8)
	assert.True(t, *parsed.AutodetectUTF8)
}

func TestFromYAML(t *testing.T) {
	t.Run("partial document leaves zero values", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("encoding: KOI8-R\n"))
		require.NoError(t, err)

		assert.Equal(t, "KOI8-R", cfg.Encoding)
		assert.Nil(t, cfg.AutodetectUTF8, "absent field must stay unset for merging")
		assert.Nil(t, cfg.Formatted)
	})

	t.Run("explicit false survives", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("formatted: false\n"))
		require.NoError(t, err)

		require.NotNil(t, cfg.Formatted)
		assert.False(t, *cfg.Formatted)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		_, err := config.FromYAML([]byte("encoding: [unclosed"))
		assert.Error(t, err)
	})
}

func TestToYAMLWithHeader(t *testing.T) {
	cfg := config.NewConfig()

	data, err := cfg.ToYAMLWithHeader("# subtext configuration")
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# subtext configuration\n"))
	assert.Contains(t, text, "encoding:")
}
