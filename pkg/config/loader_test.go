package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justerika/signup-gateway/pkg/config"
)

type testConfig struct {
	Port    int    `env:"TEST_CONFIG_PORT" envDefault:"8080"`
	Name    string `env:"TEST_CONFIG_NAME"`
	Enabled bool   `env:"TEST_CONFIG_ENABLED" envDefault:"false"`
}

type requiredConfig struct {
	Token string `env:"TEST_CONFIG_REQUIRED_TOKEN,required"`
}

type prefixedConfig struct {
	First  brandSection `envPrefix:"TEST_FIRST_"`
	Second brandSection `envPrefix:"TEST_SECOND_"`
}

type brandSection struct {
	SheetID string `env:"SHEET_ID"`
	Sender  string `env:"SENDER_EMAIL"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 8080, cfg.Port)
		assert.False(t, cfg.Enabled)
	})

	t.Run("values from environment", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_PORT", "9090")
		t.Setenv("TEST_CONFIG_NAME", "signup-gateway")
		t.Setenv("TEST_CONFIG_ENABLED", "true")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "signup-gateway", cfg.Name)
		assert.True(t, cfg.Enabled)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("nested prefixes", func(t *testing.T) {
		t.Setenv("TEST_FIRST_SHEET_ID", "sheet-1")
		t.Setenv("TEST_SECOND_SHEET_ID", "sheet-2")
		t.Setenv("TEST_SECOND_SENDER_EMAIL", "hello@example.com")

		var cfg prefixedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "sheet-1", cfg.First.SheetID)
		assert.Equal(t, "sheet-2", cfg.Second.SheetID)
		assert.Equal(t, "hello@example.com", cfg.Second.Sender)
		assert.Empty(t, cfg.First.Sender)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required value", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("does not panic with defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
