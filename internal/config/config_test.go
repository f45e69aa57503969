package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"RACER_WIDTH", "RACER_HEIGHT", "RACER_SEED", "RACER_MUTE", "RACER_VSYNC", "RACER_LOG_LEVEL", "RACER_LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, 1280, cfg.WindowWidth)
	assert.Equal(t, 720, cfg.WindowHeight)
	assert.NotZero(t, cfg.Seed)
	assert.False(t, cfg.Mute)
	assert.True(t, cfg.VSync)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("RACER_WIDTH", "800")
	t.Setenv("RACER_HEIGHT", "600")
	t.Setenv("RACER_SEED", "42")
	t.Setenv("RACER_MUTE", "true")
	t.Setenv("RACER_VSYNC", "0")
	t.Setenv("RACER_LOG_LEVEL", "debug")
	t.Setenv("RACER_LOG_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 600, cfg.WindowHeight)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Mute)
	assert.False(t, cfg.VSync)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_MalformedFallsBack(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, cfg *Config)
	}{
		{"RACER_WIDTH", "wide", func(t *testing.T, cfg *Config) { assert.Equal(t, 1280, cfg.WindowWidth) }},
		{"RACER_HEIGHT", "-5", func(t *testing.T, cfg *Config) { assert.Equal(t, 720, cfg.WindowHeight) }},
		{"RACER_MUTE", "maybe", func(t *testing.T, cfg *Config) { assert.False(t, cfg.Mute) }},
		{"RACER_VSYNC", "nope", func(t *testing.T, cfg *Config) { assert.True(t, cfg.VSync) }},
		{"RACER_SEED", "-1", func(t *testing.T, cfg *Config) { assert.NotZero(t, cfg.Seed) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			tt.check(t, Load())
		})
	}
}
