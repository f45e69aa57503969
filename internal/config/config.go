package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	WindowWidth  int
	WindowHeight int
	Seed         uint64
	Mute         bool
	VSync        bool
	LogLevel     string
	LogFormat    string
}

func Load() *Config {
	return &Config{
		WindowWidth:  getEnvInt("RACER_WIDTH", 1280),
		WindowHeight: getEnvInt("RACER_HEIGHT", 720),
		Seed:         getEnvUint64("RACER_SEED", uint64(time.Now().UnixNano())),
		Mute:         getEnvBool("RACER_MUTE", false),
		VSync:        getEnvBool("RACER_VSYNC", true),
		LogLevel:     getEnv("RACER_LOG_LEVEL", "info"),
		LogFormat:    getEnv("RACER_LOG_FORMAT", "text"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

func getEnvUint64(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}
