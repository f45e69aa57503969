package main

import (
	"log/slog"
	"os"

	"racer/internal/config"
	"racer/internal/game"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	slog.Info("starting", "width", cfg.WindowWidth, "height", cfg.WindowHeight, "seed", cfg.Seed)
	if err := game.Run(cfg); err != nil {
		slog.Error("game failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, opts)
	default:
		h = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(h))
}
