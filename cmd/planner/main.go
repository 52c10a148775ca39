package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"canvas_sync/internal/config"
	"canvas_sync/internal/plan"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	fs := afero.NewBasePathFs(afero.NewOsFs(), cfg.Storage.DownloadDir)

	planner := plan.NewPlanner(fs, cfg.Plan, logger)

	result, err := planner.Plan()
	if err != nil {
		logger.Error("failed to build plan", "error", err)
		os.Exit(1)
	}

	if err := planner.Write(result); err != nil {
		logger.Error("failed to write plan", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
