package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"canvas_sync/internal/config"
	"canvas_sync/internal/manifest"
	"canvas_sync/internal/pipeline"
	"canvas_sync/internal/service"
	"canvas_sync/internal/source/canvas"
	"canvas_sync/internal/storage/artifact"
	"canvas_sync/internal/storage/state"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	force := flag.Bool("force", false, "resync every item regardless of tracked state")
	course := flag.String("course", "", "only sync courses whose name or code contains this string")
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

	// Root every write under the download directory
	if err := os.MkdirAll(cfg.Storage.DownloadDir, 0o755); err != nil {
		logger.Error("failed to create download dir", "error", err)
		os.Exit(1)
	}
	fs := afero.NewBasePathFs(afero.NewOsFs(), cfg.Storage.DownloadDir)

	store := artifact.NewStore(fs)
	manifests := manifest.NewWriter(store, cfg.Canvas.BaseURL, logger)

	// Initialize Canvas source
	source := canvas.New(canvas.Config{
		BaseURL:        cfg.Canvas.BaseURL,
		SessionCookie:  cfg.Canvas.SessionCookie,
		PageSize:       cfg.Canvas.PageSize,
		Timeout:        cfg.Canvas.Timeout,
		MaxAttempts:    cfg.Canvas.Retry.MaxAttempts,
		InitialBackoff: cfg.Canvas.Retry.InitialBackoff,
		MaxBackoff:     cfg.Canvas.Retry.MaxBackoff,
	}, logger)

	trackers := trackerFactory{fs: fs, force: *force, logger: logger}

	syncService := service.NewService(source, store, trackers, manifests, logger)
	runner := pipeline.NewRunner(syncService, *course, cfg.Sync.CourseTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting course sync",
		"base_url", cfg.Canvas.BaseURL,
		"download_dir", cfg.Storage.DownloadDir,
		"force", *force,
	)

	if _, err := runner.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("sync failed", "error", err)
		os.Exit(1)
	}
}

// trackerFactory opens one state tracker per course directory.
type trackerFactory struct {
	fs     afero.Fs
	force  bool
	logger *slog.Logger
}

func (f trackerFactory) ForCourse(courseDir string) service.Tracker {
	return state.NewTracker(f.fs, courseDir, f.force, f.logger)
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
