// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/starford/bullhorn/internal/extract"
	"github.com/starford/bullhorn/internal/forum"
	"github.com/starford/bullhorn/internal/pipeline"
	"github.com/starford/bullhorn/internal/report"
)

// Run executes one extraction run with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.Level(),
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("listing_url", cfg.Forum.ListingURL),
		slog.String("raw_url", cfg.Forum.RawURL),
		slog.String("output_dir", cfg.Output.Dir),
		slog.Int("concurrency", cfg.Forum.Concurrency),
		slog.String("log_level", cfg.App.Level().String()))

	// Abort cleanly on interrupt; the run either completes or stops here.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := app.source
	if src == nil {
		src = forum.NewClient(forum.Options{
			ListingURL:        cfg.Forum.ListingURL,
			RawURL:            cfg.Forum.RawURL,
			Timeout:           cfg.Forum.Timeout(),
			RequestsPerSecond: cfg.Forum.RequestsPerSecond,
		}, logger)
	}

	ex, err := extract.New(cfg.Extract.Keywords)
	if err != nil {
		return err
	}

	tables, err := pipeline.Run(ctx, src, ex, cfg.Forum.Concurrency, logger)
	if err != nil {
		return err
	}

	writer, err := report.NewWriter(cfg.Output.Dir)
	if err != nil {
		return err
	}
	if err := writer.WriteAll(tables, logger); err != nil {
		return err
	}

	logger.Info("Run complete",
		slog.Int("topics", len(tables.Views)),
		slog.Int("mentions", len(tables.Mentions)),
		slog.Int("contributors", len(tables.UserTotals)))
	return nil
}
