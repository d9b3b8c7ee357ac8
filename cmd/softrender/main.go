// Package main is the entry point for the headless renderer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Faultbox/softraster/internal/app"
	"github.com/Faultbox/softraster/internal/config"
	"github.com/Faultbox/softraster/internal/engine/debug"
	"github.com/Faultbox/softraster/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := initLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== softrender ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func initLogger(cfg *config.Config) error {
	opts := logger.Options{
		Level:   cfg.Logging.Level,
		JSON:    cfg.Logging.JSON,
		Console: true,
	}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	return logger.InitWithOptions(opts)
}

func run(ctx context.Context, cfg *config.Config) error {
	world, err := app.Build(cfg)
	if err != nil {
		return err
	}
	r, err := app.NewRenderer(cfg)
	if err != nil {
		return err
	}
	format, err := debug.ParseImageFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	opts := app.FrameOptions{
		Frames:  cfg.Output.Frames,
		Bounds:  cfg.Output.Bounds,
		Capture: debug.NewScreenshotCapture(cfg.Output.Dir, cfg.Output.Prefix, format),
	}

	// Only draw a progress bar when someone is watching.
	if term.IsTerminal(int(os.Stderr.Fd())) && cfg.Output.Frames > 1 {
		bar := progressbar.NewOptions(cfg.Output.Frames,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Close()
		opts.OnFrame = func(int, string) { bar.Add(1) }
	}

	paths, err := app.RenderFrames(ctx, r, world, opts)
	for _, e := range multierr.Errors(err) {
		logger.Warn("frame error", zap.Error(e))
	}
	logger.Info("frames written",
		zap.Int("count", len(paths)),
		zap.String("dir", cfg.Output.Dir),
	)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if len(paths) < cfg.Output.Frames {
		return fmt.Errorf("wrote %d of %d frames: %w", len(paths), cfg.Output.Frames, err)
	}
	return nil
}
