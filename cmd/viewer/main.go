// Package main is the entry point for the interactive viewer.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/app"
	"github.com/Faultbox/softraster/internal/config"
	"github.com/Faultbox/softraster/internal/engine/debug"
	"github.com/Faultbox/softraster/internal/logger"
	"github.com/Faultbox/softraster/internal/viewer"
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
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== softraster viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	world, err := app.Build(cfg)
	if err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		os.Exit(1)
	}
	r, err := app.NewRenderer(cfg)
	if err != nil {
		logger.Error("failed to create renderer", zap.Error(err))
		os.Exit(1)
	}
	format, err := debug.ParseImageFormat(cfg.Output.Format)
	if err != nil {
		logger.Error("invalid screenshot format", zap.Error(err))
		os.Exit(1)
	}
	capture := debug.NewScreenshotCapture(filepath.Join(cfg.Output.Dir, "screenshots"), "screenshot", format)

	v, err := viewer.New(viewer.Config{
		Title:      "softraster",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		FPSLimit:   cfg.Graphics.FPSLimit,
		Bounds:     cfg.Output.Bounds,
	}, r, world, capture)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	// Run the viewer loop
	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
