package main

import (
	"log"
	"os"
	"runtime"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/phambaophuc/chimg/internal/app"
	"github.com/phambaophuc/chimg/internal/cli"
	"github.com/phambaophuc/chimg/internal/config"
	"github.com/phambaophuc/chimg/internal/console"
	"github.com/phambaophuc/chimg/internal/logger"
	"github.com/phambaophuc/chimg/internal/services/display"
	"github.com/phambaophuc/chimg/internal/services/display/window"
	"github.com/phambaophuc/chimg/internal/services/processor"
)

func init() {
	// GLFW has to run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	printer := console.NewPrinter(color.Output, cfg.Console.Color && !color.NoColor)

	logger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	if !cfg.EnvFileLoaded {
		logger.Debug("No .env file found")
	}

	filter, err := processor.ParseFilter(cfg.Processing.Filter)
	if err != nil {
		logger.Fatal("Invalid CHIMG_FILTER", zap.Error(err))
	}
	imageProcessor := processor.NewImageProcessor(filter, cfg.Processing.JPEGQuality)

	pipeline := app.New(imageProcessor, newViewer(cfg.Display, logger), printer, logger)

	if err := cli.NewRootCmd(pipeline).Execute(); err != nil {
		printer.PrintError(err)
		logger.Sync()
		os.Exit(1)
	}
}

func newViewer(cfg config.DisplayConfig, logger *zap.Logger) display.Viewer {
	terminal := display.NewTerminal(os.Stdin, os.Stdout)

	switch cfg.Mode {
	case config.DisplayTerminal:
		return terminal
	case config.DisplayWindow:
		return window.New(logger, cfg.ScreenFraction)
	default:
		return &display.Fallback{
			Primary:   window.New(logger, cfg.ScreenFraction),
			Secondary: terminal,
			Logger:    logger,
		}
	}
}
