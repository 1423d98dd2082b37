// Package app runs the chimg pipeline: resolve, resize, save, display.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/phambaophuc/chimg/internal/console"
	"github.com/phambaophuc/chimg/internal/models"
	"github.com/phambaophuc/chimg/internal/services/display"
	"github.com/phambaophuc/chimg/internal/services/processor"
	"github.com/phambaophuc/chimg/internal/services/resolver"
	"github.com/phambaophuc/chimg/internal/services/storage"
)

type App struct {
	resolver  *resolver.Resolver
	processor *processor.ImageProcessor
	storage   *storage.StorageService
	viewer    display.Viewer
	printer   *console.Printer
	logger    *zap.Logger
}

func New(
	processor *processor.ImageProcessor,
	viewer display.Viewer,
	printer *console.Printer,
	logger *zap.Logger,
) *App {
	return &App{
		resolver:  resolver.NewResolver(processor, logger),
		processor: processor,
		storage:   storage.NewStorageService(processor, logger),
		viewer:    viewer,
		printer:   printer,
		logger:    logger,
	}
}

// Run processes one request. The only non-fatal outcome is a skipped save,
// which is reported and does not stop the preview.
func (a *App) Run(req *models.ResizeRequest) error {
	resolved, err := a.resolver.Resolve(req)
	if err != nil {
		return err
	}

	img := a.processor.Resize(resolved.Source, resolved.Width, resolved.Height)

	saved, err := a.storage.Save(img, resolved.OutputPath, resolved.Overwrite)
	if err != nil {
		return console.NewError(err, console.Errorf("Failed to save {}: {}", resolved.OutputPath, err))
	}
	if !saved {
		a.printer.PrintMessage(console.Info("File was not saved, a file already exists at {}", resolved.OutputPath))
		a.printer.PrintMessage(console.Info("Pass {} to {}", "--"+models.FlagOverWrite+"=1", "overwrite it"))
	}

	if !resolved.Show {
		return nil
	}

	a.printer.PrintMessage(console.Info("Press {} to close the window", fmt.Sprintf("{%c}", display.CloseKey)))
	if err := a.viewer.Show(resolved.OutputPath, img); err != nil {
		return console.NewError(err, console.Errorf("Failed to display {}: {}", resolved.OutputPath, err))
	}
	return nil
}
