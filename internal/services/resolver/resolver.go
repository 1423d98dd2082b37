// Package resolver turns raw command line flags into a fully resolved resize
// request, rejecting invalid input before anything is written.
package resolver

import (
	"errors"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/phambaophuc/chimg/internal/console"
	"github.com/phambaophuc/chimg/internal/models"
	"github.com/phambaophuc/chimg/internal/services/processor"
	"github.com/phambaophuc/chimg/pkg/utils"
)

// maxPixels bounds the output canvas; larger requests would exhaust memory in
// the resampler before anything could be written.
const maxPixels = 1 << 28

type Resolver struct {
	processor *processor.ImageProcessor
	logger    *zap.Logger
}

func NewResolver(processor *processor.ImageProcessor, logger *zap.Logger) *Resolver {
	return &Resolver{
		processor: processor,
		logger:    logger,
	}
}

// Resolve validates req and fills in its defaults. Every failure is a
// *console.Error ready to be printed.
func (r *Resolver) Resolve(req *models.ResizeRequest) (*models.ResolvedRequest, error) {
	overwrite, err := parseSwitch(models.FlagOverWrite, req.OverWrite)
	if err != nil {
		return nil, err
	}

	show, err := parseSwitch(models.FlagShow, req.Show)
	if err != nil {
		return nil, err
	}

	if err := checkDimension(models.FlagWidth, req.Width); err != nil {
		return nil, err
	}
	if err := checkDimension(models.FlagHeight, req.Height); err != nil {
		return nil, err
	}

	outputPath := req.Output
	if outputPath == "" {
		outputPath = req.Input
	}

	if _, err := os.Stat(req.Input); err != nil {
		return nil, console.NewError(err, console.Errorf("File {} does not exist", req.Input))
	}

	if err := r.processor.ValidateExtension(req.Input); err != nil {
		var extErr *processor.UnsupportedExtensionError
		ext := ""
		if errors.As(err, &extErr) {
			ext = extErr.Ext
		}
		return nil, console.NewError(err,
			console.Errorf("Unsupported file format, {}", ext),
			console.Errorf("Enter files with extensions: {}", strings.Join(utils.AllowedExtensions, ", ")),
		)
	}

	img, err := r.processor.Decode(req.Input)
	if err != nil {
		return nil, console.NewError(err, console.Errorf("Failed to decode {}: {}", req.Input, err))
	}

	bounds := img.Bounds()
	resolved := &models.ResolvedRequest{
		InputPath:  req.Input,
		OutputPath: outputPath,
		Width:      pick(req.Width, bounds.Dx()),
		Height:     pick(req.Height, bounds.Dy()),
		Overwrite:  overwrite,
		Show:       show,
		Source:     img,
	}

	if err := checkArea(resolved.Width, resolved.Height); err != nil {
		return nil, err
	}

	r.logger.Debug("Request resolved",
		zap.String("input", resolved.InputPath),
		zap.String("output", resolved.OutputPath),
		zap.Int("source_width", bounds.Dx()),
		zap.Int("source_height", bounds.Dy()),
		zap.Int("width", resolved.Width),
		zap.Int("height", resolved.Height),
		zap.Bool("overwrite", resolved.Overwrite),
		zap.Bool("show", resolved.Show),
	)

	return resolved, nil
}

func parseSwitch(flag string, value int) (bool, error) {
	switch value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, console.NewError(nil,
		console.Errorf("{} argument should contain only {}({}) or {}({})", "--"+flag, 1, "yes", 0, "no"))
}

func checkDimension(flag string, value *int) error {
	if value != nil && *value <= 0 {
		return console.NewError(nil,
			console.Errorf("{} argument should be a positive integer, got {}", "--"+flag, *value))
	}
	return nil
}

func checkArea(width, height int) error {
	if int64(width)*int64(height) > maxPixels {
		return console.NewError(nil,
			console.Errorf("Requested size {}x{} exceeds the limit of {} pixels", width, height, maxPixels))
	}
	return nil
}

// pick returns the requested size on one axis, or the native one when the
// axis was not requested.
func pick(requested *int, native int) int {
	if requested != nil {
		return *requested
	}
	return native
}
