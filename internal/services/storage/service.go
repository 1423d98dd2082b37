package storage

import (
	"errors"
	"image"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/phambaophuc/chimg/internal/services/processor"
)

const defaultFileMode fs.FileMode = 0o644

// StorageService writes processed images to the local filesystem.
type StorageService struct {
	processor *processor.ImageProcessor
	logger    *zap.Logger
}

func NewStorageService(processor *processor.ImageProcessor, logger *zap.Logger) *StorageService {
	return &StorageService{
		processor: processor,
		logger:    logger,
	}
}

// Exists reports whether anything is present at path.
func (s *StorageService) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// Save writes img to path. When overwrite is false and path already exists
// nothing is written and saved is false.
func (s *StorageService) Save(img image.Image, path string, overwrite bool) (saved bool, err error) {
	if !overwrite && s.Exists(path) {
		s.logger.Info("Output exists, skipping write", zap.String("path", path))
		return false, nil
	}

	if err := s.write(img, path); err != nil {
		return false, err
	}

	s.logger.Info("Image saved",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return true, nil
}
