package processor

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrNoEncoder is returned for extensions that can be decoded but not written.
var ErrNoEncoder = errors.New("no encoder available")

// FormatFor picks the output format from the extension of path.
func (p *ImageProcessor) FormatFor(path string) (imaging.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		return 0, fmt.Errorf("%w for %s", ErrNoEncoder, ext)
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("unsupported output extension %q: %w", ext, err)
	}
	return format, nil
}

func (p *ImageProcessor) Encode(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(p.quality)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
