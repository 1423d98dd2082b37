// Package display previews a processed image and blocks until the user
// dismisses it.
package display

import (
	"errors"
	"image"

	"go.uber.org/zap"
)

var (
	// ErrUnavailable means the viewer cannot run in this environment, e.g.
	// no display server for a window.
	ErrUnavailable = errors.New("display unavailable")

	// ErrInterrupted means the user aborted the preview with Ctrl-C.
	ErrInterrupted = errors.New("preview interrupted")
)

// CloseKey dismisses every viewer.
const CloseKey = 'q'

// Viewer shows img and returns once the user presses CloseKey.
type Viewer interface {
	Show(title string, img image.Image) error
}

// Noop is a Viewer that returns immediately.
type Noop struct{}

func (Noop) Show(string, image.Image) error {
	return nil
}

// Fallback shows through Primary and switches to Secondary when Primary is
// unavailable.
type Fallback struct {
	Primary   Viewer
	Secondary Viewer
	Logger    *zap.Logger
}

func (f *Fallback) Show(title string, img image.Image) error {
	err := f.Primary.Show(title, img)
	if !errors.Is(err, ErrUnavailable) {
		return err
	}

	f.Logger.Warn("Primary viewer unavailable, falling back", zap.Error(err))
	return f.Secondary.Show(title, img)
}
