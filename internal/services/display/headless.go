package display

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// CheckWindowSystem reports ErrUnavailable when no display server can be
// reached. Only X11/Wayland platforms are checked; elsewhere a window system
// is assumed.
func CheckWindowSystem() error {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "android":
		return nil
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return errors.Wrapf(ErrUnavailable, "neither DISPLAY nor WAYLAND_DISPLAY is set")
	}
	return nil
}

// RecoverUnavailable turns a panic raised while setting up a window into an
// ErrUnavailable stored in *err. It must be deferred directly.
func RecoverUnavailable(err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(ErrUnavailable, "window setup panicked: %v", fmt.Sprint(r))
	}
}

// FitWindow shrinks width x height, keeping its aspect ratio, until it fits
// within fraction of the screen. Sizes that already fit are left alone.
func FitWindow(width, height, screenW, screenH int, fraction float64) (int, int) {
	maxW := int(float64(screenW) * fraction)
	maxH := int(float64(screenH) * fraction)
	if width <= maxW && height <= maxH {
		return width, height
	}

	scale := float64(maxW) / float64(width)
	if s := float64(maxH) / float64(height); s < scale {
		scale = s
	}

	w := int(float64(width) * scale)
	h := int(float64(height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
