// Package window previews images in a native OpenGL window.
//
// GLFW must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread in an init function before Show is used.
package window

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/phambaophuc/chimg/internal/services/display"
)

// Window implements display.Viewer.
type Window struct {
	logger         *zap.Logger
	screenFraction float64 // Largest window size relative to the primary monitor.
}

var _ display.Viewer = &Window{}

func New(logger *zap.Logger, screenFraction float64) *Window {
	return &Window{
		logger:         logger,
		screenFraction: screenFraction,
	}
}

// Show opens a window titled title and redraws img until the close key is
// pressed or the window is closed.
func (w *Window) Show(title string, img image.Image) error {
	if err := display.CheckWindowSystem(); err != nil {
		return err
	}

	// glfw only logs platform errors from Init; the next call then panics
	// with NOT_INITIALIZED.
	window, err := w.open(title, img)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return errors.Wrapf(err, "gl.Init failed")
	}

	q, err := newQuad(img)
	if err != nil {
		return err
	}
	defer q.dispose()

	gl.ClearColor(0, 0, 0, 1.0)

	for !window.ShouldClose() {
		fbw, fbh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		gl.Clear(gl.COLOR_BUFFER_BIT)
		q.draw()
		window.SwapBuffers()

		glfw.PollEvents()
		if window.GetKey(glfw.KeyQ) == glfw.Press {
			break
		}
	}

	return nil
}

// open initialises GLFW and creates the window. On failure GLFW is already
// terminated and the error wraps display.ErrUnavailable.
func (w *Window) open(title string, img image.Image) (window *glfw.Window, err error) {
	opened := false
	defer display.RecoverUnavailable(&err)
	defer func() {
		if !opened {
			glfw.Terminate()
		}
	}()

	if err := glfw.Init(); err != nil {
		return nil, errors.Wrapf(display.ErrUnavailable, "glfw.Init failed: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = display.FitWindow(width, height, mode.Width, mode.Height, w.screenFraction)
		}
	}

	window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, errors.Wrapf(display.ErrUnavailable, "glfw.CreateWindow failed: %v", err)
	}

	w.logger.Debug("Preview window open",
		zap.String("title", title),
		zap.Int("window_width", width),
		zap.Int("window_height", height),
	)
	opened = true
	return window, nil
}
