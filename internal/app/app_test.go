package app

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/phambaophuc/chimg/internal/console"
	"github.com/phambaophuc/chimg/internal/models"
	"github.com/phambaophuc/chimg/internal/services/processor"
)

type recordingViewer struct {
	titles []string
	images []image.Image
	err    error
}

func (r *recordingViewer) Show(title string, img image.Image) error {
	r.titles = append(r.titles, title)
	r.images = append(r.images, img)
	return r.err
}

func newTestApp(viewer *recordingViewer) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	p := processor.NewImageProcessor(imaging.Lanczos, 90)
	return New(p, viewer, console.NewPrinter(&out, false), zap.NewNop()), &out
}

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := imaging.Save(imaging.New(w, h, color.NRGBA{G: 200, A: 255}), path); err != nil {
		t.Fatal(err)
	}
}

func imageSize(t *testing.T, path string) (int, int) {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func intPtr(v int) *int {
	return &v
}

func TestRunWidthOnly(t *testing.T) {
	a, out := newTestApp(&recordingViewer{})
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.png")
	writeImage(t, input, 40, 30)

	if err := a.Run(&models.ResizeRequest{Input: input, Output: output, Width: intPtr(100)}); err != nil {
		t.Fatal(err)
	}

	if w, h := imageSize(t, output); w != 100 || h != 30 {
		t.Fatalf("want 100x30, have %dx%d", w, h)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunDefaultOutputIsInput(t *testing.T) {
	a, out := newTestApp(&recordingViewer{})
	input := filepath.Join(t.TempDir(), "in.png")
	writeImage(t, input, 40, 30)

	// Without --over_write the input itself is the existing output.
	before, err := os.ReadFile(input)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Run(&models.ResizeRequest{Input: input, Width: intPtr(10), Height: intPtr(10)}); err != nil {
		t.Fatal(err)
	}
	after, err := os.ReadFile(input)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Fatalf("input changed without --over_write")
	}
	want := "[Info]       File was not saved, a file already exists at " + input + "\n" +
		"[Info]       Pass --over_write=1 to overwrite it\n"
	if out.String() != want {
		t.Fatalf("want:\n%s\nhave:\n%s", want, out.String())
	}

	// With it, the input is resized in place.
	if err := a.Run(&models.ResizeRequest{Input: input, Width: intPtr(10), Height: intPtr(12), OverWrite: 1}); err != nil {
		t.Fatal(err)
	}
	if w, h := imageSize(t, input); w != 10 || h != 12 {
		t.Fatalf("want 10x12, have %dx%d", w, h)
	}
}

func TestRunOverwriteExisting(t *testing.T) {
	a, _ := newTestApp(&recordingViewer{})
	dir := t.TempDir()
	input := filepath.Join(dir, "in.jpg")
	output := filepath.Join(dir, "out.jpg")
	writeImage(t, input, 16, 16)
	writeImage(t, output, 3, 3)

	if err := a.Run(&models.ResizeRequest{Input: input, Output: output, Height: intPtr(8), OverWrite: 1}); err != nil {
		t.Fatal(err)
	}
	if w, h := imageSize(t, output); w != 16 || h != 8 {
		t.Fatalf("want 16x8, have %dx%d", w, h)
	}
}

func TestRunInvalidSwitchTouchesNothing(t *testing.T) {
	viewer := &recordingViewer{}
	a, _ := newTestApp(viewer)
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.png")
	writeImage(t, input, 4, 4)

	err := a.Run(&models.ResizeRequest{Input: input, Output: output, OverWrite: 2, Show: 1})
	var cerr *console.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("want *console.Error, have %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("output written despite invalid --over_write")
	}
	if len(viewer.titles) != 0 {
		t.Fatalf("viewer called despite invalid --over_write")
	}
}

func TestRunShow(t *testing.T) {
	viewer := &recordingViewer{}
	a, out := newTestApp(viewer)
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.png")
	writeImage(t, input, 20, 10)
	writeImage(t, output, 1, 1)

	if err := a.Run(&models.ResizeRequest{Input: input, Output: output, Width: intPtr(5), Show: 1}); err != nil {
		t.Fatal(err)
	}

	if len(viewer.titles) != 1 || viewer.titles[0] != output {
		t.Fatalf("viewer titles: %q", viewer.titles)
	}
	if b := viewer.images[0].Bounds(); b.Dx() != 5 || b.Dy() != 10 {
		t.Fatalf("viewer got %dx%d, want the resized 5x10 image", b.Dx(), b.Dy())
	}

	// The skipped save is reported before the preview starts.
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || !strings.HasSuffix(lines[2], "Press {q} to close the window") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunShowFailure(t *testing.T) {
	boom := errors.New("no display")
	a, _ := newTestApp(&recordingViewer{err: boom})
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	writeImage(t, input, 2, 2)

	err := a.Run(&models.ResizeRequest{Input: input, Output: filepath.Join(dir, "o.png"), Show: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("want viewer error, have %v", err)
	}
}

func TestRunSaveFailure(t *testing.T) {
	a, _ := newTestApp(&recordingViewer{})
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.webp")
	writeImage(t, input, 2, 2)

	err := a.Run(&models.ResizeRequest{Input: input, Output: output})
	if !errors.Is(err, processor.ErrNoEncoder) {
		t.Fatalf("want ErrNoEncoder, have %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to save "+output+": ") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
