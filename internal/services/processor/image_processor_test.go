package processor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func newTestProcessor(t *testing.T) *ImageProcessor {
	t.Helper()
	filter, err := ParseFilter("lanczos")
	if err != nil {
		t.Fatal(err)
	}
	return NewImageProcessor(filter, 90)
}

func TestResize(t *testing.T) {
	p := newTestProcessor(t)
	src := imaging.New(40, 30, color.NRGBA{R: 255, A: 255})

	for _, v := range []struct{ W, H int }{
		{100, 30},
		{40, 10},
		{1, 1},
		{40, 30},
	} {
		have := p.Resize(src, v.W, v.H).Bounds()
		if have.Dx() != v.W || have.Dy() != v.H {
			t.Fatalf("Resize(%d, %d): have %dx%d", v.W, v.H, have.Dx(), have.Dy())
		}
	}
}

func TestDecode(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()

	for _, name := range []string{"a.png", "a.jpg", "a.gif", "a.bmp", "a.tiff"} {
		path := filepath.Join(dir, name)
		if err := imaging.Save(imaging.New(7, 5, color.White), path); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}

		img, err := p.Decode(path)
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
			t.Fatalf("decode %s: have %dx%d", name, b.Dx(), b.Dy())
		}
	}

	if _, err := p.Decode(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateExtension(t *testing.T) {
	p := newTestProcessor(t)

	if err := p.ValidateExtension("photo.JPG"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := p.ValidateExtension("photo.txt")
	var extErr *UnsupportedExtensionError
	if !errors.As(err, &extErr) {
		t.Fatalf("want *UnsupportedExtensionError, have %v", err)
	}
	if extErr.Ext != ".txt" {
		t.Fatalf("want .txt, have %q", extErr.Ext)
	}
}

func TestFormatFor(t *testing.T) {
	p := newTestProcessor(t)

	for _, v := range []struct {
		Path string
		Want imaging.Format
	}{
		{"x.jpg", imaging.JPEG},
		{"x.JPEG", imaging.JPEG},
		{"x.png", imaging.PNG},
		{"x.gif", imaging.GIF},
		{"x.bmp", imaging.BMP},
		{"x.tiff", imaging.TIFF},
	} {
		have, err := p.FormatFor(v.Path)
		if err != nil {
			t.Fatalf("FormatFor(%q): %v", v.Path, err)
		}
		if have != v.Want {
			t.Fatalf("FormatFor(%q): want %v, have %v", v.Path, v.Want, have)
		}
	}

	if _, err := p.FormatFor("x.webp"); !errors.Is(err, ErrNoEncoder) {
		t.Fatalf("want ErrNoEncoder, have %v", err)
	}
	if _, err := p.FormatFor("x.txt"); err == nil {
		t.Fatalf("expected error for .txt")
	}
}

func TestEncode(t *testing.T) {
	p := newTestProcessor(t)
	src := imaging.New(3, 2, color.Black)

	var buf bytes.Buffer
	if err := p.Encode(&buf, src, imaging.PNG); err != nil {
		t.Fatal(err)
	}

	img, format, err := image.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" || img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected round trip: %s %v", format, img.Bounds())
	}
}

func TestParseFilter(t *testing.T) {
	if _, err := ParseFilter("Linear"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseFilter("bogus"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}
