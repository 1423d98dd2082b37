package display

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/term"
)

const (
	defaultTermWidth  = 80
	defaultTermHeight = 24
	ctrlC             = 0x03
)

// Terminal draws images with 24-bit ANSI background colours, two columns per
// pixel, and waits for CloseKey on its input.
type Terminal struct {
	in  io.Reader
	out io.Writer
	fd  int
}

// NewTerminal reads keys from in and draws to out. Raw mode and size
// detection are used only when in is a terminal.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	fd := -1
	if in != nil && term.IsTerminal(int(in.Fd())) {
		fd = int(in.Fd())
	}
	return &Terminal{in: in, out: out, fd: fd}
}

func (t *Terminal) Show(title string, img image.Image) error {
	cols, rows := t.size()

	w := bufio.NewWriter(t.out)
	fmt.Fprintf(w, "%s\n", title)
	printImage(w, fit(img, cols, rows-1))
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to draw preview: %w", err)
	}

	return t.waitForKey()
}

func (t *Terminal) size() (int, int) {
	if t.fd >= 0 {
		if w, h, err := term.GetSize(t.fd); err == nil {
			return w, h
		}
	}
	return defaultTermWidth, defaultTermHeight
}

// waitForKey blocks until CloseKey is read. End of input also returns.
func (t *Terminal) waitForKey() error {
	if t.fd >= 0 {
		state, err := term.MakeRaw(t.fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer term.Restore(t.fd, state)
	}

	buf := make([]byte, 1)
	for {
		n, err := t.in.Read(buf)
		if n == 1 {
			switch buf[0] {
			case CloseKey:
				return nil
			case ctrlC:
				return ErrInterrupted
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}
}

// fit scales img to fit within cols x rows terminal cells, two cells per
// pixel horizontally.
func fit(img image.Image, cols, rows int) *image.RGBA {
	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()
	if imgW == 0 || imgH == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if rows < 1 {
		rows = 1
	}

	h := rows
	w := imgW * rows / imgH

	if maxW := cols / 2; w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

func printImage(w io.Writer, img *image.RGBA) {
	rect := img.Rect
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm  ", c.R, c.G, c.B)
		}
		fmt.Fprint(w, "\x1b[0m\r\n")
	}
}
