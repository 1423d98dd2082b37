package processor

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resize scales img to exactly width x height. Both must be positive.
func (p *ImageProcessor) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, p.filter)
}
