package processor

import (
	"github.com/disintegration/imaging"
)

type ImageProcessor struct {
	filter  imaging.ResampleFilter
	quality int
}

// NewImageProcessor returns a processor that resamples with filter and
// encodes JPEG output at the given quality.
func NewImageProcessor(filter imaging.ResampleFilter, quality int) *ImageProcessor {
	return &ImageProcessor{
		filter:  filter,
		quality: quality,
	}
}
