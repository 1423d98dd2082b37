package processor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

var filters = map[string]imaging.ResampleFilter{
	"nearest":           imaging.NearestNeighbor,
	"box":               imaging.Box,
	"linear":            imaging.Linear,
	"hermite":           imaging.Hermite,
	"mitchellnetravali": imaging.MitchellNetravali,
	"catmullrom":        imaging.CatmullRom,
	"bspline":           imaging.BSpline,
	"gaussian":          imaging.Gaussian,
	"bartlett":          imaging.Bartlett,
	"lanczos":           imaging.Lanczos,
	"hann":              imaging.Hann,
	"hamming":           imaging.Hamming,
	"blackman":          imaging.Blackman,
	"welch":             imaging.Welch,
	"cosine":            imaging.Cosine,
}

// ParseFilter maps a filter name to its imaging resampling filter.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	if f, ok := filters[strings.ToLower(name)]; ok {
		return f, nil
	}

	names := make([]string, 0, len(filters))
	for n := range filters {
		names = append(names, n)
	}
	sort.Strings(names)

	return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter %q, expected one of %s",
		name, strings.Join(names, ", "))
}
