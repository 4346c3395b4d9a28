package service

import (
	"fmt"
	"math"

	"github.com/katiamach/xray-contours-api/internal/model"
)

// lutSize is the number of colors sampled from a colormap's segments.
const lutSize = 256

// segment is a colormap anchor: the channel takes value y at position x.
type segment struct {
	x, y float64
}

// jet colormap channels as piecewise linear segments.
var jet = [3][]segment{
	{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
	{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
	{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}},
}

var jetLUT = buildLUT(jet)

func buildLUT(channels [3][]segment) [lutSize][4]float64 {
	var lut [lutSize][4]float64

	for i := range lut {
		x := float64(i) / (lutSize - 1)
		for c, segments := range channels {
			lut[i][c] = interpolate(segments, x)
		}
		lut[i][3] = 1
	}

	return lut
}

func interpolate(segments []segment, x float64) float64 {
	for i := 1; i < len(segments); i++ {
		lo, hi := segments[i-1], segments[i]
		if x <= hi.x {
			return lo.y + (x-lo.x)/(hi.x-lo.x)*(hi.y-lo.y)
		}
	}

	return segments[len(segments)-1].y
}

// Jet maps a normalized value in [0, 1] to its jet colormap color.
// Values outside of the range are clipped.
func Jet(v float64) [4]float64 {
	idx := int(v * lutSize)
	switch {
	case idx < 0:
		idx = 0
	case idx >= lutSize:
		idx = lutSize - 1
	}

	return jetLUT[idx]
}

// Hex formats the color as #rrggbb, ignoring alpha.
func Hex(rgba [4]float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(rgba[0]), channel(rgba[1]), channel(rgba[2]))
}

func channel(c float64) int {
	return int(math.RoundToEven(c * 255))
}

// Normalize takes log10 of levels and scales the result to [0, 1] using the
// min and max of the logged values. All values are 0 when min equals max.
func Normalize(levels []float64) ([]float64, error) {
	logged := make([]float64, len(levels))
	for i, level := range levels {
		if math.IsNaN(level) || math.IsInf(level, 0) || level <= 0 {
			return nil, fmt.Errorf("%w: level %d is %v, should be a positive number", ErrInvalidLevel, i, level)
		}
		logged[i] = math.Log10(level)
	}

	if len(logged) == 0 {
		return logged, nil
	}

	lo, hi := logged[0], logged[0]
	for _, v := range logged[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	normalized := make([]float64, len(logged))
	if hi == lo {
		return normalized, nil
	}

	for i, v := range logged {
		normalized[i] = (v - lo) / (hi - lo)
	}

	return normalized, nil
}

// ColorScale assigns a jet color to every level. Entry i colors levels[i].
// The scale is relative to the given levels only, so colors of different
// clusters are not comparable.
func ColorScale(levels []float64) ([]model.ColorScaleEntry, error) {
	normalized, err := Normalize(levels)
	if err != nil {
		return nil, err
	}

	scale := make([]model.ColorScaleEntry, 0, len(normalized))
	for _, v := range normalized {
		rgba := Jet(v)
		scale = append(scale, model.ColorScaleEntry{
			Value: v,
			RGBA:  rgba,
			Hex:   Hex(rgba),
		})
	}

	return scale, nil
}
