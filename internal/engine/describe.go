package engine

import (
	"github.com/anthonynsimon/bild/histogram"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/imagelab/pixel-engine/internal/codec"
	"github.com/imagelab/pixel-engine/internal/pixel"
)

// ChannelStats summarizes the distribution of one color channel.
type ChannelStats struct {
	// Min and Max are the lowest and highest intensity values present.
	Min int `json:"min"`
	Max int `json:"max"`

	// Peak is the intensity value with the largest pixel count.
	Peak int `json:"peak"`
}

// HSL is a color in hue/saturation/lightness space.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-1
	L float64 `json:"l"` // Lightness: 0-1
}

// ImageInfo is a metadata report over encoded image bytes.
type ImageInfo struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Format     string       `json:"format"`
	HasAlpha   bool         `json:"has_alpha"`
	Pixels     int          `json:"pixels"`
	AverageHex string       `json:"average_hex"` // average color as "#rrggbb"
	AverageHSL HSL          `json:"average_hsl"`
	Red        ChannelStats `json:"red"`
	Green      ChannelStats `json:"green"`
	Blue       ChannelStats `json:"blue"`
}

// Describe decodes input bytes and reports dimensions, detected format,
// alpha presence, per-channel intensity statistics, and the average color in
// hex and HSL form. Like every engine call it is pure: bytes in, report out.
func (e *Engine) Describe(input []byte) (*ImageInfo, error) {
	if err := e.checkInput(input); err != nil {
		return nil, err
	}
	grid, format, err := codec.Decode(input)
	if err != nil {
		return nil, err
	}

	hist := histogram.NewRGBAHistogram(grid.Image())
	avgR, avgG, avgB := averageColor(grid)
	avg := colorful.Color{R: avgR / 255.0, G: avgG / 255.0, B: avgB / 255.0}
	h, s, l := avg.Hsl()

	return &ImageInfo{
		Width:      grid.Width(),
		Height:     grid.Height(),
		Format:     string(format),
		HasAlpha:   grid.HasAlpha(),
		Pixels:     grid.Pixels(),
		AverageHex: avg.Hex(),
		AverageHSL: HSL{H: h, S: s, L: l},
		Red:        binStats(hist.R.Bins),
		Green:      binStats(hist.G.Bins),
		Blue:       binStats(hist.B.Bins),
	}, nil
}

// averageColor returns the mean of each color channel over the whole grid.
func averageColor(g *pixel.Grid) (r, gr, b float64) {
	var sr, sg, sb int64
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := g.At(x, y)
			sr += int64(p.R)
			sg += int64(p.G)
			sb += int64(p.B)
		}
	}
	n := float64(g.Pixels())
	return float64(sr) / n, float64(sg) / n, float64(sb) / n
}

// binStats extracts min/max/peak intensities from a 256-bin histogram.
func binStats(bins []int) ChannelStats {
	stats := ChannelStats{Min: -1}
	peakCount := -1
	for v, count := range bins {
		if count == 0 {
			continue
		}
		if stats.Min < 0 {
			stats.Min = v
		}
		stats.Max = v
		if count > peakCount {
			peakCount = count
			stats.Peak = v
		}
	}
	if stats.Min < 0 {
		stats.Min = 0
	}
	return stats
}
