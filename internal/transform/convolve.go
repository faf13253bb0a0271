package transform

import (
	"fmt"

	"github.com/imagelab/pixel-engine/internal/pixel"
)

// clampIndex constrains an index to [0, max].
func clampIndex(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Blur applies a box-average convolution: every output pixel is the
// unweighted mean of the (2*radius+1)^2 source pixels centered on it.
// Window coordinates that fall outside the image are clamped to the nearest
// edge pixel (not wrapped, not zero-padded), so edge pixels are weighted by
// repetition and a uniform image blurs to itself for any radius.
//
// radius must be >= 1.
func Blur(g *pixel.Grid, radius int) (*pixel.Grid, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: blur radius must be >= 1, got %d", ErrInvalidParameter, radius)
	}
	out, err := pixel.NewGrid(g.Width(), g.Height(), g.HasAlpha())
	if err != nil {
		return nil, err
	}

	w, h := g.Width(), g.Height()
	side := 2*radius + 1
	count := float64(side * side)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sr, sg, sb, sa int
			for dy := -radius; dy <= radius; dy++ {
				sy := clampIndex(y+dy, h-1)
				for dx := -radius; dx <= radius; dx++ {
					p := g.At(clampIndex(x+dx, w-1), sy)
					sr += int(p.R)
					sg += int(p.G)
					sb += int(p.B)
					sa += int(p.A)
				}
			}
			out.Set(x, y, pixel.Pixel{
				R: pixel.ClampRound(float64(sr) / count),
				G: pixel.ClampRound(float64(sg) / count),
				B: pixel.ClampRound(float64(sb) / count),
				A: pixel.ClampRound(float64(sa) / count),
			})
		}
	}
	return out, nil
}

// Pixelate partitions the image into non-overlapping block x block cells
// (cells in the last row or column may be smaller at the image edge) and
// replaces every pixel in a cell with the arithmetic mean of that cell's
// original pixels.
//
// block must be >= 1; block 1 reproduces the input.
func Pixelate(g *pixel.Grid, block int) (*pixel.Grid, error) {
	if block < 1 {
		return nil, fmt.Errorf("%w: pixelate block must be >= 1, got %d", ErrInvalidParameter, block)
	}
	out, err := pixel.NewGrid(g.Width(), g.Height(), g.HasAlpha())
	if err != nil {
		return nil, err
	}

	w, h := g.Width(), g.Height()
	for y0 := 0; y0 < h; y0 += block {
		y1 := y0 + block
		if y1 > h {
			y1 = h
		}
		for x0 := 0; x0 < w; x0 += block {
			x1 := x0 + block
			if x1 > w {
				x1 = w
			}

			var sr, sg, sb, sa int
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					p := g.At(x, y)
					sr += int(p.R)
					sg += int(p.G)
					sb += int(p.B)
					sa += int(p.A)
				}
			}
			count := float64((y1 - y0) * (x1 - x0))
			avg := pixel.Pixel{
				R: pixel.ClampRound(float64(sr) / count),
				G: pixel.ClampRound(float64(sg) / count),
				B: pixel.ClampRound(float64(sb) / count),
				A: pixel.ClampRound(float64(sa) / count),
			}
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					out.Set(x, y, avg)
				}
			}
		}
	}
	return out, nil
}
