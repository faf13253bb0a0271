package transform

import (
	"errors"
	"fmt"

	"github.com/imagelab/pixel-engine/internal/pixel"
)

// ErrInvalidParameter indicates an operator parameter outside its stated
// domain. It is returned before any pixel work begins; operators never
// partially apply.
var ErrInvalidParameter = errors.New("invalid parameter")

// Channel selects one color channel for single-channel operators.
type Channel int

// Channel constants for ShiftChannel.
const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// mapPixels builds a new grid by applying fn to every pixel of g. The output
// grid has the same dimensions and alpha mode as the input.
func mapPixels(g *pixel.Grid, fn func(pixel.Pixel) pixel.Pixel) (*pixel.Grid, error) {
	out, err := pixel.NewGrid(g.Width(), g.Height(), g.HasAlpha())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out.Set(x, y, fn(g.At(x, y)))
		}
	}
	return out, nil
}

// AddColor adds a signed delta to each color channel of every pixel,
// saturating at the channel bounds. Alpha is unchanged.
func AddColor(g *pixel.Grid, dr, dg, db int) (*pixel.Grid, error) {
	return mapPixels(g, func(p pixel.Pixel) pixel.Pixel {
		return pixel.Pixel{
			R: pixel.Clamp(int(p.R) + dr),
			G: pixel.Clamp(int(p.G) + dg),
			B: pixel.Clamp(int(p.B) + db),
			A: p.A,
		}
	})
}

// ShiftChannel adds a signed amount to exactly one color channel, leaving
// the other two (and alpha) unchanged.
func ShiftChannel(g *pixel.Grid, ch Channel, amount int) (*pixel.Grid, error) {
	if ch != Red && ch != Green && ch != Blue {
		return nil, fmt.Errorf("%w: unknown channel %d", ErrInvalidParameter, int(ch))
	}
	return mapPixels(g, func(p pixel.Pixel) pixel.Pixel {
		switch ch {
		case Red:
			p.R = pixel.Clamp(int(p.R) + amount)
		case Green:
			p.G = pixel.Clamp(int(p.G) + amount)
		case Blue:
			p.B = pixel.Clamp(int(p.B) + amount)
		}
		return p
	})
}

// Brightness multiplies every color channel by factor.
//
// A factor above 1 brightens the image, a factor in (0, 1) darkens it, and 0
// produces black. Negative factors are rejected with ErrInvalidParameter.
func Brightness(g *pixel.Grid, factor float64) (*pixel.Grid, error) {
	if factor < 0 {
		return nil, fmt.Errorf("%w: brightness factor must be >= 0, got %g", ErrInvalidParameter, factor)
	}
	return mapPixels(g, func(p pixel.Pixel) pixel.Pixel {
		return pixel.Pixel{
			R: pixel.ClampRound(float64(p.R) * factor),
			G: pixel.ClampRound(float64(p.G) * factor),
			B: pixel.ClampRound(float64(p.B) * factor),
			A: p.A,
		}
	})
}

// Monochrome converts the image to grayscale using ITU-R BT.601 luma
// weights: luminance = 0.299*R + 0.587*G + 0.114*B. All three color
// channels of each output pixel are set to the rounded luminance.
func Monochrome(g *pixel.Grid) (*pixel.Grid, error) {
	return mapPixels(g, func(p pixel.Pixel) pixel.Pixel {
		lum := pixel.ClampRound(0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B))
		return pixel.Pixel{R: lum, G: lum, B: lum, A: p.A}
	})
}

// Negative inverts every color channel (channel' = 255 - channel). Applying
// Negative twice reproduces the input exactly. Alpha is not inverted.
func Negative(g *pixel.Grid) (*pixel.Grid, error) {
	return mapPixels(g, func(p pixel.Pixel) pixel.Pixel {
		return pixel.Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B, A: p.A}
	})
}

// Sepia tone matrix. Each output channel is a fixed linear combination of
// the input RGB, clamped independently.
var sepiaMatrix = [3][3]float64{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

// Sepia applies the classic warm-brown tone matrix to every pixel.
func Sepia(g *pixel.Grid) (*pixel.Grid, error) {
	return mapPixels(g, func(p pixel.Pixel) pixel.Pixel {
		r, gr, b := float64(p.R), float64(p.G), float64(p.B)
		return pixel.Pixel{
			R: pixel.ClampRound(sepiaMatrix[0][0]*r + sepiaMatrix[0][1]*gr + sepiaMatrix[0][2]*b),
			G: pixel.ClampRound(sepiaMatrix[1][0]*r + sepiaMatrix[1][1]*gr + sepiaMatrix[1][2]*b),
			B: pixel.ClampRound(sepiaMatrix[2][0]*r + sepiaMatrix[2][1]*gr + sepiaMatrix[2][2]*b),
			A: p.A,
		}
	})
}
