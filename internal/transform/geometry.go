package transform

import (
	"fmt"
	"math"

	"github.com/imagelab/pixel-engine/internal/pixel"
)

// MirrorHorizontal flips the image left-to-right by reversing the pixel
// order within each row. Applying it twice reproduces the input exactly.
func MirrorHorizontal(g *pixel.Grid) (*pixel.Grid, error) {
	out, err := pixel.NewGrid(g.Width(), g.Height(), g.HasAlpha())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out.Set(g.Width()-1-x, y, g.At(x, y))
		}
	}
	return out, nil
}

// MirrorVertical flips the image top-to-bottom by reversing the row order.
// Applying it twice reproduces the input exactly.
func MirrorVertical(g *pixel.Grid) (*pixel.Grid, error) {
	out, err := pixel.NewGrid(g.Width(), g.Height(), g.HasAlpha())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out.Set(x, g.Height()-1-y, g.At(x, y))
		}
	}
	return out, nil
}

// Rotate rotates the image by a multiple of 90 degrees. Positive degrees
// rotate clockwise, negative counter-clockwise; any magnitude is accepted
// and normalized to {0, 90, 180, 270}. Quarter rotations swap width and
// height; 180 degrees preserves dimensions.
//
// Degrees that are not a multiple of 90 return ErrInvalidParameter.
func Rotate(g *pixel.Grid, degrees int) (*pixel.Grid, error) {
	if degrees%90 != 0 {
		return nil, fmt.Errorf("%w: rotation must be a multiple of 90 degrees, got %d", ErrInvalidParameter, degrees)
	}
	turns := ((degrees/90)%4 + 4) % 4 // clockwise quarter turns

	w, h := g.Width(), g.Height()
	var out *pixel.Grid
	var err error
	switch turns {
	case 0:
		return g.Clone(), nil
	case 1: // 90 CW: (x, y) -> (h-1-y, x)
		out, err = pixel.NewGrid(h, w, g.HasAlpha())
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Set(h-1-y, x, g.At(x, y))
			}
		}
	case 2: // 180: (x, y) -> (w-1-x, h-1-y)
		out, err = pixel.NewGrid(w, h, g.HasAlpha())
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Set(w-1-x, h-1-y, g.At(x, y))
			}
		}
	case 3: // 270 CW (90 CCW): (x, y) -> (y, w-1-x)
		out, err = pixel.NewGrid(h, w, g.HasAlpha())
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Set(y, w-1-x, g.At(x, y))
			}
		}
	}
	return out, nil
}

// Tile repeats the source image edge-to-edge in a size x size arrangement,
// producing a grid of width*size by height*size. size must be >= 1; size 1
// is the identity (modulo a fresh allocation).
func Tile(g *pixel.Grid, size int) (*pixel.Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: tile size must be >= 1, got %d", ErrInvalidParameter, size)
	}
	w, h := g.Width(), g.Height()
	if size > 1 && (w > math.MaxInt/size || h > math.MaxInt/size) {
		return nil, fmt.Errorf("%w: tile size %d overflows the output dimensions for a %dx%d image", ErrInvalidParameter, size, w, h)
	}
	out, err := pixel.NewGrid(w*size, h*size, g.HasAlpha())
	if err != nil {
		return nil, err
	}
	for y := 0; y < h*size; y++ {
		for x := 0; x < w*size; x++ {
			out.Set(x, y, g.At(x%w, y%h))
		}
	}
	return out, nil
}
