package pixel

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
)

// Pixel is a single RGB(A) sample with 8-bit components.
//
// Pixel is a value type: it is copied on assignment and never addressable
// inside a Grid, so constructing one can never alias grid storage.
type Pixel struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
	A uint8 // Alpha component (0-255); 255 for grids without alpha
}

// Grid is a decoded raster image: width, height, and one contiguous
// row-major channel buffer holding 3 bytes per pixel (RGB) or 4 bytes per
// pixel (RGBA) when the grid carries alpha.
//
// The zero Grid is not usable; construct grids with NewGrid or FromImage.
type Grid struct {
	width    int
	height   int
	hasAlpha bool
	buf      []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions.
//
// Parameters:
//   - width, height: image dimensions in pixels; both must be >= 1.
//   - hasAlpha: whether each pixel carries a 4th (alpha) channel.
//
// Returns an error if either dimension is non-positive. A freshly allocated
// grid is all-zero, i.e. fully transparent black (alpha grids) or opaque
// black once read back through At, which reports A=255 for 3-channel grids.
func NewGrid(width, height int, hasAlpha bool) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	// width*height*channels must stay addressable; a wrapped product would
	// allocate a buffer smaller than the declared dimensions.
	if width > math.MaxInt/channels(hasAlpha)/height {
		return nil, fmt.Errorf("grid dimensions %dx%d overflow the channel buffer", width, height)
	}
	return &Grid{
		width:    width,
		height:   height,
		hasAlpha: hasAlpha,
		buf:      make([]uint8, width*height*channels(hasAlpha)),
	}, nil
}

func channels(hasAlpha bool) int {
	if hasAlpha {
		return 4
	}
	return 3
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// HasAlpha reports whether each pixel carries an alpha channel.
func (g *Grid) HasAlpha() bool { return g.hasAlpha }

// Channels returns the number of bytes stored per pixel (3 or 4).
func (g *Grid) Channels() int { return channels(g.hasAlpha) }

// offset returns the buffer index of the first channel of pixel (x, y).
// Callers must have validated coordinates.
func (g *Grid) offset(x, y int) int {
	return (y*g.width + x) * g.Channels()
}

// At returns the pixel at (x, y).
//
// Coordinates outside the grid return the zero Pixel; transforms index only
// coordinates they derived from the grid's own dimensions, so the guard is a
// boundary for misuse rather than a supported access pattern. Grids without
// alpha report A=255.
func (g *Grid) At(x, y int) Pixel {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Pixel{}
	}
	i := g.offset(x, y)
	p := Pixel{R: g.buf[i], G: g.buf[i+1], B: g.buf[i+2], A: 255}
	if g.hasAlpha {
		p.A = g.buf[i+3]
	}
	return p
}

// Set stores p at (x, y). Out-of-range coordinates are ignored.
//
// Set is intended for filling a grid that is still being produced; once a
// grid has been returned to a caller it is treated as immutable.
func (g *Grid) Set(x, y int, p Pixel) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	i := g.offset(x, y)
	g.buf[i] = p.R
	g.buf[i+1] = p.G
	g.buf[i+2] = p.B
	if g.hasAlpha {
		g.buf[i+3] = p.A
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		width:    g.width,
		height:   g.height,
		hasAlpha: g.hasAlpha,
		buf:      make([]uint8, len(g.buf)),
	}
	copy(dup.buf, g.buf)
	return dup
}

// Equal reports whether two grids have identical dimensions, alpha mode,
// and channel data.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.width == other.width &&
		g.height == other.height &&
		g.hasAlpha == other.hasAlpha &&
		bytes.Equal(g.buf, other.buf)
}

// Pixels returns the total number of pixels in the grid.
func (g *Grid) Pixels() int { return g.width * g.height }

// Clamp constrains an integer channel value to [0, 255].
//
// Out-of-range values saturate at the bound; they are never wrapped or
// truncated modulo 256.
func Clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ClampRound rounds a floating-point channel value to the nearest integer
// and constrains it to [0, 255].
//
// Ties round away from zero (math.Round); every transform uses this rule so
// results are bit-exact reproducible across runs and platforms.
func ClampRound(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// FromImage copies a standard library image into a fresh Grid.
//
// Pixels are converted through the non-premultiplied NRGBA color model, so
// color values survive for partially transparent pixels. The returned grid
// carries an alpha channel only if at least one source pixel is not fully
// opaque; a PNG that happens to contain only opaque pixels therefore decodes
// to a 3-channel grid, which keeps lossless round-trips exact.
//
// Returns an error if the image has no pixels.
func FromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("image has no pixels (%dx%d)", width, height)
	}

	samples := make([]color.NRGBA, 0, width*height)
	opaque := true

	if src, ok := img.(*image.NRGBA); ok {
		// Fast path: copy rows directly out of the decoded buffer.
		for y := 0; y < height; y++ {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := src.Pix[start : start+width*4]
			for x := 0; x < width; x++ {
				c := color.NRGBA{R: row[x*4], G: row[x*4+1], B: row[x*4+2], A: row[x*4+3]}
				if c.A != 255 {
					opaque = false
				}
				samples = append(samples, c)
			}
		}
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				if c.A != 255 {
					opaque = false
				}
				samples = append(samples, c)
			}
		}
	}

	grid, err := NewGrid(width, height, !opaque)
	if err != nil {
		return nil, err
	}
	for i, c := range samples {
		grid.Set(i%width, i/width, Pixel{R: c.R, G: c.G, B: c.B, A: c.A})
	}
	return grid, nil
}

// Image converts the grid to a standard library *image.NRGBA.
//
// Grids without alpha produce fully opaque images. The returned image owns
// its own buffer; mutating it does not affect the grid.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := g.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = p.A
		}
	}
	return img
}
