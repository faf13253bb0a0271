package transform

import (
	"testing"

	"github.com/imagelab/pixel-engine/internal/pixel"
)

// uniformGrid creates a grid filled with a single pixel value.
func uniformGrid(t *testing.T, w, h int, p pixel.Pixel) *pixel.Grid {
	t.Helper()
	g, err := pixel.NewGrid(w, h, false)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, p)
		}
	}
	return g
}

// sequenceGrid creates a grid where every pixel value is derived from its
// coordinates, so any rearrangement of pixels is detectable.
func sequenceGrid(t *testing.T, w, h int) *pixel.Grid {
	t.Helper()
	g, err := pixel.NewGrid(w, h, false)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, pixel.Pixel{
				R: uint8((x * 7) % 256),
				G: uint8((y * 11) % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return g
}

// requireEqual fails the test when two grids differ.
func requireEqual(t *testing.T, got, want *pixel.Grid, msg string) {
	t.Helper()
	if !want.Equal(got) {
		t.Fatalf("%s: grids differ (got %dx%d, want %dx%d)",
			msg, got.Width(), got.Height(), want.Width(), want.Height())
	}
}
