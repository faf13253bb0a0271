package engine

import (
	"errors"
	"testing"

	"github.com/imagelab/pixel-engine/internal/codec"
	"github.com/imagelab/pixel-engine/internal/pixel"
)

func TestDescribe_UniformImage(t *testing.T) {
	g, err := pixel.NewGrid(10, 5, false)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, pixel.Pixel{R: 255, G: 128, B: 64, A: 255})
		}
	}
	input, err := codec.Encode(g, codec.FormatPNG, codec.Options{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	e := New(Limits{})
	info, err := e.Describe(input)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}

	if info.Width != 10 || info.Height != 5 || info.Pixels != 50 {
		t.Errorf("dimensions: got %dx%d (%d px)", info.Width, info.Height, info.Pixels)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want png", info.Format)
	}
	if info.HasAlpha {
		t.Error("opaque image reported alpha")
	}
	if info.AverageHex != "#ff8040" {
		t.Errorf("average hex: got %q, want #ff8040", info.AverageHex)
	}

	// Every channel is a single spike, so min == max == peak.
	if info.Red != (ChannelStats{Min: 255, Max: 255, Peak: 255}) {
		t.Errorf("red stats: got %+v", info.Red)
	}
	if info.Green != (ChannelStats{Min: 128, Max: 128, Peak: 128}) {
		t.Errorf("green stats: got %+v", info.Green)
	}
	if info.Blue != (ChannelStats{Min: 64, Max: 64, Peak: 64}) {
		t.Errorf("blue stats: got %+v", info.Blue)
	}
}

func TestDescribe_ChannelRange(t *testing.T) {
	g, err := pixel.NewGrid(3, 1, false)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Set(0, 0, pixel.Pixel{R: 10, A: 255})
	g.Set(1, 0, pixel.Pixel{R: 10, A: 255})
	g.Set(2, 0, pixel.Pixel{R: 250, A: 255})

	input, err := codec.Encode(g, codec.FormatPNG, codec.Options{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	info, err := New(Limits{}).Describe(input)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if info.Red.Min != 10 || info.Red.Max != 250 {
		t.Errorf("red range: got [%d,%d], want [10,250]", info.Red.Min, info.Red.Max)
	}
	if info.Red.Peak != 10 { // two pixels at 10, one at 250
		t.Errorf("red peak: got %d, want 10", info.Red.Peak)
	}
}

func TestDescribe_BadInput(t *testing.T) {
	e := New(Limits{})
	if _, err := e.Describe([]byte("nope")); !errors.Is(err, codec.ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}
