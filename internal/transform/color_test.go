package transform

import (
	"errors"
	"testing"

	"github.com/imagelab/pixel-engine/internal/pixel"
)

func TestAddColor_ClampsAtBounds(t *testing.T) {
	tests := []struct {
		name       string
		dr, dg, db int
		want       pixel.Pixel
	}{
		{"overflow clamps to 255", 300, 0, 0, pixel.Pixel{R: 255, G: 100, B: 100, A: 255}},
		{"underflow clamps to 0", -300, 0, 0, pixel.Pixel{R: 0, G: 100, B: 100, A: 255}},
		{"in-range adds exactly", 50, -30, 100, pixel.Pixel{R: 150, G: 70, B: 200, A: 255}},
		{"zero delta is identity", 0, 0, 0, pixel.Pixel{R: 100, G: 100, B: 100, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := uniformGrid(t, 3, 3, pixel.Pixel{R: 100, G: 100, B: 100, A: 255})
			out, err := AddColor(g, tt.dr, tt.dg, tt.db)
			if err != nil {
				t.Fatalf("AddColor failed: %v", err)
			}
			if got := out.At(1, 1); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAddColor_DoesNotMutateInput(t *testing.T) {
	g := uniformGrid(t, 2, 2, pixel.Pixel{R: 100, G: 100, B: 100, A: 255})
	before := g.Clone()

	if _, err := AddColor(g, 50, 50, 50); err != nil {
		t.Fatalf("AddColor failed: %v", err)
	}
	requireEqual(t, g, before, "input grid mutated")
}

func TestShiftChannel(t *testing.T) {
	tests := []struct {
		name   string
		ch     Channel
		amount int
		want   pixel.Pixel
	}{
		{"red up", Red, 55, pixel.Pixel{R: 155, G: 100, B: 100, A: 255}},
		{"green down", Green, -40, pixel.Pixel{R: 100, G: 60, B: 100, A: 255}},
		{"blue clamped", Blue, 1000, pixel.Pixel{R: 100, G: 100, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := uniformGrid(t, 2, 2, pixel.Pixel{R: 100, G: 100, B: 100, A: 255})
			out, err := ShiftChannel(g, tt.ch, tt.amount)
			if err != nil {
				t.Fatalf("ShiftChannel failed: %v", err)
			}
			if got := out.At(0, 0); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShiftChannel_UnknownChannel(t *testing.T) {
	g := uniformGrid(t, 1, 1, pixel.Pixel{A: 255})
	if _, err := ShiftChannel(g, Channel(9), 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		name   string
		in     pixel.Pixel
		factor float64
		want   pixel.Pixel
	}{
		{"brighten rounds", pixel.Pixel{R: 10, G: 200, B: 0, A: 255}, 2.01, pixel.Pixel{R: 20, G: 255, B: 0, A: 255}},
		{"darken", pixel.Pixel{R: 100, G: 50, B: 9, A: 255}, 0.5, pixel.Pixel{R: 50, G: 25, B: 5, A: 255}},
		{"identity", pixel.Pixel{R: 1, G: 2, B: 3, A: 255}, 1.0, pixel.Pixel{R: 1, G: 2, B: 3, A: 255}},
		{"zero blacks out", pixel.Pixel{R: 255, G: 255, B: 255, A: 255}, 0, pixel.Pixel{A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := uniformGrid(t, 2, 2, tt.in)
			out, err := Brightness(g, tt.factor)
			if err != nil {
				t.Fatalf("Brightness failed: %v", err)
			}
			if got := out.At(1, 0); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBrightness_NegativeFactor(t *testing.T) {
	g := uniformGrid(t, 1, 1, pixel.Pixel{A: 255})
	if _, err := Brightness(g, -0.5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestMonochrome_LumaWeights(t *testing.T) {
	tests := []struct {
		name string
		in   pixel.Pixel
		want uint8
	}{
		{"pure red", pixel.Pixel{R: 255, A: 255}, 76},    // round(0.299*255)
		{"pure green", pixel.Pixel{G: 255, A: 255}, 150}, // round(0.587*255)
		{"pure blue", pixel.Pixel{B: 255, A: 255}, 29},   // round(0.114*255)
		{"white", pixel.Pixel{R: 255, G: 255, B: 255, A: 255}, 255},
		{"black", pixel.Pixel{A: 255}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := uniformGrid(t, 2, 2, tt.in)
			out, err := Monochrome(g)
			if err != nil {
				t.Fatalf("Monochrome failed: %v", err)
			}
			got := out.At(0, 0)
			if got.R != tt.want || got.G != tt.want || got.B != tt.want {
				t.Errorf("got (%d,%d,%d), want all %d", got.R, got.G, got.B, tt.want)
			}
		})
	}
}

func TestNegative_Involution(t *testing.T) {
	g := sequenceGrid(t, 7, 5)

	once, err := Negative(g)
	if err != nil {
		t.Fatalf("Negative failed: %v", err)
	}
	twice, err := Negative(once)
	if err != nil {
		t.Fatalf("Negative failed: %v", err)
	}
	requireEqual(t, twice, g, "double negation")

	if got := once.At(0, 0); got.R != 255-g.At(0, 0).R {
		t.Errorf("negation: got R=%d, want %d", got.R, 255-g.At(0, 0).R)
	}
}

func TestSepia_KnownValues(t *testing.T) {
	// For a uniform gray pixel (v,v,v) the matrix rows sum to
	// 1.351, 1.203, and 0.937.
	g := uniformGrid(t, 2, 2, pixel.Pixel{R: 100, G: 100, B: 100, A: 255})

	out, err := Sepia(g)
	if err != nil {
		t.Fatalf("Sepia failed: %v", err)
	}
	want := pixel.Pixel{R: 135, G: 120, B: 94, A: 255}
	if got := out.At(1, 1); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSepia_ClampsIndependently(t *testing.T) {
	g := uniformGrid(t, 1, 1, pixel.Pixel{R: 255, G: 255, B: 255, A: 255})

	out, err := Sepia(g)
	if err != nil {
		t.Fatalf("Sepia failed: %v", err)
	}
	// White overflows the red and green rows but not the blue one.
	want := pixel.Pixel{R: 255, G: 255, B: 239, A: 255}
	if got := out.At(0, 0); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestColorOps_PreserveAlpha(t *testing.T) {
	g, err := pixel.NewGrid(2, 2, true)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Set(0, 0, pixel.Pixel{R: 10, G: 20, B: 30, A: 100})

	out, err := Negative(g)
	if err != nil {
		t.Fatalf("Negative failed: %v", err)
	}
	if got := out.At(0, 0).A; got != 100 {
		t.Errorf("alpha after negative: got %d, want 100", got)
	}
}
