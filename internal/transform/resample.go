package transform

import (
	"fmt"

	"github.com/imagelab/pixel-engine/internal/pixel"
)

// Resize scales the image to targetWidth x targetHeight with
// nearest-neighbor sampling: every output pixel is the source pixel at
//
//	srcX = outX * srcWidth  / targetWidth
//	srcY = outY * srcHeight / targetHeight
//
// (integer division, i.e. floor). Nearest-neighbor is chosen over
// interpolating filters because it is exactly reproducible and cheap at
// megapixel scale.
//
// Both target dimensions must be >= 1.
func Resize(g *pixel.Grid, targetWidth, targetHeight int) (*pixel.Grid, error) {
	if targetWidth < 1 || targetHeight < 1 {
		return nil, fmt.Errorf("%w: resize dimensions must be >= 1, got %dx%d",
			ErrInvalidParameter, targetWidth, targetHeight)
	}
	out, err := pixel.NewGrid(targetWidth, targetHeight, g.HasAlpha())
	if err != nil {
		return nil, err
	}
	srcW, srcH := g.Width(), g.Height()
	for y := 0; y < targetHeight; y++ {
		srcY := y * srcH / targetHeight
		for x := 0; x < targetWidth; x++ {
			out.Set(x, y, g.At(x*srcW/targetWidth, srcY))
		}
	}
	return out, nil
}
