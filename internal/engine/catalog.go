package engine

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/imagelab/pixel-engine/internal/pixel"
	"github.com/imagelab/pixel-engine/internal/transform"
)

// ParamInfo describes one parameter of a catalog operation, for callers that
// build user-facing schemas from the catalog.
type ParamInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "integer" or "number"
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// OperationInfo describes one catalog operation.
type OperationInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ParamInfo `json:"params,omitempty"`
}

// entry binds an operation's description to its parameter coercion and
// transform invocation.
type entry struct {
	info  OperationInfo
	apply func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error)
}

// Operations returns descriptions of every catalog operation, sorted by name.
func Operations() []OperationInfo {
	infos := make([]OperationInfo, 0, len(catalog))
	for _, op := range catalog {
		infos = append(infos, op.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// OperationNames returns the sorted catalog names.
func OperationNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type addColorParams struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type shiftParams struct {
	Amount int `json:"amount"`
}

type brightnessParams struct {
	Factor *float64 `json:"factor"`
}

type rotateParams struct {
	Degrees *int `json:"degrees"`
}

type tileParams struct {
	Size *int `json:"size"`
}

type resizeParams struct {
	Width  *int `json:"width"`
	Height *int `json:"height"`
}

type blurParams struct {
	Radius *int `json:"radius"`
}

type pixelateParams struct {
	Block *int `json:"block"`
}

// shiftEntry builds the catalog entry for a single-channel shift.
func shiftEntry(name string, ch transform.Channel) entry {
	return entry{
		info: OperationInfo{
			Name:        name,
			Description: fmt.Sprintf("Add a signed amount to the %s channel of every pixel, saturating at 0 and 255.", ch),
			Params: []ParamInfo{
				{Name: "amount", Type: "integer", Description: "Signed delta added to the channel", Required: true},
			},
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			var p shiftParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			return transform.ShiftChannel(g, ch, p.Amount)
		},
	}
}

// catalog maps operation names to their entries. The set of names is fixed;
// callers discover it through Operations.
var catalog = map[string]entry{
	"add_color": {
		info: OperationInfo{
			Name:        "add_color",
			Description: "Add signed deltas to the red, green, and blue channels of every pixel, saturating at 0 and 255.",
			Params: []ParamInfo{
				{Name: "r", Type: "integer", Description: "Signed delta for the red channel"},
				{Name: "g", Type: "integer", Description: "Signed delta for the green channel"},
				{Name: "b", Type: "integer", Description: "Signed delta for the blue channel"},
			},
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			var p addColorParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			return transform.AddColor(g, p.R, p.G, p.B)
		},
	},

	"red_shift":   shiftEntry("red_shift", transform.Red),
	"green_shift": shiftEntry("green_shift", transform.Green),
	"blue_shift":  shiftEntry("blue_shift", transform.Blue),

	"shift_brightness": {
		info: OperationInfo{
			Name:        "shift_brightness",
			Description: "Multiply every color channel by a non-negative factor. Factors above 1 brighten, factors below 1 darken.",
			Params: []ParamInfo{
				{Name: "factor", Type: "number", Description: "Multiplier >= 0; defaults to 1.0"},
			},
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			var p brightnessParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			factor := 1.0
			if p.Factor != nil {
				factor = *p.Factor
			}
			return transform.Brightness(g, factor)
		},
	},

	"make_monochrome": {
		info: OperationInfo{
			Name:        "make_monochrome",
			Description: "Convert the image to grayscale using BT.601 luma weights (0.299 R + 0.587 G + 0.114 B).",
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			return transform.Monochrome(g)
		},
	},

	"negative": {
		info: OperationInfo{
			Name:        "negative",
			Description: "Invert every color channel (photo negative). Applying it twice restores the original.",
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			return transform.Negative(g)
		},
	},

	"sepia": {
		info: OperationInfo{
			Name:        "sepia",
			Description: "Apply the classic warm-brown sepia tone matrix.",
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			return transform.Sepia(g)
		},
	},

	"mirror_horizontal": {
		info: OperationInfo{
			Name:        "mirror_horizontal",
			Description: "Flip the image left-to-right.",
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			return transform.MirrorHorizontal(g)
		},
	},

	"mirror_vertical": {
		info: OperationInfo{
			Name:        "mirror_vertical",
			Description: "Flip the image top-to-bottom.",
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			return transform.MirrorVertical(g)
		},
	},

	"rotate": {
		info: OperationInfo{
			Name:        "rotate",
			Description: "Rotate by a multiple of 90 degrees; positive is clockwise. Quarter rotations swap width and height.",
			Params: []ParamInfo{
				{Name: "degrees", Type: "integer", Description: "Multiple of 90, any sign; defaults to 90"},
			},
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			var p rotateParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			degrees := 90
			if p.Degrees != nil {
				degrees = *p.Degrees
			}
			return transform.Rotate(g, degrees)
		},
	},

	"tile": {
		info: OperationInfo{
			Name:        "tile",
			Description: "Repeat the image edge-to-edge in a size x size arrangement, producing a grid size times wider and taller.",
			Params: []ParamInfo{
				{Name: "size", Type: "integer", Description: "Repetitions per axis, >= 1; defaults to 1"},
			},
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			var p tileParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			size := 1
			if p.Size != nil {
				size = *p.Size
			}
			if size >= 1 {
				if err := e.checkScaled(int64(g.Pixels()), int64(size), int64(size)); err != nil {
					return nil, err
				}
			}
			return transform.Tile(g, size)
		},
	},

	"resize": {
		info: OperationInfo{
			Name:        "resize",
			Description: "Scale to an exact width and height with nearest-neighbor sampling.",
			Params: []ParamInfo{
				{Name: "width", Type: "integer", Description: "Target width in pixels, >= 1", Required: true},
				{Name: "height", Type: "integer", Description: "Target height in pixels, >= 1", Required: true},
			},
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			var p resizeParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			if p.Width == nil || p.Height == nil {
				return nil, fmt.Errorf("%w: resize requires width and height", transform.ErrInvalidParameter)
			}
			if *p.Width >= 1 && *p.Height >= 1 {
				if err := e.checkScaled(int64(*p.Width), int64(*p.Height)); err != nil {
					return nil, err
				}
			}
			return transform.Resize(g, *p.Width, *p.Height)
		},
	},

	"blur": {
		info: OperationInfo{
			Name:        "blur",
			Description: "Box-average blur: every pixel becomes the mean of the square window around it, with the window clamped at the image edges.",
			Params: []ParamInfo{
				{Name: "radius", Type: "integer", Description: "Window radius, >= 1; defaults to 1"},
			},
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			var p blurParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			radius := 1
			if p.Radius != nil {
				radius = *p.Radius
			}
			return transform.Blur(g, radius)
		},
	},

	"pixelate": {
		info: OperationInfo{
			Name:        "pixelate",
			Description: "Replace every block x block cell with the mean color of that cell.",
			Params: []ParamInfo{
				{Name: "block", Type: "integer", Description: "Cell side length, >= 1; defaults to 8"},
			},
		},
		apply: func(e *Engine, g *pixel.Grid, raw json.RawMessage) (*pixel.Grid, error) {
			var p pixelateParams
			if err := decodeParams(raw, &p); err != nil {
				return nil, err
			}
			block := 8
			if p.Block != nil {
				block = *p.Block
			}
			return transform.Pixelate(g, block)
		},
	},
}
