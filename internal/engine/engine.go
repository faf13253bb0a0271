package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/imagelab/pixel-engine/internal/codec"
	"github.com/imagelab/pixel-engine/internal/pixel"
	"github.com/imagelab/pixel-engine/internal/transform"
)

// Sentinel errors for request-shape and resource failures.
var (
	// ErrUnknownOperation indicates an operation name that is not in the
	// catalog.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrResourceLimitExceeded indicates a request whose output grid would
	// exceed the configured pixel ceiling. The request is rejected before
	// any buffer is allocated.
	ErrResourceLimitExceeded = errors.New("resource limit exceeded")
)

// Limits bounds the memory a single request may consume.
type Limits struct {
	// MaxPixels is the largest pixel count (width * height) permitted for
	// any decoded input or produced output grid. Zero selects the default.
	MaxPixels int64
}

// DefaultLimits returns the standard ceiling of 64 mebipixels, roughly
// 256 MB of RGBA buffer for a single grid.
func DefaultLimits() Limits {
	return Limits{MaxPixels: 64 << 20}
}

// Engine dispatches operation requests against the transform catalog.
//
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	limits Limits
}

// New creates an engine with the given limits. A zero Limits value selects
// DefaultLimits.
func New(limits Limits) *Engine {
	if limits.MaxPixels <= 0 {
		limits.MaxPixels = DefaultLimits().MaxPixels
	}
	return &Engine{limits: limits}
}

// checkPixels rejects grids larger than the configured ceiling.
func (e *Engine) checkPixels(pixels int64) error {
	if pixels > e.limits.MaxPixels {
		return fmt.Errorf("%w: %d pixels exceeds ceiling of %d", ErrResourceLimitExceeded, pixels, e.limits.MaxPixels)
	}
	return nil
}

// checkScaled rejects a pixel count scaled by the given positive factors.
// Each factor is tested by division before multiplying, so a product that
// would wrap around int64 can never slip under the ceiling.
func (e *Engine) checkScaled(pixels int64, factors ...int64) error {
	if err := e.checkPixels(pixels); err != nil {
		return err
	}
	total := pixels
	for _, f := range factors {
		if f <= 0 {
			continue
		}
		if total > e.limits.MaxPixels/f {
			return fmt.Errorf("%w: output would exceed ceiling of %d pixels", ErrResourceLimitExceeded, e.limits.MaxPixels)
		}
		total *= f
	}
	return nil
}

// checkInput enforces the pixel ceiling from the container header alone, so
// an oversized image is rejected before any pixel data is decoded or a grid
// buffer is allocated.
func (e *Engine) checkInput(input []byte) error {
	cfg, _, err := codec.DecodeConfig(input)
	if err != nil {
		return err
	}
	return e.checkScaled(int64(cfg.Width), int64(cfg.Height))
}

// checkQuality rejects an out-of-range quality before any decode or pixel
// work happens. A nil quality selects the codec default.
func checkQuality(q *int) error {
	if q != nil && (*q < 0 || *q > 100) {
		return fmt.Errorf("%w: quality must be in 0..100, got %d", transform.ErrInvalidParameter, *q)
	}
	return nil
}

// Apply looks up an operation by name, coerces raw JSON parameters into the
// operation's typed parameter set, and invokes it on the grid.
//
// The input grid is never mutated; the caller keeps the original and may
// apply a different operation to it afterwards. Failures:
//   - ErrUnknownOperation for a name not in the catalog
//   - transform.ErrInvalidParameter for missing, mistyped, or out-of-domain
//     parameters (reported before any pixel work)
//   - ErrResourceLimitExceeded when the output grid would exceed the ceiling
func (e *Engine) Apply(g *pixel.Grid, name string, rawParams json.RawMessage) (*pixel.Grid, error) {
	op, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	out, err := op.apply(e, g, rawParams)
	if err != nil {
		return nil, fmt.Errorf("operation %s: %w", name, err)
	}
	return out, nil
}

// Request describes one transformation over encoded bytes.
type Request struct {
	// Operation is the catalog name to apply.
	Operation string

	// Parameters is the operation's raw JSON parameter object; empty means
	// no parameters (defaults apply where the operation defines them).
	Parameters json.RawMessage

	// OutputFormat selects the encoding of the result. Empty re-encodes in
	// the detected input format, except GIF input which falls back to PNG
	// because the codec does not encode GIF.
	OutputFormat codec.Format

	// Quality is the lossy-encoder quality (0-100); nil selects the codec
	// default. Ignored by lossless formats.
	Quality *int
}

// Result is the outcome of a Process call.
type Result struct {
	// Data is the encoded output image.
	Data []byte

	// Width and Height are the output grid dimensions, which may differ
	// from the input for geometric operations.
	Width  int
	Height int

	// Format is the encoding of Data; MimeType is its MIME label.
	Format   codec.Format
	MimeType string
}

// Process runs the full pipeline over encoded bytes:
// decode -> apply -> encode. It is the boundary the surrounding application
// calls: bytes in, bytes out, no hidden I/O.
func (e *Engine) Process(input []byte, req Request) (*Result, error) {
	if err := checkQuality(req.Quality); err != nil {
		return nil, err
	}
	if err := e.checkInput(input); err != nil {
		return nil, err
	}
	grid, srcFormat, err := codec.Decode(input)
	if err != nil {
		return nil, err
	}

	out, err := e.Apply(grid, req.Operation, req.Parameters)
	if err != nil {
		return nil, err
	}

	format := req.OutputFormat
	if format == "" {
		format = srcFormat
	}
	if format == codec.FormatGIF {
		format = codec.FormatPNG
	}

	data, err := codec.Encode(out, format, codec.Options{Quality: req.Quality})
	if err != nil {
		return nil, err
	}
	return &Result{
		Data:     data,
		Width:    out.Width(),
		Height:   out.Height(),
		Format:   format,
		MimeType: codec.MimeType(format),
	}, nil
}

// Convert re-encodes input bytes in a different format without applying any
// transformation.
func (e *Engine) Convert(input []byte, format codec.Format, quality *int) (*Result, error) {
	if err := checkQuality(quality); err != nil {
		return nil, err
	}
	if err := e.checkInput(input); err != nil {
		return nil, err
	}
	grid, _, err := codec.Decode(input)
	if err != nil {
		return nil, err
	}
	data, err := codec.Encode(grid, format, codec.Options{Quality: quality})
	if err != nil {
		return nil, err
	}
	return &Result{
		Data:     data,
		Width:    grid.Width(),
		Height:   grid.Height(),
		Format:   format,
		MimeType: codec.MimeType(format),
	}, nil
}

// decodeParams unmarshals a raw parameter object into dst, treating an empty
// payload as an empty object and reporting type mismatches as invalid
// parameters.
func decodeParams(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", transform.ErrInvalidParameter, err)
	}
	return nil
}
