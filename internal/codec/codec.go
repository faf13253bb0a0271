package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"

	"github.com/imagelab/pixel-engine/internal/pixel"
)

// Sentinel errors for decode and encode failures.
var (
	// ErrUnsupportedFormat indicates the byte buffer does not start with a
	// container signature the codec recognizes, or an encode was requested
	// in a format the codec cannot produce.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrCorruptInput indicates a recognized container that could not be
	// decoded (truncated, malformed header, inconsistent stream).
	ErrCorruptInput = errors.New("corrupt image data")
)

// Format identifies an on-disk raster container.
type Format string

// Supported formats. GIF is decode-only, matching the set of decoders the
// engine registers; all other formats round-trip.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWEBP Format = "webp"
	FormatBMP  Format = "bmp"
	FormatGIF  Format = "gif"
)

// DefaultQuality is the encoder quality used when Options.Quality is nil.
const DefaultQuality = 90

// Options carries format-specific encoding settings.
type Options struct {
	// Quality is the lossy-encoder quality from 0 to 100. Nil selects
	// DefaultQuality. PNG and BMP are lossless and ignore it.
	Quality *int
}

// ParseFormat normalizes a user-supplied format name.
//
// Accepted spellings are case-insensitive and include the "jpg" alias for
// JPEG. Unknown names return ErrUnsupportedFormat.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "webp":
		return FormatWEBP, nil
	case "bmp":
		return FormatBMP, nil
	case "gif":
		return FormatGIF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// sniff identifies the container format from the leading bytes of data.
// It returns the empty Format when no known signature matches.
func sniff(data []byte) Format {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return FormatJPEG
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWEBP
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return FormatBMP
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return FormatGIF
	default:
		return ""
	}
}

// DecodeConfig reads the dimensions and detected format of encoded image
// bytes from the container header, without decoding any pixel data. Callers
// enforcing size ceilings use it to reject oversized images before a grid
// buffer exists.
//
// Errors follow Decode: ErrUnsupportedFormat when no known signature matches,
// ErrCorruptInput when the recognized header cannot be parsed.
func DecodeConfig(data []byte) (image.Config, Format, error) {
	format := sniff(data)
	if format == "" {
		return image.Config{}, "", ErrUnsupportedFormat
	}

	var (
		cfg image.Config
		err error
	)
	r := bytes.NewReader(data)
	switch format {
	case FormatPNG:
		cfg, err = png.DecodeConfig(r)
	case FormatJPEG:
		cfg, err = jpeg.DecodeConfig(r)
	case FormatWEBP:
		cfg, err = webp.DecodeConfig(r)
	case FormatBMP:
		cfg, err = bmp.DecodeConfig(r)
	case FormatGIF:
		cfg, err = gif.DecodeConfig(r)
	}
	if err != nil {
		return image.Config{}, format, fmt.Errorf("%w: reading %s header: %v", ErrCorruptInput, format, err)
	}
	return cfg, format, nil
}

// Decode converts encoded image bytes into a pixel.Grid.
//
// The container is detected from the buffer contents (see sniff), never from
// a filename. Supported inputs are PNG, JPEG, WEBP, BMP, and GIF (first
// frame).
//
// Returns:
//   - the decoded grid
//   - the detected Format
//   - ErrUnsupportedFormat if no known container signature matches, or
//     ErrCorruptInput (wrapping the decoder's error) if the recognized
//     container fails to decode.
func Decode(data []byte) (*pixel.Grid, Format, error) {
	format := sniff(data)
	if format == "" {
		return nil, "", ErrUnsupportedFormat
	}

	var (
		img image.Image
		err error
	)
	r := bytes.NewReader(data)
	switch format {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatWEBP:
		img, err = webp.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	}
	if err != nil {
		return nil, format, fmt.Errorf("%w: decoding %s: %v", ErrCorruptInput, format, err)
	}

	grid, err := pixel.FromImage(img)
	if err != nil {
		return nil, format, fmt.Errorf("%w: %v", ErrCorruptInput, err)
	}
	return grid, format, nil
}

// Encode renders a grid into the requested output format.
//
// JPEG and WEBP honor opts.Quality (0-100, default DefaultQuality); PNG and
// BMP are lossless and ignore it. Encoding a grid that carries alpha into a
// format without native alpha (JPEG, BMP) flattens the image onto an opaque
// white background rather than failing. GIF encoding is not supported and
// returns ErrUnsupportedFormat.
func Encode(grid *pixel.Grid, format Format, opts Options) ([]byte, error) {
	quality := DefaultQuality
	if opts.Quality != nil {
		quality = *opts.Quality
	}
	if quality < 0 || quality > 100 {
		return nil, fmt.Errorf("quality must be in 0..100, got %d", quality)
	}

	img := grid.Image()

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatJPEG:
		err = jpeg.Encode(&buf, flatten(grid, img), &jpeg.Options{Quality: quality})
	case FormatWEBP:
		err = webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)})
	case FormatBMP:
		err = bmp.Encode(&buf, flatten(grid, img))
	default:
		return nil, fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// flatten composites an alpha-carrying image onto an opaque white background
// for output formats without native alpha. Grids without alpha pass through.
func flatten(grid *pixel.Grid, img *image.NRGBA) image.Image {
	if !grid.HasAlpha() {
		return img
	}
	bg := imaging.New(grid.Width(), grid.Height(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// MimeType returns the MIME type for a format, for callers that label
// encoded payloads.
func MimeType(format Format) string {
	switch format {
	case FormatJPEG:
		return "image/jpeg"
	case FormatWEBP:
		return "image/webp"
	case FormatBMP:
		return "image/bmp"
	case FormatGIF:
		return "image/gif"
	default:
		return "image/png"
	}
}
