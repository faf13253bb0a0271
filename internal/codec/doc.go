// Package codec bridges encoded image bytes and pixel.Grid values.
//
// Decode sniffs the container format from the leading bytes of the buffer
// rather than trusting a filename extension, then hands the buffer to the
// matching decoder. Encode renders a grid into a requested output format
// with format-specific options (JPEG and WEBP honor a quality setting;
// PNG and BMP are lossless and ignore it).
//
// The package performs no filesystem or network access: byte buffers are
// handed in and out, and the caller owns all I/O.
//
// # Errors
//
// Decode failures are split into two cases:
//   - ErrUnsupportedFormat: the container is not one the codec recognizes.
//   - ErrCorruptInput: the container is recognized but internally
//     inconsistent (truncated stream, malformed header, bad checksum).
//
// Both are sentinel errors and can be tested with errors.Is.
package codec
