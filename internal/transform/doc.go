// Package transform implements the catalog of pure image operators.
//
// Every operator is a function from one pixel.Grid plus parameters to a new
// pixel.Grid; the input grid is never modified. Channel arithmetic runs in
// int or float64 intermediates and is clamped to [0, 255] with ties rounded
// away from zero before any value is stored, so repeated application of the
// same operator with the same parameters is bit-exact reproducible.
//
// Parameter validation happens before any pixel work: an out-of-domain
// parameter returns an error wrapping ErrInvalidParameter and leaves no
// partial result.
//
// Alpha handling: color operators pass the alpha channel through untouched
// (Negative does not invert alpha), geometric operators move alpha with its
// pixel, and the averaging operators (Blur, Pixelate) average alpha along
// with the color channels.
package transform
