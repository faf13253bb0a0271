// Package pixel provides the in-memory representation of decoded image data.
//
// The central type is Grid: a flat, row-major buffer of 8-bit channel values
// plus width/height/alpha metadata. The buffer is a single contiguous
// allocation indexed by (row, col) rather than a matrix of per-pixel objects,
// which keeps megapixel images cheap to allocate and walk.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Channel Semantics
//
// Every channel value stored in a Grid lies in [0, 255]. Arithmetic that can
// leave that range is performed in wider intermediates by callers and brought
// back with Clamp or ClampRound before storage. ClampRound rounds ties away
// from zero (math.Round), and every transform in this module uses the same
// rule so results are bit-exact reproducible.
//
// # Ownership
//
// Transforms never mutate a Grid they receive; they allocate a fresh Grid and
// fill it. Once a Grid has been handed to a caller it is treated as
// immutable, so grids may be shared across goroutines without locking.
package pixel
