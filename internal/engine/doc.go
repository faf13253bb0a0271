// Package engine is the operation dispatcher: the one component external
// callers address directly.
//
// The engine owns the catalog of named operations, coerces raw JSON
// parameters into each operator's typed parameter set, enforces the
// configured resource ceiling, and runs the full
// decode -> transform -> encode pipeline over byte buffers.
//
// The engine is stateless and reentrant. It holds no mutable state between
// calls, performs no I/O, and never retries: every call is a pure function
// from input bytes plus a request to output bytes or a typed error, so any
// number of Apply or Process calls may run concurrently. Bounding the number
// of concurrent invocations (and therefore peak memory) is the caller's job;
// the engine's contribution is rejecting any single request whose output
// buffer would exceed Limits.MaxPixels.
package engine
