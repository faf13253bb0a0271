// Package server exposes the transformation engine as an MCP tool server
// over stdin/stdout.
//
// The server speaks JSON-RPC 2.0, one request per line: initialize,
// tools/list, tools/call, and ping. Three tools are exposed:
//
//   - image_transform: apply one catalog operation to an image supplied by
//     file path or base64 payload and return the encoded result
//   - image_info: report dimensions, format, and color statistics
//   - image_convert: re-encode an image in a different format
//
// All file reading and base64 handling happens here; the engine itself only
// ever sees byte buffers. Tool failures carry a stable machine-readable kind
// ("unknown_operation", "invalid_parameter", "unsupported_format",
// "corrupt_input", "resource_limit_exceeded") in the JSON-RPC error data so
// clients can distinguish request-shape errors from bad input images.
package server
