package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/imagelab/pixel-engine/internal/codec"
	"github.com/imagelab/pixel-engine/internal/engine"
	"github.com/imagelab/pixel-engine/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_transform").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool, wrapping the result in MCP's content format.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed",
			map[string]interface{}{"kind": errorKind(err), "detail": err.Error()})
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_transform":
		return s.handleImageTransform(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_convert":
		return s.handleImageConvert(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// errorKind maps the engine's typed errors to stable machine-readable names
// for the JSON-RPC error data. Errors outside the taxonomy (missing files,
// bad base64) report as "io".
func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrUnknownOperation):
		return "unknown_operation"
	case errors.Is(err, transform.ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, engine.ErrResourceLimitExceeded):
		return "resource_limit_exceeded"
	case errors.Is(err, codec.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, codec.ErrCorruptInput):
		return "corrupt_input"
	default:
		return "io"
	}
}

// imageSourceArgs are the input fields shared by every tool.
type imageSourceArgs struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
}

// loadInput resolves a tool's image input to raw encoded bytes, from the
// file cache when a path is given or from the inline base64 payload.
func (s *Server) loadInput(src imageSourceArgs) ([]byte, error) {
	if src.Path != "" {
		return s.files.Load(src.Path)
	}
	if src.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(src.ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 image: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("either path or image_base64 is required")
}

type transformArgs struct {
	imageSourceArgs
	Operation    string          `json:"operation"`
	Parameters   json.RawMessage `json:"parameters"`
	OutputFormat string          `json:"output_format"`
	Quality      *int            `json:"quality"`
}

// TransformResult is the image_transform and image_convert tool payload.
type TransformResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleImageTransform(args json.RawMessage) (interface{}, error) {
	var a transformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	input, err := s.loadInput(a.imageSourceArgs)
	if err != nil {
		return nil, err
	}

	var format codec.Format
	if a.OutputFormat != "" {
		format, err = codec.ParseFormat(a.OutputFormat)
		if err != nil {
			return nil, err
		}
	}

	res, err := s.engine.Process(input, engine.Request{
		Operation:    a.Operation,
		Parameters:   a.Parameters,
		OutputFormat: format,
		Quality:      a.Quality,
	})
	if err != nil {
		return nil, err
	}

	return &TransformResult{
		Width:       res.Width,
		Height:      res.Height,
		Format:      string(res.Format),
		ImageBase64: base64.StdEncoding.EncodeToString(res.Data),
		MimeType:    res.MimeType,
	}, nil
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageSourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	input, err := s.loadInput(a)
	if err != nil {
		return nil, err
	}
	return s.engine.Describe(input)
}

type convertArgs struct {
	imageSourceArgs
	OutputFormat string `json:"output_format"`
	Quality      *int   `json:"quality"`
}

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	var a convertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	input, err := s.loadInput(a.imageSourceArgs)
	if err != nil {
		return nil, err
	}

	format, err := codec.ParseFormat(a.OutputFormat)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Convert(input, format, a.Quality)
	if err != nil {
		return nil, err
	}

	return &TransformResult{
		Width:       res.Width,
		Height:      res.Height,
		Format:      string(res.Format),
		ImageBase64: base64.StdEncoding.EncodeToString(res.Data),
		MimeType:    res.MimeType,
	}, nil
}
