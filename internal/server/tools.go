package server

import (
	"fmt"
	"strings"

	"github.com/imagelab/pixel-engine/internal/engine"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// inputProperties are the source-image fields shared by every tool: the
// image may come from a file path or from an inline base64 payload.
func inputProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file. Either path or image_base64 is required.",
		},
		"image_base64": map[string]interface{}{
			"type":        "string",
			"description": "Base64-encoded image bytes, used when no path is given.",
		},
	}
}

func outputProperties() map[string]interface{} {
	return map[string]interface{}{
		"output_format": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"png", "jpeg", "webp", "bmp"},
			"description": "Encoding of the result. Defaults to the input's format.",
		},
		"quality": map[string]interface{}{
			"type":        "integer",
			"description": "Lossy encoder quality 0-100 (JPEG/WEBP only). Default 90.",
			"default":     90,
		},
	}
}

// GetToolDefinitions returns all available tools. The image_transform schema
// is generated from the engine's operation catalog, so the tool list always
// matches what the dispatcher accepts.
func GetToolDefinitions() []Tool {
	ops := engine.Operations()

	var lines []string
	for _, op := range ops {
		var params []string
		for _, p := range op.Params {
			params = append(params, p.Name)
		}
		if len(params) == 0 {
			lines = append(lines, fmt.Sprintf("%s (no parameters): %s", op.Name, op.Description))
		} else {
			lines = append(lines, fmt.Sprintf("%s (parameters: %s): %s", op.Name, strings.Join(params, ", "), op.Description))
		}
	}

	transformProps := inputProperties()
	transformProps["operation"] = map[string]interface{}{
		"type":        "string",
		"enum":        engine.OperationNames(),
		"description": "Transformation to apply.",
	}
	transformProps["parameters"] = map[string]interface{}{
		"type":        "object",
		"description": "Operation-specific parameters. " + strings.Join(lines, " | "),
	}
	for k, v := range outputProperties() {
		transformProps[k] = v
	}

	convertProps := inputProperties()
	for k, v := range outputProperties() {
		convertProps[k] = v
	}

	return []Tool{
		{
			Name:        "image_transform",
			Description: "Apply one deterministic pixel transformation (color, geometric, blur, resize, ...) to an image and return the result as base64.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": transformProps,
				"required":   []string{"operation"},
			},
		},
		{
			Name:        "image_info",
			Description: "Report an image's dimensions, detected format, alpha presence, per-channel histogram statistics, and average color.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": inputProperties(),
			},
		},
		{
			Name:        "image_convert",
			Description: "Re-encode an image in a different format without transforming pixels.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": convertProps,
				"required":   []string{"output_format"},
			},
		},
	}
}
