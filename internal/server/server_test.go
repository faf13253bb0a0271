package server

import (
	"encoding/json"
	"testing"
)

func TestHandleInitialize(t *testing.T) {
	s := New()

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result has unexpected type %T", resp.Result)
	}
	info, ok := result["serverInfo"].(map[string]interface{})
	if !ok || info["name"] != "pixel-engine" {
		t.Errorf("serverInfo: got %v", result["serverInfo"])
	}
}

func TestHandleNotificationsInitialized(t *testing.T) {
	s := New()
	if resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"}); resp != nil {
		t.Errorf("notification produced a response: %+v", resp)
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 2, Method: "tools/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp)
	}

	result := resp.Result.(map[string]interface{})
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools has unexpected type %T", result["tools"])
	}

	want := map[string]bool{"image_transform": false, "image_info": false, "image_convert": false}
	for _, tool := range tools {
		if _, known := want[tool.Name]; known {
			want[tool.Name] = true
		}
		if tool.InputSchema == nil {
			t.Errorf("tool %q has no input schema", tool.Name)
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("tool %q missing from tools/list", name)
		}
	}
}

func TestHandleUnknownMethod(t *testing.T) {
	s := New()

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 3, Method: "bogus/method"})
	if resp == nil || resp.Error == nil {
		t.Fatal("unknown method did not produce an error response")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestHandlePing(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 4, Method: "ping"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("ping failed: %+v", resp)
	}
}

func TestToolsCall_InvalidParams(t *testing.T) {
	s := New()

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      5,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name": 42}`),
	})
	if resp == nil || resp.Error == nil {
		t.Fatal("malformed params did not produce an error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestToolDefinitions_TransformSchemaMatchesCatalog(t *testing.T) {
	tools := GetToolDefinitions()

	var transform *Tool
	for i := range tools {
		if tools[i].Name == "image_transform" {
			transform = &tools[i]
		}
	}
	if transform == nil {
		t.Fatal("image_transform tool not defined")
	}

	props := transform.InputSchema["properties"].(map[string]interface{})
	op := props["operation"].(map[string]interface{})
	enum := op["enum"].([]string)

	if len(enum) != 15 {
		t.Errorf("operation enum has %d entries, want 15: %v", len(enum), enum)
	}
}
