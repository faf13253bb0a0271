package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/imagelab/pixel-engine/internal/engine"
)

// Server handles MCP protocol communication for the transformation engine.
type Server struct {
	engine *engine.Engine
	files  *fileCache
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server around an engine with default limits.
func New() *Server {
	return NewWithLimits(engine.DefaultLimits())
}

// NewWithLimits creates a server around an engine with explicit limits.
func NewWithLimits(limits engine.Limits) *Server {
	return &Server{
		engine: engine.New(limits),
		files:  newFileCache(),
	}
}

// Run starts the server, reading requests from stdin and writing responses
// to stdout until stdin is closed.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(os.Stdin)
	// Increase buffer size for base64 image payloads
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 64*1024*1024)

	encoder := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to the appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "pixel-engine",
				"version": "0.1.0",
			},
		},
	}
}

// handleToolsList responds with the available tool definitions
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

// fileCache is a thread-safe cache of raw image file contents keyed by path.
//
// The engine operates on byte buffers, so the server caches the encoded
// bytes rather than decoded pixels; repeated tool calls against the same
// path skip the disk read. Entries stay until Evict or Clear.
type fileCache struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func newFileCache() *fileCache {
	return &fileCache{files: make(map[string][]byte)}
}

// Load returns the file's contents, reading from disk on the first request
// for a path and from the cache afterwards.
func (c *fileCache) Load(path string) ([]byte, error) {
	c.mu.RLock()
	if data, ok := c.files[path]; ok {
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	c.mu.Lock()
	c.files[path] = data
	c.mu.Unlock()

	return data, nil
}

// Evict removes one path from the cache; unknown paths are a no-op.
func (c *fileCache) Evict(path string) {
	c.mu.Lock()
	delete(c.files, path)
	c.mu.Unlock()
}

// Clear drops every cached file.
func (c *fileCache) Clear() {
	c.mu.Lock()
	c.files = make(map[string][]byte)
	c.mu.Unlock()
}
