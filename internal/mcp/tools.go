package mcp

import (
	"context"

	"route2file/internal/envelope"
)

// Tool represents a tool exposed via MCP
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolResult is what a tool hands back: a text rendering for the model
// and an envelope for structured clients.
type ToolResult struct {
	Text     string
	Envelope *envelope.Response
}

// ToolHandler is a function that handles a tool call.
type ToolHandler func(ctx context.Context, params map[string]interface{}) (*ToolResult, error)

// GetToolDefinitions returns all tool definitions
func (s *MCPServer) GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: envelope.ToolName,
			Description: "Resolve a frontend route path (e.g. /dashboard/settings or /guild/42/salary) to the source file " +
				"that renders it. Checks Next.js app and pages routers and Vue/React views or pages directories, " +
				"then falls back to a keyword search over page files. Returns the absolute and project-relative path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"routePath": map[string]interface{}{
						"type":        "string",
						"description": "Route path as shown in the browser address bar, with or without a leading slash",
					},
					"projectRoot": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the frontend project. Defaults to ROUTE_TO_FILE_PROJECT_ROOT, then the server's working directory",
					},
					"keyword": map[string]interface{}{
						"type":        "string",
						"description": "Page or menu name to match file paths against when no convention path exists. Separate several with spaces or commas",
					},
				},
				"required": []string{"routePath"},
			},
		},
	}
}

// RegisterTools registers all tool handlers
func (s *MCPServer) RegisterTools() {
	s.tools[envelope.ToolName] = s.toolOpenRouteSource
}
