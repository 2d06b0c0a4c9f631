package mcp

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"route2file/internal/envelope"
	"route2file/internal/errors"
)

// handleMessage processes an incoming MCP message and returns a response
func (s *MCPServer) handleMessage(ctx context.Context, msg *MCPMessage) *MCPMessage {
	if msg.Jsonrpc != "2.0" {
		if msg.Id == nil {
			return nil
		}
		return NewErrorMessage(msg.Id, InvalidRequest, "Invalid request: jsonrpc must be \"2.0\"", nil)
	}

	// Responses to server-initiated requests; this server sends none.
	if msg.IsResponse() {
		s.logger.Debug("Ignoring response", "id", msg.Id)
		return nil
	}

	if msg.IsRequest() {
		return s.handleRequest(ctx, msg)
	}

	if msg.IsNotification() {
		s.handleNotification(msg)
		return nil
	}

	return NewErrorMessage(msg.Id, InvalidRequest, "Invalid message: not a request or notification", nil)
}

// handleRequest handles a JSON-RPC request
func (s *MCPServer) handleRequest(ctx context.Context, msg *MCPMessage) *MCPMessage {
	s.logger.Debug("Handling request",
		"method", msg.Method,
		"id", msg.Id,
	)

	switch msg.Method {
	case "initialize":
		return s.handleInitializeRequest(msg)
	case "ping":
		return NewResultMessage(msg.Id, map[string]interface{}{})
	case "tools/list":
		return s.handleListToolsRequest(msg)
	case "tools/call":
		return s.handleCallToolRequest(ctx, msg)
	default:
		return NewErrorMessage(msg.Id, MethodNotFound, fmt.Sprintf("Method not found: %s", msg.Method), nil)
	}
}

// handleNotification handles a JSON-RPC notification
func (s *MCPServer) handleNotification(msg *MCPMessage) {
	s.logger.Debug("Handling notification",
		"method", msg.Method,
	)

	switch msg.Method {
	case "notifications/initialized":
		s.logger.Info("Client initialized")
	case "notifications/cancelled":
		params, _ := msg.Params.(map[string]interface{})
		id, ok := params["requestId"]
		if !ok {
			s.logger.Warn("Cancellation without requestId")
			return
		}
		if s.cancelRequest(id) {
			s.logger.Info("Request cancelled by client",
				"id", id,
				"reason", params["reason"],
			)
		} else {
			s.logger.Debug("Cancellation for unknown or finished request", "id", id)
		}
	default:
		s.logger.Debug("Unknown notification",
			"method", msg.Method,
		)
	}
}

// handleInitializeRequest handles the initialize request
func (s *MCPServer) handleInitializeRequest(msg *MCPMessage) *MCPMessage {
	params, ok := msg.Params.(map[string]interface{})
	if !ok {
		params = make(map[string]interface{})
	}

	result, err := s.handleInitialize(params)
	if err != nil {
		return NewErrorMessage(msg.Id, InternalError, err.Error(), nil)
	}

	return NewResultMessage(msg.Id, result)
}

// handleListToolsRequest handles the tools/list request
func (s *MCPServer) handleListToolsRequest(msg *MCPMessage) *MCPMessage {
	return NewResultMessage(msg.Id, map[string]interface{}{
		"tools": s.GetToolDefinitions(),
	})
}

// handleCallToolRequest handles the tools/call request. A nil return
// means the call was cancelled and must not be answered.
func (s *MCPServer) handleCallToolRequest(ctx context.Context, msg *MCPMessage) *MCPMessage {
	params, ok := msg.Params.(map[string]interface{})
	if !ok {
		return NewErrorMessage(msg.Id, InvalidParams, "Invalid params: expected object", nil)
	}

	result, err := s.handleCallTool(ctx, params)
	if err != nil {
		switch errors.CodeOf(err) {
		case errors.Cancelled:
			s.logger.Info("Tool call abandoned", "id", msg.Id)
			return nil
		case errors.InvalidParameter, errors.ResourceNotFound:
			return NewErrorMessage(msg.Id, InvalidParams, err.Error(), nil)
		default:
			return NewErrorMessage(msg.Id, InternalError, err.Error(), nil)
		}
	}

	return NewResultMessage(msg.Id, result)
}

// ToolCallResult is the MCP result of tools/call.
type ToolCallResult struct {
	Content           []ContentItem      `json:"content"`
	StructuredContent *envelope.Response `json:"structuredContent,omitempty"`
	IsError           bool               `json:"isError"`
}

// ContentItem is one block of tool output.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// handleCallTool executes a tool. Protocol-level problems (no name,
// unknown tool) and cancellation are returned as errors; failures inside
// the tool become an isError result the client can read.
func (s *MCPServer) handleCallTool(ctx context.Context, params map[string]interface{}) (*ToolCallResult, error) {
	toolName, ok := params["name"].(string)
	if !ok || toolName == "" {
		return nil, errors.NewInvalidParameterError("name", "")
	}

	toolParams, ok := params["arguments"].(map[string]interface{})
	if !ok {
		toolParams = make(map[string]interface{})
	}

	handler, exists := s.tools[toolName]
	if !exists {
		return nil, errors.NewResourceNotFoundError("tool", toolName)
	}

	callID := uuid.NewString()
	logger := s.logger.With("callId", callID)
	logger.Info("Calling tool",
		"tool", toolName,
		"params", toolParams,
	)

	result, err := handler(ctx, toolParams)
	if err != nil {
		if errors.CodeOf(err) == errors.Cancelled {
			return nil, err
		}
		logger.Warn("Tool failed", "tool", toolName, "error", err.Error())
		return toolError(callID, err), nil
	}

	result.Envelope.Meta = metaWithCallID(result.Envelope.Meta, callID)
	logger.Debug("Tool finished", "tool", toolName)

	return &ToolCallResult{
		Content:           []ContentItem{{Type: "text", Text: result.Text}},
		StructuredContent: result.Envelope,
	}, nil
}

func metaWithCallID(m *envelope.Meta, callID string) *envelope.Meta {
	if m == nil {
		m = &envelope.Meta{}
	}
	m.CallID = callID
	return m
}

// toolError renders err as an isError result. A RouteError travels in
// the envelope data so clients can read its code and suggested fixes.
func toolError(callID string, err error) *ToolCallResult {
	b := envelope.New().CallID(callID).Error(err)
	var re *errors.RouteError
	if stderrors.As(err, &re) {
		if re.SuggestedFixes == nil {
			re.SuggestedFixes = errors.GetSuggestedFixes(re.Code)
		}
		b.Data(re)
	}
	return &ToolCallResult{
		Content:           []ContentItem{{Type: "text", Text: err.Error()}},
		StructuredContent: b.Build(),
		IsError:           true,
	}
}
