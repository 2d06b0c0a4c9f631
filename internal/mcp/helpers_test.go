package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"route2file/internal/routes"
	"route2file/internal/slogutil"
	"route2file/internal/version"
)

// newTestMCPServer creates an MCP server whose default root is root.
func newTestMCPServer(t *testing.T, root string) *MCPServer {
	t.Helper()

	logger := slogutil.NewDiscardLogger()
	resolver := routes.NewResolver(routes.Options{
		DefaultRoot: root,
		Parallel:    true,
		Logger:      logger,
	})
	return NewMCPServer(version.Version, resolver, logger)
}

// sendRequest sends a request and returns the response
func sendRequest(t *testing.T, server *MCPServer, method string, id int, params interface{}) *MCPMessage {
	t.Helper()

	request := MCPMessage{
		Jsonrpc: "2.0",
		Id:      id,
		Method:  method,
		Params:  params,
	}

	requestBytes, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	requestBytes = append(requestBytes, '\n')

	server.SetStdin(bytes.NewReader(requestBytes))
	server.SetStdout(&bytes.Buffer{})

	msg, err := server.readMessage()
	if err != nil && err != io.EOF {
		t.Fatalf("Failed to read message: %v", err)
	}

	return server.handleMessage(context.Background(), msg)
}

// callTool invokes tools/call and returns the decoded result.
func callTool(t *testing.T, server *MCPServer, name string, args map[string]interface{}) *ToolCallResult {
	t.Helper()

	response := sendRequest(t, server, "tools/call", 1, map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if response == nil {
		t.Fatal("Response should not be nil")
	}
	if response.Error != nil {
		t.Fatalf("Unexpected error: %d %s", response.Error.Code, response.Error.Message)
	}
	result, ok := response.Result.(*ToolCallResult)
	if !ok {
		t.Fatalf("Result should be *ToolCallResult, got %T", response.Result)
	}
	return result
}
