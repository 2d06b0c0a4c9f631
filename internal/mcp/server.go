package mcp

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"route2file/internal/routes"
)

// ServerName is reported to clients in the initialize handshake.
const ServerName = "route-to-file-mcp"

// MCPServer represents the MCP server
type MCPServer struct {
	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
	writeMu sync.Mutex
	logger  *slog.Logger
	version string

	resolver *routes.Resolver
	tools    map[string]ToolHandler

	// In-flight tools/call requests, keyed by requestKey.
	mu       sync.Mutex
	inflight map[string]context.CancelFunc
	calls    sync.WaitGroup
}

// NewMCPServer creates a new MCP server backed by resolver
func NewMCPServer(version string, resolver *routes.Resolver, logger *slog.Logger) *MCPServer {
	server := &MCPServer{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		logger:   logger,
		version:  version,
		resolver: resolver,
		tools:    make(map[string]ToolHandler),
		inflight: make(map[string]context.CancelFunc),
	}

	server.RegisterTools()

	return server
}

// Start reads messages until EOF or until ctx is done. tools/call
// requests run concurrently; every other request is answered in order.
// Start waits for in-flight calls before returning.
func (s *MCPServer) Start(ctx context.Context) error {
	s.logger.Info("MCP server starting",
		"version", s.version,
		"defaultRoot", s.resolver.DefaultRoot(),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		s.calls.Wait()
	}()

	msgs := make(chan *MCPMessage)
	readErr := make(chan error, 1)
	go func() {
		defer close(msgs)
		for {
			msg, err := s.readMessage()
			if err != nil {
				var perr *MCPError
				if errors.As(err, &perr) {
					s.logger.Warn("Dropping malformed message", "error", perr.Message)
					_ = s.writeError(nil, perr.Code, perr.Message)
					continue
				}
				readErr <- err
				return
			}
			select {
			case msgs <- msg:
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("MCP server shutting down", "reason", ctx.Err().Error())
			return nil
		case msg, ok := <-msgs:
			if !ok {
				err := <-readErr
				if ctx.Err() != nil {
					s.logger.Info("MCP server shutting down", "reason", ctx.Err().Error())
					return nil
				}
				if errors.Is(err, io.EOF) {
					s.logger.Info("MCP server shutting down (EOF)")
					return nil
				}
				s.logger.Error("Error reading message", "error", err.Error())
				return err
			}
			s.dispatch(ctx, msg)
		}
	}
}

// dispatch answers msg, running tools/call in its own goroutine.
func (s *MCPServer) dispatch(ctx context.Context, msg *MCPMessage) {
	if msg.IsRequest() && msg.Method == "tools/call" {
		callCtx := s.track(ctx, msg.Id)
		s.calls.Add(1)
		go func() {
			defer s.calls.Done()
			defer s.untrack(msg.Id)
			s.respond(callCtx, msg, s.handleMessage(callCtx, msg))
		}()
		return
	}
	s.respond(ctx, msg, s.handleMessage(ctx, msg))
}

// respond writes response unless the request was cancelled, in which
// case the client expects no reply.
func (s *MCPServer) respond(ctx context.Context, msg *MCPMessage, response *MCPMessage) {
	if response == nil {
		return
	}
	if ctx.Err() != nil {
		s.logger.Debug("Suppressing response to cancelled request", "id", msg.Id)
		return
	}
	if err := s.writeMessage(response); err != nil {
		s.logger.Error("Error writing response",
			"error", err.Error(),
		)
	}
}

func (s *MCPServer) track(parent context.Context, id interface{}) context.Context {
	ctx, cancel := context.WithCancel(parent)
	s.mu.Lock()
	s.inflight[requestKey(id)] = cancel
	s.mu.Unlock()
	return ctx
}

func (s *MCPServer) untrack(id interface{}) {
	key := requestKey(id)
	s.mu.Lock()
	cancel, ok := s.inflight[key]
	delete(s.inflight, key)
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

// cancelRequest cancels the in-flight call with the given id, reporting
// whether one was found.
func (s *MCPServer) cancelRequest(id interface{}) bool {
	s.mu.Lock()
	cancel, ok := s.inflight[requestKey(id)]
	s.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// SetStdin sets the input stream (for testing)
func (s *MCPServer) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil
}

// SetStdout sets the output stream (for testing)
func (s *MCPServer) SetStdout(w io.Writer) {
	s.stdout = w
}
