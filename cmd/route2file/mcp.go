package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"route2file/internal/mcp"
	"route2file/internal/version"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Start the Model Context Protocol (MCP) server.

The server speaks JSON-RPC 2.0 over stdin/stdout and exposes one tool:
  - open_route_source: resolve a route path (and optional keyword) to a source file

Logs are written to stderr, or to logging.file when configured.

Example MCP client entry:
  {"command": "route2file", "args": ["mcp"],
   "env": {"ROUTE_TO_FILE_PROJECT_ROOT": "/path/to/frontend"}}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting MCP server",
		"version", version.Version,
		"projectRoot", cfg.ProjectRoot,
	)

	server := mcp.NewMCPServer(version.Version, newResolver(), logger)
	server.SetStdin(cmd.InOrStdin())
	server.SetStdout(cmd.OutOrStdout())

	if err := server.Start(ctx); err != nil {
		logger.Error("MCP server error",
			"error", err.Error(),
		)
		return err
	}
	return nil
}
