package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"route2file/internal/envelope"
	"route2file/internal/routes"
)

var (
	resolveRoot    string
	resolveKeyword string
	resolveJSON    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <route>",
	Short: "Resolve a route path to its source file",
	Long: `Resolve a route path to the file that renders it, exactly as the
open_route_source MCP tool does.

Examples:
  route2file resolve /dashboard/settings
  route2file resolve /guild/42/salary --root ~/src/admin-web
  route2file resolve /orders/5f1d7c2e9b1e8a0012345678 --keyword "order detail"
  route2file resolve /user/123 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveRoot, "root", "", "Project root (default: config projectRoot, ROUTE_TO_FILE_PROJECT_ROOT, or the working directory)")
	resolveCmd.Flags().StringVarP(&resolveKeyword, "keyword", "k", "", "Page or menu name for the keyword search (space or comma separated)")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Print the structured envelope as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	res, err := newResolver().Resolve(cmd.Context(), routes.Query{
		RoutePath:   args[0],
		ProjectRoot: resolveRoot,
		Keyword:     resolveKeyword,
	})
	if err != nil {
		return fmt.Errorf("resolve %q: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if resolveJSON {
		data, err := json.MarshalIndent(envelope.New().FromResult(res).Build(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, res.Text())
	return nil
}
