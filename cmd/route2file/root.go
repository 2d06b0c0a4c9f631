package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"route2file/internal/config"
	"route2file/internal/routes"
	"route2file/internal/slogutil"
	"route2file/internal/version"
)

var (
	configPath string
	verbosity  int
	quiet      bool

	// Set by PersistentPreRunE for every subcommand.
	cfg        *config.Config
	logger     *slog.Logger
	logFactory *slogutil.LoggerFactory
)

var rootCmd = &cobra.Command{
	Use:   "route2file",
	Short: "route2file - map frontend routes to source files",
	Long: `route2file resolves a frontend route path such as /dashboard/settings to the
source file that renders it. It understands the Next.js app and pages routers
and Vue/React views or pages directories, and falls back to a keyword search
over page files when no convention path exists.

Run "route2file mcp" to serve the open_route_source tool to MCP clients over stdio.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logFactory != nil {
			return logFactory.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate("route2file version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default: config.{json,toml,yaml} in ~/.route2file)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logs")
}

// setup loads configuration and builds the logger. Logs go to stderr or
// the configured file, never to stdout.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logFactory = slogutil.NewLoggerFactory(cfg, slogutil.LevelFromVerbosity(verbosity, quiet))
	logger, err = logFactory.Logger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	return nil
}

// newResolver builds a resolver from the loaded configuration.
func newResolver() *routes.Resolver {
	return routes.NewResolver(routes.Options{
		DefaultRoot:     cfg.ProjectRoot,
		PreviewLimit:    cfg.Search.PreviewLimit,
		ExtraIgnoreDirs: cfg.Search.ExtraIgnoreDirs,
		Parallel:        cfg.Search.Parallel,
		Logger:          logger,
	})
}
