package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"route2file/internal/config"
)

var (
	configInitFormat string
	configInitPath   string
	configInitForce  bool
	configShowFormat string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage route2file configuration",
	Long: `View and create the route2file configuration file.

Settings are read from --config, or config.json, config.toml or config.yaml in
~/.route2file (override the directory with ROUTE_TO_FILE_HOME). Environment
variables prefixed with ROUTE_TO_FILE_ override file values, for example
ROUTE_TO_FILE_PROJECT_ROOT and ROUTE_TO_FILE_SEARCH_PREVIEWLIMIT.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration.

Examples:
  route2file config init                      # ~/.route2file/config.json
  route2file config init --format yaml
  route2file config init --path ./route2file.toml --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().StringVar(&configInitFormat, "format", config.FormatJSON, "File format (json, toml, yaml)")
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "Destination (default: config.<format> in the settings directory)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
	configShowCmd.Flags().StringVar(&configShowFormat, "format", config.FormatYAML, "Output format (json, toml, yaml)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	format := configInitFormat
	path := configInitPath
	if path == "" {
		p, err := config.DefaultPath(format)
		if err != nil {
			return err
		}
		path = p
	} else if !cmd.Flags().Changed("format") {
		format = config.FormatFromPath(path)
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path, format); err != nil {
		return err
	}
	logger.Info("Wrote configuration", "path", path, "format", format)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := cfg.Marshal(configShowFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
