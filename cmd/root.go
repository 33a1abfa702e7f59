// Package cmd implements the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dockwatch/agent/internal/apperrors"
	"github.com/dockwatch/agent/internal/config"
	"github.com/dockwatch/agent/internal/version"
)

var (
	cfgFile       string
	verbose       bool
	cfg           *config.Config
	errConfigLoad error
)

var rootCmd = &cobra.Command{
	Use:   "dockwatch",
	Short: "Docker container observability and control agent",
	Long: `Dockwatch is a lightweight agent that exposes a Docker host to a central
monitoring dashboard over an authenticated HTTP API.

It features:
  - Container discovery with glob-like name pattern filtering
  - Derived container metrics (CPU%, memory%, network totals, uptime)
  - Host-level CPU, memory and disk sampling
  - Container lifecycle actions (start, stop, restart, pause, unpause)
  - Monitored-group aggregation across multiple name patterns`,
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		skipConfig := cmd.Name() == "help" || cmd.Name() == "version"
		if skipConfig {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			// Store config load error for commands that need it; serve fails
			// fast in its RunE handler.
			path := cfgFile
			if path == "" {
				path = "(defaults/environment)"
			}
			errConfigLoad = &apperrors.ConfigurationError{ConfigPath: path, Err: err}
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
			}
		}

		if verbose && cfg != nil {
			fmt.Fprintf(os.Stderr, "Loaded configuration from: %s\n", cfg.ConfigFilePath)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// GetConfig returns the loaded configuration or nil if not loaded.
// Must be called after rootCmd.PersistentPreRunE has executed.
func GetConfig() *config.Config {
	return cfg
}

// GetConfigLoadError returns any error encountered during config loading.
// Returns nil if configuration loaded successfully or was not attempted.
func GetConfigLoadError() error {
	return errConfigLoad
}

// IsVerbose returns whether verbose mode is enabled via the -v flag.
func IsVerbose() bool {
	return verbose
}
