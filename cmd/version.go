package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockwatch/agent/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dockwatch %s\n", version.GetFullVersion())
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
