package cli

import (
	"github.com/spf13/cobra"

	plotcmd "github.com/revplot/revplot/cli/cmd/plot"
)

// RootCmd builds the revplot command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "revplot",
		Short:        "Compare metric files across tracked revisions",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	root.AddCommand(
		plotcmd.NewPlotCommand(),
	)
	return root
}
