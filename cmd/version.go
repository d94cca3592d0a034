package cmd

import (
	"fmt"

	"github.com/itsmostafa/tocgen/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// Printing the version never depends on config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tocgen %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
