package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uno",
		Short: "UNO table for the terminal and remote seats",
		Long: `uno runs a single UNO table.

"play" seats you (and bots) at a terminal table. "serve" exposes the table
over tcp and websocket so remote players can take the seats.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewPlayCmd())
	rootCmd.AddCommand(NewServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
