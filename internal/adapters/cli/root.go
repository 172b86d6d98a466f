package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// NewRootCommand creates the root command with all subcommands attached
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intopia-planner",
		Short: "Strategic production-pricing planner for the INTOPIA simulation",
		Long: `intopia-planner turns parsed period reports into concrete production,
pricing and sales decisions: it estimates per-segment demand curves from
historical data, searches candidate strategies under capacity, patent and
two-stage manufacturing constraints, and ranks them by the published
composite score.`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ./config.yaml)")

	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newDemandCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newNegotiateCommand())
	rootCmd.AddCommand(newLogCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
