package cli

import (
	"github.com/spf13/cobra"
)

// newLogCommand creates the log command listing recent planning decisions.
func newLogCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List recent planning decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies()
			if err != nil {
				return err
			}
			entries, err := deps.decisionLog.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No decisions logged.")
				return nil
			}
			for _, entry := range entries {
				cmd.Printf("%s\n", entry.ID)
				cmd.Printf("  Strategy: %s\n", entry.StrategyName)
				cmd.Printf("  Segment:  %s at %.2f\n", entry.Segment, entry.Price)
				cmd.Printf("  Score:    %.4f\n", entry.Score)
				if entry.Decision != nil {
					cmd.Printf("  Sold:     %d units across %d open plant(s)\n",
						entry.Decision.UnitsSold(), entry.Decision.OpenPlants())
				}
				for _, warning := range entry.Warnings {
					cmd.Printf("  Warning:  %s\n", warning)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum entries to list")
	return cmd
}
