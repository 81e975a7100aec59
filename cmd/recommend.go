package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest what to practice next",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer svc.Close()

		rec := svc.Progress.RecommendedPractice(svc.Ledger)
		fmt.Printf("Next mission: %s level %d\n", rec.Operation, rec.Level)
		fmt.Printf("Why: %s\n", rec.Reason)
		if rec.GamesPlayed > 0 {
			fmt.Printf("Current: %d%% accuracy over %d games\n",
				rec.CurrentAccuracy, rec.GamesPlayed)
		}

		weak := svc.Ledger.WeakestFacts(5, "")
		if len(weak) > 0 {
			fmt.Println("\nFacts to drill:")
			for _, f := range weak {
				fmt.Printf("  %-12s %.0f%% over %d tries\n",
					f.Key, f.Record.Accuracy(), f.Record.Attempts)
			}
		}
		return nil
	},
}
