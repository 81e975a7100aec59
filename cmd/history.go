package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent missions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		svc, err := openServices(cmd)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer svc.Close()

		entries := svc.Progress.History(limit)
		if len(entries) == 0 {
			fmt.Println("No flights logged yet.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-14s L%d  %5d pts  %3d%%  %d/%d\n",
				e.Date.Format("Jan 02 15:04"), e.Operation, e.Level,
				e.Score, e.Accuracy, e.CorrectAnswers, e.QuestionsAnswered)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Max sessions to show (0 for all)")
}
