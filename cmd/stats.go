package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pilot statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer svc.Close()

		profile := svc.Progress.Profile()
		stats := svc.Progress.Stats()

		fmt.Printf("Pilot: %s\n", profile.Name)
		fmt.Printf("Missions flown:  %d\n", stats.TotalGames)
		fmt.Printf("Questions:       %d (%d correct, %d%%)\n",
			stats.TotalQuestions, stats.TotalCorrect, stats.OverallAccuracy)
		fmt.Printf("Stars:           %d\n", stats.TotalStars)
		fmt.Printf("Levels mastered: %d\n", stats.LevelsMastered)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("Last flight:     %s\n", stats.LastPlayed.Format("Jan 2 2006 15:04"))
		}

		fmt.Println()
		for _, op := range []facts.Operation{
			facts.Multiplication, facts.Addition, facts.Subtraction,
			facts.Division, facts.Mixed,
		} {
			var row strings.Builder
			played := false
			for level := 1; level <= problemgen.MaxLevel; level++ {
				entry := svc.Progress.EntryFor(op, level)
				switch entry.Mastery {
				case progress.MasteryMastered:
					row.WriteString("★")
				case progress.MasteryGood:
					row.WriteString("●")
				case progress.MasteryLearning:
					row.WriteString("◐")
				default:
					row.WriteString("·")
				}
				if entry.GamesPlayed > 0 {
					played = true
				}
			}
			if played {
				fmt.Printf("%-15s %s\n", op, row.String())
			}
		}
		return nil
	},
}
