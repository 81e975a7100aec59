package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syduan2016/space-math-adventure/internal/achievements"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer svc.Close()

		unlocked := 0
		for _, a := range achievements.All {
			if svc.Achievements.Unlocked(a.ID) {
				unlocked++
			}
		}
		fmt.Printf("Unlocked %d of %d\n\n", unlocked, len(achievements.All))

		for _, a := range achievements.All {
			if at := svc.Achievements.UnlockedAt(a.ID); !at.IsZero() {
				fmt.Printf("  %s %-18s %s (★ %d, %s)\n",
					a.Icon, a.Name, a.Description, a.Stars, at.Format("Jan 2 2006"))
			} else {
				fmt.Printf("  · %-18s %s (★ %d)\n", a.Name, a.Description, a.Stars)
			}
		}
		return nil
	},
}
