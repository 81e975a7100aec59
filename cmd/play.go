package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/syduan2016/space-math-adventure/internal/app"
	"github.com/syduan2016/space-math-adventure/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func runApp(cmd *cobra.Command) error {
	svc, err := openServices(cmd)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer svc.Close()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	ctrl := game.NewController(svc.Ledger, svc.Progress, svc.Achievements, rng)

	return app.Run(app.Options{
		Controller:   ctrl,
		Ledger:       svc.Ledger,
		Progress:     svc.Progress,
		Achievements: svc.Achievements,
		Hangar:       svc.Hangar,
	})
}
