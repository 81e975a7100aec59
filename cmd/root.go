package cmd

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/syduan2016/space-math-adventure/internal/achievements"
	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/hangar"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "spacemath",
	Short: "Arcade arithmetic trainer for kids",
	Long:  "Space Math Adventure — a terminal arcade game where kids blast through arithmetic missions and level up their number facts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPACEMATH_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SPACEMATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	return storage.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return storage.Open(dbPath)
}

// services bundles everything a command needs on top of the store.
type services struct {
	Store        *storage.Store
	Ledger       *facts.Ledger
	Progress     *progress.Engine
	Achievements *achievements.Engine
	Hangar       *hangar.Hangar
}

func openServices(cmd *cobra.Command) (*services, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	prog := progress.NewEngine(st, rng)

	return &services{
		Store:        st,
		Ledger:       facts.Open(st),
		Progress:     prog,
		Achievements: achievements.NewEngine(st, prog),
		Hangar:       hangar.New(st, prog),
	}, nil
}

func (s *services) Close() {
	s.Ledger.Close()
	s.Store.Close()
}
