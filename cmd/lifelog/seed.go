package main

import (
	"fmt"
	"time"

	"github.com/lifelog/internal/seed"
	"github.com/spf13/cobra"
)

var (
	flagSeedDays int
	flagSeedRand uint64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty database with demo data",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&flagSeedDays, "days", 30, "Number of past days to generate")
	seedCmd.Flags().Uint64Var(&flagSeedRand, "seed", 1, "Random seed")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	location, err := a.Config.Location()
	if err != nil {
		return err
	}
	summary, err := seed.Run(cmd.Context(), a.Services, time.Now().In(location), seed.Options{
		Days: flagSeedDays,
		Seed: flagSeedRand,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if summary.Skipped {
		fmt.Fprintln(out, "  Database already has habits, skipping")
		return nil
	}
	fmt.Fprintf(out, "  Seeded %d habits, %d check-ins, %d budget days, %d journal entries, %d routine runs, %d skincare sessions\n",
		summary.Habits, summary.Completions, summary.Budget, summary.Journal, summary.RoutineRuns, summary.Skincare)
	return nil
}
