package main

import (
	"fmt"

	"github.com/lifelog/internal/cli"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Dashboard overview with streaks, scores and life balance",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	dashboard, err := a.Services.Dashboard.Build(cmd.Context(), flagLang)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderDashboard(dashboard))
	return nil
}
