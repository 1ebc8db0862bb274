package main

import (
	"fmt"

	"github.com/lifelog/internal/cli"
	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Per-domain success rates for one month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	month := ""
	if len(args) == 1 {
		month = args[0]
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.Services.Dashboard.Month(cmd.Context(), month)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderMonthReport(report))
	return nil
}
