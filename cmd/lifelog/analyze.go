package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lifelog/internal/cli"
	"github.com/lifelog/internal/sentiment"
	"github.com/lifelog/internal/service"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Run sentiment analysis on a piece of text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := service.PlainText(strings.Join(args, " "))
	data := sentiment.Analyze(text, time.Now())
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSentiment(data))
	return nil
}
