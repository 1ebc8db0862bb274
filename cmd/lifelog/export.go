package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every bucket as a JSON document",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := a.Services.Export.Export(cmd.Context())
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	data = append(data, '\n')

	if flagOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(flagOut, data, 0o600); err != nil {
		return fmt.Errorf("write export %s: %w", flagOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  Exported %d records to %s\n", doc.Count, flagOut)
	return nil
}
