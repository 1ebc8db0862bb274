package main

import (
	"fmt"

	"github.com/lifelog/internal/db"
	"github.com/spf13/cobra"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd <username> <password>",
	Short: "Create the owner account or reset its password",
	Args:  cobra.ExactArgs(2),
	RunE:  runPasswd,
}

func init() {
	rootCmd.AddCommand(passwdCmd)
}

func runPasswd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := db.SetOwnerPassword(a.DB, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Password updated for %s\n", args[0])
	return nil
}
