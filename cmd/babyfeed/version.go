package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/babyfeed-backend/internal/app"
	"github.com/heartmarshall/babyfeed-backend/internal/auth"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}

var hashDateCmd = &cobra.Command{
	Use:   "hash-date YYYY-MM-DD",
	Short: "Print the bcrypt hash for auth.secret_date_hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashDate(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, hashDateCmd)
}
