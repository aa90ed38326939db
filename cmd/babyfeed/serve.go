package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/babyfeed-backend/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Serve the feed tracker API until SIGINT or SIGTERM, then shut down gracefully.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), configPath())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
