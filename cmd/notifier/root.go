package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notifier",
	Short: "Workspace notification daemon",
	Long: `notifier aggregates pending workspace tasks (multisig transactions,
mentions, open votes, proposal actions) and emails each user a digest of the
work that is new since their last notification.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; production sets real environment variables.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(onceCmd)
}
