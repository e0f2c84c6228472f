package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run a single notification pass and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		stats, err := app.service.Run(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("users: %d, snoozed: %d, no tasks: %d, digests sent: %d, failures: %d (%s)\n",
			stats.UsersConsidered, stats.UsersSnoozed, stats.UsersNoTasks,
			stats.DigestsSent, stats.Failures, stats.Duration)
		return nil
	},
}
