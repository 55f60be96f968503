package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "accountadate",
	Short: "AccountaDate web form",
	Long: `AccountaDate serves a single-page form that greets the user with the
name and email they entered.

Configuration is read from the environment (and an optional .env file):
  APP_ADDR, SESSION_SECRET, LOG_FORMAT, LOG_LEVEL,
  SUBMIT_RATE, SUBMIT_BURST, SHUTDOWN_TIMEOUT`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
