package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signin-cli",
	Short: "Sign-in service CLI tool",
	Long: `signin-cli is a command-line companion for the sign-in service.

Available commands:
  serve      Run the sign-in HTTP server
  lookup     Resolve a username against the domain lookup endpoint
  locales    List the locales available in a lang-pack directory

Use "signin-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
