// Package main provides the entry point for the fundscout CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fundscout",
	Short: "Candidate discovery over public fundraising pages",
	Long:  "fundscout finds individuals on public fundraising pages who match a free-text description, extracts their profiles, and ranks them by weighted criteria match.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
