// Package main is the entry point for the character creation HTTP server
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arxii-chargen",
	Short: "Arx II Character Creation Server",
	Long:  `Serves the character creation API: drafts, stage progression, point budgets, and application submission.`,
}

func main() {
	// Missing .env is fine; environment variables still apply
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
