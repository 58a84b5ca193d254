// Package main provides the entry point for the site_agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "site_agent",
	Short:         "Site configuration adapter, theme deriver and preview server",
	Long:          "site_agent adapts a versioned site configuration document into the structure the landing page renders from, derives the theme palette from four base colors, and builds or serves the result.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
