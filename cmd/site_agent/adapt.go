package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-customizer/internal/adapter"
	"github.com/jonathan/site-customizer/internal/content"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Adapt a configuration document into site data",
	Long:  "Validates a v3 configuration document (JSON or YAML) and prints the adapted site data as JSON.",
	RunE:  runAdapt,
}

var (
	adaptInput        string
	adaptOutput       string
	adaptWithDefaults bool
)

func init() {
	adaptCmd.Flags().StringVarP(&adaptInput, "in", "i", "", "Path to configuration document (required)")
	adaptCmd.Flags().StringVarP(&adaptOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	adaptCmd.Flags().BoolVar(&adaptWithDefaults, "with-defaults", false, "Fill empty fields with the stock fallbacks")

	if err := adaptCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(adaptCmd)
}

func runAdapt(cmd *cobra.Command, _ []string) error {
	site, err := adapter.LoadFile(adaptInput)
	if err != nil {
		return err
	}
	if adaptWithDefaults {
		site = content.MergeDefaults(site, content.DefaultDefaults())
	}
	return writeJSON(cmd.OutOrStdout(), adaptOutput, site)
}
