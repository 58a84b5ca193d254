package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/site-customizer/internal/adapter"
	"github.com/jonathan/site-customizer/internal/config"
	"github.com/jonathan/site-customizer/internal/content"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Work with configuration files",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a starter configuration",
	Long: `Writes a CLI config JSON populated with the defaults. With --site it writes a starter
configuration document instead, as YAML when the output path ends in .yaml or .yml.`,
	RunE: runConfigGenerate,
}

var (
	generateOutput string
	generateSite   bool
	generateName   string
)

func init() {
	configGenerateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to output file (default stdout)")
	configGenerateCmd.Flags().BoolVar(&generateSite, "site", false, "Generate a configuration document instead of a CLI config")
	configGenerateCmd.Flags().StringVar(&generateName, "name", "", "Site name for the generated document")

	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGenerate(cmd *cobra.Command, _ []string) error {
	if !generateSite {
		empty := config.Config{}
		return writeJSON(cmd.OutOrStdout(), generateOutput, empty.MergeWithDefaults(config.Config{}))
	}

	d := content.DefaultDefaults()
	if generateName != "" {
		d.BrandTitle = generateName
	}
	doc := content.Starter(d)

	if adapter.FormatFromPath(generateOutput) != adapter.FormatYAML {
		return writeJSON(cmd.OutOrStdout(), generateOutput, doc)
	}

	// Round-trip through JSON so the YAML keys match the document's JSON field names
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to convert document: %w", err)
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), generateOutput, out)
}
