package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-customizer/internal/observability"
	"github.com/jonathan/site-customizer/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Lint a configuration document",
	Long:  "Adapts a configuration document and reports lint findings. Exits non-zero when the document does not match the supported schema or any finding has error severity.",
	RunE:  runValidate,
}

var (
	validateInput string
	validateJSON  bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to configuration document (required)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print findings as JSON instead of a summary box")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	violations, err := validation.LintFile(validateInput)
	if err != nil {
		return err
	}

	if validateJSON {
		if err := writeJSON(cmd.OutOrStdout(), "", violations); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(cmd.OutOrStdout()).PrintViolations(violations)
	}

	if violations.HasErrors() {
		return fmt.Errorf("validation failed: %s has error findings", validateInput)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
