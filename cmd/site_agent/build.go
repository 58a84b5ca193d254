package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-customizer/internal/config"
	"github.com/jonathan/site-customizer/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the landing page into an output directory",
	Long: `Runs the full pipeline (load, adapt, merge defaults, derive theme, render, verify, lint)
and writes index.html, theme.css, site.json, tokens.json and manifest.json to the output directory.`,
	RunE: runBuild,
}

var (
	buildConfigPath    string
	buildInput         string
	buildOutDir        string
	buildTemplate      string
	buildThemeFallback bool
	buildVerbose       bool
)

func init() {
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "Path to CLI config JSON (values can be overridden by other flags)")
	buildCmd.Flags().StringVarP(&buildInput, "in", "i", "", "Path to configuration document")
	buildCmd.Flags().StringVarP(&buildOutDir, "out-dir", "o", "", "Output directory")
	buildCmd.Flags().StringVarP(&buildTemplate, "template", "t", "", "Path to a page template overriding the embedded one")
	buildCmd.Flags().BoolVar(&buildThemeFallback, "allow-theme-fallback", false, "Use the default palette when a color is malformed")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, buildConfigPath, func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("in") {
			cfg.Source = buildInput
		}
		if flags.Changed("out-dir") {
			cfg.OutDir = buildOutDir
		}
		if flags.Changed("template") {
			cfg.Template = buildTemplate
		}
		if flags.Changed("allow-theme-fallback") {
			cfg.AllowThemeFallback = buildThemeFallback
		}
		if flags.Changed("verbose") {
			cfg.Verbose = buildVerbose
		}
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		ConfigPath:         cfg.Source,
		TemplatePath:       cfg.Template,
		StylesheetHref:     pipeline.FileTheme,
		AllowThemeFallback: cfg.AllowThemeFallback,
		Verbose:            cfg.Verbose,
		Out:                out,
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	manifest, err := pipeline.WriteArtifacts(cmd.Context(), cfg.OutDir, result)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "\nBuild %s complete: %d files written to %s\n", manifest.BuildID, len(manifest.Files)+1, cfg.OutDir)
	if manifest.FallbackTheme {
		_, _ = fmt.Fprintln(out, "Warning: the default palette replaced a malformed theme")
	}
	if manifest.Violations > 0 {
		_, _ = fmt.Fprintf(out, "%d lint findings (run validate for details)\n", manifest.Violations)
	}
	return nil
}
