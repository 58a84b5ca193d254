package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-customizer/internal/adapter"
	"github.com/jonathan/site-customizer/internal/content"
	"github.com/jonathan/site-customizer/internal/observability"
	"github.com/jonathan/site-customizer/internal/rendering"
	"github.com/jonathan/site-customizer/internal/theme"
	"github.com/jonathan/site-customizer/internal/types"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Derive the theme palette",
	Long:  "Derives every theme token from four base colors, read from a configuration document or given as flags, and prints them as CSS or JSON.",
	RunE:  runTheme,
}

var (
	themeInput      string
	themeOutput     string
	themeFormat     string
	themePrimary    string
	themeSecondary  string
	themeBackground string
	themeText       string
	themeDark       bool
	themeFallback   bool
	themeVerbose    bool
)

func init() {
	themeCmd.Flags().StringVarP(&themeInput, "in", "i", "", "Path to configuration document")
	themeCmd.Flags().StringVarP(&themeOutput, "out", "o", "", "Path to output file (default stdout)")
	themeCmd.Flags().StringVarP(&themeFormat, "format", "f", "css", "Output format: css or json")
	themeCmd.Flags().StringVar(&themePrimary, "primary", "", "Primary base color")
	themeCmd.Flags().StringVar(&themeSecondary, "secondary", "", "Secondary base color")
	themeCmd.Flags().StringVar(&themeBackground, "background", "", "Background base color")
	themeCmd.Flags().StringVar(&themeText, "text", "", "Text base color")
	themeCmd.Flags().BoolVar(&themeDark, "dark", false, "Enable dark mode")
	themeCmd.Flags().BoolVar(&themeFallback, "allow-fallback", false, "Use the default palette when a color is malformed")
	themeCmd.Flags().BoolVarP(&themeVerbose, "verbose", "v", false, "Print a palette summary to stderr")

	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, _ []string) error {
	if themeFormat != "css" && themeFormat != "json" {
		return fmt.Errorf("unknown format %q (want css or json)", themeFormat)
	}

	cfg, err := themeConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	var tokens *theme.Tokens
	if themeFallback {
		tokens, err = theme.DeriveWithFallback(cfg)
		if err != nil {
			log.Printf("[theme] %v; using default palette", err)
		}
	} else {
		tokens, err = theme.Derive(cfg)
		if err != nil {
			return err
		}
	}

	// Publish then read back so the output is exactly what a consumer of the style state sees
	state := theme.NewStyleState()
	theme.Apply(state, tokens)
	published, err := state.Tokens()
	if err != nil {
		return err
	}

	if themeVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintPalette(published)
	}

	if themeFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), themeOutput, published)
	}
	return writeOutput(cmd.OutOrStdout(), themeOutput, []byte(rendering.RenderThemeCSS(published)))
}

// themeConfigFromFlags starts from the document theme (or the default) and overrides
// each color given on the command line
func themeConfigFromFlags(cmd *cobra.Command) (types.ThemeConfig, error) {
	cfg := types.DefaultThemeConfig()
	if themeInput != "" {
		site, err := adapter.LoadFile(themeInput)
		if err != nil {
			return cfg, err
		}
		site = content.MergeDefaults(site, content.DefaultDefaults())
		cfg = *site.Settings.Theme
	}

	flags := cmd.Flags()
	if flags.Changed("primary") {
		cfg.Primary = themePrimary
	}
	if flags.Changed("secondary") {
		cfg.Secondary = themeSecondary
	}
	if flags.Changed("background") {
		cfg.Background = themeBackground
	}
	if flags.Changed("text") {
		cfg.Text = themeText
	}
	if flags.Changed("dark") {
		cfg.DarkMode = themeDark
	}
	return cfg, nil
}
