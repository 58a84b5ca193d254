package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-customizer/internal/config"
	"github.com/jonathan/site-customizer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the preview server",
	Long:  `Start an HTTP server that renders the configuration document, optionally rebuilding on change and pushing reloads to open pages.`,
	RunE:  runServe,
}

var (
	serveConfigPath    string
	serveInput         string
	serveHost          string
	servePort          int
	serveTemplate      string
	serveWatch         bool
	serveLiveReload    bool
	serveThemeFallback bool
	serveVerbose       bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to CLI config JSON (values can be overridden by other flags)")
	serveCmd.Flags().StringVarP(&serveInput, "in", "i", "", "Path to configuration document")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (default all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveTemplate, "template", "t", "", "Path to a page template overriding the embedded one")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Rebuild when the configuration document changes")
	serveCmd.Flags().BoolVar(&serveLiveReload, "live-reload", false, "Inject the live-reload client into served pages")
	serveCmd.Flags().BoolVar(&serveThemeFallback, "allow-theme-fallback", false, "Use the default palette when a color is malformed")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print build output for every rebuild")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, serveConfigPath, func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("in") {
			cfg.Source = serveInput
		}
		if flags.Changed("host") {
			cfg.Host = serveHost
		}
		if flags.Changed("port") {
			cfg.Port = servePort
		}
		if flags.Changed("template") {
			cfg.Template = serveTemplate
		}
		if flags.Changed("live-reload") {
			cfg.LiveReload = serveLiveReload
		}
		if flags.Changed("allow-theme-fallback") {
			cfg.AllowThemeFallback = serveThemeFallback
		}
		if flags.Changed("verbose") {
			cfg.Verbose = serveVerbose
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg := server.Config{
		Addr:               cfg.Addr(),
		SourcePath:         cfg.Source,
		TemplatePath:       cfg.Template,
		AllowThemeFallback: cfg.AllowThemeFallback,
		LiveReload:         cfg.LiveReload,
		Watch:              serveWatch,
		Debounce:           time.Duration(cfg.DebounceMS) * time.Millisecond,
		Verbose:            cfg.Verbose,
	}
	if cfg.Verbose {
		srvCfg.BuildOutput = cmd.OutOrStdout()
	}

	srv, err := server.New(ctx, srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
