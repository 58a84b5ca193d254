// Package pipeline provides the high-level orchestration for building a site from its configuration.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/site-customizer/internal/adapter"
	"github.com/jonathan/site-customizer/internal/content"
	"github.com/jonathan/site-customizer/internal/fetch"
	"github.com/jonathan/site-customizer/internal/observability"
	"github.com/jonathan/site-customizer/internal/pipeline/steps"
	"github.com/jonathan/site-customizer/internal/rendering"
	"github.com/jonathan/site-customizer/internal/theme"
	"github.com/jonathan/site-customizer/internal/types"
	"github.com/jonathan/site-customizer/internal/validation"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	BuildID  string `json:"build_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	// ConfigPath is a local file or an http(s) URL
	ConfigPath         string
	TemplatePath       string
	StylesheetHref     string
	AllowThemeFallback bool
	LiveReload         bool
	Verbose            bool
	// Defaults overrides content.DefaultDefaults when set
	Defaults *content.Defaults
	// Sink receives the derived palette; nil skips the apply step
	Sink theme.Sink
	// Fetcher serves URL sources; nil fetches without caching
	Fetcher    *fetch.CachedFetcher
	OnProgress ProgressCallback
	// Out receives step lines and verbose boxes; nil means os.Stdout
	Out io.Writer
}

// Result is everything one build produced
type Result struct {
	BuildID      uuid.UUID
	SourcePath   string
	BuiltAt      time.Time
	Adapted      *types.SiteData
	Site         *types.SiteData
	Tokens       *theme.Tokens
	ThemeError   error
	HTML         string
	CSS          string
	Verification *rendering.Verification
	Violations   *types.Violations
}

// UsedFallbackTheme reports whether the default palette replaced a malformed one
func (r *Result) UsedFallbackTheme() bool {
	return r.ThemeError != nil
}

// renderBranchResult holds the outputs from the render/verify branch
type renderBranchResult struct {
	HTML         string
	Verification *rendering.Verification
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, buildID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.Category(step),
			Message:  message,
			BuildID:  buildID.String(),
			Content:  content,
		})
	}
}

// Run orchestrates the full build: load, adapt, merge defaults, derive and apply the palette,
// render and verify the page, and lint the adapted data.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config path is required")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)
	tracker := steps.NewTracker()
	buildID := uuid.New()

	result := &Result{
		BuildID:    buildID,
		SourcePath: opts.ConfigPath,
		BuiltAt:    time.Now().UTC(),
	}

	// Step 1: Load
	fmt.Fprintf(out, "Step 1/7: Loading configuration from %s...\n", opts.ConfigPath)
	data, format, err := readSource(ctx, opts.ConfigPath, opts.Fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	tracker.Complete(steps.LoadConfig)
	emitProgress(&opts, buildID, steps.LoadConfig,
		fmt.Sprintf("Loaded %d bytes", len(data)), nil)

	// Step 2: Adapt
	if err := tracker.ValidateDependencies(steps.AdaptSite); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Step 2/7: Adapting configuration...\n")
	adapted, err := adapter.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to adapt configuration: %w", err)
	}
	result.Adapted = adapted
	tracker.Complete(steps.AdaptSite)
	emitProgress(&opts, buildID, steps.AdaptSite,
		fmt.Sprintf("Adapted site %q with %d active sections", adapted.Identity.SiteName, len(adapted.Sections.ActiveNames())), adapted)

	// Step 3: Defaults
	fmt.Fprintf(out, "Step 3/7: Merging defaults...\n")
	defaults := content.DefaultDefaults()
	if opts.Defaults != nil {
		defaults = *opts.Defaults
	}
	site := content.MergeDefaults(adapted, defaults)
	result.Site = site
	tracker.Complete(steps.MergeDefaults)
	emitProgress(&opts, buildID, steps.MergeDefaults, "Merged defaults", nil)
	if opts.Verbose {
		printer.PrintSite(site)
	}

	// Step 4: Derive
	if err := tracker.ValidateDependencies(steps.DeriveTheme); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Step 4/7: Deriving theme palette...\n")
	tokens, err := deriveTokens(*site.Settings.Theme, opts.AllowThemeFallback)
	if err != nil && !opts.AllowThemeFallback {
		return nil, fmt.Errorf("failed to derive theme: %w", err)
	}
	if err != nil {
		log.Printf("[theme] %v; using default palette", err)
		result.ThemeError = err
	}
	result.Tokens = tokens
	result.CSS = rendering.RenderThemeCSS(tokens)
	tracker.Complete(steps.DeriveTheme)
	emitProgress(&opts, buildID, steps.DeriveTheme,
		fmt.Sprintf("Derived %d tokens (dark mode: %t)", tokens.Len(), tokens.DarkMode()), tokens)
	if opts.Verbose {
		printer.PrintPalette(tokens)
	}

	// Step 5: Apply
	if opts.Sink != nil {
		fmt.Fprintf(out, "Step 5/7: Applying palette...\n")
		theme.Apply(opts.Sink, tokens)
		tracker.Complete(steps.ApplyTheme)
		emitProgress(&opts, buildID, steps.ApplyTheme, "Applied palette", nil)
	} else {
		fmt.Fprintf(out, "Step 5/7: No style sink configured, skipping apply.\n")
	}

	// Steps 6 and 7 run in parallel: render + verify, and lint
	fmt.Fprintf(out, "Step 6/7: Rendering page and linting configuration in parallel...\n")
	g, gctx := errgroup.WithContext(ctx)

	var rendered *renderBranchResult
	var violations *types.Violations

	g.Go(func() error {
		res, err := runRenderBranch(gctx, opts, tracker, site, tokens)
		if err != nil {
			return fmt.Errorf("render branch failed: %w", err)
		}
		rendered = res
		return nil
	})

	g.Go(func() error {
		if err := tracker.ValidateDependencies(steps.LintSite); err != nil {
			return err
		}
		violations = validation.LintSite(adapted)
		tracker.Complete(steps.LintSite)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	violations.Violations = append(violations.Violations,
		validation.AnchorViolations(rendered.Verification.DanglingAnchors)...)
	result.HTML = rendered.HTML
	result.Verification = rendered.Verification
	result.Violations = violations
	emitProgress(&opts, buildID, steps.RenderPage,
		fmt.Sprintf("Rendered %d bytes of HTML", len(rendered.HTML)), nil)
	emitProgress(&opts, buildID, steps.VerifyPage, "Verified rendered sections", rendered.Verification)
	emitProgress(&opts, buildID, steps.LintSite,
		fmt.Sprintf("Found %d lint findings", len(violations.Violations)), violations)

	if opts.Verbose {
		printer.PrintViolations(violations)
	}

	fmt.Fprintf(out, "Step 7/7: Verification passed! %d sections rendered.\n", len(site.Sections.ActiveNames()))
	return result, nil
}

// deriveTokens derives the palette, substituting DefaultTokens for a malformed one when
// fallback is allowed. The derivation error is returned either way.
func deriveTokens(cfg types.ThemeConfig, allowFallback bool) (*theme.Tokens, error) {
	if allowFallback {
		return theme.DeriveWithFallback(cfg)
	}
	return theme.Derive(cfg)
}

// runRenderBranch renders the page and checks the rendered sections against the flags
func runRenderBranch(ctx context.Context, opts RunOptions, tracker *steps.Tracker, site *types.SiteData, tokens *theme.Tokens) (*renderBranchResult, error) {
	if err := tracker.ValidateDependencies(steps.RenderPage); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := rendering.BuildPageData(site, tokens, rendering.PageOptions{
		StylesheetHref: opts.StylesheetHref,
		LiveReload:     opts.LiveReload,
	})

	var html string
	var err error
	if opts.TemplatePath != "" {
		html, err = rendering.RenderPageWithTemplate(page, opts.TemplatePath)
	} else {
		html, err = rendering.RenderPage(page)
	}
	if err != nil {
		return nil, err
	}
	tracker.Complete(steps.RenderPage)

	verification, err := rendering.VerifySections(html, site.Sections)
	if err != nil {
		return nil, err
	}
	if err := verification.Err(); err != nil {
		return nil, err
	}
	tracker.Complete(steps.VerifyPage)

	return &renderBranchResult{HTML: html, Verification: verification}, nil
}
