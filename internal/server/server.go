package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jonathan/site-customizer/internal/content"
	"github.com/jonathan/site-customizer/internal/fetch"
	"github.com/jonathan/site-customizer/internal/pipeline"
	"github.com/jonathan/site-customizer/internal/server/ratelimit"
	"github.com/jonathan/site-customizer/internal/theme"
)

// Config holds server configuration
type Config struct {
	Addr               string
	SourcePath         string
	TemplatePath       string
	AllowThemeFallback bool
	LiveReload         bool
	Watch              bool
	Debounce           time.Duration
	Verbose            bool
	// Defaults overrides content.DefaultDefaults when set
	Defaults *content.Defaults
	// RateLimit nil means ratelimit.LoadConfig
	RateLimit *ratelimit.Config
	// BuildOutput receives pipeline step lines; nil discards them
	BuildOutput io.Writer
}

// Server serves the most recent successful build of one configuration document.
type Server struct {
	cfg         Config
	httpServer  *http.Server
	handler     http.Handler
	style       *theme.StyleState
	hub         *Hub
	rateLimiter *ratelimit.Limiter
	fetcher     *fetch.CachedFetcher

	// reloadMu serializes rebuilds
	reloadMu sync.Mutex

	mu        sync.RWMutex
	current   *pipeline.Result
	lastError error
}

// New creates a server and runs the initial build. A failing initial build is returned
// as an error since there is nothing to serve.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.SourcePath == "" {
		return nil, fmt.Errorf("source path is required")
	}
	if cfg.BuildOutput == nil {
		cfg.BuildOutput = io.Discard
	}
	rl := cfg.RateLimit
	if rl == nil {
		rl = ratelimit.LoadConfig()
	}

	s := &Server{
		cfg:         cfg,
		style:       theme.NewStyleState(),
		hub:         NewHub(),
		rateLimiter: ratelimit.NewLimiter(rl),
		fetcher:     fetch.NewCachedFetcher(nil),
	}

	if err := s.Reload(ctx); err != nil {
		s.rateLimiter.Stop()
		return nil, fmt.Errorf("initial build failed: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /theme.css", s.handleThemeCSS)
	mux.HandleFunc("GET /live-reload.js", s.handleLiveReloadScript)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/site", s.handleSite)
	mux.HandleFunc("GET /api/theme", s.handleTheme)
	mux.HandleFunc("GET /api/build", s.handleBuild)
	mux.HandleFunc("POST /api/reload", s.handleReload)
	mux.HandleFunc("POST /api/reload/stream", s.handleReloadStream)
	mux.Handle("GET /ws", s.hub)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Handler returns the full middleware-wrapped router
func (s *Server) Handler() http.Handler {
	return s.handler
}

// StyleState returns the palette currently published to clients
func (s *Server) StyleState() *theme.StyleState {
	return s.style
}

// Current returns the build being served
func (s *Server) Current() (*pipeline.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNoBuild
	}
	return s.current, nil
}

// LastError returns the error of the most recent failed reload, cleared by a successful one
func (s *Server) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Reload re-runs the pipeline. On success the new build and palette replace the old ones
// together and live-reload clients are told to refresh; on failure the previous build keeps
// being served.
func (s *Server) Reload(ctx context.Context) error {
	return s.reload(ctx, nil)
}

func (s *Server) reload(ctx context.Context, onProgress pipeline.ProgressCallback) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		ConfigPath:         s.cfg.SourcePath,
		TemplatePath:       s.cfg.TemplatePath,
		StylesheetHref:     "/theme.css",
		AllowThemeFallback: s.cfg.AllowThemeFallback,
		LiveReload:         s.cfg.LiveReload,
		Verbose:            s.cfg.Verbose,
		Defaults:           s.cfg.Defaults,
		Fetcher:            s.fetcher,
		OnProgress:         onProgress,
		Out:                s.cfg.BuildOutput,
	})
	if err != nil {
		s.mu.Lock()
		s.lastError = err
		s.mu.Unlock()
		log.Printf("[site] rebuild failed: %v", err)
		s.hub.Broadcast(LiveMessage{Type: MessageError, Error: err.Error()})
		return err
	}

	s.mu.Lock()
	previous := s.current
	s.current = result
	s.lastError = nil
	theme.Apply(s.style, result.Tokens)
	s.mu.Unlock()

	paletteChanged := previous == nil || !previous.Tokens.Equal(result.Tokens)
	if paletteChanged {
		log.Printf("[theme] palette updated (%d tokens, dark mode: %t)", result.Tokens.Len(), result.Tokens.DarkMode())
	}
	if result.UsedFallbackTheme() {
		log.Printf("[theme] serving default palette: %v", result.ThemeError)
	}
	log.Printf("[site] build %s ready (%d lint findings)", result.BuildID, len(result.Violations.Violations))
	s.hub.Broadcast(LiveMessage{
		Type:           MessageReload,
		BuildID:        result.BuildID.String(),
		PaletteChanged: paletteChanged,
	})
	return nil
}

// Start serves until ctx is canceled, then shuts down gracefully. When configured it also
// watches the source file and reloads on change.
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.cfg.Watch && fetch.IsURL(s.cfg.SourcePath) {
		log.Printf("[watch] %s is remote; use POST /api/reload to rebuild", s.cfg.SourcePath)
	} else if s.cfg.Watch {
		watcher, err := NewWatcher(s.cfg.SourcePath, s.cfg.Debounce, func() {
			log.Println("[watch] rebuilding site due to changes...")
			s.Reload(ctx) //nolint:errcheck // logged and broadcast by reload
		})
		if err != nil {
			return err
		}
		go watcher.Run(ctx) //nolint:errcheck
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", listener.Addr())
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	s.hub.Close()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.cfg.Verbose {
			log.Printf("[%s] %s %s completed in %v", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
		}
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID uses the IP address from RemoteAddr.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := max(1, int(info.RetryAfter.Seconds()))
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d", info.Limit, info.Remaining)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
