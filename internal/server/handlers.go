package server

import (
	"log"
	"net/http"
	"time"

	"github.com/jonathan/site-customizer/internal/pipeline"
	"github.com/jonathan/site-customizer/internal/rendering"
	"github.com/jonathan/site-customizer/internal/theme"
	"github.com/jonathan/site-customizer/internal/types"
)

// ThemeResponse represents the response for /api/theme
type ThemeResponse struct {
	Generation  uint64        `json:"generation"`
	RootClasses []string      `json:"rootClasses"`
	Tokens      *theme.Tokens `json:"palette"`
}

// BuildResponse represents the response for /api/build
type BuildResponse struct {
	BuildID       string                  `json:"build_id"`
	Source        string                  `json:"source"`
	BuiltAt       string                  `json:"built_at"`
	FallbackTheme bool                    `json:"fallback_theme"`
	Sections      []types.SectionName     `json:"sections"`
	Violations    []types.Violation       `json:"violations"`
	Verification  *rendering.Verification `json:"verification,omitempty"`
	LastError     string                  `json:"last_error,omitempty"`
	Clients       int                     `json:"clients"`
}

// liveReloadScript reconnects after the server restarts and reloads on every new build
const liveReloadScript = `(function () {
  function connect() {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + "/ws");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === "reload") { location.reload(); }
      if (msg.type === "error") { console.error("[site] build failed:", msg.error); }
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();
`

// handleIndex serves the rendered page
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	result, err := s.Current()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(result.HTML)) //nolint:errcheck
}

// handleThemeCSS renders the published palette as a stylesheet
func (s *Server) handleThemeCSS(w http.ResponseWriter, _ *http.Request) {
	tokens, err := s.style.Tokens()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(rendering.RenderThemeCSS(tokens))) //nolint:errcheck
}

// handleLiveReloadScript serves the browser side of live reload
func (s *Server) handleLiveReloadScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(liveReloadScript)) //nolint:errcheck
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := "ok"
	if s.LastError() != nil {
		status = "degraded"
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": status})
}

// handleSite returns the merged site data being served
func (s *Server) handleSite(w http.ResponseWriter, _ *http.Request) {
	result, err := s.Current()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result.Site)
}

// handleTheme returns the palette read back from the style state
func (s *Server) handleTheme(w http.ResponseWriter, _ *http.Request) {
	tokens, err := s.style.Tokens()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	roots := s.style.RootClasses()
	if roots == nil {
		roots = []string{}
	}
	s.jsonResponse(w, http.StatusOK, ThemeResponse{
		Generation:  s.style.Generation(),
		RootClasses: roots,
		Tokens:      tokens,
	})
}

// handleBuild describes the build being served
func (s *Server) handleBuild(w http.ResponseWriter, _ *http.Request) {
	result, err := s.Current()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := BuildResponse{
		BuildID:       result.BuildID.String(),
		Source:        result.SourcePath,
		BuiltAt:       result.BuiltAt.Format(time.RFC3339),
		FallbackTheme: result.UsedFallbackTheme(),
		Sections:      result.Site.Sections.ActiveNames(),
		Violations:    result.Violations.Violations,
		Verification:  result.Verification,
		Clients:       s.hub.Count(),
	}
	if resp.Violations == nil {
		resp.Violations = []types.Violation{}
	}
	if lastErr := s.LastError(); lastErr != nil {
		resp.LastError = lastErr.Error()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleReload rebuilds synchronously
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(r.Context()); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	result, err := s.Current()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"build_id": result.BuildID.String(),
		"status":   "completed",
	})
}

// handleReloadStream rebuilds and streams progress via SSE
func (s *Server) handleReloadStream(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	err = s.reload(r.Context(), func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent(EventStep, event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	})
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	result, err := s.Current()
	if err != nil {
		sse.WriteError(err.Error())
		return
	}
	sse.WriteComplete(result.BuildID.String(), "completed")
}
