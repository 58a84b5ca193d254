package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Event names on the reload stream
const (
	EventStep     = "step"
	EventError    = "error"
	EventComplete = "complete"
)

// SSEWriter streams one rebuild's progress as Server-Sent Events. Each event carries an
// increasing id so a client can tell where a dropped stream stopped.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	nextID  int
}

// NewSSEWriter sets the stream headers; it fails when w cannot flush
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &SSEWriter{w: w, flusher: flusher, nextID: 1}, nil
}

// WriteEvent sends data as JSON under the given event name
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}

	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.nextID, event, payload); err != nil {
		return err
	}
	s.nextID++
	s.flusher.Flush()
	return nil
}

// WriteError ends the stream with a failed build
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent(EventError, map[string]string{"error": message}) //nolint:errcheck
}

// WriteComplete ends the stream with the build that is now being served
func (s *SSEWriter) WriteComplete(buildID, status string) {
	s.WriteEvent(EventComplete, map[string]string{ //nolint:errcheck
		"build_id": buildID,
		"status":   status,
	})
}
