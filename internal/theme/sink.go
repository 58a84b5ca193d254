package theme

import (
	"errors"
	"sync"
)

// ErrNotApplied is returned when reading a palette back before any was published
var ErrNotApplied = errors.New("theme: no palette applied")

// DarkClass is the presentation flag toggled on the root element in dark mode
const DarkClass = "dark"

// Sink receives a whole palette at once. Implementations must replace any previously
// published properties rather than merge them.
type Sink interface {
	Publish(properties map[string]string, darkMode bool)
}

// Apply publishes every token as a --name custom property together with the dark-mode flag
func Apply(sink Sink, tokens *Tokens) {
	sink.Publish(tokens.Properties(), tokens.DarkMode())
}

// StyleState is the process-wide style sink: one writer (Apply), any number of readers.
type StyleState struct {
	mu         sync.RWMutex
	applied    bool
	properties map[string]string
	darkMode   bool
	generation uint64
}

// NewStyleState returns an uninitialized style state
func NewStyleState() *StyleState {
	return &StyleState{}
}

// Publish implements Sink. Each call fully overwrites the previous palette.
func (s *StyleState) Publish(properties map[string]string, darkMode bool) {
	props := make(map[string]string, len(properties))
	for k, v := range properties {
		props[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = props
	s.darkMode = darkMode
	s.applied = true
	s.generation++
}

// Applied reports whether a palette has been published
func (s *StyleState) Applied() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied
}

// Generation counts published palettes
func (s *StyleState) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Property returns one custom property, e.g. "--primary"
func (s *StyleState) Property(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.properties[name]
	return v, ok
}

// DarkMode reports the dark presentation flag
func (s *StyleState) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// RootClasses returns the classes carried by the root element
func (s *StyleState) RootClasses() []string {
	if s.DarkMode() {
		return []string{DarkClass}
	}
	return nil
}

// Tokens reads the published palette back. It returns ErrNotApplied before the first Publish.
func (s *StyleState) Tokens() (*Tokens, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.applied {
		return nil, ErrNotApplied
	}
	return tokensFromProperties(s.properties, "--", s.darkMode)
}
