// Package steps provides step definitions and dependency tracking for the site build pipeline.
package steps

import (
	"fmt"
	"sort"
	"sync"
)

// Step categories group steps in progress events
const (
	CategoryInput    = "input"
	CategoryTheme    = "theme"
	CategoryOutput   = "output"
	CategoryValidate = "validation"
)

// Step names
const (
	LoadConfig    = "load_config"
	AdaptSite     = "adapt_site"
	MergeDefaults = "merge_defaults"
	DeriveTheme   = "derive_theme"
	ApplyTheme    = "apply_theme"
	RenderPage    = "render_page"
	VerifyPage    = "verify_page"
	LintSite      = "lint_site"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	LoadConfig: {
		Name:         LoadConfig,
		Category:     CategoryInput,
		Dependencies: []string{},
	},
	AdaptSite: {
		Name:         AdaptSite,
		Category:     CategoryInput,
		Dependencies: []string{LoadConfig},
	},
	MergeDefaults: {
		Name:         MergeDefaults,
		Category:     CategoryInput,
		Dependencies: []string{AdaptSite},
	},
	DeriveTheme: {
		Name:         DeriveTheme,
		Category:     CategoryTheme,
		Dependencies: []string{MergeDefaults},
	},
	ApplyTheme: {
		Name:         ApplyTheme,
		Category:     CategoryTheme,
		Dependencies: []string{DeriveTheme},
	},
	RenderPage: {
		Name:         RenderPage,
		Category:     CategoryOutput,
		Dependencies: []string{MergeDefaults, DeriveTheme},
	},
	VerifyPage: {
		Name:         VerifyPage,
		Category:     CategoryValidate,
		Dependencies: []string{RenderPage},
	},
	LintSite: {
		Name:         LintSite,
		Category:     CategoryValidate,
		Dependencies: []string{AdaptSite},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// Tracker records completed steps for one build and enforces step dependencies.
// It is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	completed map[string]bool
}

// NewTracker returns a tracker with no completed steps
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]bool)}
}

// ValidateDependencies checks if all required dependencies for a step are completed
func (t *Tracker) ValidateDependencies(stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var missing []string
	for _, dep := range def.Dependencies {
		if !t.completed[dep] {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// Complete marks a step as done
func (t *Tracker) Complete(stepName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed[stepName] = true
}

// Completed reports whether a step has been marked done
func (t *Tracker) Completed(stepName string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed[stepName]
}

// AvailableSteps returns steps that are not yet done and whose dependencies are met, sorted by name
func (t *Tracker) AvailableSteps() []string {
	var available []string
	for stepName := range StepRegistry {
		if t.Completed(stepName) {
			continue
		}
		if err := t.ValidateDependencies(stepName); err != nil {
			continue
		}
		available = append(available, stepName)
	}
	sort.Strings(available)
	return available
}

// BlockedSteps returns steps that are not yet done and still wait on a dependency, sorted by name
func (t *Tracker) BlockedSteps() []string {
	var blocked []string
	for stepName := range StepRegistry {
		if t.Completed(stepName) {
			continue
		}
		if err := t.ValidateDependencies(stepName); err != nil {
			blocked = append(blocked, stepName)
		}
	}
	sort.Strings(blocked)
	return blocked
}

// Category returns the category of a registered step, or "" for unknown names
func Category(stepName string) string {
	return StepRegistry[stepName].Category
}
