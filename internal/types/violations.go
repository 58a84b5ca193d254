package types

// Severity levels for lint findings
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single lint finding against the adapted site data
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Field    string `json:"field"`
	Details  string `json:"details"`
	Value    string `json:"value,omitempty"`
}

// Violations represents a collection of lint findings
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any finding has error severity
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}
