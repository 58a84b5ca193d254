package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONMarshaling(t *testing.T) {
	violation := Violation{
		Type:     "invalid_email",
		Severity: SeverityWarning,
		Field:    "contact.email",
		Details:  "contact email is not a valid address",
		Value:    "contato@",
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type": "invalid_email"`)
	assert.Contains(t, string(jsonBytes), `"severity": "warning"`)
	assert.Contains(t, string(jsonBytes), `"field": "contact.email"`)
	assert.Contains(t, string(jsonBytes), `"value": "contato@"`)
}

func TestViolation_OptionalValue(t *testing.T) {
	violation := Violation{
		Type:     "empty_section",
		Severity: SeverityWarning,
		Field:    "faq",
		Details:  "section is active but has no entries",
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), `"value"`)
}

func TestViolations_HasErrors(t *testing.T) {
	tests := []struct {
		name       string
		violations *Violations
		want       bool
	}{
		{name: "nil", violations: nil, want: false},
		{name: "empty", violations: &Violations{}, want: false},
		{
			name: "warnings only",
			violations: &Violations{Violations: []Violation{
				{Type: "empty_section", Severity: SeverityWarning},
			}},
			want: false,
		},
		{
			name: "with error",
			violations: &Violations{Violations: []Violation{
				{Type: "empty_section", Severity: SeverityWarning},
				{Type: "invalid_color", Severity: SeverityError},
			}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.violations.HasErrors())
		})
	}
}
