package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "", 3},
		{"OPENAI_APIKEY", "OPENAI_API_KEY", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, editDistance(tt.a, tt.b), "editDistance(%q, %q)", tt.a, tt.b)
	}
}

func TestClosestKey(t *testing.T) {
	known := []string{"OPENAI_API_KEY", "OPENAI_MODEL", "DATABASE_URL"}

	assert.Equal(t, "OPENAI_API_KEY", closestKey("OPENAI_APIKEY", known))
	assert.Equal(t, "DATABASE_URL", closestKey("database_url", known)) // case-insensitive
	assert.Empty(t, closestKey("COMPLETELY_DIFFERENT", known))
}

func TestFindingString(t *testing.T) {
	withLine := Finding{Severity: SeverityError, File: "secrets.env", Line: 3, Message: "boom"}
	assert.Equal(t, "secrets.env:3: error: boom", withLine.String())

	noLine := Finding{Severity: SeverityInfo, File: "secrets.env", Message: "note"}
	assert.Equal(t, "secrets.env: info: note", noLine.String())
}

func TestReport_MergeAndHasErrors(t *testing.T) {
	a := &Report{Findings: []Finding{{Severity: SeverityWarning}}}
	b := &Report{Findings: []Finding{{Severity: SeverityError}}}

	assert.False(t, a.HasErrors())

	a.Merge(b)
	a.Merge(nil)

	assert.Len(t, a.Findings, 2)
	assert.True(t, a.HasErrors())
}
