package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRedacted_MasksCredentials verifies that every credential field is
// masked while non-secret fields pass through untouched.
func TestRedacted_MasksCredentials(t *testing.T) {
	cfg := completeConfig()

	out := cfg.Redacted()

	assert.Equal(t, redactedPlaceholder, out.OpenAI.APIKey)
	assert.Equal(t, redactedPlaceholder, out.LinkedIn.APIKey)
	assert.Equal(t, redactedPlaceholder, out.LinkedIn.APISecret)
	assert.Equal(t, cfg.OpenAI.Model, out.OpenAI.Model)
	assert.Equal(t, cfg.Search.ArbeitsagenturURL, out.Search.ArbeitsagenturURL)

	// original untouched
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
}

// TestRedacted_EmptyCredentialsStayEmpty verifies that unset credentials are
// distinguishable from hidden ones.
func TestRedacted_EmptyCredentialsStayEmpty(t *testing.T) {
	out := Defaults().Redacted()
	assert.Empty(t, out.OpenAI.APIKey)
	assert.Empty(t, out.LinkedIn.APIKey)
}

func TestRedactConnString(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "password hidden",
			dsn:  "postgres://user:hunter2@db:5432/careerassist",
			want: "postgres://user:***@db:5432/careerassist",
		},
		{
			name: "no password untouched",
			dsn:  "postgres://user@db:5432/careerassist",
			want: "postgres://user@db:5432/careerassist",
		},
		{
			name: "empty stays empty",
			dsn:  "",
			want: "",
		},
		{
			name: "keyword form hidden entirely",
			dsn:  "host=db user=app password=hunter2",
			want: redactedPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redactConnString(tt.dsn))
		})
	}
}
