package scaffold

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mycareerassist/careerctl/internal/config"
	"github.com/mycareerassist/careerctl/internal/theme"
)

// keyComments documents each canonical key inside the rendered templates.
var keyComments = map[string]string{
	config.KeyOpenAIAPIKey:         "OpenAI API key used for resume and cover letter features",
	config.KeyOpenAIModel:          "OpenAI model identifier",
	config.KeyLinkedInAPIKey:       "LinkedIn API key",
	config.KeyLinkedInAPISecret:    "LinkedIn API secret",
	config.KeyDatabaseURL:          "PostgreSQL connection string",
	config.KeyMaxFileSizeMB:        "maximum resume upload size in MB",
	config.KeySearchResultsPerPage: "job results shown per page",
	config.KeyCacheExpiryHours:     "search cache expiry in hours",
	config.KeyArbeitsagenturURL:    "Bundesagentur für Arbeit job search endpoint",
}

// RenderDotenv renders cfg as a dotenv secrets file in the documented key
// order, one commented entry per key.
func RenderDotenv(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString("# MyCareerAssist secrets file\n")
	b.WriteString("# Copy to .env and fill in the credential values.\n\n")

	values := cfg.Values()
	for _, key := range config.Keys() {
		b.WriteString("# " + keyComments[key] + "\n")
		b.WriteString(key + "=" + values[key] + "\n\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// RenderSecretsTOML renders cfg as a flat TOML secrets file in the
// documented key order.
func RenderSecretsTOML(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString("# MyCareerAssist secrets file\n")
	b.WriteString("# Copy to .streamlit/secrets.toml and fill in the credential values.\n\n")

	values := cfg.Values()
	for _, key := range config.Keys() {
		b.WriteString("# " + keyComments[key] + "\n")
		b.WriteString(key + " = " + tomlValue(key, values[key]) + "\n\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// tomlValue renders a value with its typed TOML form: integers bare,
// everything else quoted.
func tomlValue(key, value string) string {
	switch key {
	case config.KeyMaxFileSizeMB, config.KeySearchResultsPerPage, config.KeyCacheExpiryHours:
		if value == "" {
			return "0"
		}
		return value
	default:
		return fmt.Sprintf("%q", value)
	}
}

// RenderThemeTOML renders t as the framework's config.toml.
func RenderThemeTOML(t *theme.Theme) string {
	data, err := toml.Marshal(t)
	if err != nil {
		// Theme has no unmarshalable fields; keep the signature simple.
		panic(fmt.Sprintf("scaffold: marshaling theme: %v", err))
	}
	return "# MyCareerAssist hosted framework configuration\n\n" + string(data)
}
