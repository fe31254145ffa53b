package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSecretsFile_Dotenv verifies dotenv parsing of every field,
// including quoted values and comments.
func TestParseSecretsFile_Dotenv(t *testing.T) {
	path := writeTempSecretsFile(t, "secrets.env", `
# credentials
OPENAI_API_KEY="sk-dotenv"
OPENAI_MODEL=gpt-4o-mini
LINKEDIN_API_KEY=li-key
LINKEDIN_API_SECRET=li-secret
DATABASE_URL=postgres://user:pass@db:5432/careerassist
MAX_FILE_SIZE_MB=10
SEARCH_RESULTS_PER_PAGE=25
CACHE_EXPIRY_HOURS=24
ARBEITSAGENTUR_API_URL=https://www.arbeitsagentur.de/jobsuche/
`)

	cfg, err := parseSecretsFile(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-dotenv", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "li-key", cfg.LinkedIn.APIKey)
	assert.Equal(t, "li-secret", cfg.LinkedIn.APISecret)
	assert.Equal(t, "postgres://user:pass@db:5432/careerassist", cfg.Storage.DatabaseURL)
	assert.Equal(t, 10, cfg.Storage.MaxFileSizeMB)
	assert.Equal(t, 25, cfg.Search.ResultsPerPage)
	assert.Equal(t, 24, cfg.Search.CacheExpiryHours)
	assert.Equal(t, "https://www.arbeitsagentur.de/jobsuche/", cfg.Search.ArbeitsagenturURL)
}

// TestParseSecretsFile_DotenvBadInt verifies that a non-numeric value for a
// numeric key is an error naming the key.
func TestParseSecretsFile_DotenvBadInt(t *testing.T) {
	path := writeTempSecretsFile(t, "secrets.env", "CACHE_EXPIRY_HOURS=tomorrow\n")

	cfg, err := parseSecretsFile(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyCacheExpiryHours)
}

// TestParseSecretsFile_TOMLTypes verifies that TOML integers decode as
// integers and strings as strings.
func TestParseSecretsFile_TOMLTypes(t *testing.T) {
	path := writeTempSecretsFile(t, "secrets.toml", `
OPENAI_API_KEY = "sk-toml"
SEARCH_RESULTS_PER_PAGE = 40
`)

	cfg, err := parseSecretsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-toml", cfg.OpenAI.APIKey)
	assert.Equal(t, 40, cfg.Search.ResultsPerPage)
}

// TestParseSecretsFile_TOMLQuotedNumerics verifies that numeric fields
// accept string-typed TOML values, the way the dotenv form does.
func TestParseSecretsFile_TOMLQuotedNumerics(t *testing.T) {
	path := writeTempSecretsFile(t, "secrets.toml", `
MAX_FILE_SIZE_MB = "50"
CACHE_EXPIRY_HOURS = "12"
SEARCH_RESULTS_PER_PAGE = 30
`)

	cfg, err := parseSecretsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Storage.MaxFileSizeMB)
	assert.Equal(t, 12, cfg.Search.CacheExpiryHours)
	assert.Equal(t, 30, cfg.Search.ResultsPerPage)
}

// TestParseSecretsFile_TOMLBadNumeric verifies that a string value that does
// not parse as an integer is an error naming the key.
func TestParseSecretsFile_TOMLBadNumeric(t *testing.T) {
	path := writeTempSecretsFile(t, "secrets.toml", `MAX_FILE_SIZE_MB = "huge"`+"\n")

	cfg, err := parseSecretsFile(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyMaxFileSizeMB)
}

// TestFromValues_UnknownKeysIgnored verifies that FromValues silently skips
// keys outside the contract; reporting them is the lint package's job.
func TestFromValues_UnknownKeysIgnored(t *testing.T) {
	cfg, err := FromValues(map[string]string{
		KeyOpenAIModel: "gpt-4o",
		"OPENAI_KEY":   "misspelled",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Empty(t, cfg.OpenAI.APIKey)
}

// TestFromValues_EmptyNumeric verifies that unset numeric values stay zero
// instead of failing to parse.
func TestFromValues_EmptyNumeric(t *testing.T) {
	cfg, err := FromValues(map[string]string{KeyMaxFileSizeMB: ""})
	require.NoError(t, err)
	assert.Zero(t, cfg.Storage.MaxFileSizeMB)
}
