// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

package config

import "strconv"

// Canonical secrets file key names. Every configuration source (environment,
// dotenv file, TOML file, scaffolded templates) spells the contract with
// these exact strings.
const (
	KeyOpenAIAPIKey         = "OPENAI_API_KEY"
	KeyOpenAIModel          = "OPENAI_MODEL"
	KeyLinkedInAPIKey       = "LINKEDIN_API_KEY"
	KeyLinkedInAPISecret    = "LINKEDIN_API_SECRET"
	KeyDatabaseURL          = "DATABASE_URL"
	KeyMaxFileSizeMB        = "MAX_FILE_SIZE_MB"
	KeySearchResultsPerPage = "SEARCH_RESULTS_PER_PAGE"
	KeyCacheExpiryHours     = "CACHE_EXPIRY_HOURS"
	KeyArbeitsagenturURL    = "ARBEITSAGENTUR_API_URL"
)

// Keys returns the canonical secrets keys in their documented order.
func Keys() []string {
	return []string{
		KeyOpenAIAPIKey,
		KeyOpenAIModel,
		KeyLinkedInAPIKey,
		KeyLinkedInAPISecret,
		KeyDatabaseURL,
		KeyMaxFileSizeMB,
		KeySearchResultsPerPage,
		KeyCacheExpiryHours,
		KeyArbeitsagenturURL,
	}
}

// SecretKeys returns the subset of keys whose values are credentials and
// must never be logged, rendered, or served unredacted.
func SecretKeys() []string {
	return []string{
		KeyOpenAIAPIKey,
		KeyLinkedInAPIKey,
		KeyLinkedInAPISecret,
	}
}

// Value returns the value stored in cfg for the canonical key, as a string.
// The second return is false for unknown keys.
func (cfg *Config) Value(key string) (string, bool) {
	values := cfg.Values()
	v, ok := values[key]
	return v, ok
}

// Values returns the full configuration as canonical key/value string pairs.
func (cfg *Config) Values() map[string]string {
	return map[string]string{
		KeyOpenAIAPIKey:         cfg.OpenAI.APIKey,
		KeyOpenAIModel:          cfg.OpenAI.Model,
		KeyLinkedInAPIKey:       cfg.LinkedIn.APIKey,
		KeyLinkedInAPISecret:    cfg.LinkedIn.APISecret,
		KeyDatabaseURL:          cfg.Storage.DatabaseURL,
		KeyMaxFileSizeMB:        itoaOrEmpty(cfg.Storage.MaxFileSizeMB),
		KeySearchResultsPerPage: itoaOrEmpty(cfg.Search.ResultsPerPage),
		KeyCacheExpiryHours:     itoaOrEmpty(cfg.Search.CacheExpiryHours),
		KeyArbeitsagenturURL:    cfg.Search.ArbeitsagenturURL,
	}
}

func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
