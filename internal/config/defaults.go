package config

// Default values for the non-credential fields, matching the values the
// deployment documentation ships in its example files. Credentials have no
// defaults on purpose.
const (
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultMaxFileSizeMB     = 10
	DefaultResultsPerPage    = 25
	DefaultCacheExpiryHours  = 24
	DefaultArbeitsagenturURL = "https://www.arbeitsagentur.de/jobsuche/"
)

// Defaults returns a *Config carrying only the built-in default values.
// It is merged in as the lowest-priority configuration source.
func Defaults() *Config {
	return &Config{
		OpenAI: OpenAI{
			Model: DefaultOpenAIModel,
		},
		Storage: Storage{
			MaxFileSizeMB: DefaultMaxFileSizeMB,
		},
		Search: Search{
			ResultsPerPage:    DefaultResultsPerPage,
			CacheExpiryHours:  DefaultCacheExpiryHours,
			ArbeitsagenturURL: DefaultArbeitsagenturURL,
		},
	}
}
