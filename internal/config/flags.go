package config

import (
	"flag"
	"net/url"
)

// Flags holds secrets configuration values collected from command-line
// flags. Values are filled in by the flag set after it is parsed.
type Flags struct {
	openAIKey         string
	openAIModel       string
	linkedInKey       string
	linkedInSecret    string
	databaseURL       string
	maxFileSizeMB     int
	resultsPerPage    int
	cacheExpiryHours  int
	arbeitsagenturURL urlValue
	secretsFilePath   string
}

// RegisterFlags registers all secrets configuration flags on fs and returns
// the [Flags] that will receive their values once fs is parsed.
//
// Flags:
//
//	-openai-key OpenAI API key
//	-openai-model OpenAI model identifier
//	-linkedin-key LinkedIn API key
//	-linkedin-secret LinkedIn API secret
//	-d database connection string
//	-max-file-size maximum resume upload size in MB
//	-results-per-page job results shown per page
//	-cache-expiry cache expiry in hours
//	-job-api-url Arbeitsagentur job search endpoint
//	-s/-secrets secrets file path (.env or .toml)
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVar(&f.openAIKey, "openai-key", "", "OpenAI API key")
	fs.StringVar(&f.openAIModel, "openai-model", "", "OpenAI model identifier")
	fs.StringVar(&f.linkedInKey, "linkedin-key", "", "LinkedIn API key")
	fs.StringVar(&f.linkedInSecret, "linkedin-secret", "", "LinkedIn API secret")
	fs.StringVar(&f.databaseURL, "d", "", "Database connection string")
	fs.IntVar(&f.maxFileSizeMB, "max-file-size", 0, "Max resume upload size in MB")
	fs.IntVar(&f.resultsPerPage, "results-per-page", 0, "Job results per page")
	fs.IntVar(&f.cacheExpiryHours, "cache-expiry", 0, "Cache expiry in hours")
	fs.Var(&f.arbeitsagenturURL, "job-api-url", "Arbeitsagentur job search endpoint URL")
	fs.StringVar(&f.secretsFilePath, "s", "", "Secrets file path")
	fs.StringVar(&f.secretsFilePath, "secrets", "", "Secrets file path (alias)")

	return f
}

// Config converts the collected flag values into a *Config suitable for
// merging with the other configuration sources.
func (f *Flags) Config() *Config {
	return &Config{
		OpenAI: OpenAI{
			APIKey: f.openAIKey,
			Model:  f.openAIModel,
		},
		LinkedIn: LinkedIn{
			APIKey:    f.linkedInKey,
			APISecret: f.linkedInSecret,
		},
		Storage: Storage{
			DatabaseURL:   f.databaseURL,
			MaxFileSizeMB: f.maxFileSizeMB,
		},
		Search: Search{
			ResultsPerPage:    f.resultsPerPage,
			CacheExpiryHours:  f.cacheExpiryHours,
			ArbeitsagenturURL: f.arbeitsagenturURL.String(),
		},
		SecretsFilePath: f.secretsFilePath,
	}
}

// urlValue is an absolute http(s) URL flag value.
// It implements the flag.Value interface.
type urlValue string

// String returns the raw URL string.
func (u *urlValue) String() string {
	return string(*u)
}

// Set parses and validates the input as an absolute http or https URL and
// stores it. Returns an error if the URL is malformed or uses another scheme.
func (u *urlValue) Set(s string) error {
	if err := checkHTTPURL(s); err != nil {
		return err
	}

	*u = urlValue(s)
	return nil
}

// checkHTTPURL reports whether s is a well-formed absolute http(s) URL.
func checkHTTPURL(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidURLScheme
	}

	if parsed.Host == "" {
		return ErrMissingURLHost
	}

	return nil
}
