package config

import "errors"

// Validation errors returned by [Config.validate] and
// [Config.ValidateComplete] when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidMaxFileSize indicates a non-positive MAX_FILE_SIZE_MB value.
	ErrInvalidMaxFileSize = errors.New("max file size must be a positive integer")
	// ErrInvalidResultsPerPage indicates a non-positive
	// SEARCH_RESULTS_PER_PAGE value.
	ErrInvalidResultsPerPage = errors.New("search results per page must be a positive integer")
	// ErrInvalidCacheExpiry indicates a non-positive CACHE_EXPIRY_HOURS value.
	ErrInvalidCacheExpiry = errors.New("cache expiry hours must be a positive integer")
	// ErrInvalidJobAPIURL indicates a malformed ARBEITSAGENTUR_API_URL value.
	ErrInvalidJobAPIURL = errors.New("invalid job search API URL")
	// ErrInvalidDatabaseURL indicates a DATABASE_URL value that does not
	// parse as a PostgreSQL connection string.
	ErrInvalidDatabaseURL = errors.New("invalid database connection string")

	// ErrMissingOpenAICredentials indicates an absent OpenAI API key.
	ErrMissingOpenAICredentials = errors.New("missing OpenAI credentials")
	// ErrMissingLinkedInCredentials indicates an absent LinkedIn key or secret.
	ErrMissingLinkedInCredentials = errors.New("missing LinkedIn credentials")
	// ErrMissingDatabaseURL indicates an absent DATABASE_URL value.
	ErrMissingDatabaseURL = errors.New("missing database connection string")

	// ErrInvalidURLScheme indicates a URL with a scheme other than http(s).
	ErrInvalidURLScheme = errors.New("URL scheme must be http or https")
	// ErrMissingURLHost indicates a URL with no host component.
	ErrMissingURLHost = errors.New("URL host must not be empty")

	// ErrUnknownKey indicates a key outside the canonical secrets contract.
	ErrUnknownKey = errors.New("unknown secrets key")
)
