package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// parseSecretsFile loads a secrets file into a *Config. The file format is
// chosen by extension: ".toml" files are decoded as TOML, everything else is
// treated as dotenv (the deployment docs ship both forms of the same
// contract).
func parseSecretsFile(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOMLSecrets(path)
	default:
		return parseDotenvSecrets(path)
	}
}

func parseTOMLSecrets(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading secrets file: %w", err)
	}

	// The TOML secrets file is flat: every key sits at the top level under
	// its canonical name. Decoding through a string map keeps the numeric
	// fields tolerant of both bare integers (50) and quoted ones ("50"),
	// matching what the dotenv form accepts.
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error decoding toml secrets: %w", err)
	}

	values := make(map[string]string, len(raw))
	for key, v := range raw {
		switch value := v.(type) {
		case string:
			values[key] = value
		case int64, float64, bool:
			values[key] = fmt.Sprintf("%v", value)
		}
	}

	return FromValues(values)
}

func parseDotenvSecrets(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading secrets file: %w", err)
	}

	return FromValues(values)
}

// FromValues maps canonical key/value string pairs onto a *Config,
// converting the numeric fields. Unknown keys are ignored here; flagging
// them is the lint package's job.
func FromValues(values map[string]string) (*Config, error) {
	cfg := &Config{
		OpenAI: OpenAI{
			APIKey: values[KeyOpenAIAPIKey],
			Model:  values[KeyOpenAIModel],
		},
		LinkedIn: LinkedIn{
			APIKey:    values[KeyLinkedInAPIKey],
			APISecret: values[KeyLinkedInAPISecret],
		},
		Storage: Storage{
			DatabaseURL: values[KeyDatabaseURL],
		},
		Search: Search{
			ArbeitsagenturURL: values[KeyArbeitsagenturURL],
		},
	}

	var err error
	if cfg.Storage.MaxFileSizeMB, err = intValue(values, KeyMaxFileSizeMB); err != nil {
		return nil, err
	}
	if cfg.Search.ResultsPerPage, err = intValue(values, KeySearchResultsPerPage); err != nil {
		return nil, err
	}
	if cfg.Search.CacheExpiryHours, err = intValue(values, KeyCacheExpiryHours); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intValue(values map[string]string, key string) (int, error) {
	raw, ok := values[key]
	if !ok || raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}

	return n, nil
}
