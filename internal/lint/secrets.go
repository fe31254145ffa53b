package lint

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pelletier/go-toml/v2"

	"github.com/mycareerassist/careerctl/internal/config"
)

// keyKind states how a canonical secrets value must parse.
type keyKind int

const (
	kindString keyKind = iota
	kindPositiveInt
	kindURL
	kindConnString
)

var keyKinds = map[string]keyKind{
	config.KeyOpenAIAPIKey:         kindString,
	config.KeyOpenAIModel:          kindString,
	config.KeyLinkedInAPIKey:       kindString,
	config.KeyLinkedInAPISecret:    kindString,
	config.KeyDatabaseURL:          kindConnString,
	config.KeyMaxFileSizeMB:        kindPositiveInt,
	config.KeySearchResultsPerPage: kindPositiveInt,
	config.KeyCacheExpiryHours:     kindPositiveInt,
	config.KeyArbeitsagenturURL:    kindURL,
}

// Secrets lints a secrets file (dotenv or TOML, chosen by extension)
// against the documented contract: canonical key spelling, value types,
// and no duplicate keys.
func Secrets(path string) (*Report, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlSecrets(path)
	}
	return dotenvSecrets(path)
}

func dotenvSecrets(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening secrets file: %w", err)
	}
	defer file.Close()

	report := &Report{}
	seen := map[string]int{}

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		text = strings.TrimPrefix(text, "export ")

		key, value, found := strings.Cut(text, "=")
		if !found {
			report.add(Finding{
				Severity: SeverityError,
				File:     path,
				Line:     line,
				Message:  "line is not in KEY=VALUE form",
			})
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if firstLine, dup := seen[key]; dup {
			report.add(Finding{
				Severity: SeverityWarning,
				File:     path,
				Line:     line,
				Key:      key,
				Message:  fmt.Sprintf("duplicate key %s (first set on line %d, this value wins)", key, firstLine),
			})
		}
		seen[key] = line

		checkKey(report, path, line, key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading secrets file: %w", err)
	}

	addMissingKeys(report, path, seen)

	return report, nil
}

func tomlSecrets(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading secrets file: %w", err)
	}

	values := map[string]any{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error decoding secrets file: %w", err)
	}

	report := &Report{}
	seen := map[string]int{}
	for key, raw := range values {
		seen[key] = 0
		checkKey(report, path, 0, key, tomlValueString(raw))
	}

	addMissingKeys(report, path, seen)

	return report, nil
}

func tomlValueString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}

// checkKey validates one key/value pair: the key must be canonical and the
// value must parse as the key's stated type.
func checkKey(report *Report, path string, line int, key, value string) {
	kind, known := keyKinds[key]
	if !known {
		msg := fmt.Sprintf("unknown key %s", key)
		if suggestion := closestKey(key, config.Keys()); suggestion != "" {
			msg = fmt.Sprintf("unknown key %s, did you mean %s?", key, suggestion)
		}
		report.add(Finding{
			Severity: SeverityWarning,
			File:     path,
			Line:     line,
			Key:      key,
			Message:  msg,
		})
		return
	}

	if value == "" {
		return // reported as missing, not as a type error
	}

	switch kind {
	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			report.add(Finding{
				Severity: SeverityError,
				File:     path,
				Line:     line,
				Key:      key,
				Message:  fmt.Sprintf("%s must be a positive integer, got %q", key, value),
			})
		}
	case kindURL:
		if !isHTTPURL(value) {
			report.add(Finding{
				Severity: SeverityError,
				File:     path,
				Line:     line,
				Key:      key,
				Message:  fmt.Sprintf("%s must be a well-formed http(s) URL, got %q", key, value),
			})
		}
	case kindConnString:
		if _, err := pgconn.ParseConfig(value); err != nil {
			report.add(Finding{
				Severity: SeverityError,
				File:     path,
				Line:     line,
				Key:      key,
				Message:  fmt.Sprintf("%s does not parse as a connection string: %v", key, err),
			})
		}
	case kindString:
		// any non-empty string is fine
	}
}

// addMissingKeys reports documented keys the file never sets. Credentials
// are informational only: a deployment may supply them via the environment.
func addMissingKeys(report *Report, path string, seen map[string]int) {
	for _, key := range config.Keys() {
		if _, ok := seen[key]; ok {
			continue
		}
		report.add(Finding{
			Severity: SeverityInfo,
			File:     path,
			Key:      key,
			Message:  fmt.Sprintf("documented key %s is not set", key),
		})
	}
}

func isHTTPURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
