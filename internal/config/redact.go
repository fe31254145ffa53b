package config

import "net/url"

// redactedPlaceholder replaces credential values everywhere a config leaves
// the process: logs, the inspection server, rendered output.
const redactedPlaceholder = "***"

// Redacted returns a copy of cfg with all credential fields replaced by a
// placeholder. Empty credentials stay empty so a reader can tell "unset"
// from "hidden".
func (cfg *Config) Redacted() Config {
	out := *cfg

	out.OpenAI.APIKey = redact(out.OpenAI.APIKey)
	out.LinkedIn.APIKey = redact(out.LinkedIn.APIKey)
	out.LinkedIn.APISecret = redact(out.LinkedIn.APISecret)
	out.Storage.DatabaseURL = redactConnString(out.Storage.DatabaseURL)

	return out
}

// redactConnString hides the password component of a URL-form connection
// string. Strings that do not parse as URLs are hidden entirely.
func redactConnString(dsn string) string {
	if dsn == "" {
		return ""
	}

	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		return redactedPlaceholder
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), redactedPlaceholder)
		}
	}

	return parsed.String()
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return redactedPlaceholder
}
