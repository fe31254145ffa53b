// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

package config

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// validate checks the structural invariants of the merged [Config]: numeric
// fields must be positive when set, and URL-shaped fields must parse. It
// does not require credentials to be present; use [Config.ValidateComplete]
// for that.
//
// Returns nil if the configuration is structurally valid, or a descriptive
// error otherwise.
func (cfg *Config) validate() error {
	if cfg.Storage.MaxFileSizeMB <= 0 {
		return ErrInvalidMaxFileSize
	}

	if cfg.Search.ResultsPerPage <= 0 {
		return ErrInvalidResultsPerPage
	}

	if cfg.Search.CacheExpiryHours <= 0 {
		return ErrInvalidCacheExpiry
	}

	if err := checkHTTPURL(cfg.Search.ArbeitsagenturURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJobAPIURL, err)
	}

	if cfg.Storage.DatabaseURL != "" {
		if _, err := pgconn.ParseConfig(cfg.Storage.DatabaseURL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDatabaseURL, err)
		}
	}

	return nil
}

// ValidateComplete checks that every credential and connection value the
// application needs at startup is present, on top of the structural checks
// of validate. The setup wizard and `check -strict` use it; plain loading
// does not, so operators can inspect partially filled configurations.
func (cfg *Config) ValidateComplete() error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if cfg.OpenAI.APIKey == "" {
		return ErrMissingOpenAICredentials
	}

	if cfg.LinkedIn.APIKey == "" || cfg.LinkedIn.APISecret == "" {
		return ErrMissingLinkedInCredentials
	}

	if cfg.Storage.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}

	return nil
}
