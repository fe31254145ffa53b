// Package config provides loading, merging, and validation of the
// MyCareerAssist secrets configuration.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Secrets file (dotenv or TOML, path resolved from sources 1 and 2)
//  4. Built-in defaults for non-credential fields
//
// The main entry point is [Load]. The resulting *Config is read once at
// process start and held immutably for the lifetime of the process.
package config
