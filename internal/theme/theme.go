// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

// Package theme loads and validates the hosted web framework's theme and
// runtime configuration file (config.toml): visual theme colors, client
// behavior flags, the browser telemetry flag, and logger verbosity.
package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme is the typed form of the framework's config.toml.
type Theme struct {
	// Theme holds the visual theme section.
	Theme Colors `toml:"theme" json:"theme"`

	// Client holds the client behavior flags.
	Client Client `toml:"client" json:"client"`

	// Browser holds browser-side telemetry settings.
	Browser Browser `toml:"browser" json:"browser"`

	// Logger holds the framework logger settings.
	Logger Logger `toml:"logger" json:"logger"`
}

// Colors is the [theme] section: the four theme colors and the font family.
type Colors struct {
	// PrimaryColor is the accent color for interactive elements,
	// as a hex color ("#RGB" or "#RRGGBB").
	PrimaryColor string `toml:"primaryColor" json:"primaryColor"`

	// BackgroundColor is the main content background color.
	BackgroundColor string `toml:"backgroundColor" json:"backgroundColor"`

	// SecondaryBackgroundColor is the sidebar and widget background color.
	SecondaryBackgroundColor string `toml:"secondaryBackgroundColor" json:"secondaryBackgroundColor"`

	// TextColor is the body text color.
	TextColor string `toml:"textColor" json:"textColor"`

	// Font is the body font family: "sans serif", "serif", or "monospace".
	Font string `toml:"font" json:"font"`
}

// Client is the [client] section.
type Client struct {
	// ShowErrorDetails controls whether tracebacks are shown in the browser.
	ShowErrorDetails bool `toml:"showErrorDetails" json:"showErrorDetails"`

	// ToolbarMode controls the app toolbar: "auto", "developer", "viewer",
	// or "minimal".
	ToolbarMode string `toml:"toolbarMode" json:"toolbarMode"`
}

// Browser is the [browser] section.
type Browser struct {
	// GatherUsageStats controls whether the framework reports usage
	// telemetry.
	GatherUsageStats bool `toml:"gatherUsageStats" json:"gatherUsageStats"`
}

// Logger is the [logger] section.
type Logger struct {
	// Level is the framework log verbosity: "error", "warning", "info",
	// or "debug".
	Level string `toml:"level" json:"level"`
}

// Load reads and decodes the theme configuration file at path, fills unset
// fields from [Default], and validates the result.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading theme file: %w", err)
	}

	return Parse(data)
}

// Parse decodes raw TOML theme configuration, fills unset fields from
// [Default], and validates the result.
func Parse(data []byte) (*Theme, error) {
	t := Default()
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("error decoding theme file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Default returns the theme the deployment documentation ships: the
// MyCareerAssist brand colors, error details hidden, telemetry off, and
// info-level framework logging.
func Default() *Theme {
	return &Theme{
		Theme: Colors{
			PrimaryColor:             "#FF4B4B",
			BackgroundColor:          "#FFFFFF",
			SecondaryBackgroundColor: "#F0F2F6",
			TextColor:                "#31333F",
			Font:                     "sans serif",
		},
		Client: Client{
			ShowErrorDetails: false,
			ToolbarMode:      "viewer",
		},
		Browser: Browser{
			GatherUsageStats: false,
		},
		Logger: Logger{
			Level: "info",
		},
	}
}
