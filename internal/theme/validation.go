package theme

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

var (
	// ErrInvalidColor indicates a theme color that is not a "#RGB" or
	// "#RRGGBB" hex color.
	ErrInvalidColor = errors.New("invalid hex color")
	// ErrInvalidFont indicates a font family outside the framework's set.
	ErrInvalidFont = errors.New("invalid font family")
	// ErrInvalidToolbarMode indicates an unsupported toolbar mode.
	ErrInvalidToolbarMode = errors.New("invalid toolbar mode")
	// ErrInvalidLogLevel indicates an unsupported framework log level.
	ErrInvalidLogLevel = errors.New("invalid logger level")
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Value sets the hosted framework accepts for the enum-shaped fields.
var (
	Fonts        = []string{"sans serif", "serif", "monospace"}
	ToolbarModes = []string{"auto", "developer", "viewer", "minimal"}
	LogLevels    = []string{"error", "warning", "info", "debug"}
)

// Validate checks every theme field against the framework's accepted
// values: colors must be hex colors and the enum fields must hold one of
// their documented values.
func (t *Theme) Validate() error {
	colors := map[string]string{
		"primaryColor":             t.Theme.PrimaryColor,
		"backgroundColor":          t.Theme.BackgroundColor,
		"secondaryBackgroundColor": t.Theme.SecondaryBackgroundColor,
		"textColor":                t.Theme.TextColor,
	}
	// Deterministic error order for reporting.
	for _, name := range []string{
		"primaryColor", "backgroundColor", "secondaryBackgroundColor", "textColor",
	} {
		if err := CheckColor(colors[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if !slices.Contains(Fonts, t.Theme.Font) {
		return fmt.Errorf("%w: %q", ErrInvalidFont, t.Theme.Font)
	}

	if !slices.Contains(ToolbarModes, t.Client.ToolbarMode) {
		return fmt.Errorf("%w: %q", ErrInvalidToolbarMode, t.Client.ToolbarMode)
	}

	if !slices.Contains(LogLevels, t.Logger.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, t.Logger.Level)
	}

	return nil
}

// CheckColor reports whether s is a "#RGB" or "#RRGGBB" hex color.
func CheckColor(s string) error {
	if !hexColorPattern.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return nil
}
