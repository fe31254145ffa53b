package lint

import (
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/mycareerassist/careerctl/internal/theme"
)

// themeSections maps each documented config.toml section to its known keys.
var themeSections = map[string][]string{
	"theme":   {"primaryColor", "backgroundColor", "secondaryBackgroundColor", "textColor", "font"},
	"client":  {"showErrorDetails", "toolbarMode"},
	"browser": {"gatherUsageStats"},
	"logger":  {"level"},
}

// themeColorKeys are the [theme] keys that must hold hex colors.
var themeColorKeys = []string{
	"primaryColor", "backgroundColor", "secondaryBackgroundColor", "textColor",
}

// Theme lints a theme/runtime configuration file: sections and keys must be
// the documented ones and every value must be acceptable to the hosted
// framework.
func Theme(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading theme file: %w", err)
	}

	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error decoding theme file: %w", err)
	}

	report := &Report{}
	checkThemeSections(report, path, raw)
	checkThemeValues(report, path, raw)

	return report, nil
}

func checkThemeSections(report *Report, path string, raw map[string]any) {
	for section, contents := range raw {
		known, ok := themeSections[section]
		if !ok {
			report.add(Finding{
				Severity: SeverityWarning,
				File:     path,
				Key:      section,
				Message:  fmt.Sprintf("unknown section [%s]", section),
			})
			continue
		}

		table, ok := contents.(map[string]any)
		if !ok {
			report.add(Finding{
				Severity: SeverityError,
				File:     path,
				Key:      section,
				Message:  fmt.Sprintf("[%s] must be a table", section),
			})
			continue
		}

		for key := range table {
			if !slices.Contains(known, key) {
				msg := fmt.Sprintf("unknown key %s in [%s]", key, section)
				if suggestion := closestKey(key, known); suggestion != "" {
					msg = fmt.Sprintf("unknown key %s in [%s], did you mean %s?", key, section, suggestion)
				}
				report.add(Finding{
					Severity: SeverityWarning,
					File:     path,
					Key:      section + "." + key,
					Message:  msg,
				})
			}
		}
	}
}

func checkThemeValues(report *Report, path string, raw map[string]any) {
	themeTable, _ := raw["theme"].(map[string]any)
	for _, key := range themeColorKeys {
		value, ok := themeTable[key].(string)
		if !ok {
			continue
		}
		if err := theme.CheckColor(value); err != nil {
			report.add(Finding{
				Severity: SeverityError,
				File:     path,
				Key:      "theme." + key,
				Message:  fmt.Sprintf("%s: %v", key, err),
			})
		}
	}

	checkThemeEnum(report, path, themeTable, "theme", "font", theme.Fonts)

	clientTable, _ := raw["client"].(map[string]any)
	checkThemeEnum(report, path, clientTable, "client", "toolbarMode", theme.ToolbarModes)

	loggerTable, _ := raw["logger"].(map[string]any)
	checkThemeEnum(report, path, loggerTable, "logger", "level", theme.LogLevels)
}

func checkThemeEnum(report *Report, path string, table map[string]any, section, key string, accepted []string) {
	value, ok := table[key].(string)
	if !ok {
		return
	}
	if !slices.Contains(accepted, value) {
		report.add(Finding{
			Severity: SeverityError,
			File:     path,
			Key:      section + "." + key,
			Message:  fmt.Sprintf("%s must be one of %v, got %q", key, accepted, value),
		})
	}
}
