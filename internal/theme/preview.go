package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	swatchStyle = lipgloss.NewStyle().Width(8).Align(lipgloss.Center)
	labelStyle  = lipgloss.NewStyle().Width(26)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// Preview renders the theme as a terminal color preview: one swatch per
// theme color plus the non-color settings, for `careerctl theme`.
func (t *Theme) Preview() string {
	var b strings.Builder

	rows := []struct {
		label string
		color string
	}{
		{"primaryColor", t.Theme.PrimaryColor},
		{"backgroundColor", t.Theme.BackgroundColor},
		{"secondaryBackgroundColor", t.Theme.SecondaryBackgroundColor},
		{"textColor", t.Theme.TextColor},
	}

	for _, row := range rows {
		swatch := swatchStyle.
			Background(lipgloss.Color(row.color)).
			Render(" ")
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(swatch)
		b.WriteString("  " + row.color + "\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("font") + t.Theme.Font + "\n")
	b.WriteString(labelStyle.Render("toolbarMode") + t.Client.ToolbarMode + "\n")
	b.WriteString(labelStyle.Render("showErrorDetails") + fmt.Sprintf("%t", t.Client.ShowErrorDetails) + "\n")
	b.WriteString(labelStyle.Render("gatherUsageStats") + fmt.Sprintf("%t", t.Browser.GatherUsageStats) + "\n")
	b.WriteString(labelStyle.Render("logger.level") + t.Logger.Level + "\n")
	b.WriteString("\n" + faintStyle.Render("values from config.toml") + "\n")

	return b.String()
}
