package lint

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTheme_CleanFile verifies that the documented config.toml layout lints
// clean.
func TestTheme_CleanFile(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
[theme]
primaryColor = "#FF4B4B"
backgroundColor = "#FFFFFF"
secondaryBackgroundColor = "#F0F2F6"
textColor = "#31333F"
font = "sans serif"

[client]
showErrorDetails = false
toolbarMode = "viewer"

[browser]
gatherUsageStats = false

[logger]
level = "info"
`)

	report, err := Theme(path)
	require.NoError(t, err)
	assert.Empty(t, report.Findings)
}

// TestTheme_UnknownSectionAndKey verifies warnings for sections and keys
// outside the documented layout, with spelling suggestions where close.
func TestTheme_UnknownSectionAndKey(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
[theme]
primaryColour = "#FF4B4B"

[telemetry]
enabled = true
`)

	report, err := Theme(path)
	require.NoError(t, err)

	keyFindings := findingsForKey(report, "theme.primaryColour")
	require.Len(t, keyFindings, 1)
	assert.Equal(t, SeverityWarning, keyFindings[0].Severity)
	assert.Contains(t, keyFindings[0].Message, "did you mean primaryColor?")

	sectionFindings := findingsForKey(report, "telemetry")
	require.Len(t, sectionFindings, 1)
	assert.Contains(t, sectionFindings[0].Message, "unknown section [telemetry]")
}

// TestTheme_BadValues verifies error findings for colors and enums the
// framework would reject.
func TestTheme_BadValues(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
[theme]
primaryColor = "crimson"
font = "comic sans"

[client]
toolbarMode = "hidden"

[logger]
level = "verbose"
`)

	report, err := Theme(path)
	require.NoError(t, err)
	assert.True(t, report.HasErrors())

	for _, key := range []string{
		"theme.primaryColor", "theme.font", "client.toolbarMode", "logger.level",
	} {
		findings := findingsForKey(report, key)
		require.Len(t, findings, 1, "expected one finding for %s", key)
		assert.Equal(t, SeverityError, findings[0].Severity)
	}
}

func TestTheme_MissingFile(t *testing.T) {
	_, err := Theme(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
