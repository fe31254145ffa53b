package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycareerassist/careerctl/internal/config"
	"github.com/mycareerassist/careerctl/internal/lint"
	"github.com/mycareerassist/careerctl/internal/logger"
	"github.com/mycareerassist/careerctl/internal/runbook"
	"github.com/mycareerassist/careerctl/internal/theme"
)

// TestWriteAll verifies every template file is created under the target
// directory.
func TestWriteAll(t *testing.T) {
	dir := t.TempDir()

	err := New(dir, false, logger.Nop()).WriteAll()
	require.NoError(t, err)

	for _, rel := range []string{
		".env.example",
		filepath.Join(".streamlit", "secrets.toml.example"),
		filepath.Join(".streamlit", "config.toml"),
		filepath.Join("docs", "DEPLOYMENT.md"),
	} {
		_, err := os.Stat(filepath.Join(dir, rel))
		assert.NoError(t, err, rel)
	}
}

// TestWriteAll_ExistingFile verifies existing files are left alone without
// the force flag and overwritten with it.
func TestWriteAll_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, ".env.example")
	require.NoError(t, os.WriteFile(existing, []byte("KEEP=1\n"), 0o600))

	err := New(dir, false, logger.Nop()).WriteAll()
	require.ErrorIs(t, err, ErrFileExists)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "KEEP=1\n", string(data))

	err = New(dir, true, logger.Nop()).WriteAll()
	require.NoError(t, err)

	data, err = os.ReadFile(existing)
	require.NoError(t, err)
	assert.NotEqual(t, "KEEP=1\n", string(data))
}

// TestWriteSecrets verifies the format follows the target extension.
func TestWriteSecrets(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, false, logger.Nop())

	cfg := config.Defaults()
	cfg.OpenAI.APIKey = "sk-test"

	require.NoError(t, s.WriteSecrets(".env", cfg))
	require.NoError(t, s.WriteSecrets("secrets.toml", cfg))

	dotenv, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(dotenv), "OPENAI_API_KEY=sk-test")

	tomlData, err := os.ReadFile(filepath.Join(dir, "secrets.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(tomlData), `OPENAI_API_KEY = "sk-test"`)
}

// TestWriteSecrets_AbsolutePath verifies an absolute target is written
// where it points, not re-rooted under the scaffold directory.
func TestWriteSecrets_AbsolutePath(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "secrets.toml")

	require.NoError(t, New(root, false, logger.Nop()).WriteSecrets(target, config.Defaults()))

	_, err := os.Stat(target)
	assert.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "scaffold root must stay untouched")
}

// TestRenderDotenv_LintsClean verifies the scaffolded dotenv template
// passes the secrets lint with no findings at all.
func TestRenderDotenv_LintsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.example")
	require.NoError(t, os.WriteFile(path, []byte(RenderDotenv(config.Defaults())), 0o600))

	report, err := lint.Secrets(path)
	require.NoError(t, err)
	assert.Empty(t, report.Findings)
}

// TestRenderSecretsTOML_LintsClean verifies the scaffolded TOML template
// passes the secrets lint with no findings at all.
func TestRenderSecretsTOML_LintsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte(RenderSecretsTOML(config.Defaults())), 0o600))

	report, err := lint.Secrets(path)
	require.NoError(t, err)
	assert.Empty(t, report.Findings)
}

// TestRenderThemeTOML_RoundTrips verifies the rendered theme file parses
// back to the defaults and validates.
func TestRenderThemeTOML_RoundTrips(t *testing.T) {
	parsed, err := theme.Parse([]byte(RenderThemeTOML(theme.Default())))
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), parsed)
	assert.NoError(t, parsed.Validate())
}

// TestRenderRunbook_ChecksClean verifies the default runbook is internally
// consistent: no errors or warnings against the default manifest. The
// optional tooling block is allowed to produce informational findings.
func TestRenderRunbook_ChecksClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DEPLOYMENT.md")
	require.NoError(t, os.WriteFile(path, []byte(RenderRunbook()), 0o600))

	rb, err := runbook.Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, rb.Commands())

	report := rb.Check(runbook.DefaultManifest)
	assert.False(t, report.HasErrors())
	for _, f := range report.Findings {
		assert.Equal(t, lint.SeverityInfo, f.Severity, f.String())
	}
}

// TestTomlValue verifies numeric keys render bare and strings quoted.
func TestTomlValue(t *testing.T) {
	assert.Equal(t, "10", tomlValue(config.KeyMaxFileSizeMB, "10"))
	assert.Equal(t, "0", tomlValue(config.KeyCacheExpiryHours, ""))
	assert.Equal(t, `"gpt-4o-mini"`, tomlValue(config.KeyOpenAIModel, "gpt-4o-mini"))
}

// TestRenderDotenv_KeyOrder verifies the template follows the documented
// key order.
func TestRenderDotenv_KeyOrder(t *testing.T) {
	rendered := RenderDotenv(config.Defaults())

	last := -1
	for _, key := range config.Keys() {
		idx := strings.Index(rendered, "\n"+key+"=")
		require.Greater(t, idx, last, key)
		last = idx
	}
}
