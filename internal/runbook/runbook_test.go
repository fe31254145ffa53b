// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

package runbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempRunbook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "DEPLOYMENT.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleRunbook = "# Deploy\n" +
	"\n" +
	"```bash\n" +
	"git clone https://example.com/app.git\n" +
	"cd app\n" +
	"# install everything\n" +
	"pip install -r requirements.txt\n" +
	"```\n" +
	"\n" +
	"Then publish:\n" +
	"\n" +
	"1. Push the repository.\n" +
	"2. Click Deploy.\n" +
	"\n" +
	"```python\n" +
	"print('not a shell step')\n" +
	"```\n"

// TestLoad_StepKinds verifies that shell fences become command steps,
// numbered items become manual steps, and non-shell fences are ignored.
func TestLoad_StepKinds(t *testing.T) {
	rb, err := Load(writeTempRunbook(t, sampleRunbook))
	require.NoError(t, err)

	var commands, manual []string
	for _, step := range rb.Steps {
		switch step.Kind {
		case KindCommand:
			commands = append(commands, step.Text)
		case KindManual:
			manual = append(manual, step.Text)
		}
	}

	assert.Equal(t, []string{
		"git clone https://example.com/app.git",
		"cd app",
		"pip install -r requirements.txt",
	}, commands)
	assert.Equal(t, []string{
		"Push the repository.",
		"Click Deploy.",
	}, manual)
}

// TestLoad_LineNumbers verifies that steps carry their document line.
func TestLoad_LineNumbers(t *testing.T) {
	rb, err := Load(writeTempRunbook(t, sampleRunbook))
	require.NoError(t, err)

	require.NotEmpty(t, rb.Steps)
	assert.Equal(t, 4, rb.Steps[0].Line) // git clone sits on line 4
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
}

// TestCommands_SplitsChains verifies `&&` and `;` chains expand into
// individual commands preserving order and line.
func TestCommands_SplitsChains(t *testing.T) {
	rb := &Runbook{Steps: []Step{
		{Kind: KindCommand, Line: 7, Text: "mkdir app && cd app; python -m venv .venv"},
		{Kind: KindManual, Line: 9, Text: "Click Deploy."},
	}}

	commands := rb.Commands()
	require.Len(t, commands, 3)
	assert.Equal(t, "mkdir app", commands[0].Text)
	assert.Equal(t, "cd app", commands[1].Text)
	assert.Equal(t, "python -m venv .venv", commands[2].Text)
	assert.Equal(t, 7, commands[2].Line)
}

// TestLoad_DollarPromptStripped verifies "$ "-prefixed commands parse
// without the prompt marker.
func TestLoad_DollarPromptStripped(t *testing.T) {
	rb, err := Load(writeTempRunbook(t, "```bash\n$ mkdir data\n```\n"))
	require.NoError(t, err)
	require.Len(t, rb.Steps, 1)
	assert.Equal(t, "mkdir data", rb.Steps[0].Text)
}
