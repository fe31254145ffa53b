// Package tui implements the interactive setup wizard for `careerctl init`:
// a form walking through every secrets field, validating the result before
// it is written to disk.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mycareerassist/careerctl/internal/config"
)

// ErrUserQuit is returned when the operator leaves the wizard without
// saving.
var ErrUserQuit = errors.New("setup cancelled")

// RunWizard runs the setup wizard seeded with defaults and returns the
// completed, validated configuration.
func RunWizard(defaults *config.Config) (*config.Config, error) {
	model := newWizardModel(defaults)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(wizardModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.submitted {
		return nil, ErrUserQuit
	}

	return result.result, nil
}
