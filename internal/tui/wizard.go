package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mycareerassist/careerctl/internal/config"
)

// wizardField describes one prompt of the setup wizard.
type wizardField struct {
	key    string
	label  string
	secret bool
}

var wizardFields = []wizardField{
	{key: config.KeyOpenAIAPIKey, label: "OpenAI API key", secret: true},
	{key: config.KeyOpenAIModel, label: "OpenAI model"},
	{key: config.KeyLinkedInAPIKey, label: "LinkedIn API key", secret: true},
	{key: config.KeyLinkedInAPISecret, label: "LinkedIn API secret", secret: true},
	{key: config.KeyDatabaseURL, label: "Database URL"},
	{key: config.KeyMaxFileSizeMB, label: "Max upload size (MB)"},
	{key: config.KeySearchResultsPerPage, label: "Results per page"},
	{key: config.KeyCacheExpiryHours, label: "Cache expiry (hours)"},
	{key: config.KeyArbeitsagenturURL, label: "Job search API URL"},
}

type wizardModel struct {
	inputs     []textinput.Model
	focus      int
	errMsg     string
	submitted  bool
	quitByUser bool
	result     *config.Config
}

func newWizardModel(defaults *config.Config) wizardModel {
	values := defaults.Values()

	inputs := make([]textinput.Model, len(wizardFields))
	for i, field := range wizardFields {
		inputs[i] = textinput.New()
		inputs[i].Width = 48
		inputs[i].SetValue(values[field.key])
		if field.secret {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	inputs[0].Focus()

	return wizardModel{inputs: inputs}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitByUser = true
		return m, tea.Quit

	case "tab", "down", "enter":
		if keyMsg.String() == "enter" && m.focus == len(m.inputs)-1 {
			return m.submit()
		}
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "ctrl+s":
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m wizardModel) moveFocus(delta int) wizardModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m wizardModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m wizardModel) submit() (tea.Model, tea.Cmd) {
	values := map[string]string{}
	for i, field := range wizardFields {
		values[field.key] = strings.TrimSpace(m.inputs[i].Value())
	}

	cfg, err := config.FromValues(values)
	if err == nil {
		err = cfg.ValidateComplete()
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.result = cfg
	m.submitted = true
	return m, tea.Quit
}

func (m wizardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MyCareerAssist setup") + "\n\n")

	longest := 0
	for _, field := range wizardFields {
		longest = max(longest, len(field.label))
	}

	for i, field := range wizardFields {
		label := field.label + strings.Repeat(" ", longest-len(field.label))
		if i == m.focus {
			label = focusStyle.Render(label)
		}
		b.WriteString(label + "  [" + m.inputs[i].View() + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("esc cancel  tab next field  ctrl+s save  enter on last field saves"))
	return appStyle.Render(b.String())
}

// fieldIndex returns the wizard position of a canonical key. Kept next to
// wizardFields so the two cannot drift apart.
func fieldIndex(key string) int {
	return slices.IndexFunc(wizardFields, func(f wizardField) bool {
		return f.key == key
	})
}
