// Package wizard is the interactive edgeplane init flow: it collects the
// script name, account ID, and target type, then writes edgeplane.toml.
package wizard

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldScriptName = 0
	fieldAccountID  = 1
)

// New creates a new wizard model
func New(force bool) Model {
	name := textinput.New()
	name.Placeholder = "my-worker"
	name.Focus()

	account := textinput.New()
	account.Placeholder = "account ID (optional)"

	return Model{
		state:  StateWelcome,
		force:  force,
		inputs: []textinput.Model{name, account},
		errors: make(map[string]string),
	}
}

type existingConfigMsg struct {
	path string
}

type fileCreationResultMsg struct {
	result *InitResult
	err    error
}

func checkForExistingConfig() tea.Msg {
	if _, err := os.Stat("edgeplane.toml"); err == nil {
		return existingConfigMsg{path: "edgeplane.toml"}
	}
	return existingConfigMsg{}
}

// Init initializes the wizard (Bubble Tea Init)
func (m Model) Init() tea.Cmd {
	return checkForExistingConfig
}

// Update handles state transitions (Bubble Tea Update)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != StateFields {
				return m, tea.Quit
			}
			return m.handleTextInput(msg)

		case "enter":
			return m.handleEnter()

		case "up", "down", "tab", "shift+tab":
			return m.handleMove(msg.String())

		default:
			return m.handleTextInput(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case existingConfigMsg:
		if msg.path != "" && !m.force {
			m.existingConfigPath = msg.path
			m.state = StateCheckExisting
		} else {
			m.state = StateWelcome
		}
		return m, nil

	case fileCreationResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.result = msg.result
		m.state = StateDone
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateWelcome:
		m.state = StateFields
		return m, textinput.Blink

	case StateCheckExisting:
		// Overwriting needs an explicit --force; enter just leaves.
		return m, tea.Quit

	case StateFields:
		if m.focusIndex < len(m.inputs)-1 {
			return m.handleMove("tab")
		}
		if !m.validateFields() {
			return m, nil
		}
		m.state = StateTargetType
		return m, nil

	case StateTargetType:
		m.state = StateSummary
		return m, nil

	case StateSummary:
		m.state = StateCreating
		input := m.collectInput()
		force := m.force
		return m, func() tea.Msg {
			result, err := GenerateConfig(input, force)
			return fileCreationResultMsg{result: result, err: err}
		}

	case StateDone, StateError:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleMove(key string) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFields:
		switch key {
		case "down", "tab":
			m.focusIndex = (m.focusIndex + 1) % len(m.inputs)
		case "up", "shift+tab":
			m.focusIndex = (m.focusIndex - 1 + len(m.inputs)) % len(m.inputs)
		}
		var cmds []tea.Cmd
		for i := range m.inputs {
			if i == m.focusIndex {
				cmds = append(cmds, m.inputs[i].Focus())
			} else {
				m.inputs[i].Blur()
			}
		}
		return m, tea.Batch(cmds...)

	case StateTargetType:
		switch key {
		case "down", "tab":
			m.typeIndex = (m.typeIndex + 1) % len(TargetTypes)
		case "up", "shift+tab":
			m.typeIndex = (m.typeIndex - 1 + len(TargetTypes)) % len(TargetTypes)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state != StateFields {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) validateFields() bool {
	m.errors = make(map[string]string)
	if err := ValidateScriptName(strings.TrimSpace(m.inputs[fieldScriptName].Value())); err != nil {
		m.errors["name"] = err.Error()
	}
	if err := ValidateAccountID(strings.TrimSpace(m.inputs[fieldAccountID].Value())); err != nil {
		m.errors["account_id"] = err.Error()
	}
	return len(m.errors) == 0
}

func (m Model) collectInput() ProjectInput {
	return ProjectInput{
		Name:       strings.TrimSpace(m.inputs[fieldScriptName].Value()),
		AccountID:  strings.TrimSpace(m.inputs[fieldAccountID].Value()),
		TargetType: TargetTypes[m.typeIndex],
	}
}

// View renders the wizard UI (Bubble Tea View)
func (m Model) View() string {
	switch m.state {
	case StateWelcome:
		return m.renderWelcome()
	case StateCheckExisting:
		return m.renderCheckExisting()
	case StateFields:
		return m.renderFields()
	case StateTargetType:
		return m.renderTargetType()
	case StateSummary:
		return m.renderSummary()
	case StateCreating:
		return headerStyle.Render("edgeplane init") + "\n\nWriting edgeplane.toml..."
	case StateDone:
		return m.renderDone()
	case StateError:
		return errorStyle.Render("✗ ") + m.err.Error() + "\n"
	}
	return ""
}

func (m Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("edgeplane init"))
	b.WriteString("\n\nSet up a new edge worker project in this directory.\n")
	b.WriteString(helpStyle.Render("enter to continue · q to quit"))
	return b.String()
}

func (m Model) renderCheckExisting() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("edgeplane init"))
	b.WriteString(fmt.Sprintf("\n\n%s already exists.\n", m.existingConfigPath))
	b.WriteString("Re-run with --force to overwrite it.\n")
	b.WriteString(helpStyle.Render("enter or q to quit"))
	return b.String()
}

func (m Model) renderFields() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("edgeplane init"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Script name") + "\n")
	b.WriteString(m.inputs[fieldScriptName].View() + "\n")
	if msg, ok := m.errors["name"]; ok {
		b.WriteString(errorStyle.Render("  "+msg) + "\n")
	}
	b.WriteString("\n" + labelStyle.Render("Account ID") + "\n")
	b.WriteString(m.inputs[fieldAccountID].View() + "\n")
	if msg, ok := m.errors["account_id"]; ok {
		b.WriteString(errorStyle.Render("  "+msg) + "\n")
	}
	b.WriteString(helpStyle.Render("tab to switch fields · enter to continue"))
	return b.String()
}

func (m Model) renderTargetType() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("edgeplane init"))
	b.WriteString("\n\n" + labelStyle.Render("Target type") + "\n\n")
	for i, targetType := range TargetTypes {
		cursor := "  "
		line := targetType
		if i == m.typeIndex {
			cursor = "> "
			line = selectedStyle.Render(targetType)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString(helpStyle.Render("up/down to select · enter to continue"))
	return b.String()
}

func (m Model) renderSummary() string {
	input := m.collectInput()
	var b strings.Builder
	b.WriteString(headerStyle.Render("edgeplane init"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  name:       %s\n", input.Name))
	if input.AccountID != "" {
		b.WriteString(fmt.Sprintf("  account_id: %s\n", input.AccountID))
	}
	b.WriteString(fmt.Sprintf("  type:       %s\n", input.TargetType))
	b.WriteString(helpStyle.Render("enter to write edgeplane.toml · ctrl+c to abort"))
	return b.String()
}

func (m Model) renderDone() string {
	action := "Created"
	if m.result.ConfigUpdated {
		action = "Updated"
	}
	return successStyle.Render("✓ ") + fmt.Sprintf("%s %s\n", action, m.result.ConfigPath)
}

// Run starts the wizard program.
func Run(force bool) error {
	p := tea.NewProgram(New(force))
	_, err := p.Run()
	return err
}
