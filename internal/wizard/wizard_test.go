package wizard

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, ch := range text {
		updated, _ := m.Update(keyMsg(string(ch)))
		m = updated.(Model)
	}
	return m
}

func TestWizardStartsAtWelcome(t *testing.T) {
	m := New(false)
	if m.state != StateWelcome {
		t.Errorf("state = %v, want StateWelcome", m.state)
	}
}

func TestWizardExistingConfigStopsFlow(t *testing.T) {
	m := New(false)
	updated, _ := m.Update(existingConfigMsg{path: "edgeplane.toml"})
	m = updated.(Model)
	if m.state != StateCheckExisting {
		t.Errorf("state = %v, want StateCheckExisting", m.state)
	}
}

func TestWizardForceSkipsExistingCheck(t *testing.T) {
	m := New(true)
	updated, _ := m.Update(existingConfigMsg{path: "edgeplane.toml"})
	m = updated.(Model)
	if m.state != StateWelcome {
		t.Errorf("state = %v, want StateWelcome with --force", m.state)
	}
}

func TestWizardFieldValidationBlocksAdvance(t *testing.T) {
	m := New(false)
	updated, _ := m.Update(keyMsg("enter")) // welcome -> fields
	m = updated.(Model)
	if m.state != StateFields {
		t.Fatalf("state = %v, want StateFields", m.state)
	}

	m = typeText(t, m, "Bad_Name")
	updated, _ = m.Update(keyMsg("tab")) // move to account field
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("enter")) // attempt to advance
	m = updated.(Model)

	if m.state != StateFields {
		t.Errorf("state = %v, invalid name should stay on StateFields", m.state)
	}
	if _, ok := m.errors["name"]; !ok {
		t.Error("expected a name validation error")
	}
}

func TestWizardHappyPathReachesSummary(t *testing.T) {
	m := New(false)
	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)

	m = typeText(t, m, "my-worker")
	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("enter")) // fields -> target type
	m = updated.(Model)
	if m.state != StateTargetType {
		t.Fatalf("state = %v, want StateTargetType", m.state)
	}

	updated, _ = m.Update(keyMsg("enter")) // target type -> summary
	m = updated.(Model)
	if m.state != StateSummary {
		t.Fatalf("state = %v, want StateSummary", m.state)
	}

	input := m.collectInput()
	if input.Name != "my-worker" {
		t.Errorf("collected name = %q, want %q", input.Name, "my-worker")
	}
	if input.TargetType != TargetTypes[0] {
		t.Errorf("collected type = %q, want default %q", input.TargetType, TargetTypes[0])
	}
}

func TestWizardCreationError(t *testing.T) {
	m := New(false)
	updated, _ := m.Update(fileCreationResultMsg{err: errors.New("disk full")})
	m = updated.(Model)
	if m.state != StateError {
		t.Errorf("state = %v, want StateError", m.state)
	}
}
