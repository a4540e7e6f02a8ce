package wizard

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// State is the current step in the wizard flow
type State int

const (
	StateWelcome State = iota
	StateCheckExisting
	StateFields
	StateTargetType
	StateSummary
	StateCreating
	StateDone
	StateError
)

// Model holds the state for the Bubble Tea wizard
type Model struct {
	state State

	// Existing config detection
	existingConfigPath string
	force              bool

	// Input fields (script name, account ID)
	inputs     []textinput.Model
	focusIndex int

	// Target type selection
	typeIndex int

	// Validation
	errors map[string]string

	// Final output
	result *InitResult
	err    error

	width  int
	height int
}

// ProjectInput is everything the wizard collects before writing files.
type ProjectInput struct {
	Name       string
	AccountID  string
	TargetType string
}

// InitResult reports what the wizard wrote.
type InitResult struct {
	ConfigPath    string
	ConfigCreated bool
	ConfigUpdated bool
}

// TargetTypes are the script build targets offered by the wizard.
var TargetTypes = []string{"javascript", "webpack", "rust"}
