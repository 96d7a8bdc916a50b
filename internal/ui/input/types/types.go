package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeMinPrice
	ModeMaxPrice
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeMinPrice:
		return "min-price"
	case ModeMaxPrice:
		return "max-price"
	default:
		return "normal"
	}
}

// IsText reports whether the mode edits the shared text input
func (m Mode) IsText() bool {
	return m == ModeSearch || m == ModeMinPrice || m == ModeMaxPrice
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	HasResults() bool
	SelectedLink() string
	TrendingCount() int
	Searching() bool
	ShowingHelp() bool
	// FieldText returns the current value of the control a text mode edits
	FieldText(mode Mode) string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
