package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type PickTrendingAction struct {
	Index int
}

func (a PickTrendingAction) Type() string { return "pick_trending" }

// Filter actions
type CycleStoreAction struct {
	Delta int
}

func (a CycleStoreAction) Type() string { return "cycle_store" }

type CycleSortAction struct {
	Delta int
}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

// Product actions
type OpenLinkAction struct{}

func (a OpenLinkAction) Type() string { return "open_link" }

type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
