package ui

import (
	"pricegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchDoneMsg is sent when a controller search call returned
type searchDoneMsg struct {
	query string
}

// stepMsg advances the loading status animation of one search generation
type stepMsg struct {
	generation uint64
}

// dismissErrorMsg hides the error banner it was scheduled for
type dismissErrorMsg struct {
	id int
}

// noticeLeavingMsg starts the exit of the toast it was scheduled for
type noticeLeavingMsg struct {
	id int
}

// dismissNoticeMsg removes the toast it was scheduled for
type dismissNoticeMsg struct {
	id int
}

// hintShowMsg swaps in the example placeholder
type hintShowMsg struct{}

// hintHideMsg restores the default placeholder
type hintHideMsg struct{}

// linkOpenedMsg contains the result of opening a product link
type linkOpenedMsg struct {
	err error
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}
