package controller

import "pricegrip/internal/domain"

// Display receives everything the controller wants shown. Implementations
// must be safe to call from any goroutine.
type Display interface {
	// ShowSearching switches to the searching state with a status message pair
	ShowSearching(status domain.SearchStatus)
	// ShowResults presents the view derived right after a successful search
	ShowResults(page domain.Page)
	// ShowView presents a view recomputed after a filter change or reset
	ShowView(page domain.Page)
	// ShowError shows the timed error banner
	ShowError(message string)
	// ShowTrending renders the clickable trending terms
	ShowTrending(terms []domain.TrendingTerm)
	// HideTrending removes the trending section
	HideTrending()
	// Notify shows a transient toast
	Notify(message string, severity domain.Severity)
}

// Clipboard copies a literal string to the system clipboard
type Clipboard interface {
	Copy(text string) error
}
