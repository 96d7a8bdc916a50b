package state

import (
	"strconv"

	"pricegrip/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Search state
	Query     string              // last submitted query
	Searching bool                // a search is in flight
	Status    domain.SearchStatus // status pair of the in-flight search
	StepIndex int                 // loading status step, advances every tick

	// Result state
	Page       domain.Page
	HasResults bool // a search completed at least once

	// Trending state
	Trending        []domain.TrendingTerm
	TrendingVisible bool
	TrendingLoaded  bool

	// Filter controls
	Store    string // "all" or exact store name
	Sort     domain.SortMode
	MinText  string // raw min price control text
	MaxText  string // raw max price control text
	EditBase string // control text before the current edit started

	// Selection state
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int // number of product cards that fit on screen

	// Error banner
	ErrorMessage string
	ErrorID      int

	// Notification toast
	Notice         string
	NoticeSeverity domain.Severity
	NoticeID       int
	NoticeLeaving  bool

	// UI state
	ShowHelp bool
	ShowHint bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	f := domain.DefaultFilter()
	return &AppState{
		Store:          f.Store,
		Sort:           f.Sort,
		ViewportHeight: 5,
	}
}

// Filter builds the filter state from the current control values
func (s *AppState) Filter() domain.FilterState {
	return domain.NewFilterState(s.Store, string(s.Sort), s.MinText, s.MaxText)
}

// ApplyFilter sets the controls from a filter state
func (s *AppState) ApplyFilter(f domain.FilterState) {
	s.Store = f.Store
	s.Sort = f.Sort
	s.MinText = formatBound(f.MinPrice)
	s.MaxText = formatBound(f.MaxPrice)
}

// StoreOptions returns the selectable store values, "all" first
func (s *AppState) StoreOptions() []string {
	return append([]string{domain.AllStores}, s.Page.Stores...)
}

// CycleStore moves the store selection by delta, wrapping around
func (s *AppState) CycleStore(delta int) {
	options := s.StoreOptions()
	current := 0
	for i, o := range options {
		if o == s.Store {
			current = i
			break
		}
	}
	s.Store = options[wrap(current+delta, len(options))]
}

// CycleSort moves the sort selection by delta, wrapping around
func (s *AppState) CycleSort(delta int) {
	current := -1
	for i, m := range domain.SortModes {
		if m == s.Sort {
			current = i
			break
		}
	}
	if current < 0 {
		s.Sort = domain.SortModes[0]
		return
	}
	s.Sort = domain.SortModes[wrap(current+delta, len(domain.SortModes))]
}

// SelectedProduct returns the product under the cursor
func (s *AppState) SelectedProduct() (domain.Product, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Page.Products) {
		return domain.Product{}, false
	}
	return s.Page.Products[s.SelectedIndex], true
}

// SetPage replaces the displayed view, keeping the selection in range
func (s *AppState) SetPage(page domain.Page, resetSelection bool) {
	s.Page = page
	if resetSelection {
		s.SelectedIndex = 0
		s.ViewportOffset = 0
	}
	s.clampSelection()
}

// Move shifts the selection by delta and keeps it visible
func (s *AppState) Move(delta int) {
	s.SelectedIndex += delta
	s.clampSelection()
}

// MoveTo puts the selection on index and keeps it visible
func (s *AppState) MoveTo(index int) {
	s.SelectedIndex = index
	s.clampSelection()
}

func (s *AppState) clampSelection() {
	n := len(s.Page.Products)
	if s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	s.EnsureSelectedVisible()
}

// EnsureSelectedVisible scrolls the viewport to the selection
func (s *AppState) EnsureSelectedVisible() {
	height := s.ViewportHeight
	if height < 1 {
		height = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+height {
		s.ViewportOffset = s.SelectedIndex - height + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
