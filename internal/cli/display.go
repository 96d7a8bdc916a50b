package cli

import (
	"sync"

	"pricegrip/internal/controller"
	"pricegrip/internal/domain"
)

// collectDisplay records what the controller asked to show so one-shot
// commands can print it after the call returns
type collectDisplay struct {
	mu sync.Mutex

	status          domain.SearchStatus
	page            domain.Page
	hasPage         bool
	errMessage      string
	trending        []domain.TrendingTerm
	trendingMissing bool
	notices         []string
}

var _ controller.Display = (*collectDisplay)(nil)

func (d *collectDisplay) ShowSearching(status domain.SearchStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
}

func (d *collectDisplay) ShowResults(page domain.Page) {
	d.setPage(page)
}

func (d *collectDisplay) ShowView(page domain.Page) {
	d.setPage(page)
}

func (d *collectDisplay) setPage(page domain.Page) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.page = page
	d.hasPage = true
}

func (d *collectDisplay) ShowError(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errMessage = message
}

func (d *collectDisplay) ShowTrending(terms []domain.TrendingTerm) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.trending = terms
	d.trendingMissing = false
}

func (d *collectDisplay) HideTrending() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.trending = nil
	d.trendingMissing = true
}

func (d *collectDisplay) Notify(message string, _ domain.Severity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, message)
}
