package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"pricegrip/internal/domain"
)

func baseState() ViewState {
	return ViewState{
		Width:          100,
		Height:         40,
		Store:          domain.AllStores,
		Sort:           domain.SortByTitle,
		ViewportHeight: 5,
		HelpModel:      help.New(),
		Placeholder:    "Search for products...",
	}
}

func render(state ViewState) string {
	return ansi.Strip(NewRenderer("EGP").Render(state))
}

func TestWelcomeBeforeFirstSearch(t *testing.T) {
	out := render(baseState())

	assert.Contains(t, out, "pricegrip")
	assert.Contains(t, out, WelcomeText)
	assert.Contains(t, out, "Search for products...")
	assert.Contains(t, out, "Store: All stores")
	assert.Contains(t, out, "Sort: Title")
}

func TestResultsWithStatsAndCards(t *testing.T) {
	state := baseState()
	state.HasResults = true
	state.Page = domain.Page{
		Query: "iPhone",
		Products: []domain.Product{
			{ID: "1", Title: "iPhone 15 <b>Pro</b>", Price: 30000, Store: "Amazon", Link: "https://a.example/1"},
		},
		Stats: domain.Stats{Total: 1, StoreCount: 1, MinPrice: 30000, MaxPrice: 30000},
	}

	out := render(state)

	assert.Contains(t, out, `Results for "iPhone"`)
	assert.Contains(t, out, "1 products")
	assert.Contains(t, out, "30,000 - 30,000 price range")
	assert.Contains(t, out, "iPhone 15 Pro")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "30,000 EGP")
	assert.Contains(t, out, "https://a.example/1")
}

func TestEmptyState(t *testing.T) {
	state := baseState()
	state.HasResults = true
	state.Page = domain.Page{Query: "zzz"}

	out := render(state)

	assert.Contains(t, out, EmptyTitle)
	assert.Contains(t, out, EmptySubtitle)
	assert.Contains(t, out, EmptyFootnote)
	assert.Contains(t, out, "0 products")
	assert.Contains(t, out, "- price range")
}

func TestSearchingShowsStatusAndSteps(t *testing.T) {
	state := baseState()
	state.Searching = true
	state.StepIndex = 1
	state.Status = domain.SearchStatus{Title: "Searching fresh daily data", Subtitle: "Accessing database"}

	out := render(state)

	assert.Contains(t, out, "Searching fresh daily data")
	assert.Contains(t, out, "Accessing database")
	assert.Contains(t, out, "✓ "+LoadingSteps[0])
	assert.Contains(t, out, "● "+LoadingSteps[1])
	assert.Contains(t, out, "○ "+LoadingSteps[2])
}

func TestErrorBannerAndToast(t *testing.T) {
	state := baseState()
	state.ErrorMessage = "Failed to fetch fresh data."
	state.Notice = "Link copied to clipboard!"
	state.NoticeSeverity = domain.SeveritySuccess

	out := render(state)

	assert.Contains(t, out, "✗ Failed to fetch fresh data.")
	assert.Contains(t, out, "✓ Link copied to clipboard!")
}

func TestTrendingRowIsNumbered(t *testing.T) {
	state := baseState()
	state.TrendingVisible = true
	state.Trending = []domain.TrendingTerm{{ProductName: "RTX 4070"}, {ProductName: "PS5"}}

	out := render(state)

	assert.Contains(t, out, "Trending:")
	assert.Contains(t, out, "1  RTX 4070")
	assert.Contains(t, out, "2  PS5")
}

func TestHiddenTrendingIsNotRendered(t *testing.T) {
	state := baseState()
	state.Trending = []domain.TrendingTerm{{ProductName: "RTX 4070"}}

	assert.NotContains(t, render(state), "Trending:")
}

func TestScrollIndicators(t *testing.T) {
	state := baseState()
	state.HasResults = true
	for i := 0; i < 10; i++ {
		state.Page.Products = append(state.Page.Products, domain.Product{Title: strings.Repeat("x", i+1), Store: "S"})
	}
	state.ViewportHeight = 3
	state.ViewportOffset = 2
	state.SelectedIndex = 3

	out := render(state)

	assert.Contains(t, out, "↑ 2 more above ↑")
	assert.Contains(t, out, "↓ 5 more below ↓")
}

func TestFilterLineShowsBounds(t *testing.T) {
	state := baseState()
	state.Store = "Jumia"
	state.Sort = domain.SortPriceDesc
	state.MinText = "1000"
	state.MaxText = "abc"

	out := render(state)

	assert.Contains(t, out, "Store: Jumia")
	assert.Contains(t, out, "Sort: Price: high to low")
	assert.Contains(t, out, "Min: 1,000")
	assert.Contains(t, out, "Max: -")
}

func TestHelpOverlay(t *testing.T) {
	state := baseState()
	state.ShowHelp = true

	out := render(state)

	assert.Contains(t, out, "pricegrip help")
	assert.Contains(t, out, "reset filters")
	assert.Contains(t, out, "Press any key to close")
}
