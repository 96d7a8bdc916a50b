package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"pricegrip/internal/domain"
	"pricegrip/internal/results"
	"pricegrip/internal/ui/input/modes"
)

// LoadingSteps are the status items animated while a search is in flight
var LoadingSteps = []string{
	"Connecting to the price database",
	"Collecting listings from Egyptian stores",
	"Comparing prices",
	"Preparing results",
}

// Empty state lines
const (
	EmptyTitle    = "No products found"
	EmptySubtitle = "Try adjusting your search terms or filters"
	EmptyFootnote = "Our database is updated daily with fresh pricing data"
	WelcomeText   = "Press / to search products across Egyptian stores"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Input
	InputMode   string // "" when no text field is active
	InputPrompt string
	TextInput   string
	Query       string
	Placeholder string

	// Search
	Searching   bool
	Status      domain.SearchStatus
	StepIndex   int
	SpinnerView string

	// Results
	HasResults     bool
	Page           domain.Page
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	// Trending
	Trending        []domain.TrendingTerm
	TrendingVisible bool

	// Filter controls
	Store   string
	Sort    domain.SortMode
	MinText string
	MaxText string

	// Messages
	ErrorMessage   string
	Notice         string
	NoticeSeverity domain.Severity
	NoticeLeaving  bool

	ShowHelp  bool
	HelpModel help.Model
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	productRender  *ProductRenderer
	trendingRender *TrendingRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(currency string) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		productRender:  NewProductRenderer(styles, currency),
		trendingRender: NewTrendingRenderer(styles),
	}
}

// ReservedLines is the number of lines used around the product list
func ReservedLines(state ViewState) int {
	// padding, title, search, trending, filters, gaps, results header, stats, footer
	lines := 12
	if state.ErrorMessage != "" {
		lines += 2
	}
	if state.TrendingVisible {
		lines++
	}
	return lines
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	innerWidth := width - 4 // Main container padding

	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state, innerWidth))
	content.WriteString("\n\n")

	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n")

	if state.TrendingVisible && len(state.Trending) > 0 {
		content.WriteString(r.trendingRender.RenderTrending(state.Trending, innerWidth))
		content.WriteString("\n")
	}

	content.WriteString(r.renderFilterLine(state))
	content.WriteString("\n")

	if state.ErrorMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.ErrorBanner.Render("✗ " + state.ErrorMessage))
		content.WriteString("\n")
	}

	content.WriteString("\n")

	switch {
	case state.Searching:
		content.WriteString(r.renderSearching(state))
	case state.HasResults:
		content.WriteString(r.renderResults(state, innerWidth))
	default:
		content.WriteString(r.styles.Dim.Render(WelcomeText))
	}

	footer := r.renderFooter(state, innerWidth)

	// Push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.renderHelpOverlay(state, width)
	}
	return finalContent
}

// renderTitleLine renders the logo with the spinner and toast right aligned
func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render("pricegrip") + r.styles.Dim.Render("  Egyptian price comparison")

	var right []string
	if state.Searching {
		right = append(right, r.styles.Dim.Render(strings.TrimSpace(state.SpinnerView+" Searching")))
	}
	if state.Notice != "" {
		notice := r.styles.NoticeStyle(state.NoticeSeverity).Render(NoticeIcon(state.NoticeSeverity) + " " + state.Notice)
		if state.NoticeLeaving {
			notice = r.styles.Dim.Render(NoticeIcon(state.NoticeSeverity) + " " + state.Notice)
		}
		right = append(right, notice)
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	if state.InputMode != "" {
		return r.styles.Filter.Render(state.InputPrompt) + state.TextInput
	}
	if state.Query != "" {
		return r.styles.Label.Render("Search: ") + state.Query
	}
	return r.styles.Label.Render("Search: ") + r.styles.Dim.Render(state.Placeholder)
}

func (r *Renderer) renderFilterLine(state ViewState) string {
	bound := func(text string) string {
		if v, ok := domain.ParsePrice(text); ok {
			return results.FormatPrice(v)
		}
		return "-"
	}
	store := state.Store
	if store == "" || store == domain.AllStores {
		store = "All stores"
	}
	parts := []string{
		r.styles.Label.Render("Store: ") + r.styles.Filter.Render(store),
		r.styles.Label.Render("Sort: ") + r.styles.Filter.Render(state.Sort.Label()),
		r.styles.Label.Render("Min: ") + r.styles.Filter.Render(bound(state.MinText)),
		r.styles.Label.Render("Max: ") + r.styles.Filter.Render(bound(state.MaxText)),
	}
	return strings.Join(parts, r.styles.Dim.Render("  │  "))
}

func (r *Renderer) renderSearching(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render(strings.TrimSpace(state.SpinnerView + " " + state.Status.Title)))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(state.Status.Subtitle))
	b.WriteString("\n\n")
	for i, step := range LoadingSteps {
		switch {
		case i < state.StepIndex || state.StepIndex > len(LoadingSteps):
			b.WriteString(r.styles.StepDone.Render("✓ " + step))
		case i == state.StepIndex:
			b.WriteString(r.styles.StepActive.Render("● " + step))
		default:
			b.WriteString(r.styles.StepPending.Render("○ " + step))
		}
		if i < len(LoadingSteps)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderResults(state ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render(fmt.Sprintf("Results for %q", state.Page.Query)))
	b.WriteString("\n")
	b.WriteString(r.renderStats(state.Page.Stats))
	b.WriteString("\n\n")

	products := state.Page.Products
	if len(products) == 0 {
		b.WriteString(r.styles.CardTitle.Render(EmptyTitle))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(EmptySubtitle))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Italic(true).Render(EmptyFootnote))
		return b.String()
	}

	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}
	start := state.ViewportOffset
	if start > len(products) {
		start = len(products)
	}
	end := start + height
	if end > len(products) {
		end = len(products)
	}

	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(r.productRender.RenderProduct(products[i], i == state.SelectedIndex, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	if below := len(products) - end; below > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return b.String()
}

func (r *Renderer) renderStats(stats domain.Stats) string {
	stat := func(label, value string) string {
		return r.styles.StatValue.Render(value) + " " + r.styles.Stat.Render(label)
	}
	return strings.Join([]string{
		stat("products", fmt.Sprintf("%d", stats.Total)),
		stat("stores", fmt.Sprintf("%d", stats.StoreCount)),
		stat("price range", results.FormatPriceRange(stats)),
	}, r.styles.Dim.Render("  •  "))
}

func (r *Renderer) renderFooter(state ViewState, width int) string {
	h := state.HelpModel
	h.Width = width
	if state.InputMode != "" {
		return h.ShortHelpView(modes.TextKeys)
	}
	return h.ShortHelpView(modes.Keys.ShortHelp())
}

// renderHelpOverlay renders the full key map in a centered box
func (r *Renderer) renderHelpOverlay(state ViewState, width int) string {
	h := state.HelpModel
	h.ShowAll = true
	body := r.styles.Title.Render("pricegrip help") + "\n\n" + h.FullHelpView(modes.Keys.FullHelp()) +
		"\n\n" + r.styles.Dim.Render("Press any key to close")
	box := r.styles.HelpBox.Render(body)

	height := state.Height
	if height <= 0 {
		height = lipgloss.Height(box)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
