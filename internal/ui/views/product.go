package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pricegrip/internal/domain"
	"pricegrip/internal/results"
	"pricegrip/internal/sanitize"
)

// CardHeight is the number of lines one product card takes, gap included
const CardHeight = 4

// ProductRenderer handles rendering of product cards
type ProductRenderer struct {
	styles   *Styles
	currency string
}

// NewProductRenderer creates a new product renderer
func NewProductRenderer(styles *Styles, currency string) *ProductRenderer {
	return &ProductRenderer{
		styles:   styles,
		currency: currency,
	}
}

// RenderProduct renders one product as a three line card
func (r *ProductRenderer) RenderProduct(p domain.Product, isSelected bool, width int) string {
	bar := "  "
	if isSelected {
		bar = r.styles.SelectionBar.Render("▌ ")
	}

	badge := r.styles.StoreBadge.Render(sanitize.Text(p.Store))
	titleWidth := width - lipgloss.Width(bar) - lipgloss.Width(badge) - 1
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := ansi.Truncate(sanitize.Text(p.Title), titleWidth, "…")
	titleStyle := r.styles.CardTitle
	if isSelected {
		titleStyle = titleStyle.Foreground(lipgloss.Color("226"))
	}

	price := r.styles.Price.Render(r.PriceLabel(p.Price))

	link := sanitize.Link(p.Link)
	if link == "" {
		link = r.styles.Dim.Render("no link")
	} else {
		link = r.styles.Link.Render(ansi.Truncate(link, width-lipgloss.Width(bar), "…"))
	}

	lines := []string{
		bar + titleStyle.Render(title) + " " + badge,
		bar + price,
		bar + link,
	}
	return strings.Join(lines, "\n")
}

// PriceLabel formats a price as shown on cards, e.g. "30,000 EGP"
func (r *ProductRenderer) PriceLabel(price float64) string {
	if r.currency == "" {
		return results.FormatPrice(price)
	}
	return results.FormatPrice(price) + " " + r.currency
}
