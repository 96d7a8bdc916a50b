package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"pricegrip/internal/domain"
	"pricegrip/internal/results"
	"pricegrip/internal/sanitize"
)

// ProductTable renders a result view as a table
func (p *Printer) ProductTable(page domain.Page, currency string) error {
	return WriteProductTable(p.out, page, currency, p.Price)
}

// WriteProductTable renders products to w. highlight decorates the price
// column and may be nil.
func WriteProductTable(w io.Writer, page domain.Page, currency string, highlight func(string) string) error {
	if highlight == nil {
		highlight = func(s string) string { return s }
	}
	t := NewTable(w, []string{"#", "Title", "Store", "Price", "Link"})
	for i, product := range page.Products {
		t.AddRow(
			strconv.Itoa(i+1),
			sanitize.Text(product.Title),
			sanitize.Text(product.Store),
			highlight(PriceLabel(product.Price, currency)),
			sanitize.Link(product.Link),
		)
	}
	return t.Render()
}

// Summary prints the stats line of a view
func (p *Printer) Summary(page domain.Page, currency string) {
	p.Print("%s", SummaryLine(page.Stats, currency))
}

// SummaryLine formats view stats as a single line
func SummaryLine(stats domain.Stats, currency string) string {
	label := "products"
	if stats.Total == 1 {
		label = "product"
	}
	stores := "stores"
	if stats.StoreCount == 1 {
		stores = "store"
	}
	priceRange := results.FormatPriceRange(stats)
	if stats.Total > 0 && currency != "" {
		priceRange += " " + currency
	}
	return fmt.Sprintf("%d %s from %d %s, price range %s", stats.Total, label, stats.StoreCount, stores, priceRange)
}

// PriceLabel formats a price with its currency, e.g. "30,000 EGP"
func PriceLabel(price float64, currency string) string {
	if currency == "" {
		return results.FormatPrice(price)
	}
	return results.FormatPrice(price) + " " + currency
}

// TrendingList prints numbered trending terms
func (p *Printer) TrendingList(terms []domain.TrendingTerm) {
	for i, term := range terms {
		p.Print("%s %s", p.Dim(fmt.Sprintf("%2d.", i+1)), sanitize.Text(term.ProductName))
	}
}

// JSON writes v as indented JSON
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
