package results

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"pricegrip/internal/domain"
)

// Summarize computes the product count, distinct store count and price range of a view
func Summarize(view []domain.Product) domain.Stats {
	stats := domain.Stats{Total: len(view)}
	if len(view) == 0 {
		return stats
	}

	stores := make(map[string]struct{})
	stats.MinPrice = view[0].Price
	stats.MaxPrice = view[0].Price
	for _, p := range view {
		stores[p.Store] = struct{}{}
		if p.Price < stats.MinPrice {
			stats.MinPrice = p.Price
		}
		if p.Price > stats.MaxPrice {
			stats.MaxPrice = p.Price
		}
	}
	stats.StoreCount = len(stores)
	return stats
}

// FormatPrice renders a price with grouped thousands and at most three fraction digits
func FormatPrice(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatPriceRange renders "min - max" for a non-empty view and "-" otherwise
func FormatPriceRange(stats domain.Stats) string {
	if stats.Total == 0 {
		return "-"
	}
	return FormatPrice(stats.MinPrice) + " - " + FormatPrice(stats.MaxPrice)
}
