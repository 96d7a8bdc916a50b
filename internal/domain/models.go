package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Product represents a single listing returned by the search backend
type Product struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Store string  `json:"store"`
	Link  string  `json:"link"`
}

// TrendingTerm is a frequently searched product name suggested by the backend
type TrendingTerm struct {
	ProductName string `json:"product_name"`
}

// AllStores is the store selection that disables the store filter
const AllStores = "all"

// SortMode represents the ordering applied to a result view
type SortMode string

const (
	SortNone      SortMode = ""
	SortByTitle   SortMode = "title"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

// SortModes lists the selectable sort modes in display order
var SortModes = []SortMode{SortByTitle, SortPriceAsc, SortPriceDesc}

// ParseSortMode maps a control value to a sort mode.
// Unknown values leave the filtered order unchanged.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.TrimSpace(s)) {
	case SortByTitle:
		return SortByTitle
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNone
	}
}

// Label returns a human readable name for the sort mode
func (m SortMode) Label() string {
	switch m {
	case SortByTitle:
		return "Title"
	case SortPriceAsc:
		return "Price: low to high"
	case SortPriceDesc:
		return "Price: high to low"
	default:
		return "Relevance"
	}
}

// FilterState is the combination of store, price and sort controls currently active
type FilterState struct {
	Store    string
	MinPrice *float64 // nil when the control holds no number
	MaxPrice *float64
	Sort     SortMode
}

// DefaultFilter returns the filter state controls reset to
func DefaultFilter() FilterState {
	return FilterState{
		Store: AllStores,
		Sort:  SortByTitle,
	}
}

// NewFilterState builds a filter from raw control values
func NewFilterState(store, sort, minPrice, maxPrice string) FilterState {
	f := FilterState{
		Store: store,
		Sort:  ParseSortMode(sort),
	}
	if f.Store == "" {
		f.Store = AllStores
	}
	if v, ok := ParsePrice(minPrice); ok {
		f.MinPrice = &v
	}
	if v, ok := ParsePrice(maxPrice); ok {
		f.MaxPrice = &v
	}
	return f
}

// WithStore returns a copy of the filter with a different store selection
func (f FilterState) WithStore(store string) FilterState {
	if store == "" {
		store = AllStores
	}
	f.Store = store
	return f
}

// WithSort returns a copy of the filter with a different sort mode
func (f FilterState) WithSort(mode SortMode) FilterState {
	f.Sort = mode
	return f
}

// WithPriceBounds returns a copy of the filter with bounds parsed from raw text
func (f FilterState) WithPriceBounds(minPrice, maxPrice string) FilterState {
	f.MinPrice, f.MaxPrice = nil, nil
	if v, ok := ParsePrice(minPrice); ok {
		f.MinPrice = &v
	}
	if v, ok := ParsePrice(maxPrice); ok {
		f.MaxPrice = &v
	}
	return f
}

// IsDefault reports whether the filter matches DefaultFilter
func (f FilterState) IsDefault() bool {
	return f.Store == AllStores && f.Sort == SortByTitle && f.MinPrice == nil && f.MaxPrice == nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParsePrice reads the leading decimal number of s.
// Text with no leading number is reported as absent rather than as an error.
func ParsePrice(s string) (float64, bool) {
	match := leadingNumber.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		// exponent overflow still yields a usable bound
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// Stats summarizes a result view
type Stats struct {
	Total      int
	StoreCount int
	MinPrice   float64
	MaxPrice   float64
}

// Page is a derived result view handed to the display
type Page struct {
	Query    string
	Products []Product
	Stats    Stats
	Stores   []string // distinct stores of the full fetched set
	Filter   FilterState
}

// Severity classifies a notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// SearchStatus is the pair of messages shown while a search is in flight
type SearchStatus struct {
	Generation uint64
	Query      string
	Title      string
	Subtitle   string
}
