// Package results holds the latest fetched product set and derives the
// filtered, sorted views shown to the user.
package results

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pricegrip/internal/domain"
)

// Store owns exactly one fetched product set. The set is replaced wholesale
// on every successful search and never mutated in place.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	query    string
	lang     language.Tag
}

// NewStore creates an empty store that collates titles using English rules
func NewStore() *Store {
	return NewStoreWithLanguage(language.English)
}

// NewStoreWithLanguage creates an empty store collating titles for the given language
func NewStoreWithLanguage(lang language.Tag) *Store {
	return &Store{lang: lang}
}

// Replace overwrites the stored set. No merging or deduplication happens.
func (s *Store) Replace(query string, products []domain.Product) {
	set := make([]domain.Product, len(products))
	copy(set, products)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = set
	s.query = query
}

// Current returns a copy of the stored set in fetch order
func (s *Store) Current() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Query returns the query the stored set was fetched for
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Len returns the size of the stored set
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Stores returns the distinct store names of the stored set in first-seen order
func (s *Store) Stores() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	stores := make([]string, 0)
	for _, p := range s.products {
		if !seen[p.Store] {
			seen[p.Store] = true
			stores = append(stores, p.Store)
		}
	}
	return stores
}

// DeriveView filters and sorts a fresh copy of the stored set.
// The stored set itself is left untouched.
func (s *Store) DeriveView(filter domain.FilterState) []domain.Product {
	view := Filter(s.Current(), filter)
	s.sortView(view, filter.Sort)
	return view
}

// Page derives a view and bundles it with its statistics for display
func (s *Store) Page(filter domain.FilterState) domain.Page {
	view := s.DeriveView(filter)
	return domain.Page{
		Query:    s.Query(),
		Products: view,
		Stats:    Summarize(view),
		Stores:   s.Stores(),
		Filter:   filter,
	}
}

// Filter keeps the products matching the store and price bounds of filter,
// preserving their relative order.
func Filter(products []domain.Product, filter domain.FilterState) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, filter) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a product passes the store and price bounds of filter.
// Both bounds are inclusive.
func Matches(p domain.Product, filter domain.FilterState) bool {
	if filter.Store != "" && filter.Store != domain.AllStores && p.Store != filter.Store {
		return false
	}
	if filter.MinPrice != nil && !(p.Price >= *filter.MinPrice) {
		return false
	}
	if filter.MaxPrice != nil && !(p.Price <= *filter.MaxPrice) {
		return false
	}
	return true
}

func (s *Store) sortView(view []domain.Product, mode domain.SortMode) {
	switch mode {
	case domain.SortByTitle:
		// collators keep scratch buffers, so each sort gets its own
		c := collate.New(s.lang)
		sort.SliceStable(view, func(i, j int) bool {
			return c.CompareString(view[i].Title, view[j].Title) < 0
		})
	case domain.SortPriceAsc:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Price < view[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Price > view[j].Price
		})
	default:
		// keep filtered order
	}
}
