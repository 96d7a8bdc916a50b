//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// Product mirrors the backend search item
type Product struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Store string  `json:"store"`
	Link  string  `json:"link"`
}

// FakeBackend serves the search and trending endpoints from memory
type FakeBackend struct {
	srv *httptest.Server

	mu       sync.Mutex
	catalog  map[string][]Product // query -> products
	trending []string
	failing  bool
	delays   map[string]time.Duration
	requests []string
}

// NewFakeBackend starts a backend that is closed when the test ends
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	b := &FakeBackend{
		catalog: make(map[string][]Product),
		delays:  make(map[string]time.Duration),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

// URL returns the base URL to pass with --base-url
func (b *FakeBackend) URL() string {
	return b.srv.URL
}

// WithProducts registers the answer for query
func (b *FakeBackend) WithProducts(query string, products ...Product) *FakeBackend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.catalog[query] = products
	return b
}

// WithTrending sets the trending terms
func (b *FakeBackend) WithTrending(terms ...string) *FakeBackend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trending = terms
	return b
}

// WithDelay holds the answer for query
func (b *FakeBackend) WithDelay(query string, d time.Duration) *FakeBackend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delays[query] = d
	return b
}

// Failing makes every endpoint answer 503
func (b *FakeBackend) Failing() *FakeBackend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failing = true
	return b
}

// Requests returns the request paths seen so far
func (b *FakeBackend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.URL.EscapedPath())
	failing := b.failing
	b.mu.Unlock()

	if failing {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/trending" {
		b.mu.Lock()
		terms := make([]map[string]string, 0, len(b.trending))
		for _, t := range b.trending {
			terms = append(terms, map[string]string{"product_name": t})
		}
		b.mu.Unlock()
		_ = json.NewEncoder(w).Encode(terms)
		return
	}

	query := strings.TrimPrefix(r.URL.Path, "/search/")
	b.mu.Lock()
	products, ok := b.catalog[query]
	delay := b.delays[query]
	b.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if !ok {
		products = []Product{}
	}
	_ = json.NewEncoder(w).Encode(products)
}

// consoles is a small catalog shared by several tests
var consoles = []Product{
	{ID: "1", Title: "PlayStation 5 Slim", Price: 25000, Store: "Noon", Link: "https://noon.example/ps5"},
	{ID: "2", Title: "Xbox Series X", Price: 22000, Store: "Amazon", Link: "https://amazon.example/xbox"},
	{ID: "3", Title: "Nintendo Switch OLED", Price: 12000, Store: "Noon", Link: "https://noon.example/switch"},
}
