// Package controller turns user intent (search, filter changes, reset,
// trending, copy) into backend requests, result store updates and display calls.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"pricegrip/internal/backend"
	"pricegrip/internal/domain"
	"pricegrip/internal/results"
)

// User-facing messages
const (
	SearchingTitle     = "Searching fresh daily data from Egyptian stores..."
	SearchingSubtitle  = "Accessing our automatically updated database"
	SearchFailedMsg    = "Failed to fetch fresh data. Our daily scraper may be updating. Please try again in a moment."
	EmptyQueryMsg      = "Type a product name to search"
	LinkCopiedMsg      = "Link copied to clipboard!"
	LinkCopyFailedMsg  = "Failed to copy link"
	DefaultTrendingMax = 10
)

// QueryController bridges user intent to result store updates and redisplay
type QueryController struct {
	client    backend.Client
	store     *results.Store
	display   Display
	clipboard Clipboard
	log       *slog.Logger

	trendingLimit int

	generation atomic.Uint64

	mu     sync.Mutex
	filter domain.FilterState
	cancel context.CancelFunc
}

// Option configures a QueryController
type Option func(*QueryController)

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(c *QueryController) { c.log = l }
}

// WithTrendingLimit caps the number of trending terms handed to the display
func WithTrendingLimit(n int) Option {
	return func(c *QueryController) {
		if n > 0 {
			c.trendingLimit = n
		}
	}
}

// WithClipboard sets the clipboard used by OnCopyLink
func WithClipboard(cb Clipboard) Option {
	return func(c *QueryController) { c.clipboard = cb }
}

// WithInitialFilter sets the filter in effect before any control changes
func WithInitialFilter(f domain.FilterState) Option {
	return func(c *QueryController) { c.filter = f }
}

// New creates a controller owning store
func New(client backend.Client, store *results.Store, display Display, opts ...Option) *QueryController {
	c := &QueryController{
		client:        client,
		store:         store,
		display:       display,
		log:           slog.Default(),
		trendingLimit: DefaultTrendingMax,
		filter:        domain.DefaultFilter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "controller")
	return c
}

// Filter returns the filter currently in effect
func (c *QueryController) Filter() domain.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Store returns the result store owned by the controller
func (c *QueryController) Store() *results.Store {
	return c.store
}

// OnSearchSubmit runs one search for query, sent verbatim. It blocks until
// the request finished or was superseded. Only the most recently issued
// search may update the store and the display; older responses are dropped.
func (c *QueryController) OnSearchSubmit(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		c.display.Notify(EmptyQueryMsg, domain.SeverityInfo)
		return
	}

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	gen := c.generation.Add(1)
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.mu.Unlock()

	c.log.Info("search started", "query", query, "generation", gen)
	c.display.ShowSearching(domain.SearchStatus{
		Generation: gen,
		Query:      query,
		Title:      SearchingTitle,
		Subtitle:   SearchingSubtitle,
	})

	products, err := c.client.Search(reqCtx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation.Load() {
		c.log.Debug("discarding superseded search", "query", query, "generation", gen, "error", err)
		return
	}
	c.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.log.Info("search cancelled", "query", query, "generation", gen)
			return
		}
		c.log.Warn("search failed", "query", query, "generation", gen, "error", err, "kind", errorKind(err))
		c.display.ShowError(SearchFailedMsg)
		return
	}

	c.store.Replace(query, products)
	c.log.Info("search completed", "query", query, "generation", gen, "results", len(products))
	c.display.ShowResults(c.store.Page(c.filter))
}

// OnFilterControlChange records filter and republishes the derived view.
// It never touches the network.
func (c *QueryController) OnFilterControlChange(filter domain.FilterState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = filter
	c.display.ShowView(c.store.Page(filter))
}

// OnReset restores the default filter, republishes the full set sorted by
// title and returns the filter the controls should show.
func (c *QueryController) OnReset() domain.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = domain.DefaultFilter()
	c.display.ShowView(c.store.Page(c.filter))
	return c.filter
}

// LoadTrendingTerms fetches trending terms once. On failure the trending
// section is hidden; there is no retry.
func (c *QueryController) LoadTrendingTerms(ctx context.Context) {
	terms, err := c.client.Trending(ctx)
	if err != nil {
		c.log.Warn("failed to load trending searches", "error", err, "kind", errorKind(err))
		c.display.HideTrending()
		return
	}

	if len(terms) > c.trendingLimit {
		terms = terms[:c.trendingLimit]
	}
	out := make([]domain.TrendingTerm, len(terms))
	copy(out, terms)
	c.log.Debug("trending searches loaded", "count", len(out))
	c.display.ShowTrending(out)
}

// OnCopyLink copies link to the clipboard and reports the outcome
func (c *QueryController) OnCopyLink(link string) {
	if c.clipboard == nil || link == "" {
		c.display.Notify(LinkCopyFailedMsg, domain.SeverityError)
		return
	}
	if err := c.clipboard.Copy(link); err != nil {
		c.log.Warn("copy link failed", "error", err)
		c.display.Notify(LinkCopyFailedMsg, domain.SeverityError)
		return
	}
	c.display.Notify(LinkCopiedMsg, domain.SeveritySuccess)
}

// Cancel aborts the in-flight search, if any
func (c *QueryController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, backend.ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, backend.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, backend.ErrNetwork):
		return "network"
	default:
		return "unknown"
	}
}
