package discover

import (
	"context"
	"sync"

	"cinescope/models"
	"cinescope/utils/async"
)

// Source is a catalogue that answers filtered discover queries with
// normalized view models. Both the movies and tv clients satisfy it.
type Source interface {
	DiscoverItems(ctx context.Context, filters models.FilterState, page int) (models.MediaPage, error)
}

// Snapshot is the published outcome of one fetch generation.
type Snapshot struct {
	Filters models.FilterState
	Page    models.MediaPage
	Err     error
}

// Controller owns the browse surface's filter state. Every filter or
// page change triggers a full re-fetch; fetches are generation-tagged
// so a stale response can never overwrite a newer one, regardless of
// the order in which the network resolves them.
type Controller struct {
	source  Source
	guard   async.LatestGuard
	onApply func(Snapshot)

	mu      sync.Mutex
	filters models.FilterState
	page    int
}

// NewController creates a controller over a catalogue source,
// publishing applied snapshots to onApply.
func NewController(source Source, onApply func(Snapshot)) *Controller {
	if onApply == nil {
		onApply = func(Snapshot) {}
	}
	return &Controller{
		source:  source,
		onApply: onApply,
		page:    1,
	}
}

// Filters returns the active filter state.
func (c *Controller) Filters() models.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetFilters replaces the filter state, resets pagination and
// re-fetches.
func (c *Controller) SetFilters(ctx context.Context, filters models.FilterState) {
	c.mu.Lock()
	c.filters = filters
	c.page = 1
	c.mu.Unlock()
	c.fetchAsync(ctx)
}

// SetPage moves to a page under the current filters and re-fetches.
func (c *Controller) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	c.fetchAsync(ctx)
}

// Seed replaces the filter state and page without triggering a fetch.
// One-shot callers seed the controller and then call Fetch once.
func (c *Controller) Seed(filters models.FilterState, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.filters = filters
	c.page = page
	c.mu.Unlock()
}

// Refetch re-runs the current filters and page.
func (c *Controller) Refetch(ctx context.Context) {
	c.fetchAsync(ctx)
}

// Fetch runs the current query synchronously, bypassing the
// generation pipeline. One-shot callers use this.
func (c *Controller) Fetch(ctx context.Context) (models.MediaPage, error) {
	c.mu.Lock()
	filters, page := c.filters, c.page
	c.mu.Unlock()
	return c.source.DiscoverItems(ctx, filters, page)
}

func (c *Controller) fetchAsync(ctx context.Context) {
	c.mu.Lock()
	filters, page := c.filters, c.page
	c.mu.Unlock()

	gen := c.guard.Next()
	go func() {
		result, err := c.source.DiscoverItems(ctx, filters, page)
		if !c.guard.Latest(gen) {
			// A newer filter change superseded this fetch.
			return
		}
		c.onApply(Snapshot{Filters: filters, Page: result, Err: err})
	}()
}
