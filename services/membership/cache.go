package membership

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"cinescope/models"
	"cinescope/services/ratings"
	"cinescope/services/watchlist"
)

// IDSet answers "is this TMDB id already in my list" per media type.
// The movie and tv partitions are disjoint by construction.
type IDSet struct {
	Movie map[int64]struct{}
	TV    map[int64]struct{}
}

// Has reports membership for an id under the given media type.
func (s *IDSet) Has(mediaType models.MediaType, id int64) bool {
	if s == nil {
		return false
	}
	switch mediaType {
	case models.MediaTypeMovie:
		_, ok := s.Movie[id]
		return ok
	case models.MediaTypeTV:
		_, ok := s.TV[id]
		return ok
	default:
		return false
	}
}

// Len returns the total number of ids across both partitions.
func (s *IDSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Movie) + len(s.TV)
}

type inflight struct {
	wg     sync.WaitGroup
	result *IDSet
	err    error
}

// Cache is the session-scoped membership lookup for watchlist and
// ratings. Each side is built from one bulk list fetch partitioned by
// media type, then served from memory; the only invalidation is an
// explicit Invalidate followed by a re-fetch. Concurrent warm calls
// for the same side share a single fetch.
type Cache struct {
	watchlist *watchlist.Client
	ratings   *ratings.Client

	mu         sync.Mutex
	watchlistS *IDSet
	ratingsS   *IDSet
	inflightWL *inflight
	inflightRT *inflight
}

// NewCache creates a cold membership cache over both list clients.
func NewCache(wl *watchlist.Client, rt *ratings.Client) *Cache {
	return &Cache{watchlist: wl, ratings: rt}
}

// WatchlistIDs returns the cached watchlist membership sets, fetching
// the full list once when cold.
func (c *Cache) WatchlistIDs(ctx context.Context) (*IDSet, error) {
	return c.get(ctx, &c.watchlistS, &c.inflightWL, c.fetchWatchlist)
}

// RatingIDs returns the cached rating membership sets, fetching the
// full list once when cold.
func (c *Cache) RatingIDs(ctx context.Context) (*IDSet, error) {
	return c.get(ctx, &c.ratingsS, &c.inflightRT, c.fetchRatings)
}

// Warm builds both sides concurrently. Detail pages call this once on
// entry so both button states resolve with a single wait.
func (c *Cache) Warm(ctx context.Context) error {
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		_, err := c.WatchlistIDs(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		_, err := c.RatingIDs(ctx)
		return err
	})
	return p.Wait()
}

// Invalidate drops both cached sides. A mutation made elsewhere does
// not retroactively update an already-built cache; callers invalidate
// and re-fetch when they need current membership.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchlistS = nil
	c.ratingsS = nil
}

func (c *Cache) get(ctx context.Context, slot **IDSet, pending **inflight, fetch func(context.Context) (*IDSet, error)) (*IDSet, error) {
	c.mu.Lock()
	if set := *slot; set != nil {
		c.mu.Unlock()
		return set, nil
	}
	if in := *pending; in != nil {
		c.mu.Unlock()
		in.wg.Wait()
		return in.result, in.err
	}

	in := &inflight{}
	in.wg.Add(1)
	*pending = in
	c.mu.Unlock()

	set, err := fetch(ctx)

	c.mu.Lock()
	if err == nil {
		*slot = set
	}
	*pending = nil
	c.mu.Unlock()

	in.result = set
	in.err = err
	in.wg.Done()
	return set, err
}

func (c *Cache) fetchWatchlist(ctx context.Context) (*IDSet, error) {
	entries, err := c.watchlist.List(ctx)
	if err != nil {
		return nil, err
	}
	set := newIDSet()
	for _, entry := range entries {
		set.add(entry.MediaType, entry.TMDBID)
	}
	return set, nil
}

func (c *Cache) fetchRatings(ctx context.Context) (*IDSet, error) {
	list, err := c.ratings.List(ctx)
	if err != nil {
		return nil, err
	}
	set := newIDSet()
	for _, rating := range list {
		set.add(rating.MediaType, rating.TMDBID)
	}
	return set, nil
}

func newIDSet() *IDSet {
	return &IDSet{
		Movie: make(map[int64]struct{}),
		TV:    make(map[int64]struct{}),
	}
}

func (s *IDSet) add(mediaType models.MediaType, id int64) {
	switch mediaType {
	case models.MediaTypeMovie:
		s.Movie[id] = struct{}{}
	case models.MediaTypeTV:
		s.TV[id] = struct{}{}
	}
}
