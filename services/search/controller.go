package search

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"cinescope/models"
	"cinescope/services/movies"
	"cinescope/services/tv"
	"cinescope/utils/async"
)

// DefaultDebounce is the quiet window applied to keystroke input.
const DefaultDebounce = 300 * time.Millisecond

// State is the search box lifecycle:
// Idle -> Typing -> Searching -> Results | Empty | Error.
// Any new input during Searching cancels the in-flight request and
// returns to Typing.
type State int

const (
	StateIdle State = iota
	StateTyping
	StateSearching
	StateResults
	StateEmpty
	StateError
)

// String returns a short label for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTyping:
		return "typing"
	case StateSearching:
		return "searching"
	case StateResults:
		return "results"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is one ranked hit, movie and TV merged into the shared view
// model with the composite score attached.
type Result struct {
	Item      models.MediaItem
	MediaType models.MediaType
	Score     float64
}

// Update is pushed to the consumer on every state transition.
type Update struct {
	Query   string
	State   State
	Results []Result
	Err     error
}

// Controller drives debounced search-as-you-type over both
// catalogues. Each settled query cancels the previous in-flight
// request and only the newest generation's outcome is ever published.
type Controller struct {
	movies   *movies.Client
	tv       *tv.Client
	debounce *async.Debouncer
	guard    async.LatestGuard
	onUpdate func(Update)

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewController creates a search controller publishing transitions to
// onUpdate. window <= 0 selects the default 300ms debounce.
func NewController(moviesClient *movies.Client, tvClient *tv.Client, window time.Duration, onUpdate func(Update)) *Controller {
	if window <= 0 {
		window = DefaultDebounce
	}
	if onUpdate == nil {
		onUpdate = func(Update) {}
	}
	return &Controller{
		movies:   moviesClient,
		tv:       tvClient,
		debounce: async.NewDebouncer(window),
		onUpdate: onUpdate,
	}
}

// Input feeds one keystroke's worth of query text. Bursts inside the
// debounce window coalesce into a single request; clearing the box
// cancels any in-flight request and returns to Idle.
func (c *Controller) Input(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		c.debounce.Stop()
		c.abortInFlight()
		c.guard.Next()
		c.onUpdate(Update{State: StateIdle})
		return
	}

	// Any in-flight request is stale the moment the query changes;
	// abort it and supersede its generation before returning to Typing.
	c.abortInFlight()
	c.guard.Next()
	c.onUpdate(Update{Query: query, State: StateTyping})
	c.debounce.Trigger(func() { c.run(query) })
}

// Close stops the debouncer and aborts any in-flight request.
func (c *Controller) Close() {
	c.debounce.Stop()
	c.abortInFlight()
}

func (c *Controller) run(query string) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	gen := c.guard.Next()
	c.onUpdate(Update{Query: query, State: StateSearching})

	results, err := c.SearchNow(ctx, query)
	if ctx.Err() != nil || !c.guard.Latest(gen) {
		// Superseded by newer input; discard silently.
		return
	}

	switch {
	case err != nil:
		c.onUpdate(Update{Query: query, State: StateError, Err: err})
	case len(results) == 0:
		c.onUpdate(Update{Query: query, State: StateEmpty})
	default:
		c.onUpdate(Update{Query: query, State: StateResults, Results: results})
	}
}

// SearchNow queries both catalogues concurrently, ranks the merged
// hits by composite score and returns them best first. It is also the
// synchronous entry point for one-shot callers.
func (c *Controller) SearchNow(ctx context.Context, query string) ([]Result, error) {
	var (
		movieHits []models.Movie
		tvHits    []models.TVShow
	)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		hits, err := c.movies.Search(ctx, query)
		if err != nil {
			return err
		}
		movieHits = hits
		return nil
	})
	p.Go(func(ctx context.Context) error {
		hits, err := c.tv.Search(ctx, query)
		if err != nil {
			return err
		}
		tvHits = hits
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(movieHits)+len(tvHits))
	for _, m := range movieHits {
		results = append(results, Result{
			Item:      models.MediaItemFromMovie(m),
			MediaType: models.MediaTypeMovie,
			Score:     Score(m.Popularity, m.VoteAverage, m.VoteCount),
		})
	}
	for _, s := range tvHits {
		results = append(results, Result{
			Item:      models.MediaItemFromTV(s),
			MediaType: models.MediaTypeTV,
			Score:     Score(s.Popularity, s.VoteAverage, s.VoteCount),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func (c *Controller) abortInFlight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Score is the composite ranking applied identically to movies and
// TV, independent of backend ordering. vote counts below 1 clamp to 1
// so the log term stays defined.
func Score(popularity, voteAverage float64, voteCount int64) float64 {
	count := float64(voteCount)
	if count < 1 {
		count = 1
	}
	return popularity * (1 + math.Log10(count)) * (voteAverage / 10)
}
