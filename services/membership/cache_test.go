package membership

import (
	"context"
	"sync"
	"testing"

	"cinescope/internal/apitest"
	"cinescope/internal/rest"
	"cinescope/models"
	"cinescope/services/ratings"
	"cinescope/services/watchlist"
)

type fixedToken struct{}

func (fixedToken) AccessToken() (string, bool) {
	return apitest.AccessToken, true
}

func newTestCache(t *testing.T) (*Cache, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)

	restClient := rest.NewClient(srv.BaseURL(), fixedToken{}, srv.Client())
	cache := NewCache(watchlist.NewClient(restClient), ratings.NewClient(restClient))
	return cache, srv
}

func TestWatchlistIDsPartitionByMediaType(t *testing.T) {
	cache, srv := newTestCache(t)
	srv.SeedWatchlist(603, models.MediaTypeMovie)
	srv.SeedWatchlist(1396, models.MediaTypeTV)
	srv.SeedWatchlist(550, models.MediaTypeMovie)

	set, err := cache.WatchlistIDs(context.Background())
	if err != nil {
		t.Fatalf("WatchlistIDs failed: %v", err)
	}

	if !set.Has(models.MediaTypeMovie, 603) || !set.Has(models.MediaTypeMovie, 550) {
		t.Fatalf("movie ids missing from movie partition: %+v", set)
	}
	if !set.Has(models.MediaTypeTV, 1396) {
		t.Fatalf("tv id missing from tv partition: %+v", set)
	}

	// Same numeric id under the other media type is not a member.
	if set.Has(models.MediaTypeTV, 603) {
		t.Fatalf("movie id leaked into tv partition")
	}
	if set.Has(models.MediaTypeMovie, 1396) {
		t.Fatalf("tv id leaked into movie partition")
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 ids total, got %d", set.Len())
	}
}

func TestMembershipServedFromCacheAfterFirstFetch(t *testing.T) {
	cache, srv := newTestCache(t)
	srv.SeedRating(603, models.MediaTypeMovie, models.RatingPerfection)

	ctx := context.Background()
	for i := 0; i < 4; i++ {
		set, err := cache.RatingIDs(ctx)
		if err != nil {
			t.Fatalf("RatingIDs failed: %v", err)
		}
		if !set.Has(models.MediaTypeMovie, 603) {
			t.Fatalf("seeded rating missing on read %d", i)
		}
	}

	if got := srv.RequestCount("/api/v1/ratings"); got != 1 {
		t.Fatalf("expected a single bulk fetch, got %d", got)
	}
}

func TestConcurrentColdReadsShareOneFetch(t *testing.T) {
	cache, srv := newTestCache(t)
	srv.SeedWatchlist(550, models.MediaTypeMovie)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = cache.WatchlistIDs(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("reader %d failed: %v", i, err)
		}
	}
	if got := srv.RequestCount("/api/v1/watchlist"); got != 1 {
		t.Fatalf("expected concurrent cold reads to share one fetch, got %d", got)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	cache, srv := newTestCache(t)

	ctx := context.Background()
	set, err := cache.WatchlistIDs(ctx)
	if err != nil {
		t.Fatalf("WatchlistIDs failed: %v", err)
	}
	if set.Has(models.MediaTypeMovie, 603) {
		t.Fatalf("cold cache should be empty")
	}

	// A mutation elsewhere does not update the built cache.
	srv.SeedWatchlist(603, models.MediaTypeMovie)
	set, err = cache.WatchlistIDs(ctx)
	if err != nil {
		t.Fatalf("WatchlistIDs failed: %v", err)
	}
	if set.Has(models.MediaTypeMovie, 603) {
		t.Fatalf("built cache must not see later mutations")
	}

	cache.Invalidate()
	set, err = cache.WatchlistIDs(ctx)
	if err != nil {
		t.Fatalf("WatchlistIDs failed: %v", err)
	}
	if !set.Has(models.MediaTypeMovie, 603) {
		t.Fatalf("invalidate should force a fresh fetch")
	}
	if got := srv.RequestCount("/api/v1/watchlist"); got != 2 {
		t.Fatalf("expected exactly 2 fetches around invalidate, got %d", got)
	}
}

func TestWarmBuildsBothSides(t *testing.T) {
	cache, srv := newTestCache(t)
	srv.SeedWatchlist(603, models.MediaTypeMovie)
	srv.SeedRating(1396, models.MediaTypeTV, models.RatingGoForIt)

	if err := cache.Warm(context.Background()); err != nil {
		t.Fatalf("Warm failed: %v", err)
	}

	wl, err := cache.WatchlistIDs(context.Background())
	if err != nil {
		t.Fatalf("WatchlistIDs failed: %v", err)
	}
	rt, err := cache.RatingIDs(context.Background())
	if err != nil {
		t.Fatalf("RatingIDs failed: %v", err)
	}
	if !wl.Has(models.MediaTypeMovie, 603) || !rt.Has(models.MediaTypeTV, 1396) {
		t.Fatalf("warm should populate both sides")
	}
	if srv.RequestCount("/api/v1/watchlist") != 1 || srv.RequestCount("/api/v1/ratings") != 1 {
		t.Fatalf("warm followed by reads must not refetch")
	}
}

func TestNilIDSetIsEmpty(t *testing.T) {
	var set *IDSet
	if set.Has(models.MediaTypeMovie, 1) {
		t.Fatalf("nil set has no members")
	}
	if set.Len() != 0 {
		t.Fatalf("nil set has length 0")
	}
}
