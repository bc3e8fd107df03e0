package discover

import (
	"context"
	"sync"
	"testing"
	"time"

	"cinescope/models"
)

// blockingSource serves DiscoverItems calls in whatever order the test
// releases them, so response ordering can be forced.
type blockingSource struct {
	mu      sync.Mutex
	calls   []chan struct{}
	started chan int
}

func newBlockingSource() *blockingSource {
	return &blockingSource{started: make(chan int, 16)}
}

func (s *blockingSource) DiscoverItems(ctx context.Context, filters models.FilterState, page int) (models.MediaPage, error) {
	s.mu.Lock()
	release := make(chan struct{})
	s.calls = append(s.calls, release)
	idx := len(s.calls) - 1
	s.mu.Unlock()

	s.started <- idx
	select {
	case <-release:
	case <-ctx.Done():
		return models.MediaPage{}, ctx.Err()
	}

	return models.MediaPage{
		Page:  page,
		Items: []models.MediaItem{{ID: int64(idx + 1), Year: filters.Year}},
	}, nil
}

func (s *blockingSource) release(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(s.calls[idx])
}

type snapshotRecorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *snapshotRecorder) apply(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *snapshotRecorder) all() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Snapshot(nil), r.snaps...)
}

func (r *snapshotRecorder) waitLen(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(r.all()) >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d snapshots, have %d", n, len(r.all()))
}

func TestStaleResponseNeverOverwritesNewer(t *testing.T) {
	source := newBlockingSource()
	rec := &snapshotRecorder{}
	ctrl := NewController(source, rec.apply)

	ctx := context.Background()
	ctrl.SetFilters(ctx, models.FilterState{Year: 1999})
	first := <-source.started
	ctrl.SetFilters(ctx, models.FilterState{Year: 2024})
	second := <-source.started

	// The newer fetch resolves first, then the stale one.
	source.release(second)
	rec.waitLen(t, 1)
	source.release(first)

	time.Sleep(50 * time.Millisecond)
	snaps := rec.all()
	if len(snaps) != 1 {
		t.Fatalf("stale response must be discarded, got %d snapshots", len(snaps))
	}
	if snaps[0].Filters.Year != 2024 {
		t.Fatalf("expected newest filters applied, got year %d", snaps[0].Filters.Year)
	}
}

func TestInOrderResponsesBothApply(t *testing.T) {
	source := newBlockingSource()
	rec := &snapshotRecorder{}
	ctrl := NewController(source, rec.apply)

	ctx := context.Background()
	ctrl.SetFilters(ctx, models.FilterState{Genre: 18})
	first := <-source.started
	source.release(first)
	rec.waitLen(t, 1)

	ctrl.SetPage(ctx, 3)
	second := <-source.started
	source.release(second)
	rec.waitLen(t, 2)

	snaps := rec.all()
	if snaps[0].Page.Page != 1 || snaps[1].Page.Page != 3 {
		t.Fatalf("expected pages 1 then 3, got %d then %d", snaps[0].Page.Page, snaps[1].Page.Page)
	}
}

func TestSetFiltersResetsPagination(t *testing.T) {
	source := newBlockingSource()
	rec := &snapshotRecorder{}
	ctrl := NewController(source, rec.apply)

	ctx := context.Background()
	ctrl.SetPage(ctx, 5)
	source.release(<-source.started)
	rec.waitLen(t, 1)

	ctrl.SetFilters(ctx, models.FilterState{Genre: 35})
	source.release(<-source.started)
	rec.waitLen(t, 2)

	snaps := rec.all()
	if snaps[1].Page.Page != 1 {
		t.Fatalf("filter change must reset to page 1, got %d", snaps[1].Page.Page)
	}
}

type countingSource struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSource) DiscoverItems(_ context.Context, _ models.FilterState, page int) (models.MediaPage, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return models.MediaPage{Page: page}, nil
}

func (s *countingSource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSeedSetsStateWithoutFetching(t *testing.T) {
	source := &countingSource{}
	ctrl := NewController(source, nil)

	ctrl.Seed(models.FilterState{Genre: 18}, 4)
	time.Sleep(50 * time.Millisecond)
	if got := source.count(); got != 0 {
		t.Fatalf("seeding must not hit the source, got %d fetches", got)
	}
	if ctrl.Filters().Genre != 18 {
		t.Fatalf("seeded filters not applied: %+v", ctrl.Filters())
	}

	page, err := ctrl.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if page.Page != 4 {
		t.Fatalf("expected seeded page 4, got %d", page.Page)
	}
	if got := source.count(); got != 1 {
		t.Fatalf("expected exactly one fetch for seed-then-Fetch, got %d", got)
	}
}

func TestSeedClampsPage(t *testing.T) {
	source := &countingSource{}
	ctrl := NewController(source, nil)

	ctrl.Seed(models.FilterState{}, 0)
	page, err := ctrl.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("page below 1 must clamp, got %d", page.Page)
	}
}

type staticSource struct {
	page models.MediaPage
}

func (s staticSource) DiscoverItems(context.Context, models.FilterState, int) (models.MediaPage, error) {
	return s.page, nil
}

func TestFetchIsSynchronous(t *testing.T) {
	ctrl := NewController(staticSource{page: models.MediaPage{Page: 1, TotalResults: 2}}, nil)

	page, err := ctrl.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if page.TotalResults != 2 {
		t.Fatalf("unexpected page %+v", page)
	}
}
