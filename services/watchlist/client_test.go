package watchlist

import (
	"context"
	"errors"
	"testing"

	"cinescope/internal/apitest"
	"cinescope/internal/rest"
	"cinescope/models"
)

type fixedToken struct{}

func (fixedToken) AccessToken() (string, bool) {
	return apitest.AccessToken, true
}

func newTestClient(t *testing.T) (*Client, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	return NewClient(rest.NewClient(srv.BaseURL(), fixedToken{}, srv.Client())), srv
}

func TestAddListRemove(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	entry, err := client.Add(ctx, 603, models.MediaTypeMovie)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if entry.TMDBID != 603 || entry.MediaType != models.MediaTypeMovie {
		t.Fatalf("unexpected entry %+v", entry)
	}

	entries, err := client.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != entry.ID {
		t.Fatalf("expected the added entry, got %+v", entries)
	}

	if err := client.Remove(ctx, entry.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	entries, err = client.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty watchlist, got %+v", entries)
	}
}

func TestAddDuplicateIsAlreadyExists(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SeedWatchlist(603, models.MediaTypeMovie)

	_, err := client.Add(context.Background(), 603, models.MediaTypeMovie)
	if !rest.IsKind(err, rest.KindAlreadyExists) {
		t.Fatalf("expected already-exists kind, got %v", err)
	}
	if err.Error() != "Movie already in watchlist" {
		t.Fatalf("expected server message verbatim, got %q", err.Error())
	}
}

func TestSameIDOtherMediaTypeIsNotADuplicate(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SeedWatchlist(603, models.MediaTypeMovie)

	if _, err := client.Add(context.Background(), 603, models.MediaTypeTV); err != nil {
		t.Fatalf("tv entry with same id must be accepted, got %v", err)
	}
}

func TestAddValidatesLocally(t *testing.T) {
	client, srv := newTestClient(t)

	if _, err := client.Add(context.Background(), 0, models.MediaTypeMovie); !errors.Is(err, ErrIDRequired) {
		t.Fatalf("expected ErrIDRequired, got %v", err)
	}
	if _, err := client.Add(context.Background(), 603, "anime"); !errors.Is(err, ErrMediaTypeRequired) {
		t.Fatalf("expected ErrMediaTypeRequired, got %v", err)
	}
	if got := srv.RequestCount("/api/v1/watchlist"); got != 0 {
		t.Fatalf("invalid input must not reach the backend, got %d requests", got)
	}
}

func TestRemoveMissingEntryIsNotFound(t *testing.T) {
	client, _ := newTestClient(t)

	err := client.Remove(context.Background(), 9999)
	if !rest.IsKind(err, rest.KindNotFound) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
}

func TestWatchlistEntryKey(t *testing.T) {
	entry := models.WatchlistEntry{TMDBID: 603, MediaType: models.MediaTypeMovie}
	if entry.Key() != "movie:603" {
		t.Fatalf("unexpected key %q", entry.Key())
	}
}
