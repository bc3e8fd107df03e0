package movies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cinescope/internal/rest"
	"cinescope/models"
)

// captureServer records the query string of the last request and
// replies with a fixed page.
func captureServer(t *testing.T, payload any) (*rest.Client, *url.Values) {
	t.Helper()
	var captured url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL, nil, srv.Client()), &captured
}

func TestDiscoverSendsOnlyActiveFilters(t *testing.T) {
	client, captured := captureServer(t, models.MoviePage{Page: 1})

	_, err := NewClient(client).Discover(context.Background(), models.FilterState{
		Genre:        28,
		Year:         2020,
		SortBy:       models.DefaultSort,
		VoteCountGTE: 100,
	}, 1)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	q := *captured
	if q.Get("genre") != "28" || q.Get("year") != "2020" || q.Get("vote_count_gte") != "100" {
		t.Fatalf("active filters missing from query: %v", q)
	}
	if _, present := q["sort_by"]; present {
		t.Fatalf("default sort must not be sent: %v", q)
	}
	// Page 1 is the backend default.
	if _, present := q["page"]; present {
		t.Fatalf("page 1 must not be sent: %v", q)
	}
}

func TestDiscoverSendsPageBeyondFirst(t *testing.T) {
	client, captured := captureServer(t, models.MoviePage{Page: 3})

	_, err := NewClient(client).Discover(context.Background(), models.FilterState{}, 3)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if (*captured).Get("page") != "3" {
		t.Fatalf("expected page=3 in query: %v", *captured)
	}
}

func TestDiscoverItemsNormalizesResults(t *testing.T) {
	client, _ := captureServer(t, models.MoviePage{
		Page: 1,
		Results: []models.Movie{
			{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31", VoteAverage: 8.2},
		},
		TotalPages:   5,
		TotalResults: 100,
	})

	page, err := NewClient(client).DiscoverItems(context.Background(), models.FilterState{}, 1)
	if err != nil {
		t.Fatalf("DiscoverItems failed: %v", err)
	}
	if page.TotalPages != 5 || page.TotalResults != 100 {
		t.Fatalf("pagination lost in normalization: %+v", page)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected one item, got %+v", page.Items)
	}
	item := page.Items[0]
	if item.ID != 603 || item.Title != "The Matrix" || item.Year != 1999 || item.Rating != 8.2 {
		t.Fatalf("unexpected view model %+v", item)
	}
}

func TestSearchSendsTrimmedQuery(t *testing.T) {
	client, captured := captureServer(t, map[string]any{"results": []models.Movie{}})

	_, err := NewClient(client).Search(context.Background(), "  inception  ")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if (*captured).Get("query") != "inception" {
		t.Fatalf("expected trimmed query, got %v", *captured)
	}
}

func TestProvidersUppercasesRegion(t *testing.T) {
	client, captured := captureServer(t, map[string]any{"results": []models.WatchProvider{}})

	_, err := NewClient(client).Providers(context.Background(), "us")
	if err != nil {
		t.Fatalf("Providers failed: %v", err)
	}
	if (*captured).Get("region") != "US" {
		t.Fatalf("expected region=US, got %v", *captured)
	}
}
