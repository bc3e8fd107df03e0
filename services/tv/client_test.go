package tv

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinescope/internal/rest"
	"cinescope/models"
)

func fixtureServer(t *testing.T, payload any) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL, nil, srv.Client())
}

func TestSearchDecodesShowShape(t *testing.T) {
	client := NewClient(fixtureServer(t, map[string]any{
		"results": []models.TVShow{
			{ID: 1396, Name: "Breaking Bad", FirstAirDate: "2008-01-20", VoteAverage: 8.9},
		},
	}))

	shows, err := client.Search(context.Background(), "breaking")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(shows) != 1 || shows[0].Name != "Breaking Bad" {
		t.Fatalf("unexpected shows %+v", shows)
	}
}

func TestDiscoverItemsMapsNameAndAirDate(t *testing.T) {
	client := NewClient(fixtureServer(t, models.TVPage{
		Page: 1,
		Results: []models.TVShow{
			{ID: 1396, Name: "Breaking Bad", FirstAirDate: "2008-01-20", VoteAverage: 8.9},
		},
		TotalPages:   2,
		TotalResults: 25,
	}))

	page, err := client.DiscoverItems(context.Background(), models.FilterState{}, 1)
	if err != nil {
		t.Fatalf("DiscoverItems failed: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected one item, got %+v", page.Items)
	}
	item := page.Items[0]
	if item.Title != "Breaking Bad" || item.Year != 2008 || item.Rating != 8.9 {
		t.Fatalf("tv fields not mapped into view model: %+v", item)
	}
	if page.TotalResults != 25 {
		t.Fatalf("pagination lost: %+v", page)
	}
}

func TestDetailsCarriesSeasons(t *testing.T) {
	client := NewClient(fixtureServer(t, models.TVDetails{
		TVShow:          models.TVShow{ID: 1396, Name: "Breaking Bad"},
		NumberOfSeasons: 5,
		Seasons: []models.Season{
			{ID: 3572, Name: "Season 1", SeasonNumber: 1, EpisodeCount: 7},
		},
	}))

	details, err := client.Details(context.Background(), 1396)
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if details.NumberOfSeasons != 5 || len(details.Seasons) != 1 {
		t.Fatalf("season data lost: %+v", details)
	}
}
