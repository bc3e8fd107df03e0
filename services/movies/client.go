package movies

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cinescope/internal/rest"
	"cinescope/models"
)

// Client wraps the /movies endpoints. All operations are public; the
// backend proxies the upstream metadata provider and owns the API key.
type Client struct {
	rest *rest.Client
}

// NewClient creates a movies client on the shared REST core.
func NewClient(restClient *rest.Client) *Client {
	return &Client{rest: restClient}
}

type movieListResponse struct {
	Results []models.Movie `json:"results"`
}

// Trending returns this week's trending movies.
func (c *Client) Trending(ctx context.Context) ([]models.Movie, error) {
	var payload movieListResponse
	if err := c.rest.Get(ctx, "/movies/trending", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Popular returns the current popular movies.
func (c *Client) Popular(ctx context.Context) ([]models.Movie, error) {
	var payload movieListResponse
	if err := c.rest.Get(ctx, "/movies/popular", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Search runs a text query against the movie catalogue. Ordering is
// whatever the backend returns; the search controller re-ranks.
func (c *Client) Search(ctx context.Context, query string) ([]models.Movie, error) {
	q := url.Values{}
	q.Set("query", strings.TrimSpace(query))
	var payload movieListResponse
	if err := c.rest.Get(ctx, "/movies/search", q, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Details fetches the expanded record for one movie.
func (c *Client) Details(ctx context.Context, id int64) (models.MovieDetails, error) {
	var details models.MovieDetails
	if err := c.rest.Get(ctx, fmt.Sprintf("/movies/%d", id), nil, &details); err != nil {
		return models.MovieDetails{}, err
	}
	return details, nil
}

// Credits fetches cast and crew for one movie.
func (c *Client) Credits(ctx context.Context, id int64) (models.Credits, error) {
	var credits models.Credits
	if err := c.rest.Get(ctx, fmt.Sprintf("/movies/%d/credits", id), nil, &credits); err != nil {
		return models.Credits{}, err
	}
	return credits, nil
}

// Videos fetches trailers and clips for one movie.
func (c *Client) Videos(ctx context.Context, id int64) ([]models.Video, error) {
	var payload struct {
		Results []models.Video `json:"results"`
	}
	if err := c.rest.Get(ctx, fmt.Sprintf("/movies/%d/videos", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// FullDetails is the detail-page aggregate assembled server-side.
type FullDetails struct {
	Details         models.MovieDetails `json:"details"`
	Credits         models.Credits      `json:"credits"`
	Videos          []models.Video      `json:"videos"`
	Recommendations []models.Movie      `json:"recommendations"`
	Similar         []models.Movie      `json:"similar"`
}

// Full fetches the detail-page aggregate in one round trip.
func (c *Client) Full(ctx context.Context, id int64) (FullDetails, error) {
	var full FullDetails
	if err := c.rest.Get(ctx, fmt.Sprintf("/movies/%d/full", id), nil, &full); err != nil {
		return FullDetails{}, err
	}
	return full, nil
}

// Recommendations fetches titles recommended alongside the movie.
func (c *Client) Recommendations(ctx context.Context, id int64) ([]models.Movie, error) {
	var payload movieListResponse
	if err := c.rest.Get(ctx, fmt.Sprintf("/movies/%d/recommendations", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Similar fetches titles similar to the movie.
func (c *Client) Similar(ctx context.Context, id int64) ([]models.Movie, error) {
	var payload movieListResponse
	if err := c.rest.Get(ctx, fmt.Sprintf("/movies/%d/similar", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Discover runs a filtered catalogue query. Only non-default filter
// fields are serialized.
func (c *Client) Discover(ctx context.Context, filters models.FilterState, page int) (models.MoviePage, error) {
	q := filters.Query()
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var result models.MoviePage
	if err := c.rest.Get(ctx, "/movies/discover", q, &result); err != nil {
		return models.MoviePage{}, err
	}
	return result, nil
}

// DiscoverItems is Discover normalized into view models, the shape the
// discover controller consumes for both media types.
func (c *Client) DiscoverItems(ctx context.Context, filters models.FilterState, page int) (models.MediaPage, error) {
	raw, err := c.Discover(ctx, filters, page)
	if err != nil {
		return models.MediaPage{}, err
	}
	items := make([]models.MediaItem, len(raw.Results))
	for i, m := range raw.Results {
		items[i] = models.MediaItemFromMovie(m)
	}
	return models.MediaPage{
		Page:         raw.Page,
		Items:        items,
		TotalPages:   raw.TotalPages,
		TotalResults: raw.TotalResults,
	}, nil
}

// Genres fetches the movie genre catalogue.
func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	var payload struct {
		Genres []models.Genre `json:"genres"`
	}
	if err := c.rest.Get(ctx, "/movies/genres", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Genres, nil
}

// Providers fetches the streaming providers available in a region.
func (c *Client) Providers(ctx context.Context, region string) ([]models.WatchProvider, error) {
	q := url.Values{}
	if region = strings.ToUpper(strings.TrimSpace(region)); region != "" {
		q.Set("region", region)
	}
	var payload struct {
		Results []models.WatchProvider `json:"results"`
	}
	if err := c.rest.Get(ctx, "/movies/providers", q, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}
