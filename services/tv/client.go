package tv

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cinescope/internal/rest"
	"cinescope/models"
)

// Client wraps the /tv endpoints, mirroring the movies surface with
// the TV-specific upstream shape (name, first_air_date, seasons).
type Client struct {
	rest *rest.Client
}

// NewClient creates a TV client on the shared REST core.
func NewClient(restClient *rest.Client) *Client {
	return &Client{rest: restClient}
}

type showListResponse struct {
	Results []models.TVShow `json:"results"`
}

// Trending returns this week's trending shows.
func (c *Client) Trending(ctx context.Context) ([]models.TVShow, error) {
	var payload showListResponse
	if err := c.rest.Get(ctx, "/tv/trending", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Popular returns the current popular shows.
func (c *Client) Popular(ctx context.Context) ([]models.TVShow, error) {
	var payload showListResponse
	if err := c.rest.Get(ctx, "/tv/popular", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Search runs a text query against the TV catalogue.
func (c *Client) Search(ctx context.Context, query string) ([]models.TVShow, error) {
	q := url.Values{}
	q.Set("query", strings.TrimSpace(query))
	var payload showListResponse
	if err := c.rest.Get(ctx, "/tv/search", q, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Details fetches the expanded record for one show.
func (c *Client) Details(ctx context.Context, id int64) (models.TVDetails, error) {
	var details models.TVDetails
	if err := c.rest.Get(ctx, fmt.Sprintf("/tv/%d", id), nil, &details); err != nil {
		return models.TVDetails{}, err
	}
	return details, nil
}

// Credits fetches cast and crew for one show.
func (c *Client) Credits(ctx context.Context, id int64) (models.Credits, error) {
	var credits models.Credits
	if err := c.rest.Get(ctx, fmt.Sprintf("/tv/%d/credits", id), nil, &credits); err != nil {
		return models.Credits{}, err
	}
	return credits, nil
}

// Videos fetches trailers and clips for one show.
func (c *Client) Videos(ctx context.Context, id int64) ([]models.Video, error) {
	var payload struct {
		Results []models.Video `json:"results"`
	}
	if err := c.rest.Get(ctx, fmt.Sprintf("/tv/%d/videos", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// FullDetails is the detail-page aggregate assembled server-side.
type FullDetails struct {
	Details         models.TVDetails `json:"details"`
	Credits         models.Credits   `json:"credits"`
	Videos          []models.Video   `json:"videos"`
	Recommendations []models.TVShow  `json:"recommendations"`
	Similar         []models.TVShow  `json:"similar"`
}

// Full fetches the detail-page aggregate in one round trip.
func (c *Client) Full(ctx context.Context, id int64) (FullDetails, error) {
	var full FullDetails
	if err := c.rest.Get(ctx, fmt.Sprintf("/tv/%d/full", id), nil, &full); err != nil {
		return FullDetails{}, err
	}
	return full, nil
}

// Recommendations fetches shows recommended alongside the show.
func (c *Client) Recommendations(ctx context.Context, id int64) ([]models.TVShow, error) {
	var payload showListResponse
	if err := c.rest.Get(ctx, fmt.Sprintf("/tv/%d/recommendations", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Similar fetches shows similar to the show.
func (c *Client) Similar(ctx context.Context, id int64) ([]models.TVShow, error) {
	var payload showListResponse
	if err := c.rest.Get(ctx, fmt.Sprintf("/tv/%d/similar", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Discover runs a filtered catalogue query.
func (c *Client) Discover(ctx context.Context, filters models.FilterState, page int) (models.TVPage, error) {
	q := filters.Query()
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var result models.TVPage
	if err := c.rest.Get(ctx, "/tv/discover", q, &result); err != nil {
		return models.TVPage{}, err
	}
	return result, nil
}

// DiscoverItems is Discover normalized into view models for the
// discover controller.
func (c *Client) DiscoverItems(ctx context.Context, filters models.FilterState, page int) (models.MediaPage, error) {
	raw, err := c.Discover(ctx, filters, page)
	if err != nil {
		return models.MediaPage{}, err
	}
	items := make([]models.MediaItem, len(raw.Results))
	for i, s := range raw.Results {
		items[i] = models.MediaItemFromTV(s)
	}
	return models.MediaPage{
		Page:         raw.Page,
		Items:        items,
		TotalPages:   raw.TotalPages,
		TotalResults: raw.TotalResults,
	}, nil
}

// Genres fetches the TV genre catalogue.
func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	var payload struct {
		Genres []models.Genre `json:"genres"`
	}
	if err := c.rest.Get(ctx, "/tv/genres", nil, &payload); err != nil {
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
	if err := c.rest.Get(ctx, "/tv/providers", q, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}
