package watchlist

import (
	"context"
	"errors"
	"fmt"

	"cinescope/internal/rest"
	"cinescope/models"
)

var (
	ErrIDRequired        = errors.New("tmdb id is required")
	ErrMediaTypeRequired = errors.New("media type must be movie or tv")
)

// Client wraps the /watchlist endpoints. All operations are bearer
// protected.
type Client struct {
	rest *rest.Client
}

// NewClient creates a watchlist client on the shared REST core.
func NewClient(restClient *rest.Client) *Client {
	return &Client{rest: restClient}
}

type addRequest struct {
	TMDBID    int64            `json:"tmdb_id"`
	MediaType models.MediaType `json:"media_type"`
}

// List returns every entry in the user's watchlist.
func (c *Client) List(ctx context.Context) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := c.rest.GetAuthed(ctx, "/watchlist", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Add saves a title to the watchlist. A duplicate add surfaces as
// KindAlreadyExists; callers should consult the membership cache first
// to avoid issuing it at all.
func (c *Client) Add(ctx context.Context, tmdbID int64, mediaType models.MediaType) (models.WatchlistEntry, error) {
	if tmdbID <= 0 {
		return models.WatchlistEntry{}, ErrIDRequired
	}
	if !mediaType.Valid() {
		return models.WatchlistEntry{}, ErrMediaTypeRequired
	}

	var entry models.WatchlistEntry
	err := c.rest.PostAuthed(ctx, "/watchlist", addRequest{TMDBID: tmdbID, MediaType: mediaType}, &entry)
	if err != nil {
		return models.WatchlistEntry{}, err
	}
	return entry, nil
}

// Remove deletes a watchlist entry by its backend id (not the TMDB id).
func (c *Client) Remove(ctx context.Context, entryID int64) error {
	if entryID <= 0 {
		return ErrIDRequired
	}
	return c.rest.DeleteAuthed(ctx, fmt.Sprintf("/watchlist/%d", entryID))
}
