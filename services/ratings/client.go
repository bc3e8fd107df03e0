package ratings

import (
	"context"
	"errors"
	"fmt"

	"cinescope/internal/rest"
	"cinescope/models"
)

var (
	ErrIDRequired         = errors.New("tmdb id is required")
	ErrMediaTypeRequired  = errors.New("media type must be movie or tv")
	ErrInvalidRatingValue = errors.New("rating must be one of skip, timepass, go_for_it, perfection")
)

// Client wraps the /ratings endpoints. All operations are bearer
// protected.
type Client struct {
	rest *rest.Client
}

// NewClient creates a ratings client on the shared REST core.
func NewClient(restClient *rest.Client) *Client {
	return &Client{rest: restClient}
}

type createRequest struct {
	TMDBID    int64              `json:"tmdb_id"`
	MediaType models.MediaType   `json:"media_type"`
	Rating    models.RatingValue `json:"rating"`
}

type updateRequest struct {
	Rating models.RatingValue `json:"rating"`
}

// List returns every rating the user has recorded.
func (c *Client) List(ctx context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := c.rest.GetAuthed(ctx, "/ratings", nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// Create records a verdict for a title. The backend enforces one
// rating per (user, tmdb_id, media_type); a duplicate surfaces as
// KindAlreadyExists and must be resolved through Update instead.
func (c *Client) Create(ctx context.Context, tmdbID int64, mediaType models.MediaType, value models.RatingValue) (models.Rating, error) {
	if tmdbID <= 0 {
		return models.Rating{}, ErrIDRequired
	}
	if !mediaType.Valid() {
		return models.Rating{}, ErrMediaTypeRequired
	}
	if !value.Valid() {
		return models.Rating{}, ErrInvalidRatingValue
	}

	var rating models.Rating
	err := c.rest.PostAuthed(ctx, "/ratings", createRequest{
		TMDBID:    tmdbID,
		MediaType: mediaType,
		Rating:    value,
	}, &rating)
	if err != nil {
		return models.Rating{}, err
	}
	return rating, nil
}

// Update changes the verdict on an existing rating.
func (c *Client) Update(ctx context.Context, ratingID int64, value models.RatingValue) (models.Rating, error) {
	if ratingID <= 0 {
		return models.Rating{}, ErrIDRequired
	}
	if !value.Valid() {
		return models.Rating{}, ErrInvalidRatingValue
	}

	var rating models.Rating
	err := c.rest.PutAuthed(ctx, fmt.Sprintf("/ratings/%d", ratingID), updateRequest{Rating: value}, &rating)
	if err != nil {
		return models.Rating{}, err
	}
	return rating, nil
}

// Delete removes a rating by its backend id.
func (c *Client) Delete(ctx context.Context, ratingID int64) error {
	if ratingID <= 0 {
		return ErrIDRequired
	}
	return c.rest.DeleteAuthed(ctx, fmt.Sprintf("/ratings/%d", ratingID))
}
