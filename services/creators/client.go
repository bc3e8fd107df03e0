package creators

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cinescope/internal/rest"
	"cinescope/models"
)

var ErrIDRequired = errors.New("request id is required")

// Client wraps the /creator-requests endpoints. Submitting and reading
// require a bearer token; approve and reject are additionally
// admin-gated server-side.
type Client struct {
	rest *rest.Client
}

// NewClient creates a creator-requests client on the shared REST core.
func NewClient(restClient *rest.Client) *Client {
	return &Client{rest: restClient}
}

// List returns creator requests, optionally filtered by status.
// The unfiltered and filtered lists are both admin views.
func (c *Client) List(ctx context.Context, status models.CreatorRequestStatus) ([]models.CreatorRequest, error) {
	var q url.Values
	if status != "" {
		q = url.Values{}
		q.Set("status", string(status))
	}
	var requests []models.CreatorRequest
	if err := c.rest.GetAuthed(ctx, "/creator-requests", q, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Mine returns the caller's own creator request, if any.
func (c *Client) Mine(ctx context.Context) (models.CreatorRequest, error) {
	var request models.CreatorRequest
	if err := c.rest.GetAuthed(ctx, "/creator-requests/mine", nil, &request); err != nil {
		return models.CreatorRequest{}, err
	}
	return request, nil
}

// Submit files a creator application with an optional message.
// A second submission while one is pending surfaces as
// KindAlreadyExists.
func (c *Client) Submit(ctx context.Context, message string) (models.CreatorRequest, error) {
	var request models.CreatorRequest
	err := c.rest.PostAuthed(ctx, "/creator-requests", map[string]string{"message": message}, &request)
	if err != nil {
		return models.CreatorRequest{}, err
	}
	return request, nil
}

// Approve transitions a pending request to approved. Admin only.
func (c *Client) Approve(ctx context.Context, id int64) (models.CreatorRequest, error) {
	return c.transition(ctx, id, "approve")
}

// Reject transitions a pending request to rejected. Admin only.
func (c *Client) Reject(ctx context.Context, id int64) (models.CreatorRequest, error) {
	return c.transition(ctx, id, "reject")
}

func (c *Client) transition(ctx context.Context, id int64, action string) (models.CreatorRequest, error) {
	if id <= 0 {
		return models.CreatorRequest{}, ErrIDRequired
	}
	var request models.CreatorRequest
	err := c.rest.PostAuthed(ctx, fmt.Sprintf("/creator-requests/%d/%s", id, action), nil, &request)
	if err != nil {
		return models.CreatorRequest{}, err
	}
	return request, nil
}
