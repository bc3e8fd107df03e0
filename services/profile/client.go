package profile

import (
	"context"

	"cinescope/internal/rest"
	"cinescope/models"
	"cinescope/services/session"
)

// Client wraps the /profile endpoint.
type Client struct {
	rest    *rest.Client
	session *session.Session
}

// NewClient creates a profile client. The session may be nil; when
// present it is refreshed with the updated user after a change.
func NewClient(restClient *rest.Client, sess *session.Session) *Client {
	return &Client{rest: restClient, session: sess}
}

type patchRequest struct {
	IsPublicProfile bool `json:"is_public_profile"`
}

// SetPublicProfile toggles profile visibility and returns the updated
// user record.
func (c *Client) SetPublicProfile(ctx context.Context, public bool) (models.User, error) {
	var user models.User
	if err := c.rest.PatchAuthed(ctx, "/profile", patchRequest{IsPublicProfile: public}, &user); err != nil {
		return models.User{}, err
	}
	if c.session != nil {
		c.session.Set(user)
	}
	return user, nil
}
