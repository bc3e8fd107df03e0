package chat

import (
	"context"
	"errors"
	"strings"

	"cinescope/internal/rest"
	"cinescope/models"
)

var ErrQueryRequired = errors.New("query is required")

// Client wraps the /chat assistant endpoint.
type Client struct {
	rest *rest.Client
}

// NewClient creates a chat client on the shared REST core.
func NewClient(restClient *rest.Client) *Client {
	return &Client{rest: restClient}
}

// Ask sends a free-form query to the assistant and returns its answer
// plus any recommended titles.
func (c *Client) Ask(ctx context.Context, query string) (models.ChatAnswer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.ChatAnswer{}, ErrQueryRequired
	}

	var answer models.ChatAnswer
	err := c.rest.PostAuthed(ctx, "/chat/ask", map[string]string{"query": query}, &answer)
	if err != nil {
		return models.ChatAnswer{}, err
	}
	return answer, nil
}
