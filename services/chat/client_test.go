package chat

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

func TestAskReturnsAnswerWithTitles(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	srv.Movies = []models.Movie{{ID: 603, Title: "The Matrix"}}

	client := NewClient(rest.NewClient(srv.BaseURL(), fixedToken{}, srv.Client()))
	answer, err := client.Ask(context.Background(), "something mind-bending")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer.Response == "" {
		t.Fatalf("expected a textual response")
	}
	if len(answer.Movies) != 1 || answer.Movies[0].Title != "The Matrix" {
		t.Fatalf("expected recommended titles, got %+v", answer.Movies)
	}
}

func TestAskRequiresQuery(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	client := NewClient(rest.NewClient(srv.BaseURL(), fixedToken{}, srv.Client()))
	if _, err := client.Ask(context.Background(), "   "); !errors.Is(err, ErrQueryRequired) {
		t.Fatalf("expected ErrQueryRequired, got %v", err)
	}
	if got := srv.RequestCount("/api/v1/chat/ask"); got != 0 {
		t.Fatalf("blank query must not reach the backend, got %d requests", got)
	}
}
