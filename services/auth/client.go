package auth

import (
	"context"
	"errors"
	"fmt"

	"cinescope/internal/rest"
	"cinescope/models"
	"cinescope/services/session"
)

var ErrSessionRequired = errors.New("token store and session are required")

// Client wraps the /auth endpoints. Login persists the returned token
// pair into the store and populates the session; Logout clears both.
type Client struct {
	rest    *rest.Client
	store   *session.Store
	session *session.Session
}

// NewClient creates an auth client bound to a token store and session.
func NewClient(restClient *rest.Client, store *session.Store, sess *session.Session) (*Client, error) {
	if store == nil || sess == nil {
		return nil, ErrSessionRequired
	}
	return &Client{rest: restClient, store: store, session: sess}, nil
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. The account starts unverified;
// login before verification fails with KindEmailUnverified.
func (c *Client) Register(ctx context.Context, username, email, password string) (models.User, error) {
	var user models.User
	err := c.rest.Post(ctx, "/auth/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login exchanges credentials for a token pair, persists the pair and
// populates the session from /auth/me.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	var tokens models.TokenPair
	if err := c.rest.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &tokens); err != nil {
		return models.User{}, err
	}
	if err := c.store.SetTokens(tokens.AccessToken, tokens.RefreshToken); err != nil {
		return models.User{}, fmt.Errorf("persist tokens: %w", err)
	}

	user, err := c.Me(ctx)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout clears the persisted tokens and the session. Purely
// client-side; the backend holds no session state to tear down.
func (c *Client) Logout() error {
	c.session.Invalidate()
	if err := c.store.ClearTokens(); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

// Me fetches the authenticated user and refreshes the session cache.
// An unauthenticated failure invalidates the session so stale identity
// never survives an expired token.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.rest.GetAuthed(ctx, "/auth/me", nil, &user); err != nil {
		if rest.IsKind(err, rest.KindUnauthenticated) {
			c.session.Invalidate()
		}
		return models.User{}, err
	}
	c.session.Set(user)
	return user, nil
}

// CurrentUser returns the session-cached user, falling back to one Me
// fetch when the cache is cold.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	if user, ok := c.session.Current(); ok {
		return user, nil
	}
	return c.Me(ctx)
}

// ForgotPassword requests a password reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.rest.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

// ResetPassword completes a reset using the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.rest.Post(ctx, "/auth/reset-password", map[string]string{
		"token":    token,
		"password": password,
	}, nil)
}

// ResendVerification asks the backend to resend the verification email
// for the authenticated account.
func (c *Client) ResendVerification(ctx context.Context) error {
	return c.rest.PostAuthed(ctx, "/auth/resend-verification", nil, nil)
}
