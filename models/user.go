package models

import "time"

// Role describes the access level of a CineScope account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCreator Role = "creator"
	RoleUser    Role = "user"
)

// IsAdmin reports whether the role may perform moderation actions
// such as approving or rejecting creator requests.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsCreator reports whether the role may publish curated picks.
func (r Role) IsCreator() bool {
	return r == RoleCreator || r == RoleAdmin
}

// User models a CineScope account as returned by the auth endpoints.
// The client never persists it; each consumer reads it from the
// session context populated after login.
type User struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	IsEmailVerified bool      `json:"is_email_verified"`
	IsPublicProfile bool      `json:"is_public_profile"`
	CreatedAt       time.Time `json:"created_at"`
}

// TokenPair holds the credentials returned by a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
