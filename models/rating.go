package models

import "time"

// RatingValue is the four-point verdict scale used across CineScope.
type RatingValue string

const (
	RatingSkip       RatingValue = "skip"
	RatingTimepass   RatingValue = "timepass"
	RatingGoForIt    RatingValue = "go_for_it"
	RatingPerfection RatingValue = "perfection"
)

// Valid reports whether the value is one of the four verdicts.
func (v RatingValue) Valid() bool {
	switch v {
	case RatingSkip, RatingTimepass, RatingGoForIt, RatingPerfection:
		return true
	}
	return false
}

// Rating is a single user verdict on a title. The backend enforces at
// most one per (user, tmdb_id, media_type); the client treats a
// duplicate create as a recoverable condition.
type Rating struct {
	ID        int64       `json:"id"`
	TMDBID    int64       `json:"tmdb_id"`
	MediaType MediaType   `json:"media_type"`
	Rating    RatingValue `json:"rating"`
	RatedAt   time.Time   `json:"rated_at"`
}
