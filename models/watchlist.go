package models

import (
	"strconv"
	"time"
)

// WatchlistEntry is a media item saved by the user for later. The
// backend enforces at most one entry per (user, tmdb_id, media_type).
type WatchlistEntry struct {
	ID        int64     `json:"id"`
	TMDBID    int64     `json:"tmdb_id"`
	MediaType MediaType `json:"media_type"`
	AddedAt   time.Time `json:"added_at"`
}

// Key returns a stable identifier combining media type and TMDB id.
func (w WatchlistEntry) Key() string {
	return string(w.MediaType) + ":" + strconv.FormatInt(w.TMDBID, 10)
}
