package models

import (
	"strconv"
	"time"
)

const (
	imageBaseURL = "https://image.tmdb.org/t/p"
	// Posters render at card size, w500 is plenty.
	posterSize = "w500"
)

// MediaType distinguishes the two upstream catalogues.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Valid reports whether the media type is one the backend understands.
func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// MediaItem is the normalized view model consumed by every listing
// surface. It is derived from the provider shapes below and rebuilt on
// every fetch; nothing durable hangs off it.
type MediaItem struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
	Poster string  `json:"poster"`
	Year   int     `json:"year"`
}

// Movie is the upstream TMDB movie shape proxied by the backend.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	OriginalLanguage string  `json:"original_language"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	GenreIDs         []int64 `json:"genre_ids,omitempty"`
}

// TVShow is the upstream TMDB TV shape. It carries name/first_air_date
// where movies carry title/release_date.
type TVShow struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	OriginalLanguage string  `json:"original_language"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	FirstAirDate     string  `json:"first_air_date"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	GenreIDs         []int64 `json:"genre_ids,omitempty"`
}

// MediaItemFromMovie normalizes a movie into the shared view model.
func MediaItemFromMovie(m Movie) MediaItem {
	return MediaItem{
		ID:     m.ID,
		Title:  m.Title,
		Rating: m.VoteAverage,
		Poster: BuildPosterURL(m.PosterPath),
		Year:   ParseYear(m.ReleaseDate),
	}
}

// MediaItemFromTV normalizes a TV show into the shared view model.
func MediaItemFromTV(t TVShow) MediaItem {
	return MediaItem{
		ID:     t.ID,
		Title:  t.Name,
		Rating: t.VoteAverage,
		Poster: BuildPosterURL(t.PosterPath),
		Year:   ParseYear(t.FirstAirDate),
	}
}

// BuildPosterURL turns a TMDB poster path into a full image URL,
// or "" when the item has no poster.
func BuildPosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	if posterPath[0] != '/' {
		posterPath = "/" + posterPath
	}
	return imageBaseURL + "/" + posterSize + posterPath
}

// ParseYear extracts the release year from a TMDB date string.
// Returns 0 when the date is missing or unparseable.
func ParseYear(date string) int {
	if date == "" {
		return 0
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Year()
	}
	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil {
			return y
		}
	}
	return 0
}

// Genre is a single catalogue genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Video is a trailer or clip attached to a title.
type Video struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// CastMember is a single credited cast entry.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is a single credited crew entry.
type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits groups cast and crew for a title.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// WatchProvider is a streaming service offering a title in a region.
type WatchProvider struct {
	ProviderID   int64  `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

// MovieDetails is the expanded movie record from /movies/{id}.
type MovieDetails struct {
	Movie
	Runtime  int     `json:"runtime"`
	Status   string  `json:"status"`
	Tagline  string  `json:"tagline"`
	Genres   []Genre `json:"genres"`
	IMDBID   string  `json:"imdb_id"`
	Homepage string  `json:"homepage"`
}

// Season is a single TV season summary.
type Season struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
	PosterPath   string `json:"poster_path"`
}

// TVDetails is the expanded TV record from /tv/{id}.
type TVDetails struct {
	TVShow
	NumberOfSeasons  int      `json:"number_of_seasons"`
	NumberOfEpisodes int      `json:"number_of_episodes"`
	EpisodeRunTime   []int    `json:"episode_run_time"`
	Status           string   `json:"status"`
	Tagline          string   `json:"tagline"`
	Genres           []Genre  `json:"genres"`
	Seasons          []Season `json:"seasons"`
	Homepage         string   `json:"homepage"`
}

// MoviePage is one page of movie results.
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// TVPage is one page of TV results.
type TVPage struct {
	Page         int      `json:"page"`
	Results      []TVShow `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// MediaPage is a normalized page of view models, media-type agnostic.
type MediaPage struct {
	Page         int
	Items        []MediaItem
	TotalPages   int
	TotalResults int
}
