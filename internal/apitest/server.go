// Package apitest provides an in-memory CineScope backend for tests.
// It mirrors the real API's contract closely enough to exercise the
// clients end to end: bearer auth, FastAPI-style {"detail": ...}
// error bodies, and the duplicate rules for watchlist and ratings.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"cinescope/models"
)

// Token pair handed out by the login fixture.
const (
	AccessToken  = "test-access-token"
	RefreshToken = "test-refresh-token"
)

// Credentials accepted by the login fixture.
const (
	UserEmail    = "viewer@example.com"
	UserPassword = "hunter2!"
)

// Server is a fake CineScope backend.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	nextID    int64
	user      models.User
	watchlist []models.WatchlistEntry
	ratings   []models.Rating
	requests  []models.CreatorRequest

	// Movies returned by search/trending/discover fixtures.
	Movies []models.Movie
	Shows  []models.TVShow

	// RequestCount tracks calls per route pattern for assertions.
	requestCount map[string]int
}

// NewServer starts the fake backend. Callers own Close.
func NewServer() *Server {
	s := &Server{
		nextID: 1,
		user: models.User{
			ID:              1,
			Username:        "viewer",
			Email:           UserEmail,
			Role:            models.RoleAdmin,
			IsEmailVerified: true,
			CreatedAt:       time.Now().UTC(),
		},
		requestCount: make(map[string]int),
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(s.countRequests)

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)
	api.HandleFunc("/auth/forgot-password", s.handleNoContent).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", s.handleResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/auth/resend-verification", s.requireAuth(s.handleNoContent)).Methods(http.MethodPost)

	api.HandleFunc("/movies/trending", s.handleMovieList).Methods(http.MethodGet)
	api.HandleFunc("/movies/popular", s.handleMovieList).Methods(http.MethodGet)
	api.HandleFunc("/movies/search", s.handleMovieSearch).Methods(http.MethodGet)
	api.HandleFunc("/movies/discover", s.handleMovieDiscover).Methods(http.MethodGet)
	api.HandleFunc("/tv/trending", s.handleTVList).Methods(http.MethodGet)
	api.HandleFunc("/tv/popular", s.handleTVList).Methods(http.MethodGet)
	api.HandleFunc("/tv/search", s.handleTVSearch).Methods(http.MethodGet)
	api.HandleFunc("/tv/discover", s.handleTVDiscover).Methods(http.MethodGet)

	api.HandleFunc("/watchlist", s.requireAuth(s.handleWatchlistList)).Methods(http.MethodGet)
	api.HandleFunc("/watchlist", s.requireAuth(s.handleWatchlistAdd)).Methods(http.MethodPost)
	api.HandleFunc("/watchlist/{id}", s.requireAuth(s.handleWatchlistRemove)).Methods(http.MethodDelete)

	api.HandleFunc("/ratings", s.requireAuth(s.handleRatingsList)).Methods(http.MethodGet)
	api.HandleFunc("/ratings", s.requireAuth(s.handleRatingsCreate)).Methods(http.MethodPost)
	api.HandleFunc("/ratings/{id}", s.requireAuth(s.handleRatingsUpdate)).Methods(http.MethodPut)
	api.HandleFunc("/ratings/{id}", s.requireAuth(s.handleRatingsDelete)).Methods(http.MethodDelete)

	api.HandleFunc("/creator-requests", s.requireAuth(s.handleCreatorList)).Methods(http.MethodGet)
	api.HandleFunc("/creator-requests", s.requireAuth(s.handleCreatorSubmit)).Methods(http.MethodPost)
	api.HandleFunc("/creator-requests/mine", s.requireAuth(s.handleCreatorMine)).Methods(http.MethodGet)
	api.HandleFunc("/creator-requests/{id}/approve", s.requireAuth(s.handleCreatorApprove)).Methods(http.MethodPost)
	api.HandleFunc("/creator-requests/{id}/reject", s.requireAuth(s.handleCreatorReject)).Methods(http.MethodPost)

	api.HandleFunc("/profile", s.requireAuth(s.handleProfilePatch)).Methods(http.MethodPatch)
	api.HandleFunc("/chat/ask", s.requireAuth(s.handleChatAsk)).Methods(http.MethodPost)

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL returns the API base including the /api/v1 prefix.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v1"
}

// RequestCount returns how many requests hit the given path.
func (s *Server) RequestCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestCount[path]
}

// SeedCreatorRequest inserts a creator request fixture.
func (s *Server) SeedCreatorRequest(req models.CreatorRequest) models.CreatorRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.ID == 0 {
		req.ID = s.nextID
		s.nextID++
	}
	s.requests = append(s.requests, req)
	return req
}

// SeedWatchlist inserts a watchlist fixture.
func (s *Server) SeedWatchlist(tmdbID int64, mediaType models.MediaType) models.WatchlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := models.WatchlistEntry{
		ID:        s.nextID,
		TMDBID:    tmdbID,
		MediaType: mediaType,
		AddedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.watchlist = append(s.watchlist, entry)
	return entry
}

// SeedRating inserts a rating fixture.
func (s *Server) SeedRating(tmdbID int64, mediaType models.MediaType, value models.RatingValue) models.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()
	rating := models.Rating{
		ID:        s.nextID,
		TMDBID:    tmdbID,
		MediaType: mediaType,
		Rating:    value,
		RatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.ratings = append(s.ratings, rating)
	return rating
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requestCount[r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+AccessToken {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials. Please login.")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" || body.Email == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid registration payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if body.Email == s.user.Email {
		writeDetail(w, http.StatusConflict, "Email already registered")
		return
	}
	writeJSON(w, http.StatusOK, models.User{
		ID:        99,
		Username:  body.Username,
		Email:     body.Email,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid login payload")
		return
	}
	if body.Email != UserEmail || body.Password != UserPassword {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	writeJSON(w, http.StatusOK, models.TokenPair{
		AccessToken:  AccessToken,
		RefreshToken: RefreshToken,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+AccessToken {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials. Please login.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.user)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token != "valid-reset-token" {
		writeDetail(w, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleNoContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMovieList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"results": s.Movies})
}

func (s *Server) handleMovieSearch(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("query") == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "query parameter is required")
		return
	}
	s.handleMovieList(w, r)
}

func (s *Server) handleMovieDiscover(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.MoviePage{
		Page: 1, Results: s.Movies, TotalPages: 1, TotalResults: len(s.Movies),
	})
}

func (s *Server) handleTVList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"results": s.Shows})
}

func (s *Server) handleTVSearch(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("query") == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "query parameter is required")
		return
	}
	s.handleTVList(w, r)
}

func (s *Server) handleTVDiscover(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.TVPage{
		Page: 1, Results: s.Shows, TotalPages: 1, TotalResults: len(s.Shows),
	})
}

func (s *Server) handleWatchlistList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.watchlist
	if entries == nil {
		entries = []models.WatchlistEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TMDBID    int64            `json:"tmdb_id"`
		MediaType models.MediaType `json:"media_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.TMDBID <= 0 || !body.MediaType.Valid() {
		writeDetail(w, http.StatusUnprocessableEntity, "tmdb_id and media_type are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.watchlist {
		if entry.TMDBID == body.TMDBID && entry.MediaType == body.MediaType {
			writeDetail(w, http.StatusConflict, "Movie already in watchlist")
			return
		}
	}
	entry := models.WatchlistEntry{
		ID:        s.nextID,
		TMDBID:    body.TMDBID,
		MediaType: body.MediaType,
		AddedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.watchlist = append(s.watchlist, entry)
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleWatchlistRemove(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.watchlist {
		if entry.ID == id {
			s.watchlist = append(s.watchlist[:i], s.watchlist[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Watchlist entry not found")
}

func (s *Server) handleRatingsList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.ratings
	if list == nil {
		list = []models.Rating{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRatingsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TMDBID    int64              `json:"tmdb_id"`
		MediaType models.MediaType   `json:"media_type"`
		Rating    models.RatingValue `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.TMDBID <= 0 || !body.MediaType.Valid() || !body.Rating.Valid() {
		writeDetail(w, http.StatusUnprocessableEntity, "tmdb_id, media_type and rating are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rating := range s.ratings {
		if rating.TMDBID == body.TMDBID && rating.MediaType == body.MediaType {
			writeDetail(w, http.StatusConflict, "You have already rated this title")
			return
		}
	}
	rating := models.Rating{
		ID:        s.nextID,
		TMDBID:    body.TMDBID,
		MediaType: body.MediaType,
		Rating:    body.Rating,
		RatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.ratings = append(s.ratings, rating)
	writeJSON(w, http.StatusCreated, rating)
}

func (s *Server) handleRatingsUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rating models.RatingValue `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Rating.Valid() {
		writeDetail(w, http.StatusUnprocessableEntity, "rating is required")
		return
	}
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ratings {
		if s.ratings[i].ID == id {
			s.ratings[i].Rating = body.Rating
			writeJSON(w, http.StatusOK, s.ratings[i])
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Rating not found")
}

func (s *Server) handleRatingsDelete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rating := range s.ratings {
		if rating.ID == id {
			s.ratings = append(s.ratings[:i], s.ratings[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Rating not found")
}

func (s *Server) handleCreatorList(w http.ResponseWriter, r *http.Request) {
	status := models.CreatorRequestStatus(r.URL.Query().Get("status"))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.CreatorRequest{}
	for _, req := range s.requests {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatorMine(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range s.requests {
		if req.UserID == s.user.ID {
			writeJSON(w, http.StatusOK, req)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Creator request not found")
}

func (s *Server) handleCreatorSubmit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range s.requests {
		if req.UserID == s.user.ID && req.Status == models.CreatorRequestPending {
			writeDetail(w, http.StatusConflict, "You already have a pending creator request")
			return
		}
	}
	req := models.CreatorRequest{
		ID:        s.nextID,
		UserID:    s.user.ID,
		Username:  s.user.Username,
		Status:    models.CreatorRequestPending,
		Message:   body.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.requests = append(s.requests, req)
	writeJSON(w, http.StatusCreated, req)
}

func (s *Server) handleCreatorApprove(w http.ResponseWriter, r *http.Request) {
	s.transitionCreator(w, r, models.CreatorRequestApproved)
}

func (s *Server) handleCreatorReject(w http.ResponseWriter, r *http.Request) {
	s.transitionCreator(w, r, models.CreatorRequestRejected)
}

func (s *Server) transitionCreator(w http.ResponseWriter, r *http.Request, to models.CreatorRequestStatus) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.user.Role.IsAdmin() {
		writeDetail(w, http.StatusForbidden, "Admin role required")
		return
	}
	for i := range s.requests {
		if s.requests[i].ID == id {
			if s.requests[i].Status.Terminal() {
				writeDetail(w, http.StatusConflict, "Creator request already resolved")
				return
			}
			s.requests[i].Status = to
			writeJSON(w, http.StatusOK, s.requests[i])
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Creator request not found")
}

func (s *Server) handleProfilePatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsPublicProfile bool `json:"is_public_profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid profile payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.IsPublicProfile = body.IsPublicProfile
	writeJSON(w, http.StatusOK, s.user)
}

func (s *Server) handleChatAsk(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Query == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "query is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.ChatAnswer{
		Response: fmt.Sprintf("Here are some picks for %q.", body.Query),
		Movies:   s.Movies,
	})
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
