package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// tokensFile is the fixed key under which the pair is persisted.
const tokensFile = "tokens.json"

var (
	ErrStorageDirRequired = errors.New("storage directory not provided")
	ErrTokenPairRequired  = errors.New("both access and refresh tokens are required")
)

// storedTokens is the on-disk shape. Both fields are present or the
// file does not exist; the store never persists a half pair.
type storedTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Store persists the session token pair. Reads are tolerant: any
// storage failure reads as "no token" rather than an error, so callers
// on a cold or broken cache degrade to unauthenticated requests.
type Store struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewStore creates a token store rooted at the provided directory.
func NewStore(storageDir string) (*Store, error) {
	return NewStoreWithFs(afero.NewOsFs(), storageDir)
}

// NewStoreWithFs creates a token store on an arbitrary filesystem.
// Tests use afero.NewMemMapFs.
func NewStoreWithFs(fsys afero.Fs, storageDir string) (*Store, error) {
	if strings.TrimSpace(storageDir) == "" {
		return nil, ErrStorageDirRequired
	}
	if err := fsys.MkdirAll(storageDir, 0o700); err != nil {
		return nil, fmt.Errorf("create token dir: %w", err)
	}
	return &Store{
		fs:   fsys,
		path: filepath.Join(storageDir, tokensFile),
	}, nil
}

// AccessToken returns the persisted access token, if any.
func (s *Store) AccessToken() (string, bool) {
	tokens, ok := s.read()
	if !ok || tokens.AccessToken == "" {
		return "", false
	}
	return tokens.AccessToken, true
}

// RefreshToken returns the persisted refresh token, if any.
func (s *Store) RefreshToken() (string, bool) {
	tokens, ok := s.read()
	if !ok || tokens.RefreshToken == "" {
		return "", false
	}
	return tokens.RefreshToken, true
}

// SetTokens persists the pair. Both values must be non-empty so the
// store never holds a half pair.
func (s *Store) SetTokens(access, refresh string) error {
	access = strings.TrimSpace(access)
	refresh = strings.TrimSpace(refresh)
	if access == "" || refresh == "" {
		return ErrTokenPairRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.MarshalIndent(storedTokens{
		AccessToken:  access,
		RefreshToken: refresh,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace tokens file: %w", err)
	}
	return nil
}

// ClearTokens removes the persisted pair. Clearing an empty store is
// not an error.
func (s *Store) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove tokens file: %w", err)
	}
	return nil
}

func (s *Store) read() (storedTokens, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return storedTokens{}, false
	}
	var tokens storedTokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return storedTokens{}, false
	}
	return tokens, true
}
