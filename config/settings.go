package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultAPIBaseURL points at a local CineScope backend.
const DefaultAPIBaseURL = "http://127.0.0.1:8000/api/v1"

// Settings represents the client configuration persisted to disk.
type Settings struct {
	API    APISettings    `json:"api"`
	Cache  CacheSettings  `json:"cache"`
	Search SearchSettings `json:"search"`
	Log    LogConfig      `json:"log"`
}

type APISettings struct {
	BaseURL        string `json:"baseUrl"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
	Region         string `json:"region"` // default region for provider lookups
}

type CacheSettings struct {
	// Directory holds the persisted token pair and log files.
	Directory string `json:"directory"`
}

type SearchSettings struct {
	DebounceMS int `json:"debounceMs"`
}

type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSize    int    `json:"maxSize"`
	MaxAge     int    `json:"maxAge"`
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

func DefaultSettings() Settings {
	return Settings{
		API: APISettings{
			BaseURL:        DefaultAPIBaseURL,
			TimeoutSeconds: 15,
			Region:         "US",
		},
		Cache:  CacheSettings{Directory: "cache"},
		Search: SearchSettings{DebounceMS: 300},
		Log: LogConfig{
			File:       "cache/logs/cinescope.log",
			Level:      "info",
			MaxSize:    10, // MB per file
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		},
	}
}

// Manager loads and persists settings to a JSON file.
type Manager struct {
	path string
}

func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads settings from disk, creating the file with defaults when
// missing. The CINESCOPE_API_URL environment variable overrides the
// persisted API base without being written back.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}

	settings := DefaultSettings()
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		if err := m.Save(settings); err != nil {
			return Settings{}, err
		}
		return applyEnv(settings), nil
	}

	f, err := os.Open(m.path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&settings); err != nil {
		return Settings{}, err
	}

	// Backfill fields older files may lack.
	if strings.TrimSpace(settings.API.BaseURL) == "" {
		settings.API.BaseURL = DefaultAPIBaseURL
	}
	if settings.API.TimeoutSeconds <= 0 {
		settings.API.TimeoutSeconds = 15
	}
	if strings.TrimSpace(settings.Cache.Directory) == "" {
		settings.Cache.Directory = "cache"
	}
	if settings.Search.DebounceMS <= 0 {
		settings.Search.DebounceMS = 300
	}

	return applyEnv(settings), nil
}

// Save writes the provided settings to disk atomically.
func (m *Manager) Save(s Settings) error {
	if m.path == "" {
		return errors.New("config path not set")
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, m.path)
}

func applyEnv(s Settings) Settings {
	if base := strings.TrimSpace(os.Getenv("CINESCOPE_API_URL")); base != "" {
		s.API.BaseURL = base
	}
	return s
}
