package player

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// ErrEmptyUsername is returned when saving a blank username.
var ErrEmptyUsername = errors.New("username must not be empty")

const usernameKey = "username"

// Store saves the player's username to a JSON file.
type Store struct {
	mu   sync.Mutex
	path string
	v    *viper.Viper
}

// NewStore creates a store for cfg. The default path is
// <user config dir>/unique-checker/config.json.
func NewStore(cfg Config) (*Store, error) {
	path := cfg.ConfigPath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config dir: %w", err)
		}
		path = filepath.Join(dir, "unique-checker", "config.json")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetConfigPermissions(0o600)

	return &Store{path: path, v: v}, nil
}

// Path returns the file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved username, or "" when none was saved.
func (s *Store) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return s.v.GetString(usernameKey), nil
}

// Save writes username, creating the directory when needed. The file is
// replaced atomically.
func (s *Store) Save(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	s.v.Set(usernameKey, username)

	ext := filepath.Ext(s.path)
	tmp := strings.TrimSuffix(s.path, ext) + ".tmp" + ext
	if err := s.v.WriteConfigAs(tmp); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}
