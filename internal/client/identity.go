package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ErrNoIdentity is returned when no identity has been saved.
var ErrNoIdentity = errors.New("no saved identity")

// Identity is the locally cached session membership: set on create/join,
// read on every navigation, cleared on exit or when the session turns out
// to be gone.
type Identity struct {
	Code       string `json:"code"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	IsHost     bool   `json:"isHost"`
}

// IdentityCache persists the local identity. Injectable so the guard and
// lifecycle flows can be tested with a fake.
type IdentityCache interface {
	Load() (*Identity, error)
	Save(id Identity) error
	Clear() error
}

// FileIdentityCache stores the identity as a JSON file, by default under
// ~/.elimpostor/.
type FileIdentityCache struct {
	path string
}

// NewFileIdentityCache creates the cache. If baseDir is empty it uses
// ~/.elimpostor/.
func NewFileIdentityCache(baseDir string) (*FileIdentityCache, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".elimpostor")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create identity directory: %w", err)
	}

	return &FileIdentityCache{path: filepath.Join(baseDir, "identity.json")}, nil
}

func (c *FileIdentityCache) Load() (*Identity, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoIdentity
		}
		return nil, fmt.Errorf("failed to read identity: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("failed to parse identity: %w", err)
	}
	if id.Code == "" {
		return nil, ErrNoIdentity
	}

	return &id, nil
}

func (c *FileIdentityCache) Save(id Identity) error {
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}

	// Write to temp file first, then atomic rename
	tempPath := c.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write identity: %w", err)
	}
	if err := os.Rename(tempPath, c.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save identity: %w", err)
	}

	log.Debug().Str("code", id.Code).Bool("isHost", id.IsHost).Msg("identity saved")
	return nil
}

func (c *FileIdentityCache) Clear() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	return nil
}
