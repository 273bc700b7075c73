// Package settings persists small player preferences between sessions.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Store reads and writes the settings file
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// LastPlayerCount returns the player count from the previous session,
// or zero when none has been saved
func (s *Store) LastPlayerCount() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}

	return int(gjson.GetBytes(data, "players.last_count").Int())
}

// SaveLastPlayerCount remembers the player count for the next session
func (s *Store) SaveLastPlayerCount(count int) error {
	return s.set("players.last_count", count)
}

// GamesPlayed returns how many games have finished on this install
func (s *Store) GamesPlayed() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}

	return int(gjson.GetBytes(data, "games.played").Int())
}

// IncrementGamesPlayed bumps the finished game counter
func (s *Store) IncrementGamesPlayed() error {
	return s.set("games.played", s.GamesPlayed()+1)
}

// set updates one key, leaving the rest of the file untouched
func (s *Store) set(key string, value interface{}) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// Missing file just means first run
		data = []byte(`{}`)
	}

	data, err = sjson.SetBytes(data, key, value)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
