// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds everything tunable from the environment
type Config struct {
	// WindowScale multiplies the base window size
	WindowScale float64 `env:"YAHTZEE_WINDOW_SCALE" envDefault:"1.0"`

	// TicksPerSecond is the game loop rate
	TicksPerSecond int `env:"YAHTZEE_TPS" envDefault:"30"`

	// DiceSeed fixes the dice sequence. Zero seeds from the clock.
	DiceSeed int64 `env:"YAHTZEE_DICE_SEED"`

	// DataDir is where match history and settings live
	DataDir string `env:"YAHTZEE_DATA_DIR"`

	// MaxPlayers caps how many seats a game can have
	MaxPlayers int `env:"YAHTZEE_MAX_PLAYERS" envDefault:"9"`

	// Rounds is how many rounds a game runs
	Rounds int `env:"YAHTZEE_ROUNDS" envDefault:"13"`

	// RerollsPerTurn is how many rerolls follow the opening roll
	RerollsPerTurn int `env:"YAHTZEE_REROLLS_PER_TURN" envDefault:"2"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Default the data directory into the user's config area
	if cfg.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		cfg.DataDir = filepath.Join(dir, "yahtzee")
	}

	return &cfg, nil
}

// HistoryDBPath is the SQLite file holding finished matches
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.DataDir, "history.db")
}

// SettingsPath is the JSON file holding session preferences
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "settings.json")
}
