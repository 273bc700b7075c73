package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// memoryRepository implements the Repository interface in process memory.
// Games are stored as JSON so callers always get their own copy back.
type memoryRepository struct {
	mu    sync.RWMutex
	games map[string][]byte
}

// NewMemory creates a new in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games: make(map[string][]byte),
	}
}

// SaveGame persists a game
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	// Marshal the game to JSON
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[input.Game.ID] = gameJSON

	return nil
}

// GetGame retrieves a game by ID
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	gameJSON, ok := r.games[input.GameID]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	// Unmarshal the game from JSON
	var game models.Game
	if err := json.Unmarshal(gameJSON, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// DeleteGame removes a game
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[input.GameID]; !ok {
		return ErrGameNotFound
	}
	delete(r.games, input.GameID)

	return nil
}
