package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates a game has been created but not started
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a game has been completed
	GameStatusCompleted GameStatus = "completed"
)

// Game represents a Yahtzee game session
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// Players contains the participants in seat order
	Players []*Player

	// Round is the current round, starting at 1
	Round int

	// CurrentPlayer is the index into Players of the player acting now
	CurrentPlayer int

	// Turn is the dice state for the acting player, nil until the game starts
	Turn *Turn

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}
