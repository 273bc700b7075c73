package models

import (
	"time"
)

// Match records a completed game in the history log
type Match struct {
	// ID is the unique identifier for the match record
	ID string

	// GameID is the ID of the game the match records
	GameID string

	// PlayerCount is how many players took part
	PlayerCount int

	// PlayedAt is when the match finished
	PlayedAt time.Time

	// Results holds one entry per player in seat order
	Results []*MatchResult
}

// MatchResult is a single player's final line in a completed match
type MatchResult struct {
	// Seat is the player's position in turn order, starting at 1
	Seat int

	// PlayerName is the display name the player used
	PlayerName string

	// Position is the player's final placing, with ties sharing a position
	Position int

	// UpperScore is the upper section total before the bonus
	UpperScore int

	// Bonus is the upper section bonus, 35 or 0
	Bonus int

	// LowerScore is the lower section total
	LowerScore int

	// TotalScore is upper plus bonus plus lower
	TotalScore int
}
