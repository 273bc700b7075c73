package models

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Seat is the player's position in turn order, starting at 1
	Seat int

	// Scorecard tracks the categories the player has scored
	Scorecard *Scorecard
}
