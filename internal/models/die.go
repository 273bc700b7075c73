package models

// NumDice is the number of dice rolled each turn
const NumDice = 5

// Die is a single die in the current turn
type Die struct {
	// Value is the face currently showing, 1 through 6
	Value int

	// Kept indicates the die is held back from the next roll
	Kept bool
}
