package models

// TurnPhase represents where the acting player is within their turn
type TurnPhase string

const (
	// TurnPhaseRolling indicates the player may still reroll dice
	TurnPhaseRolling TurnPhase = "rolling"

	// TurnPhaseChoosing indicates the player is picking a category to score
	TurnPhaseChoosing TurnPhase = "choosing_category"
)

// Turn holds the dice state for the player currently acting
type Turn struct {
	// Phase is where the player is within the turn
	Phase TurnPhase

	// Dice are the five dice as last rolled
	Dice []*Die

	// RollsRemaining is how many rerolls the player has left this turn
	RollsRemaining int

	// ZeroMode indicates the player has armed scoring a zero, which
	// makes every unused category selectable for no points
	ZeroMode bool
}
