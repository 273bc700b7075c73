package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound        GameError = "game not found"
	ErrInvalidPlayerCount  GameError = "invalid player count"
	ErrInvalidGameState    GameError = "invalid game state"
	ErrInvalidTurnPhase    GameError = "invalid turn phase"
	ErrNoRollsRemaining    GameError = "no rolls remaining this turn"
	ErrInvalidDieIndex     GameError = "die index out of range"
	ErrInvalidCategory     GameError = "invalid category"
	ErrCategoryUsed        GameError = "category already scored"
	ErrCategoryNotEligible GameError = "dice do not qualify for category"
	ErrGameNotCompleted    GameError = "game is not completed"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilGameRepo         GameError = "game repository cannot be nil"
	ErrNilDiceRoller       GameError = "dice roller cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)
