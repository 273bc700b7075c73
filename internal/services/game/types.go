package game

import (
	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	gameRepo "github.com/KirkDiggler/yahtzee/internal/repositories/game"
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game
	MaxPlayers int

	// Number of rounds in a full game
	Rounds int

	// Number of rerolls a player gets after the opening roll each turn
	RerollsPerTurn int

	// Number of sides on the dice
	DiceSides int

	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PlayerCount is how many players will take part
	PlayerCount int
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// GameID is the unique identifier for the created game
	GameID string

	// Game is the created game
	Game *models.Game
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// Game is the started game with the first turn dealt
	Game *models.Game
}

// RollDiceInput contains parameters for rerolling the unkept dice
type RollDiceInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// RollDiceOutput contains the result of a reroll
type RollDiceOutput struct {
	// Game is the updated game
	Game *models.Game

	// Dice are the face values after the roll
	Dice []int

	// RollsRemaining is how many rerolls the player has left
	RollsRemaining int
}

// ToggleKeepInput contains parameters for keeping or releasing a die
type ToggleKeepInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// DieIndex is the position of the die, 0 through 4
	DieIndex int
}

// ToggleKeepOutput contains the result of toggling a die
type ToggleKeepOutput struct {
	// Game is the updated game
	Game *models.Game

	// Kept indicates the die's state after the toggle
	Kept bool
}

// EndRollingInput contains parameters for moving on to category selection
type EndRollingInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// EndRollingOutput contains the result of ending the rolling phase
type EndRollingOutput struct {
	// Game is the updated game
	Game *models.Game
}

// ArmZeroModeInput contains parameters for arming a deliberate zero
type ArmZeroModeInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// ArmZeroModeOutput contains the result of arming zero mode
type ArmZeroModeOutput struct {
	// Game is the updated game
	Game *models.Game
}

// ScoreCategoryInput contains parameters for scoring the current dice
type ScoreCategoryInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Category is the scorecard line to fill
	Category models.Category
}

// ScoreCategoryOutput contains the result of scoring a category
type ScoreCategoryOutput struct {
	// Game is the updated game
	Game *models.Game

	// Score is the value recorded in the category
	Score int

	// GameCompleted indicates the final round has finished
	GameCompleted bool
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// GetGameOutput contains the result of retrieving a game
type GetGameOutput struct {
	// Game is the retrieved game
	Game *models.Game
}

// GetScoreOptionsInput contains parameters for listing the acting
// player's scoring choices
type GetScoreOptionsInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// ScoreOption describes one scorecard line for the acting player
type ScoreOption struct {
	// Category is the scorecard line
	Category models.Category

	// DisplayName is the human readable name for the category
	DisplayName string

	// Used indicates the category has already been scored
	Used bool

	// Score is the recorded value when the category is used
	Score int

	// Possible is what the current dice would earn in the category
	Possible int

	// RequiresCombo indicates the category needs a qualifying hand
	RequiresCombo bool

	// Selectable indicates the player may score this category right now
	Selectable bool
}

// GetScoreOptionsOutput contains the acting player's scoring choices
type GetScoreOptionsOutput struct {
	// PlayerName is the display name of the acting player
	PlayerName string

	// ZeroMode indicates a deliberate zero is armed
	ZeroMode bool

	// Options holds one entry per category in scorecard order
	Options []*ScoreOption
}

// GetFinalStandingsInput contains parameters for retrieving final results
type GetFinalStandingsInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// PlayerStanding is a single player's final line in a completed game
type PlayerStanding struct {
	// PlayerID is the unique identifier for the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Seat is the player's position in turn order, starting at 1
	Seat int

	// Position is the player's placing, with ties sharing a position
	Position int

	// Upper is the upper section total before the bonus
	Upper int

	// Bonus is the upper section bonus, 35 or 0
	Bonus int

	// Lower is the lower section total
	Lower int

	// Total is upper plus bonus plus lower
	Total int
}

// GetFinalStandingsOutput contains the final results of a completed game
type GetFinalStandingsOutput struct {
	// Standings holds one entry per player in seat order
	Standings []*PlayerStanding
}
