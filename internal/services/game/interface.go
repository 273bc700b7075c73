package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame creates a new game for the given number of players
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// StartGame begins play and deals the first player their opening roll
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RollDice rerolls every die the acting player has not kept
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// ToggleKeep flips whether a die is held back from the next roll
	ToggleKeep(ctx context.Context, input *ToggleKeepInput) (*ToggleKeepOutput, error)

	// EndRolling moves the acting player on to category selection
	EndRolling(ctx context.Context, input *EndRollingInput) (*EndRollingOutput, error)

	// ArmZeroMode marks the turn as a deliberate zero so any open
	// category can be scored for nothing
	ArmZeroMode(ctx context.Context, input *ArmZeroModeInput) (*ArmZeroModeOutput, error)

	// ScoreCategory records the current dice in a category and advances
	// play to the next player, round, or the end of the game
	ScoreCategory(ctx context.Context, input *ScoreCategoryInput) (*ScoreCategoryOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetScoreOptions lists every category with what it would score now
	GetScoreOptions(ctx context.Context, input *GetScoreOptionsInput) (*GetScoreOptionsOutput, error)

	// GetFinalStandings computes the final results of a completed game
	GetFinalStandings(ctx context.Context, input *GetFinalStandingsInput) (*GetFinalStandingsOutput, error)
}
