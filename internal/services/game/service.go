package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	gameRepo "github.com/KirkDiggler/yahtzee/internal/repositories/game"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// Default configuration values
const (
	defaultMaxPlayers     = 9
	defaultRounds         = 13
	defaultRerollsPerTurn = 2
	defaultDiceSides      = 6
)

// service implements the Service interface
type service struct {
	gameRepo       gameRepo.Repository
	diceRoller     dice.Roller
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	maxPlayers     int
	rounds         int
	rerollsPerTurn int
	diceSides      int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	svc := &service{
		gameRepo:       cfg.GameRepo,
		diceRoller:     cfg.DiceRoller,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		maxPlayers:     cfg.MaxPlayers,
		rounds:         cfg.Rounds,
		rerollsPerTurn: cfg.RerollsPerTurn,
		diceSides:      cfg.DiceSides,
	}

	// Fall back to standard rules where the config is silent
	if svc.maxPlayers <= 0 {
		svc.maxPlayers = defaultMaxPlayers
	}
	if svc.rounds <= 0 {
		svc.rounds = defaultRounds
	}
	if svc.rerollsPerTurn <= 0 {
		svc.rerollsPerTurn = defaultRerollsPerTurn
	}
	if svc.diceSides <= 0 {
		svc.diceSides = defaultDiceSides
	}

	return svc, nil
}

// CreateGame creates a new game for the given number of players
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input.PlayerCount < 1 || input.PlayerCount > s.maxPlayers {
		return nil, ErrInvalidPlayerCount
	}

	now := s.clock.Now()
	gameID := s.uuidGenerator.NewUUID()

	// Seat the players in order
	players := make([]*models.Player, 0, input.PlayerCount)
	for seat := 1; seat <= input.PlayerCount; seat++ {
		players = append(players, &models.Player{
			ID:        s.uuidGenerator.NewUUID(),
			Name:      fmt.Sprintf("Player %d", seat),
			Seat:      seat,
			Scorecard: models.NewScorecard(),
		})
	}

	game := &models.Game{
		ID:        gameID,
		Status:    models.GameStatusWaiting,
		Players:   players,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Save the game
	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		GameID: gameID,
		Game:   game,
	}, nil
}

// StartGame begins play and deals the first player their opening roll
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	// Only a waiting game can start
	if game.Status != models.GameStatusWaiting {
		return nil, ErrInvalidGameState
	}

	game.Status = models.GameStatusActive
	game.Round = 1
	game.CurrentPlayer = 0
	s.beginTurn(game)
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{
		Game: game,
	}, nil
}

// RollDice rerolls every die the acting player has not kept
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.checkTurnPhase(game, models.TurnPhaseRolling); err != nil {
		return nil, err
	}

	if game.Turn.RollsRemaining <= 0 {
		return nil, ErrNoRollsRemaining
	}

	// Reroll the dice the player has not kept
	for _, die := range game.Turn.Dice {
		if die.Kept {
			continue
		}
		die.Value = s.diceRoller.Roll(s.diceSides)
	}

	game.Turn.RollsRemaining--

	// Out of rolls, on to category selection
	if game.Turn.RollsRemaining == 0 {
		game.Turn.Phase = models.TurnPhaseChoosing
	}

	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &RollDiceOutput{
		Game:           game,
		Dice:           diceValues(game.Turn.Dice),
		RollsRemaining: game.Turn.RollsRemaining,
	}, nil
}

// ToggleKeep flips whether a die is held back from the next roll
func (s *service) ToggleKeep(ctx context.Context, input *ToggleKeepInput) (*ToggleKeepOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.checkTurnPhase(game, models.TurnPhaseRolling); err != nil {
		return nil, err
	}

	if input.DieIndex < 0 || input.DieIndex >= len(game.Turn.Dice) {
		return nil, ErrInvalidDieIndex
	}

	die := game.Turn.Dice[input.DieIndex]
	die.Kept = !die.Kept
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &ToggleKeepOutput{
		Game: game,
		Kept: die.Kept,
	}, nil
}

// EndRolling moves the acting player on to category selection
func (s *service) EndRolling(ctx context.Context, input *EndRollingInput) (*EndRollingOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.checkTurnPhase(game, models.TurnPhaseRolling); err != nil {
		return nil, err
	}

	game.Turn.Phase = models.TurnPhaseChoosing
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &EndRollingOutput{
		Game: game,
	}, nil
}

// ArmZeroMode marks the turn as a deliberate zero
func (s *service) ArmZeroMode(ctx context.Context, input *ArmZeroModeInput) (*ArmZeroModeOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.checkTurnPhase(game, models.TurnPhaseChoosing); err != nil {
		return nil, err
	}

	// Zero mode stays armed until the player scores a category
	game.Turn.ZeroMode = true
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &ArmZeroModeOutput{
		Game: game,
	}, nil
}

// ScoreCategory records the current dice in a category and advances play
func (s *service) ScoreCategory(ctx context.Context, input *ScoreCategoryInput) (*ScoreCategoryOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.checkTurnPhase(game, models.TurnPhaseChoosing); err != nil {
		return nil, err
	}

	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	player := game.Players[game.CurrentPlayer]
	if player.Scorecard.IsUsed(input.Category) {
		return nil, ErrCategoryUsed
	}

	possible, err := scoring.Score(input.Category, diceValues(game.Turn.Dice))
	if err != nil {
		return nil, err
	}

	// A deliberate zero always records nothing. Otherwise combination
	// categories need a qualifying hand.
	score := possible
	if game.Turn.ZeroMode {
		score = 0
	} else if scoring.RequiresCombo(input.Category) && possible == 0 {
		return nil, ErrCategoryNotEligible
	}

	player.Scorecard.SetScore(input.Category, score)

	completed := s.advanceTurn(game)
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &ScoreCategoryOutput{
		Game:          game,
		Score:         score,
		GameCompleted: completed,
	}, nil
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// GetScoreOptions lists every category with what it would score now
func (s *service) GetScoreOptions(ctx context.Context, input *GetScoreOptionsInput) (*GetScoreOptionsOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusActive || game.Turn == nil {
		return nil, ErrInvalidGameState
	}

	player := game.Players[game.CurrentPlayer]
	possible, err := scoring.PossibleScores(diceValues(game.Turn.Dice))
	if err != nil {
		return nil, err
	}

	options := make([]*ScoreOption, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		option := &ScoreOption{
			Category:      category,
			DisplayName:   category.DisplayName(),
			Possible:      possible[category],
			RequiresCombo: scoring.RequiresCombo(category),
		}

		if score, used := player.Scorecard.Score(category); used {
			option.Used = true
			option.Score = score
		}

		option.Selectable = !option.Used &&
			(game.Turn.ZeroMode || !option.RequiresCombo || option.Possible > 0)

		options = append(options, option)
	}

	return &GetScoreOptionsOutput{
		PlayerName: player.Name,
		ZeroMode:   game.Turn.ZeroMode,
		Options:    options,
	}, nil
}

// GetFinalStandings computes the final results of a completed game
func (s *service) GetFinalStandings(ctx context.Context, input *GetFinalStandingsInput) (*GetFinalStandingsOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusCompleted {
		return nil, ErrGameNotCompleted
	}

	standings := make([]*PlayerStanding, 0, len(game.Players))
	for _, player := range game.Players {
		summary := scoring.FinalScore(player.Scorecard)
		standings = append(standings, &PlayerStanding{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Seat:       player.Seat,
			Upper:      summary.Upper,
			Bonus:      summary.Bonus,
			Lower:      summary.Lower,
			Total:      summary.Total,
		})
	}

	// Ties share a position, so two players on the same total both
	// place ahead of the next score down
	for _, standing := range standings {
		position := 1
		for _, other := range standings {
			if other.Total > standing.Total {
				position++
			}
		}
		standing.Position = position
	}

	return &GetFinalStandingsOutput{
		Standings: standings,
	}, nil
}

// getGame loads a game, mapping any repository failure to ErrGameNotFound
func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// checkTurnPhase verifies the game is active and the turn is in the
// given phase
func (s *service) checkTurnPhase(game *models.Game, phase models.TurnPhase) error {
	if game.Status != models.GameStatusActive {
		return ErrInvalidGameState
	}
	if game.Turn == nil || game.Turn.Phase != phase {
		return ErrInvalidTurnPhase
	}
	return nil
}

// beginTurn deals the acting player their mandatory opening roll
func (s *service) beginTurn(game *models.Game) {
	turnDice := make([]*models.Die, models.NumDice)
	for i := range turnDice {
		turnDice[i] = &models.Die{
			Value: s.diceRoller.Roll(s.diceSides),
		}
	}

	game.Turn = &models.Turn{
		Phase:          models.TurnPhaseRolling,
		Dice:           turnDice,
		RollsRemaining: s.rerollsPerTurn,
	}
}

// advanceTurn moves play to the next seat, the next round, or the end of
// the game. It reports whether the game just completed.
func (s *service) advanceTurn(game *models.Game) bool {
	// Same round, next seat
	if game.CurrentPlayer < len(game.Players)-1 {
		game.CurrentPlayer++
		s.beginTurn(game)
		return false
	}

	// The last seat of the final round ends the game
	if game.Round >= s.rounds {
		game.Status = models.GameStatusCompleted
		game.Turn = nil
		return true
	}

	game.Round++
	game.CurrentPlayer = 0
	s.beginTurn(game)
	return false
}

func diceValues(dice []*models.Die) []int {
	values := make([]int, len(dice))
	for i, die := range dice {
		values[i] = die.Value
	}
	return values
}
