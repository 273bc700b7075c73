package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/yahtzee/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/yahtzee/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/yahtzee/internal/dice/mocks"
	"github.com/KirkDiggler/yahtzee/internal/models"
	gameRepo "github.com/KirkDiggler/yahtzee/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/yahtzee/internal/repositories/game/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	gameService    Service
	ctx            context.Context

	// Test data
	testTime   time.Time
	testGameID string

	// Reusable test fixtures
	waitingGame  *models.Game
	activeGame   *models.Game
	choosingGame *models.Game
}

// newTestPlayers builds a fresh two player seating with empty scorecards
func newTestPlayers() []*models.Player {
	return []*models.Player{
		{ID: "player-1-id", Name: "Player 1", Seat: 1, Scorecard: models.NewScorecard()},
		{ID: "player-2-id", Name: "Player 2", Seat: 2, Scorecard: models.NewScorecard()},
	}
}

// newTestDice builds turn dice from literal face values
func newTestDice(values ...int) []*models.Die {
	dice := make([]*models.Die, len(values))
	for i, value := range values {
		dice[i] = &models.Die{Value: value}
	}
	return dice
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Game waiting for the first roll
	s.waitingGame = &models.Game{
		ID:        s.testGameID,
		Status:    models.GameStatusWaiting,
		Players:   newTestPlayers(),
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	// Game mid-turn with the opening roll on the table
	s.activeGame = &models.Game{
		ID:            s.testGameID,
		Status:        models.GameStatusActive,
		Players:       newTestPlayers(),
		Round:         1,
		CurrentPlayer: 0,
		Turn: &models.Turn{
			Phase:          models.TurnPhaseRolling,
			Dice:           newTestDice(3, 1, 4, 1, 5),
			RollsRemaining: 2,
		},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	// Game with the acting player picking a category
	s.choosingGame = &models.Game{
		ID:            s.testGameID,
		Status:        models.GameStatusActive,
		Players:       newTestPlayers(),
		Round:         1,
		CurrentPlayer: 0,
		Turn: &models.Turn{
			Phase:          models.TurnPhaseChoosing,
			Dice:           newTestDice(3, 1, 4, 1, 5),
			RollsRemaining: 0,
		},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	// Create the service with mocked dependencies
	cfg := &Config{
		GameRepo:       s.mockGameRepo,
		DiceRoller:     s.mockDiceRoller,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
		MaxPlayers:     9,  // Standard scorecard pads seat up to nine
		Rounds:         13, // One round per category
		RerollsPerTurn: 2,
		DiceSides:      6,
	}

	svc, err := New(cfg)
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectGetGame sets up the repository to return the given game
func (s *GameServiceTestSuite) expectGetGame(game *models.Game) {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{
			GameID: s.testGameID,
		}).
		Return(game, nil)
}

// expectSaveGame sets up the repository to accept the updated game
func (s *GameServiceTestSuite) expectSaveGame() {
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(nil)
}

// expectOpeningRoll queues the five dice of a turn's opening roll
func (s *GameServiceTestSuite) expectOpeningRoll(values ...int) {
	for _, value := range values {
		s.mockDiceRoller.EXPECT().Roll(6).Return(value)
	}
}

// New Tests

func (s *GameServiceTestSuite) TestNew_MissingDependencies() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilGameRepo, err)

	_, err = New(&Config{
		GameRepo: s.mockGameRepo,
	})
	s.Equal(ErrNilDiceRoller, err)

	_, err = New(&Config{
		GameRepo:   s.mockGameRepo,
		DiceRoller: s.mockDiceRoller,
	})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{
		GameRepo:   s.mockGameRepo,
		DiceRoller: s.mockDiceRoller,
		Clock:      s.mockClock,
	})
	s.Equal(ErrNilUUIDGenerator, err)
}

func (s *GameServiceTestSuite) TestNew_DefaultRules() {
	svc, err := New(&Config{
		GameRepo:      s.mockGameRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})

	s.Require().NoError(err)
	s.Equal(9, svc.maxPlayers)
	s.Equal(13, svc.rounds)
	s.Equal(2, svc.rerollsPerTurn)
	s.Equal(6, svc.diceSides)
}

// CreateGame Tests

func (s *GameServiceTestSuite) TestCreateGame_HappyPath() {
	// One ID for the game, then one per player in seat order
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockUUID.EXPECT().NewUUID().Return("player-1-id")
	s.mockUUID.EXPECT().NewUUID().Return("player-2-id")

	// Expect SaveGame to be called with the freshly seated game
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), &gameRepo.SaveGameInput{
			Game: &models.Game{
				ID:        s.testGameID,
				Status:    models.GameStatusWaiting,
				Players:   newTestPlayers(),
				CreatedAt: s.testTime,
				UpdatedAt: s.testTime,
			},
		}).
		Return(nil)

	// Act
	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerCount: 2,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(s.testGameID, output.GameID)
	s.Require().Len(output.Game.Players, 2)
	s.Equal("Player 1", output.Game.Players[0].Name)
	s.Equal(1, output.Game.Players[0].Seat)
	s.Equal("Player 2", output.Game.Players[1].Name)
	s.Equal(2, output.Game.Players[1].Seat)
	s.Equal(models.GameStatusWaiting, output.Game.Status)
}

func (s *GameServiceTestSuite) TestCreateGame_ZeroPlayers() {
	// Act
	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerCount: 0,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidPlayerCount, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestCreateGame_TooManyPlayers() {
	// Act
	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerCount: 10,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidPlayerCount, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestCreateGame_SaveError() {
	expectedError := errors.New("failed to save game")

	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID).AnyTimes()

	// Expect SaveGame to be called and return an error
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(expectedError)

	// Act
	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerCount: 2,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(expectedError, err)
	s.Nil(output)
}

// StartGame Tests

func (s *GameServiceTestSuite) TestStartGame_HappyPath() {
	// Expect GetGame to be called on the game repository
	s.expectGetGame(s.waitingGame)

	// The first player gets their opening roll immediately
	s.expectOpeningRoll(3, 1, 4, 1, 5)

	// Expect SaveGame to be called with the game underway
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), &gameRepo.SaveGameInput{
			Game: &models.Game{
				ID:            s.testGameID,
				Status:        models.GameStatusActive,
				Players:       s.waitingGame.Players,
				Round:         1,
				CurrentPlayer: 0,
				Turn: &models.Turn{
					Phase:          models.TurnPhaseRolling,
					Dice:           newTestDice(3, 1, 4, 1, 5),
					RollsRemaining: 2,
				},
				CreatedAt: s.testTime,
				UpdatedAt: s.testTime,
			},
		}).
		Return(nil)

	// Act
	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(models.GameStatusActive, output.Game.Status)
	s.Equal(1, output.Game.Round)
	s.Equal(0, output.Game.CurrentPlayer)
	s.Require().NotNil(output.Game.Turn)
	s.Equal(models.TurnPhaseRolling, output.Game.Turn.Phase)
	s.Equal(2, output.Game.Turn.RollsRemaining)
}

func (s *GameServiceTestSuite) TestStartGame_GameNotFound() {
	// Expect GetGame to be called and return an error
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{
			GameID: s.testGameID,
		}).
		Return(nil, errors.New("game not found"))

	// Act
	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.True(errors.Is(err, ErrGameNotFound))
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestStartGame_AlreadyActive() {
	// Expect GetGame to return a game that is already underway
	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidGameState, err)
	s.Nil(output)
}

// RollDice Tests

func (s *GameServiceTestSuite) TestRollDice_HappyPath() {
	s.expectGetGame(s.activeGame)

	// All five dice are loose, so all five reroll
	s.expectOpeningRoll(2, 2, 6, 6, 6)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal([]int{2, 2, 6, 6, 6}, output.Dice)
	s.Equal(1, output.RollsRemaining)
	s.Equal(models.TurnPhaseRolling, output.Game.Turn.Phase)
}

func (s *GameServiceTestSuite) TestRollDice_KeptDiceHold() {
	// Keep the pair of ones before rerolling
	s.activeGame.Turn.Dice[1].Kept = true
	s.activeGame.Turn.Dice[3].Kept = true

	s.expectGetGame(s.activeGame)

	// Only the three loose dice reroll
	s.expectOpeningRoll(6, 6, 6)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal([]int{6, 1, 6, 1, 6}, output.Dice)
}

func (s *GameServiceTestSuite) TestRollDice_LastRollAdvances() {
	// Down to the final reroll of the turn
	s.activeGame.Turn.RollsRemaining = 1

	s.expectGetGame(s.activeGame)
	s.expectOpeningRoll(2, 2, 6, 6, 6)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(0, output.RollsRemaining)
	s.Equal(models.TurnPhaseChoosing, output.Game.Turn.Phase)
}

func (s *GameServiceTestSuite) TestRollDice_NoRollsRemaining() {
	s.activeGame.Turn.RollsRemaining = 0

	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrNoRollsRemaining, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestRollDice_WrongPhase() {
	// The player is already picking a category
	s.expectGetGame(s.choosingGame)

	// Act
	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidTurnPhase, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestRollDice_GameNotActive() {
	s.expectGetGame(s.waitingGame)

	// Act
	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidGameState, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestRollDice_GameNotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("game not found"))

	// Act
	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.True(errors.Is(err, ErrGameNotFound))
	s.Nil(output)
}

// ToggleKeep Tests

func (s *GameServiceTestSuite) TestToggleKeep_HappyPath() {
	s.expectGetGame(s.activeGame)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.ToggleKeep(s.ctx, &ToggleKeepInput{
		GameID:   s.testGameID,
		DieIndex: 1,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.True(output.Kept)
	s.True(output.Game.Turn.Dice[1].Kept)
}

func (s *GameServiceTestSuite) TestToggleKeep_ReleasesKeptDie() {
	// The die is already held back
	s.activeGame.Turn.Dice[1].Kept = true

	s.expectGetGame(s.activeGame)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.ToggleKeep(s.ctx, &ToggleKeepInput{
		GameID:   s.testGameID,
		DieIndex: 1,
	})

	// Assert
	s.Require().NoError(err)
	s.False(output.Kept)
	s.False(output.Game.Turn.Dice[1].Kept)
}

func (s *GameServiceTestSuite) TestToggleKeep_InvalidIndex() {
	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.ToggleKeep(s.ctx, &ToggleKeepInput{
		GameID:   s.testGameID,
		DieIndex: 5,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidDieIndex, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestToggleKeep_NegativeIndex() {
	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.ToggleKeep(s.ctx, &ToggleKeepInput{
		GameID:   s.testGameID,
		DieIndex: -1,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidDieIndex, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestToggleKeep_WrongPhase() {
	s.expectGetGame(s.choosingGame)

	// Act
	output, err := s.gameService.ToggleKeep(s.ctx, &ToggleKeepInput{
		GameID:   s.testGameID,
		DieIndex: 1,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidTurnPhase, err)
	s.Nil(output)
}

// EndRolling Tests

func (s *GameServiceTestSuite) TestEndRolling_HappyPath() {
	s.expectGetGame(s.activeGame)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.EndRolling(s.ctx, &EndRollingInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(models.TurnPhaseChoosing, output.Game.Turn.Phase)
}

func (s *GameServiceTestSuite) TestEndRolling_WrongPhase() {
	s.expectGetGame(s.choosingGame)

	// Act
	output, err := s.gameService.EndRolling(s.ctx, &EndRollingInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidTurnPhase, err)
	s.Nil(output)
}

// ArmZeroMode Tests

func (s *GameServiceTestSuite) TestArmZeroMode_HappyPath() {
	s.expectGetGame(s.choosingGame)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.ArmZeroMode(s.ctx, &ArmZeroModeInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.True(output.Game.Turn.ZeroMode)
}

func (s *GameServiceTestSuite) TestArmZeroMode_DuringRolling() {
	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.ArmZeroMode(s.ctx, &ArmZeroModeInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidTurnPhase, err)
	s.Nil(output)
}

// ScoreCategory Tests

func (s *GameServiceTestSuite) TestScoreCategory_HappyPath() {
	s.expectGetGame(s.choosingGame)

	// Play passes to the second seat, who gets their opening roll
	s.expectOpeningRoll(2, 2, 2, 2, 2)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryThrees,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(3, output.Score)
	s.False(output.GameCompleted)

	// The score is on the first player's card
	score, used := output.Game.Players[0].Scorecard.Score(models.CategoryThrees)
	s.True(used)
	s.Equal(3, score)

	// The second player is up with a fresh turn
	s.Equal(1, output.Game.CurrentPlayer)
	s.Equal(1, output.Game.Round)
	s.Equal(models.TurnPhaseRolling, output.Game.Turn.Phase)
	s.Equal(2, output.Game.Turn.RollsRemaining)
	s.False(output.Game.Turn.ZeroMode)
}

func (s *GameServiceTestSuite) TestScoreCategory_UpperZeroAllowed() {
	s.expectGetGame(s.choosingGame)
	s.expectOpeningRoll(2, 2, 2, 2, 2)
	s.expectSaveGame()

	// Act: no twos in the hand, but number categories may score nothing
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryTwos,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(0, output.Score)
}

func (s *GameServiceTestSuite) TestScoreCategory_ComboNotEligible() {
	s.expectGetGame(s.choosingGame)

	// Act: the hand has no three of a kind
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryThreeOfAKind,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrCategoryNotEligible, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestScoreCategory_ComboEligible() {
	// Put a full house on the table
	s.choosingGame.Turn.Dice = newTestDice(3, 3, 3, 2, 2)

	s.expectGetGame(s.choosingGame)
	s.expectOpeningRoll(2, 2, 2, 2, 2)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryFullHouse,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(25, output.Score)
}

func (s *GameServiceTestSuite) TestScoreCategory_ZeroModeForcesZero() {
	// The player armed a deliberate zero before choosing
	s.choosingGame.Turn.ZeroMode = true

	s.expectGetGame(s.choosingGame)
	s.expectOpeningRoll(2, 2, 2, 2, 2)
	s.expectSaveGame()

	// Act: the combo would never qualify, but zero mode takes the zero
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryYahtzee,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(0, output.Score)

	score, used := output.Game.Players[0].Scorecard.Score(models.CategoryYahtzee)
	s.True(used)
	s.Equal(0, score)
}

func (s *GameServiceTestSuite) TestScoreCategory_ZeroModeZeroesAnyCategory() {
	// Zero mode wins even when the hand would have scored
	s.choosingGame.Turn.ZeroMode = true

	s.expectGetGame(s.choosingGame)
	s.expectOpeningRoll(2, 2, 2, 2, 2)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryChance,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(0, output.Score)
}

func (s *GameServiceTestSuite) TestScoreCategory_CategoryUsed() {
	// The first player already filled threes
	s.choosingGame.Players[0].Scorecard.SetScore(models.CategoryThrees, 9)

	s.expectGetGame(s.choosingGame)

	// Act
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryThrees,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrCategoryUsed, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestScoreCategory_InvalidCategory() {
	s.expectGetGame(s.choosingGame)

	// Act
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.Category("sevens"),
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidCategory, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestScoreCategory_WrongPhase() {
	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryThrees,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidTurnPhase, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestScoreCategory_RoundAdvance() {
	// The last seat is choosing, so scoring rolls over to a new round
	s.choosingGame.CurrentPlayer = 1

	s.expectGetGame(s.choosingGame)
	s.expectOpeningRoll(2, 2, 2, 2, 2)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryChance,
	})

	// Assert
	s.Require().NoError(err)
	s.False(output.GameCompleted)
	s.Equal(2, output.Game.Round)
	s.Equal(0, output.Game.CurrentPlayer)
	s.Equal(models.TurnPhaseRolling, output.Game.Turn.Phase)
}

func (s *GameServiceTestSuite) TestScoreCategory_FinalScoreEndsGame() {
	// Last seat of the last round
	s.choosingGame.Round = 13
	s.choosingGame.CurrentPlayer = 1

	s.expectGetGame(s.choosingGame)
	s.expectSaveGame()

	// Act
	output, err := s.gameService.ScoreCategory(s.ctx, &ScoreCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryChance,
	})

	// Assert
	s.Require().NoError(err)
	s.True(output.GameCompleted)
	s.Equal(models.GameStatusCompleted, output.Game.Status)
	s.Nil(output.Game.Turn)
}

// GetGame Tests

func (s *GameServiceTestSuite) TestGetGame_HappyPath() {
	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.GetGame(s.ctx, &GetGameInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(s.activeGame, output.Game)
}

func (s *GameServiceTestSuite) TestGetGame_NotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("game not found"))

	// Act
	output, err := s.gameService.GetGame(s.ctx, &GetGameInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.True(errors.Is(err, ErrGameNotFound))
	s.Nil(output)
}

// GetScoreOptions Tests

func (s *GameServiceTestSuite) TestGetScoreOptions_HappyPath() {
	s.expectGetGame(s.choosingGame)

	// Act
	output, err := s.gameService.GetScoreOptions(s.ctx, &GetScoreOptionsInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal("Player 1", output.PlayerName)
	s.False(output.ZeroMode)
	s.Require().Len(output.Options, 13)

	// Options follow the scorecard order
	for i, category := range models.Categories() {
		s.Equal(category, output.Options[i].Category)
	}

	options := make(map[models.Category]*ScoreOption, len(output.Options))
	for _, option := range output.Options {
		options[option.Category] = option
	}

	// The hand is 3 1 4 1 5
	s.Equal(2, options[models.CategoryOnes].Possible)
	s.True(options[models.CategoryOnes].Selectable)
	s.Equal(14, options[models.CategoryChance].Possible)
	s.True(options[models.CategoryChance].Selectable)

	// Number categories may take a zero, combos may not
	s.Equal(0, options[models.CategoryTwos].Possible)
	s.True(options[models.CategoryTwos].Selectable)
	s.Equal(0, options[models.CategoryFullHouse].Possible)
	s.True(options[models.CategoryFullHouse].RequiresCombo)
	s.False(options[models.CategoryFullHouse].Selectable)
}

func (s *GameServiceTestSuite) TestGetScoreOptions_UsedCategory() {
	s.choosingGame.Players[0].Scorecard.SetScore(models.CategoryThrees, 9)

	s.expectGetGame(s.choosingGame)

	// Act
	output, err := s.gameService.GetScoreOptions(s.ctx, &GetScoreOptionsInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	for _, option := range output.Options {
		if option.Category != models.CategoryThrees {
			continue
		}
		s.True(option.Used)
		s.Equal(9, option.Score)
		s.False(option.Selectable)
	}
}

func (s *GameServiceTestSuite) TestGetScoreOptions_ZeroMode() {
	s.choosingGame.Turn.ZeroMode = true
	s.choosingGame.Players[0].Scorecard.SetScore(models.CategoryThrees, 9)

	s.expectGetGame(s.choosingGame)

	// Act
	output, err := s.gameService.GetScoreOptions(s.ctx, &GetScoreOptionsInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.True(output.ZeroMode)

	// Zero mode opens up unqualified combos but never used categories
	for _, option := range output.Options {
		switch option.Category {
		case models.CategoryFullHouse:
			s.True(option.Selectable)
		case models.CategoryThrees:
			s.False(option.Selectable)
		}
	}
}

func (s *GameServiceTestSuite) TestGetScoreOptions_DuringRolling() {
	// The scorecard is previewable while the player still has rolls
	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.GetScoreOptions(s.ctx, &GetScoreOptionsInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().Len(output.Options, 13)
}

func (s *GameServiceTestSuite) TestGetScoreOptions_GameNotActive() {
	s.expectGetGame(s.waitingGame)

	// Act
	output, err := s.gameService.GetScoreOptions(s.ctx, &GetScoreOptionsInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrInvalidGameState, err)
	s.Nil(output)
}

// GetFinalStandings Tests

func (s *GameServiceTestSuite) TestGetFinalStandings_HappyPath() {
	completedGame := &models.Game{
		ID:      s.testGameID,
		Status:  models.GameStatusCompleted,
		Players: newTestPlayers(),
		Round:   13,
	}

	// First seat clears the upper bonus, second seat only took chance
	completedGame.Players[0].Scorecard.SetScore(models.CategorySixes, 36)
	completedGame.Players[0].Scorecard.SetScore(models.CategoryFives, 30)
	completedGame.Players[0].Scorecard.SetScore(models.CategoryYahtzee, 50)
	completedGame.Players[1].Scorecard.SetScore(models.CategoryChance, 20)

	s.expectGetGame(completedGame)

	// Act
	output, err := s.gameService.GetFinalStandings(s.ctx, &GetFinalStandingsInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().Len(output.Standings, 2)

	first := output.Standings[0]
	s.Equal("Player 1", first.PlayerName)
	s.Equal(1, first.Seat)
	s.Equal(66, first.Upper)
	s.Equal(35, first.Bonus)
	s.Equal(50, first.Lower)
	s.Equal(151, first.Total)
	s.Equal(1, first.Position)

	second := output.Standings[1]
	s.Equal("Player 2", second.PlayerName)
	s.Equal(2, second.Seat)
	s.Equal(20, second.Total)
	s.Equal(2, second.Position)
}

func (s *GameServiceTestSuite) TestGetFinalStandings_TiedTotalsSharePosition() {
	completedGame := &models.Game{
		ID:      s.testGameID,
		Status:  models.GameStatusCompleted,
		Players: newTestPlayers(),
		Round:   13,
	}
	completedGame.Players = append(completedGame.Players, &models.Player{
		ID:        "player-3-id",
		Name:      "Player 3",
		Seat:      3,
		Scorecard: models.NewScorecard(),
	})

	completedGame.Players[0].Scorecard.SetScore(models.CategoryChance, 30)
	completedGame.Players[1].Scorecard.SetScore(models.CategoryChance, 30)
	completedGame.Players[2].Scorecard.SetScore(models.CategoryChance, 10)

	s.expectGetGame(completedGame)

	// Act
	output, err := s.gameService.GetFinalStandings(s.ctx, &GetFinalStandingsInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().Len(output.Standings, 3)

	// Both leaders tie for first, the third seat comes in third
	s.Equal(1, output.Standings[0].Position)
	s.Equal(1, output.Standings[1].Position)
	s.Equal(3, output.Standings[2].Position)

	// Standings stay in seat order even with ties
	s.Equal(1, output.Standings[0].Seat)
	s.Equal(2, output.Standings[1].Seat)
	s.Equal(3, output.Standings[2].Seat)
}

func (s *GameServiceTestSuite) TestGetFinalStandings_GameNotCompleted() {
	s.expectGetGame(s.activeGame)

	// Act
	output, err := s.gameService.GetFinalStandings(s.ctx, &GetFinalStandingsInput{
		GameID: s.testGameID,
	})

	// Assert
	s.Require().Error(err)
	s.Equal(ErrGameNotCompleted, err)
	s.Nil(output)
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
