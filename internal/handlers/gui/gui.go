package gui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
	"github.com/KirkDiggler/yahtzee/internal/services/stats"
	"github.com/KirkDiggler/yahtzee/internal/settings"
)

// App is the desktop front end. It owns the window, the active scene,
// and the id of the game being played.
type App struct {
	gameService      game.Service
	statsService     stats.Service
	messagingService messaging.Service
	settings         *settings.Store

	windowScale    float64
	ticksPerSecond int
	maxPlayers     int
	rounds         int

	sprites *sprites
	fonts   *fonts

	scene  Scene
	gameID string
}

// Config holds the configuration for the app
type Config struct {
	// Game service drives play
	GameService game.Service

	// Stats service records finished matches
	StatsService stats.Service

	// Messaging service supplies the table talk
	MessagingService messaging.Service

	// Settings persists small preferences between sessions
	Settings *settings.Store

	// WindowScale multiplies the base window size
	WindowScale float64

	// TicksPerSecond is the game loop rate
	TicksPerSecond int

	// MaxPlayers caps the seat count offered on the start screen
	MaxPlayers int

	// Rounds is how many rounds a game runs
	Rounds int
}

// New creates a new app
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.StatsService == nil {
		return nil, errors.New("stats service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Settings == nil {
		return nil, errors.New("settings store cannot be nil")
	}

	fonts, err := newFonts()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	app := &App{
		gameService:      cfg.GameService,
		statsService:     cfg.StatsService,
		messagingService: cfg.MessagingService,
		settings:         cfg.Settings,
		windowScale:      cfg.WindowScale,
		ticksPerSecond:   cfg.TicksPerSecond,
		maxPlayers:       cfg.MaxPlayers,
		rounds:           cfg.Rounds,
		sprites:          newSprites(),
		fonts:            fonts,
	}

	if app.windowScale <= 0 {
		app.windowScale = 1
	}
	if app.ticksPerSecond <= 0 {
		app.ticksPerSecond = 30
	}
	// The start screen selects with the digit keys, so nine seats is the
	// most the front end can offer
	if app.maxPlayers <= 0 || app.maxPlayers > 9 {
		app.maxPlayers = 9
	}
	if app.rounds <= 0 {
		app.rounds = 13
	}

	app.scene = newPlayerCountScene(app)

	return app, nil
}

// Run opens the window and blocks until the player closes it
func (a *App) Run() error {
	ebiten.SetWindowSize(int(baseWidth*a.windowScale), int(baseHeight*a.windowScale))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(a.ticksPerSecond)

	return ebiten.RunGame(a)
}

// Update implements ebiten.Game
func (a *App) Update() error {
	// Escape leaves the table
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	return a.scene.Update(a)
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorFelt)
	a.scene.Draw(a, screen)
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// startGame creates and starts a game, then hands off to the first turn
func (a *App) startGame(playerCount int) error {
	ctx := context.Background()

	created, err := a.gameService.CreateGame(ctx, &game.CreateGameInput{
		PlayerCount: playerCount,
	})
	if err != nil {
		return err
	}

	started, err := a.gameService.StartGame(ctx, &game.StartGameInput{
		GameID: created.GameID,
	})
	if err != nil {
		return err
	}

	a.gameID = created.GameID

	// Remember the table size for next session
	if err := a.settings.SaveLastPlayerCount(playerCount); err != nil {
		log.Printf("failed to save player count: %v", err)
	}

	a.scene = newRollingScene(a, started.Game)
	return nil
}

// finishGame records the completed game and moves to the results screen
func (a *App) finishGame() {
	ctx := context.Background()

	standings, err := a.gameService.GetFinalStandings(ctx, &game.GetFinalStandingsInput{
		GameID: a.gameID,
	})
	if err != nil {
		log.Printf("failed to compute standings: %v", err)
		a.scene = newPlayerCountScene(a)
		return
	}

	results := make([]*models.MatchResult, 0, len(standings.Standings))
	for _, standing := range standings.Standings {
		results = append(results, &models.MatchResult{
			Seat:       standing.Seat,
			PlayerName: standing.PlayerName,
			Position:   standing.Position,
			UpperScore: standing.Upper,
			Bonus:      standing.Bonus,
			LowerScore: standing.Lower,
			TotalScore: standing.Total,
		})
	}

	if _, err := a.statsService.RecordMatch(ctx, &stats.RecordMatchInput{
		GameID:  a.gameID,
		Results: results,
	}); err != nil {
		log.Printf("failed to record match: %v", err)
	}

	if err := a.settings.IncrementGamesPlayed(); err != nil {
		log.Printf("failed to update games played: %v", err)
	}

	a.scene = newGameOverScene(a, standings.Standings)
}
