package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/config"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/handlers/gui"
	gameRepo "github.com/KirkDiggler/yahtzee/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/yahtzee/internal/repositories/history"
	gameService "github.com/KirkDiggler/yahtzee/internal/services/game"
	messagingService "github.com/KirkDiggler/yahtzee/internal/services/messaging"
	statsService "github.com/KirkDiggler/yahtzee/internal/services/stats"
	"github.com/KirkDiggler/yahtzee/internal/settings"
)

func main() {
	// Load the optional .env file before reading configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the match history database
	db, err := historyRepo.InitDB(cfg.HistoryDBPath())
	if err != nil {
		log.Fatalf("Failed to open history database: %v", err)
	}
	defer db.Close()

	// Initialize repositories
	gamesRepo := gameRepo.NewMemory()

	histRepo, err := historyRepo.NewSQLite(&historyRepo.Config{
		DB: db,
	})
	if err != nil {
		log.Fatalf("Failed to create history repository: %v", err)
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		Seed: cfg.DiceSeed,
	})

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:     cfg.MaxPlayers,
		Rounds:         cfg.Rounds,
		RerollsPerTurn: cfg.RerollsPerTurn,
		GameRepo:       gamesRepo,
		DiceRoller:     diceRoller,
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize stats service
	statsSvc, err := statsService.New(&statsService.Config{
		HistoryRepo:   histRepo,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create stats service: %v", err)
	}

	// Initialize messaging service
	messagingSvc, err := messagingService.NewService(&messagingService.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize the settings store
	settingsStore := settings.NewStore(cfg.SettingsPath())

	// Initialize the app
	app, err := gui.New(&gui.Config{
		GameService:      gameSvc,
		StatsService:     statsSvc,
		MessagingService: messagingSvc,
		Settings:         settingsStore,
		WindowScale:      cfg.WindowScale,
		TicksPerSecond:   cfg.TicksPerSecond,
		MaxPlayers:       cfg.MaxPlayers,
		Rounds:           cfg.Rounds,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// Run until the window closes
	if err := app.Run(); err != nil {
		log.Fatalf("App exited with error: %v", err)
	}
}
