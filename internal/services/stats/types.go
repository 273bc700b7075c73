package stats

import (
	"time"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/models"
	historyRepo "github.com/KirkDiggler/yahtzee/internal/repositories/history"
)

// Config holds the dependencies for the stats service
type Config struct {
	// HistoryRepo persists finished matches
	HistoryRepo historyRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator provides unique identifiers
	UUIDGenerator uuid.UUID
}

// RecordMatchInput contains parameters for recording a finished game
type RecordMatchInput struct {
	// GameID identifies the game the match came from
	GameID string

	// Results are the final standings in seat order
	Results []*models.MatchResult
}

// RecordMatchOutput contains the result of recording a match
type RecordMatchOutput struct {
	// MatchID is the identifier of the stored match
	MatchID string
}

// GetRecentMatchesInput contains parameters for listing recent matches
type GetRecentMatchesInput struct {
	// Limit caps how many matches come back. Zero asks for the default.
	Limit int
}

// GetRecentMatchesOutput contains recently played matches
type GetRecentMatchesOutput struct {
	// Matches are ordered most recent first
	Matches []*models.Match
}

// GetBestScoreInput contains parameters for looking up the record score
type GetBestScoreInput struct{}

// GetBestScoreOutput contains the best total ever recorded
type GetBestScoreOutput struct {
	// Found is false when no match has been recorded yet
	Found bool

	// PlayerName is the record holder
	PlayerName string

	// TotalScore is the record total
	TotalScore int

	// PlayedAt is when the record was set
	PlayedAt time.Time
}
