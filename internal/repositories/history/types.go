package history

import (
	"time"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

type SaveMatchInput struct {
	Match *models.Match
}

type ListRecentMatchesInput struct {
	Limit int
}

type ListRecentMatchesOutput struct {
	Matches []*models.Match
}

type GetBestScoreInput struct {
}

type GetBestScoreOutput struct {
	// Found indicates whether any match has been recorded yet
	Found bool

	// PlayerName is the name of the record holder
	PlayerName string

	// TotalScore is the record total
	TotalScore int

	// PlayedAt is when the record was set
	PlayedAt time.Time
}
