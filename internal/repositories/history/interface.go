package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yahtzee/internal/repositories/history Repository

import (
	"context"
)

// Repository defines the interface for match history persistence
type Repository interface {
	// SaveMatch persists a completed match and its per-player results
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// ListRecentMatches retrieves the most recently played matches
	ListRecentMatches(ctx context.Context, input *ListRecentMatchesInput) (*ListRecentMatchesOutput, error)

	// GetBestScore retrieves the highest total ever recorded
	GetBestScore(ctx context.Context, input *GetBestScoreInput) (*GetBestScoreOutput, error)
}
