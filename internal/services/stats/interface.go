package stats

import "context"

// Service is the interface for the stats service
type Service interface {
	// RecordMatch stores the final standings of a completed game
	RecordMatch(ctx context.Context, input *RecordMatchInput) (*RecordMatchOutput, error)

	// GetRecentMatches lists recorded matches, newest first
	GetRecentMatches(ctx context.Context, input *GetRecentMatchesInput) (*GetRecentMatchesOutput, error)

	// GetBestScore returns the highest total ever recorded
	GetBestScore(ctx context.Context, input *GetBestScoreInput) (*GetBestScoreOutput, error)
}
