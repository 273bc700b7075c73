package stats

import (
	"context"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/models"
	historyRepo "github.com/KirkDiggler/yahtzee/internal/repositories/history"
)

// service implements the Service interface
type service struct {
	historyRepo   historyRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new stats service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		historyRepo:   cfg.HistoryRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// RecordMatch stores the final standings of a completed game
func (s *service) RecordMatch(ctx context.Context, input *RecordMatchInput) (*RecordMatchOutput, error) {
	if len(input.Results) == 0 {
		return nil, ErrNoResults
	}

	match := &models.Match{
		ID:          s.uuidGenerator.NewUUID(),
		GameID:      input.GameID,
		PlayerCount: len(input.Results),
		PlayedAt:    s.clock.Now(),
		Results:     input.Results,
	}

	// Save the match
	err := s.historyRepo.SaveMatch(ctx, &historyRepo.SaveMatchInput{
		Match: match,
	})
	if err != nil {
		return nil, err
	}

	return &RecordMatchOutput{
		MatchID: match.ID,
	}, nil
}

// GetRecentMatches lists recorded matches, newest first
func (s *service) GetRecentMatches(ctx context.Context, input *GetRecentMatchesInput) (*GetRecentMatchesOutput, error) {
	output, err := s.historyRepo.ListRecentMatches(ctx, &historyRepo.ListRecentMatchesInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetRecentMatchesOutput{
		Matches: output.Matches,
	}, nil
}

// GetBestScore returns the highest total ever recorded
func (s *service) GetBestScore(ctx context.Context, input *GetBestScoreInput) (*GetBestScoreOutput, error) {
	output, err := s.historyRepo.GetBestScore(ctx, &historyRepo.GetBestScoreInput{})
	if err != nil {
		return nil, err
	}

	return &GetBestScoreOutput{
		Found:      output.Found,
		PlayerName: output.PlayerName,
		TotalScore: output.TotalScore,
		PlayedAt:   output.PlayedAt,
	}, nil
}
