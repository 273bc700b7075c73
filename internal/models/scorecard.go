package models

// Scorecard tracks which categories a player has filled and the score
// recorded for each
type Scorecard struct {
	// Scores maps each filled category to the score recorded for it.
	// Categories the player has not yet scored are absent.
	Scores map[Category]int
}

// NewScorecard returns an empty scorecard
func NewScorecard() *Scorecard {
	return &Scorecard{
		Scores: make(map[Category]int),
	}
}

// IsUsed reports whether the category has already been scored
func (s *Scorecard) IsUsed(category Category) bool {
	_, ok := s.Scores[category]
	return ok
}

// Score returns the recorded score for the category and whether the
// category has been filled
func (s *Scorecard) Score(category Category) (int, bool) {
	score, ok := s.Scores[category]
	return score, ok
}

// SetScore records a score for the category
func (s *Scorecard) SetScore(category Category, score int) {
	if s.Scores == nil {
		s.Scores = make(map[Category]int)
	}
	s.Scores[category] = score
}

// Complete reports whether every category has been scored
func (s *Scorecard) Complete() bool {
	return len(s.Scores) == len(Categories())
}
