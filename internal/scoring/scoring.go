// Package scoring evaluates dice hands against the thirteen Yahtzee
// categories and totals completed scorecards.
package scoring

import (
	"errors"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

const (
	// FullHouseScore is the flat score for a full house
	FullHouseScore = 25

	// SmallStraightScore is the flat score for a small straight
	SmallStraightScore = 30

	// LargeStraightScore is the flat score for a large straight
	LargeStraightScore = 40

	// YahtzeeScore is the flat score for five of a kind
	YahtzeeScore = 50

	// UpperBonus is awarded when the upper section reaches UpperBonusThreshold
	UpperBonus = 35

	// UpperBonusThreshold is the upper section total needed for the bonus
	UpperBonusThreshold = 63
)

var (
	// ErrInvalidDiceCount is returned when a hand does not contain exactly five dice
	ErrInvalidDiceCount = errors.New("hand must contain exactly five dice")

	// ErrInvalidDieValue is returned when a die shows a face outside 1 through 6
	ErrInvalidDieValue = errors.New("die value must be between 1 and 6")

	// ErrUnknownCategory is returned when a category is not one of the thirteen
	ErrUnknownCategory = errors.New("unknown category")
)

func validateDice(dice []int) error {
	if len(dice) != models.NumDice {
		return ErrInvalidDiceCount
	}
	for _, die := range dice {
		if die < 1 || die > 6 {
			return ErrInvalidDieValue
		}
	}
	return nil
}

// Score returns the score the dice earn in the given category. A hand
// that does not satisfy a combination category scores 0.
func Score(category models.Category, dice []int) (int, error) {
	if err := validateDice(dice); err != nil {
		return 0, err
	}

	if face := category.Face(); face > 0 {
		count := 0
		for _, die := range dice {
			if die == face {
				count++
			}
		}
		return face * count, nil
	}

	switch category {
	case models.CategoryThreeOfAKind:
		if maxCount(dice) >= 3 {
			return sum(dice), nil
		}
		return 0, nil
	case models.CategoryFourOfAKind:
		if maxCount(dice) >= 4 {
			return sum(dice), nil
		}
		return 0, nil
	case models.CategoryFullHouse:
		if isFullHouse(dice) {
			return FullHouseScore, nil
		}
		return 0, nil
	case models.CategorySmallStraight:
		if hasRun(dice, 4) {
			return SmallStraightScore, nil
		}
		return 0, nil
	case models.CategoryLargeStraight:
		if hasRun(dice, 5) {
			return LargeStraightScore, nil
		}
		return 0, nil
	case models.CategoryYahtzee:
		if maxCount(dice) == models.NumDice {
			return YahtzeeScore, nil
		}
		return 0, nil
	case models.CategoryChance:
		return sum(dice), nil
	default:
		return 0, ErrUnknownCategory
	}
}

// PossibleScores returns the score every category would earn for the dice
func PossibleScores(dice []int) (map[models.Category]int, error) {
	if err := validateDice(dice); err != nil {
		return nil, err
	}

	scores := make(map[models.Category]int, len(models.Categories()))
	for _, category := range models.Categories() {
		score, err := Score(category, dice)
		if err != nil {
			return nil, err
		}
		scores[category] = score
	}

	return scores, nil
}

// RequiresCombo reports whether the category only pays out for a
// qualifying combination. Combination categories cannot be chosen while
// their possible score is zero unless the player is deliberately
// scoring a zero.
func RequiresCombo(category models.Category) bool {
	switch category {
	case models.CategoryThreeOfAKind, models.CategoryFourOfAKind,
		models.CategoryFullHouse, models.CategorySmallStraight,
		models.CategoryLargeStraight, models.CategoryYahtzee:
		return true
	default:
		return false
	}
}

// Summary breaks a scorecard down into its scoring sections
type Summary struct {
	// Upper is the upper section total before the bonus
	Upper int

	// Bonus is the upper section bonus, UpperBonus or 0
	Bonus int

	// Lower is the lower section total
	Lower int

	// Total is upper plus bonus plus lower
	Total int
}

// FinalScore totals the scorecard, awarding the upper section bonus when
// the upper section reaches the threshold. Categories that were never
// scored count for nothing.
func FinalScore(scorecard *models.Scorecard) Summary {
	var summary Summary
	if scorecard == nil {
		return summary
	}

	for _, category := range models.Categories() {
		score, ok := scorecard.Score(category)
		if !ok {
			continue
		}
		if category.IsUpper() {
			summary.Upper += score
		} else {
			summary.Lower += score
		}
	}

	if summary.Upper >= UpperBonusThreshold {
		summary.Bonus = UpperBonus
	}
	summary.Total = summary.Upper + summary.Bonus + summary.Lower

	return summary
}

func sum(dice []int) int {
	total := 0
	for _, die := range dice {
		total += die
	}
	return total
}

func maxCount(dice []int) int {
	counts := make(map[int]int)
	best := 0
	for _, die := range dice {
		counts[die]++
		if counts[die] > best {
			best = counts[die]
		}
	}
	return best
}

func isFullHouse(dice []int) bool {
	counts := make(map[int]int)
	for _, die := range dice {
		counts[die]++
	}
	if len(counts) != 2 {
		return false
	}
	for _, count := range counts {
		if count != 2 && count != 3 {
			return false
		}
	}
	return true
}

func hasRun(dice []int, length int) bool {
	faces := make(map[int]bool)
	for _, die := range dice {
		faces[die] = true
	}
	for start := 1; start+length-1 <= 6; start++ {
		run := true
		for face := start; face < start+length; face++ {
			if !faces[face] {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	return false
}
