package models

// Category identifies a scoring category on a Yahtzee scorecard
type Category string

const (
	// CategoryOnes scores the sum of all dice showing 1
	CategoryOnes Category = "ones"

	// CategoryTwos scores the sum of all dice showing 2
	CategoryTwos Category = "twos"

	// CategoryThrees scores the sum of all dice showing 3
	CategoryThrees Category = "threes"

	// CategoryFours scores the sum of all dice showing 4
	CategoryFours Category = "fours"

	// CategoryFives scores the sum of all dice showing 5
	CategoryFives Category = "fives"

	// CategorySixes scores the sum of all dice showing 6
	CategorySixes Category = "sixes"

	// CategoryThreeOfAKind scores the sum of all dice when at least three match
	CategoryThreeOfAKind Category = "three_of_a_kind"

	// CategoryFourOfAKind scores the sum of all dice when at least four match
	CategoryFourOfAKind Category = "four_of_a_kind"

	// CategoryFullHouse scores a flat 25 for three of a kind plus a pair
	CategoryFullHouse Category = "full_house"

	// CategorySmallStraight scores a flat 30 for four sequential dice
	CategorySmallStraight Category = "small_straight"

	// CategoryLargeStraight scores a flat 40 for five sequential dice
	CategoryLargeStraight Category = "large_straight"

	// CategoryYahtzee scores a flat 50 for five of a kind
	CategoryYahtzee Category = "yahtzee"

	// CategoryChance scores the sum of all dice with no requirement
	CategoryChance Category = "chance"
)

// Categories returns every scoring category in scorecard order, upper
// section first
func Categories() []Category {
	return []Category{
		CategoryOnes,
		CategoryTwos,
		CategoryThrees,
		CategoryFours,
		CategoryFives,
		CategorySixes,
		CategoryThreeOfAKind,
		CategoryFourOfAKind,
		CategoryFullHouse,
		CategorySmallStraight,
		CategoryLargeStraight,
		CategoryYahtzee,
		CategoryChance,
	}
}

// IsUpper reports whether the category belongs to the upper section of
// the scorecard
func (c Category) IsUpper() bool {
	switch c {
	case CategoryOnes, CategoryTwos, CategoryThrees, CategoryFours, CategoryFives, CategorySixes:
		return true
	default:
		return false
	}
}

// Face returns the die face an upper section category counts, or 0 for
// lower section categories
func (c Category) Face() int {
	switch c {
	case CategoryOnes:
		return 1
	case CategoryTwos:
		return 2
	case CategoryThrees:
		return 3
	case CategoryFours:
		return 4
	case CategoryFives:
		return 5
	case CategorySixes:
		return 6
	default:
		return 0
	}
}

// DisplayName returns the human readable name for the category
func (c Category) DisplayName() string {
	switch c {
	case CategoryOnes:
		return "Ones"
	case CategoryTwos:
		return "Twos"
	case CategoryThrees:
		return "Threes"
	case CategoryFours:
		return "Fours"
	case CategoryFives:
		return "Fives"
	case CategorySixes:
		return "Sixes"
	case CategoryThreeOfAKind:
		return "Three of a Kind"
	case CategoryFourOfAKind:
		return "Four of a Kind"
	case CategoryFullHouse:
		return "Full House"
	case CategorySmallStraight:
		return "Small Straight"
	case CategoryLargeStraight:
		return "Large Straight"
	case CategoryYahtzee:
		return "Yahtzee"
	case CategoryChance:
		return "Chance"
	default:
		return string(c)
	}
}

// Valid reports whether the category is one of the thirteen scoring
// categories
func (c Category) Valid() bool {
	switch c {
	case CategoryOnes, CategoryTwos, CategoryThrees, CategoryFours,
		CategoryFives, CategorySixes, CategoryThreeOfAKind, CategoryFourOfAKind,
		CategoryFullHouse, CategorySmallStraight, CategoryLargeStraight,
		CategoryYahtzee, CategoryChance:
		return true
	default:
		return false
	}
}
