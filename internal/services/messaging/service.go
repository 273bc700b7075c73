package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	// Seed from the clock unless the config pins the sequence
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetTurnStartMessage returns a message announcing a player's turn
func (s *service) GetTurnStartMessage(ctx context.Context, input *GetTurnStartMessageInput) (*GetTurnStartMessageOutput, error) {
	// In the future, we could fetch these from a repository
	var messages []string

	// Select messages based on where we are in the game
	if input.Round <= 1 {
		messages = []string{
			fmt.Sprintf("%s steps up to the table. Thirteen rounds, one scorecard, no excuses.", input.PlayerName),
			fmt.Sprintf("Fresh scorecard for %s! May the dice gods smile upon you.", input.PlayerName),
			fmt.Sprintf("%s kicks things off. A yahtzee on the opening roll is technically possible!", input.PlayerName),
		}
	} else if input.FinalRound {
		messages = []string{
			fmt.Sprintf("Last round, %s! Make this one count.", input.PlayerName),
			fmt.Sprintf("Final round! %s, it all comes down to this.", input.PlayerName),
			fmt.Sprintf("%s closes out the card. No pressure.", input.PlayerName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s, the dice await your command.", input.PlayerName),
			fmt.Sprintf("Round %d! %s, show us what you've got.", input.Round, input.PlayerName),
			fmt.Sprintf("%s is up. The cup is already shaking.", input.PlayerName),
			fmt.Sprintf("The table belongs to %s now.", input.PlayerName),
		}
	}

	// Select a random message
	selectedMessage := messages[s.rand.Intn(len(messages))]

	return &GetTurnStartMessageOutput{
		Message: selectedMessage,
	}, nil
}

// GetRollReactionMessage returns a reaction to the dice on the table. The
// tone follows the strength of the hand.
func (s *service) GetRollReactionMessage(ctx context.Context, input *GetRollReactionMessageInput) (*GetRollReactionMessageOutput, error) {
	possible, err := scoring.PossibleScores(input.Dice)
	if err != nil {
		return nil, err
	}

	var messages []string
	var tone MessageTone

	// Grade the hand from the top down
	switch {
	case possible[models.CategoryYahtzee] > 0:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("YAHTZEE! %s just rolled five of a kind! Someone check those dice!", input.PlayerName),
			fmt.Sprintf("FIVE OF A KIND! %s, that's the stuff of legend!", input.PlayerName),
			fmt.Sprintf("%s rolled a YAHTZEE! Fifty glorious points on the table!", input.PlayerName),
		}
	case possible[models.CategoryLargeStraight] > 0:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("A large straight! %s lined them all up!", input.PlayerName),
			fmt.Sprintf("%s rolled five in a row! The dice are showing off now.", input.PlayerName),
			fmt.Sprintf("One through five... or two through six! Either way, %s is sitting on forty points.", input.PlayerName),
		}
	case possible[models.CategoryFullHouse] > 0 || possible[models.CategoryFourOfAKind] > 0:
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s is cooking! That hand has serious points in it.", input.PlayerName),
			fmt.Sprintf("Now that's a hand, %s! Don't waste it.", input.PlayerName),
			fmt.Sprintf("The scorecard just sat up straight. Nice roll, %s!", input.PlayerName),
		}
	case possible[models.CategorySmallStraight] > 0 || possible[models.CategoryThreeOfAKind] > 0:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("Not bad, %s! There's something to build on here.", input.PlayerName),
			fmt.Sprintf("%s has the start of something good.", input.PlayerName),
			fmt.Sprintf("Keep going, %s, the scorecard likes what it sees.", input.PlayerName),
		}
	case possible[models.CategoryChance] <= 10:
		tone = ToneSarcastic
		messages = []string{
			fmt.Sprintf("Ouch, %s. Maybe the zero button is your friend this turn.", input.PlayerName),
			fmt.Sprintf("%s, I've seen better hands at a sock puppet show.", input.PlayerName),
			fmt.Sprintf("The dice have spoken, %s, and they said 'not today.'", input.PlayerName),
		}
	default:
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("%s rolls. The scorecard waits.", input.PlayerName),
			fmt.Sprintf("The dice settle for %s. Decisions, decisions.", input.PlayerName),
			fmt.Sprintf("%s shakes out a hand. Plenty of ways to play it.", input.PlayerName),
		}
	}

	// Select a random message
	selectedMessage := messages[s.rand.Intn(len(messages))]

	return &GetRollReactionMessageOutput{
		Message: selectedMessage,
		Tone:    tone,
	}, nil
}

// GetZeroModeMessage returns a message for a player taking a deliberate zero
func (s *service) GetZeroModeMessage(ctx context.Context, input *GetZeroModeMessageInput) (*GetZeroModeMessageOutput, error) {
	messages := []string{
		fmt.Sprintf("%s is taking the zero. Bold strategy, let's see if it pays off.", input.PlayerName),
		fmt.Sprintf("A deliberate zero from %s. Sometimes you have to feed the scorecard.", input.PlayerName),
		fmt.Sprintf("%s sacrifices a category to the dice gods.", input.PlayerName),
	}

	selectedMessage := messages[s.rand.Intn(len(messages))]

	return &GetZeroModeMessageOutput{
		Message: selectedMessage,
	}, nil
}

// GetGameOverMessage returns a message for the end of the game
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	var messages []string

	if input.Tied {
		messages = []string{
			fmt.Sprintf("It's a tie at %d! The scorecard refuses to pick a favorite.", input.WinningScore),
			fmt.Sprintf("Dead heat at %d points! Rematch, obviously.", input.WinningScore),
		}
	} else {
		messages = []string{
			fmt.Sprintf("Game over! %s takes it with %d points!", input.WinnerName, input.WinningScore),
			fmt.Sprintf("The final tally is in. %s wins with %d!", input.WinnerName, input.WinningScore),
			fmt.Sprintf("%s is the champion with %d points! Rack 'em up again?", input.WinnerName, input.WinningScore),
		}
	}

	selectedMessage := messages[s.rand.Intn(len(messages))]

	return &GetGameOverMessageOutput{
		Message: selectedMessage,
	}, nil
}
