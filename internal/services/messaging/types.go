package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetTurnStartMessageInput contains parameters for announcing a player's turn
type GetTurnStartMessageInput struct {
	// PlayerName is the name of the player taking the turn
	PlayerName string

	// Round is the current round number
	Round int

	// FinalRound indicates this is the last round of the game
	FinalRound bool
}

// GetTurnStartMessageOutput contains the result of getting a turn start message
type GetTurnStartMessageOutput struct {
	// Message is the generated message
	Message string
}

// GetRollReactionMessageInput contains parameters for reacting to a roll
type GetRollReactionMessageInput struct {
	// PlayerName is the name of the player who rolled
	PlayerName string

	// Dice are the face values on the table
	Dice []int
}

// GetRollReactionMessageOutput contains the result of getting a roll reaction
type GetRollReactionMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetZeroModeMessageInput is the input for GetZeroModeMessage
type GetZeroModeMessageInput struct {
	PlayerName string
}

// GetZeroModeMessageOutput is the output for GetZeroModeMessage
type GetZeroModeMessageOutput struct {
	Message string
}

// GetGameOverMessageInput is the input for GetGameOverMessage
type GetGameOverMessageInput struct {
	WinnerName   string
	WinningScore int
	Tied         bool
}

// GetGameOverMessageOutput is the output for GetGameOverMessage
type GetGameOverMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64
}
