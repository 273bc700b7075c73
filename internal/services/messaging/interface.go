package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetTurnStartMessage returns a message announcing a player's turn
	GetTurnStartMessage(ctx context.Context, input *GetTurnStartMessageInput) (*GetTurnStartMessageOutput, error)

	// GetRollReactionMessage returns a reaction to the dice on the table
	GetRollReactionMessage(ctx context.Context, input *GetRollReactionMessageInput) (*GetRollReactionMessageOutput, error)

	// GetZeroModeMessage returns a message for a player taking a deliberate zero
	GetZeroModeMessage(ctx context.Context, input *GetZeroModeMessageInput) (*GetZeroModeMessageOutput, error)

	// GetGameOverMessage returns a message for the end of the game
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
