package interfaces

import (
	"context"

	"carmatch/backend/internal/model"
	"carmatch/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// DialogueService defines the contract of the conversational recommendation
// engine as consumed by the request-handling layer.
type DialogueService interface {
	StartNewConversation(ctx context.Context, userID string) (*service.NewConversation, error)
	ProcessTurn(ctx context.Context, userID string, turn *model.ChatTurn) (*model.ChatResponse, error)
	GetHistory(ctx context.Context, userID, conversationID string) ([]model.ChatHistoryRecord, error)
}
