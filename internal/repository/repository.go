package repository

import (
	"context"

	"carmatch/backend/internal/engine"
	"carmatch/backend/internal/model"
)

// Repository is the persistence collaborator of the dialogue engine: session
// state, write-only chat history, and execution of inventory query specs.
// This interface makes it easy to switch database implementations.
type Repository interface {
	StartNewSession(ctx context.Context, userID string) (*model.ConversationSession, error)
	GetSession(ctx context.Context, sessionID string) (*model.ConversationSession, error)
	// GetLatestSession returns the owner's most recently touched session,
	// or ErrNotFound when the user has no conversations yet.
	GetLatestSession(ctx context.Context, userID string) (*model.ConversationSession, error)
	// CommitTurn persists the merged session snapshot and appends one
	// history record atomically. Either both land or neither does.
	CommitTurn(ctx context.Context, session *model.ConversationSession, record *model.ChatHistoryRecord) error
	GetHistory(ctx context.Context, sessionID string) ([]model.ChatHistoryRecord, error)

	// SearchVehicles executes a filter/rank spec against the catalog.
	// An empty result is a normal outcome, not an error.
	SearchVehicles(ctx context.Context, spec engine.QuerySpec) ([]model.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error
}
