package repository

import (
	"context"
	"errors"

	"boardroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message does not exist.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the standard operations for message persistence.
// Ownership of messages is derived from the owning node, so reads that must
// be user-scoped either take a node the caller already verified or join
// through the nodes table.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a message by ID. The caller verifies node ownership.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// ListByNode retrieves all messages of a node ordered by creation time.
	ListByNode(ctx context.Context, nodeID uuid.UUID) ([]*entity.Message, error)

	// ListByUser retrieves all messages belonging to any of the user's nodes,
	// ordered by creation time.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)

	// FindLastByNode retrieves the most recent message of a node, or
	// ErrMessageNotFound when the node has none.
	FindLastByNode(ctx context.Context, nodeID uuid.UUID) (*entity.Message, error)

	// Update modifies an existing message.
	Update(ctx context.Context, message *entity.Message) error

	// Delete removes a message.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByNode removes every message of a node.
	DeleteByNode(ctx context.Context, nodeID uuid.UUID) error

	// DeleteByNodeIDs removes every message of the given nodes.
	DeleteByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) error
}
