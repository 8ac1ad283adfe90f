package usecase

import (
	"context"

	"boardroom/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMessageInput defines the data required to record a message in a node.
type CreateMessageInput struct {
	UserID  uuid.UUID
	NodeID  uuid.UUID
	Sender  string
	Content string
}

// UpdateMessageInput defines the data for editing a message. A non-nil
// Sender relabels the message; it must still be a valid sender value.
type UpdateMessageInput struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Sender  *string
	Content string
}

// MessageUsecase defines the interface for message-related business
// operations. Messages have no owner column of their own; authorization goes
// through the owning node.
type MessageUsecase interface {
	Create(ctx context.Context, input *CreateMessageInput) (*entity.Message, error)

	// List returns messages across all of the user's nodes, or within one
	// node when nodeID is non-nil.
	List(ctx context.Context, userID uuid.UUID, nodeID *uuid.UUID) ([]*entity.Message, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entity.Message, error)
	Update(ctx context.Context, input *UpdateMessageInput) (*entity.Message, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
