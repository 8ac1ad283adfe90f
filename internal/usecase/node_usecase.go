package usecase

import (
	"context"

	"boardroom/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNodeInput defines the data required to create a node.
type CreateNodeInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Name        string
	ModelID     string
}

// UpdateNodeInput defines the data for updating a node. Nil fields are left
// unchanged. A non-nil WorkspaceID moves the node to another workspace the
// user owns.
type UpdateNodeInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WorkspaceID *uuid.UUID
	Name        *string
	ModelID     *string
}

// NodeUsecase defines the interface for node-related business operations.
type NodeUsecase interface {
	Create(ctx context.Context, input *CreateNodeInput) (*entity.Node, error)

	// List returns the user's nodes, optionally narrowed to one workspace.
	List(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]*entity.Node, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entity.Node, error)
	Update(ctx context.Context, input *UpdateNodeInput) (*entity.Node, error)

	// Delete removes the node together with its messages in a single
	// transaction.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
