package repository

import (
	"context"
	"errors"

	"boardroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNodeNotFound is returned when a node does not exist or does not belong
// to the requesting user.
var ErrNodeNotFound = errors.New("node not found")

// NodeRepository defines the standard operations for node persistence.
type NodeRepository interface {
	// Create persists a new node.
	Create(ctx context.Context, node *entity.Node) error

	// FindByID retrieves a node by ID, scoped to the owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Node, error)

	// ListByUser retrieves a user's nodes ordered by creation time.
	// A non-nil workspaceID narrows the list to that workspace.
	ListByUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]*entity.Node, error)

	// ListByWorkspace retrieves all nodes in a workspace ordered by creation time.
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.Node, error)

	// Update modifies an existing node.
	Update(ctx context.Context, node *entity.Node) error

	// Delete removes a node.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByWorkspace removes every node in a workspace.
	DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}
