package repository

import (
	"context"
	"errors"

	"boardroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWorkspaceNotFound is returned when a workspace does not exist or does
// not belong to the requesting user.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// WorkspaceRepository defines the standard operations for workspace persistence.
// Lookups are always scoped to the owning user; a workspace owned by someone
// else behaves exactly like a missing one.
type WorkspaceRepository interface {
	// Create persists a new workspace.
	Create(ctx context.Context, workspace *entity.Workspace) error

	// FindByID retrieves a workspace by ID, scoped to the owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Workspace, error)

	// ListByUser retrieves all workspaces owned by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error)

	// Update modifies an existing workspace.
	Update(ctx context.Context, workspace *entity.Workspace) error

	// Delete removes a workspace. Node and message cleanup is the use case's
	// responsibility inside a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
