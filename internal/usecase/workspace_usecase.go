package usecase

import (
	"context"

	"boardroom/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWorkspaceInput defines the data required to create a workspace.
type CreateWorkspaceInput struct {
	UserID uuid.UUID
	Name   string
}

// UpdateWorkspaceInput defines the data required to rename a workspace.
type UpdateWorkspaceInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}

// WorkspaceUsecase defines the interface for workspace-related business operations.
// Every operation is scoped to the requesting user; a workspace owned by
// someone else behaves exactly like a missing one.
type WorkspaceUsecase interface {
	Create(ctx context.Context, input *CreateWorkspaceInput) (*entity.Workspace, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entity.Workspace, error)
	Update(ctx context.Context, input *UpdateWorkspaceInput) (*entity.Workspace, error)

	// Delete removes the workspace together with its nodes and their messages
	// in a single transaction.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
