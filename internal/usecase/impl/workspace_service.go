package impl

import (
	"context"
	"log/slog"

	deliverycontext "boardroom/internal/delivery/context"
	"boardroom/internal/domain/entity"
	domainerrors "boardroom/internal/domain/errors"
	"boardroom/internal/domain/repository"
	"boardroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workspaceService implements the WorkspaceUsecase interface.
type workspaceService struct {
	txManager     repository.TransactionManager
	workspaceRepo repository.WorkspaceRepository
	logger        *slog.Logger
}

// WorkspaceServiceParams holds dependencies for WorkspaceService, injected by Fx.
type WorkspaceServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	WorkspaceRepo repository.WorkspaceRepository
	Logger        *slog.Logger
}

// NewWorkspaceService is the constructor for workspaceService.
func NewWorkspaceService(params WorkspaceServiceParams) usecase.WorkspaceUsecase {
	return &workspaceService{
		txManager:     params.TxManager,
		workspaceRepo: params.WorkspaceRepo,
		logger:        params.Logger,
	}
}

func (srv *workspaceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new workspace for the requesting user.
func (srv *workspaceService) Create(ctx context.Context, input *usecase.CreateWorkspaceInput) (*entity.Workspace, error) {
	workspace := &entity.Workspace{
		UserID: input.UserID,
		Name:   input.Name,
	}

	if err := srv.workspaceRepo.Create(ctx, workspace); err != nil {
		srv.log(ctx).Error("Failed to create workspace", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create workspace")
	}

	srv.log(ctx).Debug("Workspace created", slog.Any("workspaceID", workspace.ID), slog.Any("userID", input.UserID))

	return workspace, nil
}

// List returns all workspaces owned by the user.
func (srv *workspaceService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error) {
	workspaces, err := srv.workspaceRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list workspaces", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list workspaces")
	}

	return workspaces, nil
}

// Get returns one workspace, scoped to the owner.
func (srv *workspaceService) Get(ctx context.Context, id, userID uuid.UUID) (*entity.Workspace, error) {
	workspace, err := srv.workspaceRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			return nil, domainerrors.ErrWorkspaceNotFound.WrapMessage("workspace lookup failed")
		}

		return nil, errors.Wrap(err, "failed to get workspace")
	}

	return workspace, nil
}

// Update renames a workspace, scoped to the owner.
func (srv *workspaceService) Update(ctx context.Context, input *usecase.UpdateWorkspaceInput) (*entity.Workspace, error) {
	workspace := &entity.Workspace{
		ID:     input.ID,
		UserID: input.UserID,
		Name:   input.Name,
	}

	if err := srv.workspaceRepo.Update(ctx, workspace); err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			return nil, domainerrors.ErrWorkspaceNotFound.WrapMessage("workspace update failed")
		}

		srv.log(ctx).Error("Failed to update workspace", slog.Any("workspaceID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update workspace")
	}

	updated, err := srv.workspaceRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated workspace")
	}

	return updated, nil
}

// Delete removes the workspace and everything nested under it. The cascade
// (messages, then nodes, then the workspace) runs inside one transaction so
// a failure leaves nothing half-deleted.
func (srv *workspaceService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting workspace", slog.Any("workspaceID", id), slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workspaceRepo := repoFactory.NewWorkspaceRepository()
		nodeRepo := repoFactory.NewNodeRepository()
		messageRepo := repoFactory.NewMessageRepository()

		if _, err := workspaceRepo.FindByID(ctx, id, userID); err != nil {
			if errors.Is(err, repository.ErrWorkspaceNotFound) {
				return domainerrors.ErrWorkspaceNotFound.WrapMessage("workspace delete failed")
			}

			return errors.Wrap(err, "failed to load workspace for delete")
		}

		nodes, err := nodeRepo.ListByWorkspace(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list nodes for workspace delete")
		}

		nodeIDs := make([]uuid.UUID, 0, len(nodes))
		for _, node := range nodes {
			nodeIDs = append(nodeIDs, node.ID)
		}

		if err := messageRepo.DeleteByNodeIDs(ctx, nodeIDs); err != nil {
			return errors.Wrap(err, "failed to delete workspace messages")
		}

		if err := nodeRepo.DeleteByWorkspace(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete workspace nodes")
		}

		if err := workspaceRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete workspace")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute workspace delete transaction", slog.Any("workspaceID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute workspace delete transaction")
	}

	srv.log(ctx).Debug("Workspace deleted", slog.Any("workspaceID", id))

	return nil
}
