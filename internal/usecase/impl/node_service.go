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

// nodeService implements the NodeUsecase interface.
type nodeService struct {
	txManager     repository.TransactionManager
	nodeRepo      repository.NodeRepository
	workspaceRepo repository.WorkspaceRepository
	logger        *slog.Logger
}

// NodeServiceParams holds dependencies for NodeService, injected by Fx.
type NodeServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	NodeRepo      repository.NodeRepository
	WorkspaceRepo repository.WorkspaceRepository
	Logger        *slog.Logger
}

// NewNodeService is the constructor for nodeService.
func NewNodeService(params NodeServiceParams) usecase.NodeUsecase {
	return &nodeService{
		txManager:     params.TxManager,
		nodeRepo:      params.NodeRepo,
		workspaceRepo: params.WorkspaceRepo,
		logger:        params.Logger,
	}
}

func (srv *nodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new node after verifying the target workspace belongs to
// the user and the advisor model exists.
func (srv *nodeService) Create(ctx context.Context, input *usecase.CreateNodeInput) (*entity.Node, error) {
	if !entity.ValidAdvisorID(input.ModelID) {
		return nil, domainerrors.ErrInvalidAdvisorModel.WrapMessage("node creation failed")
	}

	if _, err := srv.workspaceRepo.FindByID(ctx, input.WorkspaceID, input.UserID); err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			return nil, domainerrors.ErrWorkspaceNotFound.WrapMessage("node workspace lookup failed")
		}

		return nil, errors.Wrap(err, "failed to verify node workspace")
	}

	node := &entity.Node{
		UserID:      input.UserID,
		WorkspaceID: input.WorkspaceID,
		Name:        input.Name,
		ModelID:     input.ModelID,
	}

	if err := srv.nodeRepo.Create(ctx, node); err != nil {
		srv.log(ctx).Error("Failed to create node", slog.Any("workspaceID", input.WorkspaceID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create node")
	}

	srv.log(ctx).Debug("Node created", slog.Any("nodeID", node.ID), slog.String("modelID", node.ModelID))

	return node, nil
}

// List returns the user's nodes, optionally narrowed to one workspace.
func (srv *nodeService) List(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]*entity.Node, error) {
	nodes, err := srv.nodeRepo.ListByUser(ctx, userID, workspaceID)
	if err != nil {
		srv.log(ctx).Error("Failed to list nodes", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list nodes")
	}

	return nodes, nil
}

// Get returns one node, scoped to the owner.
func (srv *nodeService) Get(ctx context.Context, id, userID uuid.UUID) (*entity.Node, error) {
	node, err := srv.nodeRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNodeNotFound) {
			return nil, domainerrors.ErrNodeNotFound.WrapMessage("node lookup failed")
		}

		return nil, errors.Wrap(err, "failed to get node")
	}

	return node, nil
}

// Update changes a node's name, bound model, and/or workspace, scoped to the
// owner. Moving a node requires the user to own the target workspace too.
func (srv *nodeService) Update(ctx context.Context, input *usecase.UpdateNodeInput) (*entity.Node, error) {
	node, err := srv.nodeRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNodeNotFound) {
			return nil, domainerrors.ErrNodeNotFound.WrapMessage("node update failed")
		}

		return nil, errors.Wrap(err, "failed to load node for update")
	}

	if input.WorkspaceID != nil {
		if _, err := srv.workspaceRepo.FindByID(ctx, *input.WorkspaceID, input.UserID); err != nil {
			if errors.Is(err, repository.ErrWorkspaceNotFound) {
				return nil, domainerrors.ErrWorkspaceNotFound.WrapMessage("node move failed")
			}

			return nil, errors.Wrap(err, "failed to verify target workspace")
		}
		node.WorkspaceID = *input.WorkspaceID
	}
	if input.Name != nil {
		node.Name = *input.Name
	}
	if input.ModelID != nil {
		if !entity.ValidAdvisorID(*input.ModelID) {
			return nil, domainerrors.ErrInvalidAdvisorModel.WrapMessage("node update failed")
		}
		node.ModelID = *input.ModelID
	}

	if err := srv.nodeRepo.Update(ctx, node); err != nil {
		srv.log(ctx).Error("Failed to update node", slog.Any("nodeID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update node")
	}

	return node, nil
}

// Delete removes the node and its messages in one transaction.
func (srv *nodeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting node", slog.Any("nodeID", id), slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nodeRepo := repoFactory.NewNodeRepository()
		messageRepo := repoFactory.NewMessageRepository()

		if _, err := nodeRepo.FindByID(ctx, id, userID); err != nil {
			if errors.Is(err, repository.ErrNodeNotFound) {
				return domainerrors.ErrNodeNotFound.WrapMessage("node delete failed")
			}

			return errors.Wrap(err, "failed to load node for delete")
		}

		if err := messageRepo.DeleteByNode(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete node messages")
		}

		if err := nodeRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete node")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute node delete transaction", slog.Any("nodeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute node delete transaction")
	}

	srv.log(ctx).Debug("Node deleted", slog.Any("nodeID", id))

	return nil
}
