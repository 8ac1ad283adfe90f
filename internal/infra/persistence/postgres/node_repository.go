package postgres

import (
	"context"

	"boardroom/internal/domain/entity"
	domainerrors "boardroom/internal/domain/errors"
	"boardroom/internal/domain/repository"
	"boardroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// nodeRepository implements the repository.NodeRepository interface using GORM.
type nodeRepository struct {
	db *gorm.DB
}

// NewNodeRepository is the constructor for nodeRepository.
func NewNodeRepository(db *gorm.DB) repository.NodeRepository {
	return &nodeRepository{db: db}
}

// Create persists a new node.
func (repo *nodeRepository) Create(ctx context.Context, node *entity.Node) error {
	nodeM := fromNodeDomain(node)

	if err := repo.db.WithContext(ctx).Create(nodeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWorkspaceNotFound.WrapMessage("node workspace does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create node")
	}

	node.ID = nodeM.ID
	node.CreatedAt = nodeM.CreatedAt
	node.UpdatedAt = nodeM.UpdatedAt

	return nil
}

// FindByID retrieves a node by ID, scoped to its owner.
func (repo *nodeRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Node, error) {
	var nodeM model.NodeModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&nodeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find node by id")
	}

	return toNodeDomain(&nodeM), nil
}

// ListByUser returns the user's nodes, optionally narrowed to one workspace.
func (repo *nodeRepository) ListByUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]*entity.Node, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if workspaceID != nil {
		query = query.Where("workspace_id = ?", *workspaceID)
	}

	var nodeMs []*model.NodeModel
	if err := query.Order("created_at DESC").Find(&nodeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nodes")
	}

	nodes := make([]*entity.Node, 0, len(nodeMs))
	for _, nodeM := range nodeMs {
		nodes = append(nodes, toNodeDomain(nodeM))
	}

	return nodes, nil
}

// ListByWorkspace returns every node in the workspace, oldest first.
func (repo *nodeRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.Node, error) {
	var nodeMs []*model.NodeModel
	err := repo.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&nodeMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list workspace nodes")
	}

	nodes := make([]*entity.Node, 0, len(nodeMs))
	for _, nodeM := range nodeMs {
		nodes = append(nodes, toNodeDomain(nodeM))
	}

	return nodes, nil
}

// Update persists changes to an existing node, scoped to its owner.
func (repo *nodeRepository) Update(ctx context.Context, node *entity.Node) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NodeModel{}).
		Where("id = ? AND user_id = ?", node.ID, node.UserID).
		Updates(map[string]any{
			"workspace_id": node.WorkspaceID,
			"name":         node.Name,
			"model_id":     node.ModelID,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update node")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNodeNotFound
	}

	return nil
}

// Delete removes a node. Ownership is verified by the caller.
func (repo *nodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NodeModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete node")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNodeNotFound
	}

	return nil
}

// DeleteByWorkspace removes every node in the workspace.
func (repo *nodeRepository) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Delete(&model.NodeModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete workspace nodes")
	}

	return nil
}

// --- Mapper functions ---

func toNodeDomain(data *model.NodeModel) *entity.Node {
	if data == nil {
		return nil
	}

	return &entity.Node{
		ID:          data.ID,
		UserID:      data.UserID,
		WorkspaceID: data.WorkspaceID,
		Name:        data.Name,
		ModelID:     data.ModelID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromNodeDomain(node *entity.Node) *model.NodeModel {
	if node == nil {
		return nil
	}

	return &model.NodeModel{
		ID:          node.ID,
		UserID:      node.UserID,
		WorkspaceID: node.WorkspaceID,
		Name:        node.Name,
		ModelID:     node.ModelID,
		CreatedAt:   node.CreatedAt,
		UpdatedAt:   node.UpdatedAt,
	}
}
