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

// workspaceRepository implements the repository.WorkspaceRepository interface using GORM.
type workspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository is the constructor for workspaceRepository.
func NewWorkspaceRepository(db *gorm.DB) repository.WorkspaceRepository {
	return &workspaceRepository{db: db}
}

// Create persists a new workspace for its owner.
func (repo *workspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	workspaceM := fromWorkspaceDomain(workspace)

	if err := repo.db.WithContext(ctx).Create(workspaceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("workspace owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workspace")
	}

	workspace.ID = workspaceM.ID
	workspace.CreatedAt = workspaceM.CreatedAt
	workspace.UpdatedAt = workspaceM.UpdatedAt

	return nil
}

// FindByID retrieves a workspace by ID, scoped to its owner.
func (repo *workspaceRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Workspace, error) {
	var workspaceM model.WorkspaceModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workspaceM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkspaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find workspace by id")
	}

	return toWorkspaceDomain(&workspaceM), nil
}

// ListByUser returns all workspaces owned by the given user, newest first.
func (repo *workspaceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error) {
	var workspaceMs []*model.WorkspaceModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workspaceMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list workspaces")
	}

	workspaces := make([]*entity.Workspace, 0, len(workspaceMs))
	for _, workspaceM := range workspaceMs {
		workspaces = append(workspaces, toWorkspaceDomain(workspaceM))
	}

	return workspaces, nil
}

// Update persists changes to an existing workspace, scoped to its owner.
func (repo *workspaceRepository) Update(ctx context.Context, workspace *entity.Workspace) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkspaceModel{}).
		Where("id = ? AND user_id = ?", workspace.ID, workspace.UserID).
		Updates(map[string]any{"name": workspace.Name})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update workspace")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkspaceNotFound
	}

	return nil
}

// Delete removes a workspace. Ownership is verified by the caller.
func (repo *workspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WorkspaceModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete workspace")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkspaceNotFound
	}

	return nil
}

// --- Mapper functions ---

func toWorkspaceDomain(data *model.WorkspaceModel) *entity.Workspace {
	if data == nil {
		return nil
	}

	return &entity.Workspace{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromWorkspaceDomain(workspace *entity.Workspace) *model.WorkspaceModel {
	if workspace == nil {
		return nil
	}

	return &model.WorkspaceModel{
		ID:        workspace.ID,
		UserID:    workspace.UserID,
		Name:      workspace.Name,
		CreatedAt: workspace.CreatedAt,
		UpdatedAt: workspace.UpdatedAt,
	}
}
