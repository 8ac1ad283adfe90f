package impl

import (
	"context"
	"testing"

	"boardroom/internal/domain/entity"
	domainerrors "boardroom/internal/domain/errors"
	"boardroom/internal/domain/repository"
	"boardroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	workspaceRepo := &fakeWorkspaceRepo{
		createFn: func(_ context.Context, workspace *entity.Workspace) error {
			workspace.ID = uuid.New()

			return nil
		},
	}

	svc := &workspaceService{workspaceRepo: workspaceRepo, logger: newDiscardLogger()}

	workspace, err := svc.Create(ctx, &usecase.CreateWorkspaceInput{
		UserID: userID,
		Name:   "Q3 Planning",
	})

	require.NoError(t, err)
	assert.Equal(t, "Q3 Planning", workspace.Name)
	assert.Equal(t, userID, workspace.UserID)
	assert.NotEqual(t, uuid.Nil, workspace.ID)
}

func TestWorkspaceService_Get_NotOwned(t *testing.T) {
	ctx := context.Background()

	workspaceRepo := &fakeWorkspaceRepo{
		findByIDFn: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Workspace, error) {
			return nil, repository.ErrWorkspaceNotFound
		},
	}

	svc := &workspaceService{workspaceRepo: workspaceRepo, logger: newDiscardLogger()}

	workspace, err := svc.Get(ctx, uuid.New(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, workspace)
	assert.ErrorIs(t, err, domainerrors.ErrWorkspaceNotFound)
}

func TestWorkspaceService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()

	var updatedName string
	workspaceRepo := &fakeWorkspaceRepo{
		updateFn: func(_ context.Context, workspace *entity.Workspace) error {
			updatedName = workspace.Name

			return nil
		},
		findByIDFn: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Workspace, error) {
			return &entity.Workspace{ID: workspaceID, UserID: userID, Name: updatedName}, nil
		},
	}

	svc := &workspaceService{workspaceRepo: workspaceRepo, logger: newDiscardLogger()}

	workspace, err := svc.Update(ctx, &usecase.UpdateWorkspaceInput{
		ID:     workspaceID,
		UserID: userID,
		Name:   "Renamed",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", workspace.Name)
}

func TestWorkspaceService_Delete_CascadesNodesAndMessages(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()
	nodeA := uuid.New()
	nodeB := uuid.New()

	var deletedMessageNodes []uuid.UUID
	var deletedNodesWorkspace, deletedWorkspace uuid.UUID

	workspaceRepo := &fakeWorkspaceRepo{
		findByIDFn: func(_ context.Context, id, uid uuid.UUID) (*entity.Workspace, error) {
			require.Equal(t, workspaceID, id)
			require.Equal(t, userID, uid)

			return &entity.Workspace{ID: workspaceID, UserID: userID}, nil
		},
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			deletedWorkspace = id

			return nil
		},
	}
	nodeRepo := &fakeNodeRepo{
		listByWorkspaceFn: func(context.Context, uuid.UUID) ([]*entity.Node, error) {
			return []*entity.Node{{ID: nodeA}, {ID: nodeB}}, nil
		},
		deleteByWorkspaceFn: func(_ context.Context, id uuid.UUID) error {
			deletedNodesWorkspace = id

			return nil
		},
	}
	messageRepo := &fakeMessageRepo{
		deleteByNodeIDsFn: func(_ context.Context, nodeIDs []uuid.UUID) error {
			deletedMessageNodes = nodeIDs

			return nil
		},
	}

	txManager := &fakeTxManager{
		workspaceRepo: workspaceRepo,
		nodeRepo:      nodeRepo,
		messageRepo:   messageRepo,
	}

	svc := &workspaceService{
		txManager:     txManager,
		workspaceRepo: workspaceRepo,
		logger:        newDiscardLogger(),
	}

	err := svc.Delete(ctx, workspaceID, userID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{nodeA, nodeB}, deletedMessageNodes)
	assert.Equal(t, workspaceID, deletedNodesWorkspace)
	assert.Equal(t, workspaceID, deletedWorkspace)
}

func TestWorkspaceService_Delete_NotOwned(t *testing.T) {
	ctx := context.Background()

	workspaceRepo := &fakeWorkspaceRepo{
		findByIDFn: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Workspace, error) {
			return nil, repository.ErrWorkspaceNotFound
		},
	}

	txManager := &fakeTxManager{workspaceRepo: workspaceRepo}

	svc := &workspaceService{
		txManager:     txManager,
		workspaceRepo: workspaceRepo,
		logger:        newDiscardLogger(),
	}

	err := svc.Delete(ctx, uuid.New(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWorkspaceNotFound)
}
