package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"boardroom/internal/domain/entity"
	"boardroom/internal/domain/repository"
	"boardroom/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- repository fakes ---

type fakeUserRepo struct {
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	createFn      func(ctx context.Context, user *entity.User) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.createFn(ctx, user)
}

type fakeWorkspaceRepo struct {
	createFn     func(ctx context.Context, workspace *entity.Workspace) error
	findByIDFn   func(ctx context.Context, id, userID uuid.UUID) (*entity.Workspace, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error)
	updateFn     func(ctx context.Context, workspace *entity.Workspace) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeWorkspaceRepo) Create(ctx context.Context, workspace *entity.Workspace) error {
	return f.createFn(ctx, workspace)
}

func (f *fakeWorkspaceRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Workspace, error) {
	return f.findByIDFn(ctx, id, userID)
}

func (f *fakeWorkspaceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error) {
	return f.listByUserFn(ctx, userID)
}

func (f *fakeWorkspaceRepo) Update(ctx context.Context, workspace *entity.Workspace) error {
	return f.updateFn(ctx, workspace)
}

func (f *fakeWorkspaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

type fakeNodeRepo struct {
	createFn            func(ctx context.Context, node *entity.Node) error
	findByIDFn          func(ctx context.Context, id, userID uuid.UUID) (*entity.Node, error)
	listByUserFn        func(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]*entity.Node, error)
	listByWorkspaceFn   func(ctx context.Context, workspaceID uuid.UUID) ([]*entity.Node, error)
	updateFn            func(ctx context.Context, node *entity.Node) error
	deleteFn            func(ctx context.Context, id uuid.UUID) error
	deleteByWorkspaceFn func(ctx context.Context, workspaceID uuid.UUID) error
}

func (f *fakeNodeRepo) Create(ctx context.Context, node *entity.Node) error {
	return f.createFn(ctx, node)
}

func (f *fakeNodeRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Node, error) {
	return f.findByIDFn(ctx, id, userID)
}

func (f *fakeNodeRepo) ListByUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]*entity.Node, error) {
	return f.listByUserFn(ctx, userID, workspaceID)
}

func (f *fakeNodeRepo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.Node, error) {
	return f.listByWorkspaceFn(ctx, workspaceID)
}

func (f *fakeNodeRepo) Update(ctx context.Context, node *entity.Node) error {
	return f.updateFn(ctx, node)
}

func (f *fakeNodeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeNodeRepo) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return f.deleteByWorkspaceFn(ctx, workspaceID)
}

type fakeMessageRepo struct {
	createFn          func(ctx context.Context, message *entity.Message) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	listByNodeFn      func(ctx context.Context, nodeID uuid.UUID) ([]*entity.Message, error)
	listByUserFn      func(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)
	findLastByNodeFn  func(ctx context.Context, nodeID uuid.UUID) (*entity.Message, error)
	updateFn          func(ctx context.Context, message *entity.Message) error
	deleteFn          func(ctx context.Context, id uuid.UUID) error
	deleteByNodeFn    func(ctx context.Context, nodeID uuid.UUID) error
	deleteByNodeIDsFn func(ctx context.Context, nodeIDs []uuid.UUID) error
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	return f.createFn(ctx, message)
}

func (f *fakeMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeMessageRepo) ListByNode(ctx context.Context, nodeID uuid.UUID) ([]*entity.Message, error) {
	return f.listByNodeFn(ctx, nodeID)
}

func (f *fakeMessageRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	return f.listByUserFn(ctx, userID)
}

func (f *fakeMessageRepo) FindLastByNode(ctx context.Context, nodeID uuid.UUID) (*entity.Message, error) {
	return f.findLastByNodeFn(ctx, nodeID)
}

func (f *fakeMessageRepo) Update(ctx context.Context, message *entity.Message) error {
	return f.updateFn(ctx, message)
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeMessageRepo) DeleteByNode(ctx context.Context, nodeID uuid.UUID) error {
	return f.deleteByNodeFn(ctx, nodeID)
}

func (f *fakeMessageRepo) DeleteByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) error {
	return f.deleteByNodeIDsFn(ctx, nodeIDs)
}

// fakeTxManager runs the callback immediately against a factory that hands
// out the fakes it was built with. There is no real transaction.
type fakeTxManager struct {
	userRepo      repository.UserRepository
	workspaceRepo repository.WorkspaceRepository
	nodeRepo      repository.NodeRepository
	messageRepo   repository.MessageRepository
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) NewUserRepository() repository.UserRepository { return f.userRepo }

func (f *fakeTxManager) NewWorkspaceRepository() repository.WorkspaceRepository {
	return f.workspaceRepo
}

func (f *fakeTxManager) NewNodeRepository() repository.NodeRepository { return f.nodeRepo }

func (f *fakeTxManager) NewMessageRepository() repository.MessageRepository { return f.messageRepo }

// --- service fakes ---

type fakeHasher struct {
	hashFn  func(password string) (string, error)
	checkFn func(password, hash string) bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	return f.hashFn(password)
}

func (f *fakeHasher) Check(password, hash string) bool {
	return f.checkFn(password, hash)
}

type fakeTokenService struct {
	issueFn    func(userID uuid.UUID) (string, error)
	validateFn func(token string) (*service.Claims, error)
}

func (f *fakeTokenService) IssueToken(userID uuid.UUID) (string, error) {
	return f.issueFn(userID)
}

func (f *fakeTokenService) ValidateToken(token string) (*service.Claims, error) {
	return f.validateFn(token)
}

func (f *fakeTokenService) AccessTokenDuration() time.Duration {
	return 0
}

type fakeCompletion struct {
	completeFn func(ctx context.Context, req *service.CompletionRequest) (string, error)
}

func (f *fakeCompletion) Complete(ctx context.Context, req *service.CompletionRequest) (string, error) {
	return f.completeFn(ctx, req)
}
