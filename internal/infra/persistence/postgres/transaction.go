package postgres

import (
	"context"

	"boardroom/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. Repositories obtained
// from the factory passed to fn are bound to that transaction.
func (manager *gormTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	err := manager.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// gormRepositoryFactory builds repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (factory *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(factory.tx)
}

func (factory *gormRepositoryFactory) NewWorkspaceRepository() repository.WorkspaceRepository {
	return NewWorkspaceRepository(factory.tx)
}

func (factory *gormRepositoryFactory) NewNodeRepository() repository.NodeRepository {
	return NewNodeRepository(factory.tx)
}

func (factory *gormRepositoryFactory) NewMessageRepository() repository.MessageRepository {
	return NewMessageRepository(factory.tx)
}
