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

// messageRepository implements the repository.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNodeNotFound.WrapMessage("message node does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// FindByID retrieves a message by ID. Node ownership is verified by the caller.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by id")
	}

	return toMessageDomain(&messageM), nil
}

// ListByNode returns every message in the node in chronological order.
func (repo *messageRepository) ListByNode(ctx context.Context, nodeID uuid.UUID) ([]*entity.Message, error) {
	var messageMs []*model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("node_id = ?", nodeID).
		Order("created_at ASC").
		Find(&messageMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list node messages")
	}

	return toMessageDomains(messageMs), nil
}

// ListByUser returns every message across all of the user's nodes, chronological.
func (repo *messageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	var messageMs []*model.MessageModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN nodes ON nodes.id = messages.node_id").
		Where("nodes.user_id = ?", userID).
		Order("messages.created_at ASC").
		Find(&messageMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list user messages")
	}

	return toMessageDomains(messageMs), nil
}

// FindLastByNode returns the most recent message in the node, or
// repository.ErrMessageNotFound when the node has none.
func (repo *messageRepository) FindLastByNode(ctx context.Context, nodeID uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("node_id = ?", nodeID).
		Order("created_at DESC").
		First(&messageM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find last node message")
	}

	return toMessageDomain(&messageM), nil
}

// Update persists sender and content changes to an existing message.
func (repo *messageRepository) Update(ctx context.Context, message *entity.Message) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ?", message.ID).
		Updates(map[string]any{
			"sender":  message.Sender,
			"content": message.Content,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// Delete removes a message.
func (repo *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MessageModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// DeleteByNode removes every message in the node.
func (repo *messageRepository) DeleteByNode(ctx context.Context, nodeID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("node_id = ?", nodeID).
		Delete(&model.MessageModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete node messages")
	}

	return nil
}

// DeleteByNodeIDs removes every message belonging to any of the given nodes.
func (repo *messageRepository) DeleteByNodeIDs(ctx context.Context, nodeIDs []uuid.UUID) error {
	if len(nodeIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("node_id IN ?", nodeIDs).
		Delete(&model.MessageModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete messages for nodes")
	}

	return nil
}

// --- Mapper functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:        data.ID,
		NodeID:    data.NodeID,
		Sender:    data.Sender,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toMessageDomains(data []*model.MessageModel) []*entity.Message {
	messages := make([]*entity.Message, 0, len(data))
	for _, messageM := range data {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages
}

func fromMessageDomain(message *entity.Message) *model.MessageModel {
	if message == nil {
		return nil
	}

	return &model.MessageModel{
		ID:        message.ID,
		NodeID:    message.NodeID,
		Sender:    message.Sender,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
		UpdatedAt: message.UpdatedAt,
	}
}
