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

// messageService implements the MessageUsecase interface. Messages carry no
// owner column, so every operation first resolves the owning node under the
// requesting user.
type messageService struct {
	messageRepo repository.MessageRepository
	nodeRepo    repository.NodeRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	NodeRepo    repository.NodeRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		nodeRepo:    params.NodeRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a message in a node the user owns.
func (srv *messageService) Create(ctx context.Context, input *usecase.CreateMessageInput) (*entity.Message, error) {
	if !entity.ValidSender(input.Sender) {
		return nil, domainerrors.ErrInvalidSender.WrapMessage("message creation failed")
	}

	if _, err := srv.nodeRepo.FindByID(ctx, input.NodeID, input.UserID); err != nil {
		if errors.Is(err, repository.ErrNodeNotFound) {
			return nil, domainerrors.ErrNodeNotFound.WrapMessage("message node lookup failed")
		}

		return nil, errors.Wrap(err, "failed to verify message node")
	}

	message := &entity.Message{
		NodeID:  input.NodeID,
		Sender:  input.Sender,
		Content: input.Content,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to create message", slog.Any("nodeID", input.NodeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create message")
	}

	return message, nil
}

// List returns messages across all of the user's nodes, or within one node
// when nodeID is non-nil.
func (srv *messageService) List(ctx context.Context, userID uuid.UUID, nodeID *uuid.UUID) ([]*entity.Message, error) {
	if nodeID == nil {
		messages, err := srv.messageRepo.ListByUser(ctx, userID)
		if err != nil {
			srv.log(ctx).Error("Failed to list messages", slog.Any("userID", userID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to list messages")
		}

		return messages, nil
	}

	if _, err := srv.nodeRepo.FindByID(ctx, *nodeID, userID); err != nil {
		if errors.Is(err, repository.ErrNodeNotFound) {
			return nil, domainerrors.ErrNodeNotFound.WrapMessage("message node lookup failed")
		}

		return nil, errors.Wrap(err, "failed to verify message node")
	}

	messages, err := srv.messageRepo.ListByNode(ctx, *nodeID)
	if err != nil {
		srv.log(ctx).Error("Failed to list node messages", slog.Any("nodeID", *nodeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list node messages")
	}

	return messages, nil
}

// Get returns one message after verifying the user owns its node.
func (srv *messageService) Get(ctx context.Context, id, userID uuid.UUID) (*entity.Message, error) {
	message, err := srv.loadOwnedMessage(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return message, nil
}

// Update edits a message's content and optionally its sender label after
// verifying node ownership.
func (srv *messageService) Update(ctx context.Context, input *usecase.UpdateMessageInput) (*entity.Message, error) {
	message, err := srv.loadOwnedMessage(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Sender != nil {
		if !entity.ValidSender(*input.Sender) {
			return nil, domainerrors.ErrInvalidSender.WrapMessage("message update failed")
		}
		message.Sender = *input.Sender
	}
	message.Content = input.Content

	if err := srv.messageRepo.Update(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to update message", slog.Any("messageID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update message")
	}

	return message, nil
}

// Delete removes a message after verifying node ownership.
func (srv *messageService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := srv.loadOwnedMessage(ctx, id, userID); err != nil {
		return err
	}

	if err := srv.messageRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete message", slog.Any("messageID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete message")
	}

	return nil
}

// loadOwnedMessage fetches a message and verifies the requesting user owns
// its node. A message under someone else's node behaves like a missing one.
func (srv *messageService) loadOwnedMessage(ctx context.Context, id, userID uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound.WrapMessage("message lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load message")
	}

	if _, err := srv.nodeRepo.FindByID(ctx, message.NodeID, userID); err != nil {
		if errors.Is(err, repository.ErrNodeNotFound) {
			return nil, domainerrors.ErrMessageNotFound.WrapMessage("message node lookup failed")
		}

		return nil, errors.Wrap(err, "failed to verify message node")
	}

	return message, nil
}
