package handler

import (
	"log/slog"
	"net/http"
	"time"

	"boardroom/internal/delivery/http/response"
	"boardroom/internal/domain/entity"
	"boardroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler holds dependencies for message-related handlers.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler.
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// CreateMessageRequest represents the request body for recording a message.
type CreateMessageRequest struct {
	NodeID  string `json:"node_id" validate:"required,uuid"`
	Sender  string `json:"sender" validate:"required,oneof=AI You"`
	Content string `json:"content" validate:"required"`
}

// UpdateMessageRequest represents the request body for editing a message.
// Sender may be relabeled alongside the content.
type UpdateMessageRequest struct {
	Sender  *string `json:"sender" validate:"omitempty,oneof=AI You"`
	Content string  `json:"content" validate:"required"`
}

// MessageResponse is the public view of a message.
type MessageResponse struct {
	ID        string    `json:"id"`
	NodeID    string    `json:"node_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toMessageResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID.String(),
		NodeID:    message.NodeID.String(),
		Sender:    message.Sender,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
		UpdatedAt: message.UpdatedAt,
	}
}

func toMessageResponses(messages []*entity.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, toMessageResponse(message))
	}

	return out
}

// Create handles recording a new message in a node.
func (h *MessageHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	nodeID, err := uuid.Parse(req.NodeID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid node ID")
	}

	message, err := h.messageUC.Create(c.Request().Context(), &usecase.CreateMessageInput{
		UserID:  userID,
		NodeID:  nodeID,
		Sender:  req.Sender,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMessageResponse(message), "Message created successfully")
}

// List handles listing the caller's messages, optionally filtered by node
// via the node_id query parameter.
func (h *MessageHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var nodeID *uuid.UUID
	if raw := c.QueryParam("node_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid node ID")
		}
		nodeID = &parsed
	}

	messages, err := h.messageUC.List(c.Request().Context(), userID, nodeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMessageResponses(messages), "Messages retrieved successfully")
}

// Get handles fetching one message.
func (h *MessageHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	message, err := h.messageUC.Get(c.Request().Context(), messageID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMessageResponse(message), "Message retrieved successfully")
}

// Update handles editing a message's content.
func (h *MessageHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	var req UpdateMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.messageUC.Update(c.Request().Context(), &usecase.UpdateMessageInput{
		ID:      messageID,
		UserID:  userID,
		Sender:  req.Sender,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMessageResponse(message), "Message updated successfully")
}

// Delete handles removing a message.
func (h *MessageHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	if err := h.messageUC.Delete(c.Request().Context(), messageID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Message deleted successfully"}, "Message deleted successfully")
}
