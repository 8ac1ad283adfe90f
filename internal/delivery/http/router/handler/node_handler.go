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

// NodeHandlerParams holds dependencies for NodeHandler, injected by Fx.
type NodeHandlerParams struct {
	fx.In

	NodeUC usecase.NodeUsecase
	Logger *slog.Logger
}

// NodeHandler holds dependencies for node-related handlers.
type NodeHandler struct {
	nodeUC usecase.NodeUsecase
	logger *slog.Logger
}

// NewNodeHandler is the constructor for NodeHandler.
func NewNodeHandler(params NodeHandlerParams) *NodeHandler {
	return &NodeHandler{
		nodeUC: params.NodeUC,
		logger: params.Logger,
	}
}

// CreateNodeRequest represents the request body for creating a node.
type CreateNodeRequest struct {
	WorkspaceID string `json:"workspace_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,max=255"`
	ModelID     string `json:"model_id" validate:"required"`
}

// UpdateNodeRequest represents the request body for updating a node. Omitted
// fields are left unchanged; workspace_id moves the node to another workspace
// the caller owns.
type UpdateNodeRequest struct {
	WorkspaceID *string `json:"workspace_id" validate:"omitempty,uuid"`
	Name        *string `json:"name" validate:"omitempty,max=255"`
	ModelID     *string `json:"model_id"`
}

// NodeResponse is the public view of a node.
type NodeResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	ModelID     string    `json:"model_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toNodeResponse(node *entity.Node) NodeResponse {
	return NodeResponse{
		ID:          node.ID.String(),
		WorkspaceID: node.WorkspaceID.String(),
		Name:        node.Name,
		ModelID:     node.ModelID,
		CreatedAt:   node.CreatedAt,
		UpdatedAt:   node.UpdatedAt,
	}
}

func toNodeResponses(nodes []*entity.Node) []NodeResponse {
	out := make([]NodeResponse, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, toNodeResponse(node))
	}

	return out
}

// Create handles node creation.
func (h *NodeHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateNodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid node input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	workspaceID, err := uuid.Parse(req.WorkspaceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid workspace ID")
	}

	node, err := h.nodeUC.Create(c.Request().Context(), &usecase.CreateNodeInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		ModelID:     req.ModelID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toNodeResponse(node), "Node created successfully")
}

// List handles listing the caller's nodes, optionally filtered by workspace
// via the workspace_id query parameter.
func (h *NodeHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var workspaceID *uuid.UUID
	if raw := c.QueryParam("workspace_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid workspace ID")
		}
		workspaceID = &parsed
	}

	nodes, err := h.nodeUC.List(c.Request().Context(), userID, workspaceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNodeResponses(nodes), "Nodes retrieved successfully")
}

// Get handles fetching one node.
func (h *NodeHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	nodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid node ID")
	}

	node, err := h.nodeUC.Get(c.Request().Context(), nodeID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNodeResponse(node), "Node retrieved successfully")
}

// Update handles renaming a node, rebinding it to another advisor model, or
// moving it to another workspace.
func (h *NodeHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	nodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid node ID")
	}

	var req UpdateNodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid node input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var workspaceID *uuid.UUID
	if req.WorkspaceID != nil {
		parsed, err := uuid.Parse(*req.WorkspaceID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid workspace ID")
		}
		workspaceID = &parsed
	}

	node, err := h.nodeUC.Update(c.Request().Context(), &usecase.UpdateNodeInput{
		ID:          nodeID,
		UserID:      userID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		ModelID:     req.ModelID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNodeResponse(node), "Node updated successfully")
}

// Delete handles deleting a node and its messages.
func (h *NodeHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	nodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid node ID")
	}

	if err := h.nodeUC.Delete(c.Request().Context(), nodeID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Node deleted successfully"}, "Node deleted successfully")
}
