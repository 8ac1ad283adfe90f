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

// WorkspaceHandlerParams holds dependencies for WorkspaceHandler, injected by Fx.
type WorkspaceHandlerParams struct {
	fx.In

	WorkspaceUC usecase.WorkspaceUsecase
	Logger      *slog.Logger
}

// WorkspaceHandler holds dependencies for workspace-related handlers.
type WorkspaceHandler struct {
	workspaceUC usecase.WorkspaceUsecase
	logger      *slog.Logger
}

// NewWorkspaceHandler is the constructor for WorkspaceHandler.
func NewWorkspaceHandler(params WorkspaceHandlerParams) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceUC: params.WorkspaceUC,
		logger:      params.Logger,
	}
}

// WorkspaceRequest represents the request body for creating or renaming a
// workspace.
type WorkspaceRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// WorkspaceResponse is the public view of a workspace.
type WorkspaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toWorkspaceResponse(workspace *entity.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        workspace.ID.String(),
		Name:      workspace.Name,
		CreatedAt: workspace.CreatedAt,
		UpdatedAt: workspace.UpdatedAt,
	}
}

func toWorkspaceResponses(workspaces []*entity.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, 0, len(workspaces))
	for _, workspace := range workspaces {
		out = append(out, toWorkspaceResponse(workspace))
	}

	return out
}

// Create handles workspace creation.
func (h *WorkspaceHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req WorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workspace input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	workspace, err := h.workspaceUC.Create(c.Request().Context(), &usecase.CreateWorkspaceInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWorkspaceResponse(workspace), "Workspace created successfully")
}

// List handles listing the caller's workspaces.
func (h *WorkspaceHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	workspaces, err := h.workspaceUC.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkspaceResponses(workspaces), "Workspaces retrieved successfully")
}

// Get handles fetching one workspace.
func (h *WorkspaceHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid workspace ID")
	}

	workspace, err := h.workspaceUC.Get(c.Request().Context(), workspaceID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkspaceResponse(workspace), "Workspace retrieved successfully")
}

// Update handles renaming a workspace.
func (h *WorkspaceHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid workspace ID")
	}

	var req WorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workspace input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	workspace, err := h.workspaceUC.Update(c.Request().Context(), &usecase.UpdateWorkspaceInput{
		ID:     workspaceID,
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkspaceResponse(workspace), "Workspace updated successfully")
}

// Delete handles deleting a workspace and everything nested under it.
func (h *WorkspaceHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid workspace ID")
	}

	if err := h.workspaceUC.Delete(c.Request().Context(), workspaceID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Workspace deleted successfully"}, "Workspace deleted successfully")
}
