package handler

import (
	"log/slog"
	"net/http"

	"boardroom/internal/delivery/http/response"
	"boardroom/internal/domain/entity"
	"boardroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdvisorHandlerParams holds dependencies for AdvisorHandler, injected by Fx.
type AdvisorHandlerParams struct {
	fx.In

	AdvisorUC usecase.AdvisorUsecase
	Logger    *slog.Logger
}

// AdvisorHandler holds dependencies for advisor-related handlers.
type AdvisorHandler struct {
	advisorUC usecase.AdvisorUsecase
	logger    *slog.Logger
}

// NewAdvisorHandler is the constructor for AdvisorHandler.
func NewAdvisorHandler(params AdvisorHandlerParams) *AdvisorHandler {
	return &AdvisorHandler{
		advisorUC: params.AdvisorUC,
		logger:    params.Logger,
	}
}

// ChatRequest represents the request body for a single advisor chat turn.
type ChatRequest struct {
	ModelID string `json:"model_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ModelResponse describes one advisor catalog entry.
type ModelResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Model       string `json:"model"`
	Description string `json:"description"`
}

// ModelsResponse wraps the catalog listing.
type ModelsResponse struct {
	Models []ModelResponse `json:"models"`
}

// ChatResponse is the advisor's reply.
type ChatResponse struct {
	ModelID   string `json:"model_id"`
	ModelName string `json:"model_name"`
	Response  string `json:"response"`
}

func toModelResponses(advisors []entity.Advisor) []ModelResponse {
	out := make([]ModelResponse, 0, len(advisors))
	for _, advisor := range advisors {
		out = append(out, ModelResponse{
			ID:          advisor.ID,
			Name:        advisor.Name,
			Model:       advisor.Model,
			Description: advisor.Description,
		})
	}

	return out
}

// ListModels handles the advisor catalog listing.
func (h *AdvisorHandler) ListModels(c echo.Context) error {
	models := h.advisorUC.ListModels(c.Request().Context())

	return response.Success(c, http.StatusOK, ModelsResponse{Models: toModelResponses(models)}, "Models retrieved successfully")
}

// Chat handles a single prompt to the selected advisor model.
func (h *AdvisorHandler) Chat(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.advisorUC.Chat(c.Request().Context(), &usecase.ChatInput{
		UserID:  userID,
		ModelID: req.ModelID,
		Prompt:  req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ChatResponse{
		ModelID:   output.ModelID,
		ModelName: output.ModelName,
		Response:  output.Response,
	}, "Chat completed successfully")
}

// SummarizeWorkspace handles generating the consolidated workspace report.
func (h *AdvisorHandler) SummarizeWorkspace(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid workspace ID")
	}

	output, err := h.advisorUC.SummarizeWorkspace(c.Request().Context(), &usecase.SummarizeWorkspaceInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ChatResponse{
		ModelID:   output.ModelID,
		ModelName: output.ModelName,
		Response:  output.Summary,
	}, "Workspace summarized successfully")
}
