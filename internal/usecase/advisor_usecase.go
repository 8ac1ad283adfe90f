package usecase

import (
	"context"

	"boardroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatInput defines the data for a single advisor chat turn.
type ChatInput struct {
	UserID  uuid.UUID
	ModelID string
	Prompt  string
}

// ChatOutput returns the advisor's reply.
type ChatOutput struct {
	ModelID   string
	ModelName string
	Response  string
}

// SummarizeWorkspaceInput identifies the workspace to summarize.
type SummarizeWorkspaceInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
}

// SummarizeWorkspaceOutput returns the orchestrator's consolidated report.
type SummarizeWorkspaceOutput struct {
	WorkspaceID uuid.UUID
	ModelID     string
	ModelName   string
	Summary     string
}

// AdvisorUsecase defines the interface for advisor-related business
// operations: the fixed model catalog, chat proxying, and workspace
// summaries.
type AdvisorUsecase interface {
	// ListModels returns the fixed advisor catalog.
	ListModels(ctx context.Context) []entity.Advisor

	// Chat sends one prompt to the selected advisor model.
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)

	// SummarizeWorkspace gathers the latest message of every node in the
	// workspace and asks the orchestrator model for a consolidated report.
	SummarizeWorkspace(ctx context.Context, input *SummarizeWorkspaceInput) (*SummarizeWorkspaceOutput, error)
}
