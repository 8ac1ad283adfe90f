package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "boardroom/internal/delivery/context"
	"boardroom/internal/domain/entity"
	domainerrors "boardroom/internal/domain/errors"
	"boardroom/internal/domain/repository"
	"boardroom/internal/domain/service"
	"boardroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	advisorTemperature = 0.7

	// chatMaxTokens bounds a single advisor reply.
	chatMaxTokens = 2048

	// summaryMaxTokens bounds the orchestrator's report.
	summaryMaxTokens = 4000

	// summaryInputTokenLimit bounds the combined conversation text sent to
	// the orchestrator.
	summaryInputTokenLimit = 6000
)

// advisorService implements the AdvisorUsecase interface.
type advisorService struct {
	completion    service.CompletionService
	workspaceRepo repository.WorkspaceRepository
	nodeRepo      repository.NodeRepository
	messageRepo   repository.MessageRepository
	logger        *slog.Logger
}

// AdvisorServiceParams holds dependencies for AdvisorService, injected by Fx.
type AdvisorServiceParams struct {
	fx.In

	Completion    service.CompletionService
	WorkspaceRepo repository.WorkspaceRepository
	NodeRepo      repository.NodeRepository
	MessageRepo   repository.MessageRepository
	Logger        *slog.Logger
}

// NewAdvisorService is the constructor for advisorService.
func NewAdvisorService(params AdvisorServiceParams) usecase.AdvisorUsecase {
	return &advisorService{
		completion:    params.Completion,
		workspaceRepo: params.WorkspaceRepo,
		nodeRepo:      params.NodeRepo,
		messageRepo:   params.MessageRepo,
		logger:        params.Logger,
	}
}

func (srv *advisorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListModels returns the fixed advisor catalog.
func (srv *advisorService) ListModels(_ context.Context) []entity.Advisor {
	return entity.Advisors()
}

// Chat sends one prompt to the selected advisor model.
func (srv *advisorService) Chat(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	advisor, ok := entity.AdvisorByID(input.ModelID)
	if !ok {
		return nil, domainerrors.ErrInvalidAdvisorModel.WithDetails(
			fmt.Sprintf("got model ID %q", input.ModelID),
		).WrapMessage("advisor chat failed")
	}

	srv.log(ctx).Debug("Dispatching advisor chat",
		slog.Any("userID", input.UserID),
		slog.String("modelID", advisor.ID),
		slog.String("model", advisor.Model))

	response, err := srv.completion.Complete(ctx, &service.CompletionRequest{
		Model:       advisor.Model,
		Prompt:      input.Prompt,
		Temperature: advisorTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		srv.log(ctx).Error("Advisor chat failed", slog.String("modelID", advisor.ID), slog.Any("error", err))

		return nil, srv.mapCompletionError(err)
	}

	return &usecase.ChatOutput{
		ModelID:   advisor.ID,
		ModelName: advisor.Name,
		Response:  response,
	}, nil
}

// SummarizeWorkspace gathers the latest message of every node in the
// workspace, assembles a bounded prompt, and asks the orchestrator model for
// a consolidated report.
func (srv *advisorService) SummarizeWorkspace(ctx context.Context, input *usecase.SummarizeWorkspaceInput) (*usecase.SummarizeWorkspaceOutput, error) {
	workspace, err := srv.workspaceRepo.FindByID(ctx, input.WorkspaceID, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			return nil, domainerrors.ErrWorkspaceNotFound.WrapMessage("workspace summary failed")
		}

		return nil, errors.Wrap(err, "failed to load workspace for summary")
	}

	nodes, err := srv.nodeRepo.ListByWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nodes for summary")
	}
	if len(nodes) == 0 {
		return nil, domainerrors.ErrWorkspaceEmpty.WrapMessage("workspace has no nodes")
	}

	conversations, err := srv.collectLastMessages(ctx, nodes)
	if err != nil {
		return nil, err
	}

	combined := buildCombinedConversations(workspace.Name, conversations)
	truncated := truncateToTokenLimit(combined, summaryInputTokenLimit)
	prompt := buildSummaryPrompt(truncated)

	orchestrator := entity.OrchestratorAdvisor()

	srv.log(ctx).Info("Dispatching workspace summary",
		slog.Any("workspaceID", input.WorkspaceID),
		slog.Int("nodes", len(nodes)),
		slog.Int("conversations", len(conversations)),
		slog.Int("inputTokens", estimateTokens(truncated)),
		slog.String("model", orchestrator.Model))

	summary, err := srv.completion.Complete(ctx, &service.CompletionRequest{
		Model:       orchestrator.Model,
		Prompt:      prompt,
		Temperature: advisorTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		srv.log(ctx).Error("Workspace summary failed", slog.Any("workspaceID", input.WorkspaceID), slog.Any("error", err))

		return nil, srv.mapCompletionError(err)
	}

	return &usecase.SummarizeWorkspaceOutput{
		WorkspaceID: input.WorkspaceID,
		ModelID:     orchestrator.ID,
		ModelName:   orchestrator.Name + " - Summary Report",
		Summary:     summary,
	}, nil
}

// nodeConversation is the latest exchange of one node, flattened for the
// summary prompt.
type nodeConversation struct {
	NodeName string
	ModelID  string
	Sender   string
	Content  string
}

// collectLastMessages resolves the most recent message of each node. Nodes
// with no messages yet are skipped; a workspace where every node is empty
// cannot be summarized.
func (srv *advisorService) collectLastMessages(ctx context.Context, nodes []*entity.Node) ([]nodeConversation, error) {
	conversations := make([]nodeConversation, 0, len(nodes))
	for _, node := range nodes {
		last, err := srv.messageRepo.FindLastByNode(ctx, node.ID)
		if errors.Is(err, repository.ErrMessageNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load last node message for summary")
		}

		conversations = append(conversations, nodeConversation{
			NodeName: node.Name,
			ModelID:  node.ModelID,
			Sender:   last.Sender,
			Content:  last.Content,
		})
	}

	if len(conversations) == 0 {
		return nil, domainerrors.ErrWorkspaceEmpty.WrapMessage("workspace nodes have no messages")
	}

	return conversations, nil
}

func buildCombinedConversations(workspaceName string, conversations []nodeConversation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workspace: %s\n\n", workspaceName)
	b.WriteString(strings.Repeat("=", 80) + "\n\n")

	for idx, conv := range conversations {
		fmt.Fprintf(&b, "=== Conversation %d: %s ===\n", idx+1, conv.NodeName)
		fmt.Fprintf(&b, "Model ID: %s\n", conv.ModelID)
		fmt.Fprintf(&b, "Sender: %s\n", conv.Sender)
		fmt.Fprintf(&b, "Content:\n%s\n", conv.Content)
		b.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
	}

	return b.String()
}

func buildSummaryPrompt(content string) string {
	return fmt.Sprintf(`You are an expert analyst and information synthesizer. Your task is to analyze the following conversations and create a well-structured summary report.

Input data:
%s

Requirements:
1. Analyze and synthesize content from all conversations
2. Create a structured report with the following sections:
   - Executive Summary
   - Key Points Discussed
   - Conclusions and Recommendations (if any)
3. Divide into clear, readable points
4. Use markdown format for presentation
5. Preserve the meaning and context of the original conversations

Please create the summary report:`, content)
}

// estimateTokens approximates the token count of text. One token per three
// bytes is a conservative ratio for mixed-language content.
func estimateTokens(text string) int {
	return len(text) / 3
}

// truncateToTokenLimit cuts text so its estimated token count stays within
// maxTokens.
func truncateToTokenLimit(text string, maxTokens int) string {
	if estimateTokens(text) <= maxTokens {
		return text
	}

	cut := maxTokens*3 - 3
	// Step back to a rune boundary so a multi-byte character is never split.
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}

	return text[:cut] + "..."
}

// mapCompletionError translates completion transport failures into the
// AppError taxonomy so the HTTP layer reports sane status codes.
func (srv *advisorService) mapCompletionError(err error) error {
	if errors.Is(err, service.ErrCompletionNotConfigured) {
		return domainerrors.ErrGroqNotConfigured.WrapMessage("completion backend not configured")
	}

	return domainerrors.ErrGroqRequestFailed.WithDetails(err.Error()).WrapMessage("completion request failed")
}
