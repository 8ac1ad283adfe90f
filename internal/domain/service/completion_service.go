package service

import (
	"context"
	"errors"
)

// ErrCompletionNotConfigured is returned when no API key is configured for
// the completion backend.
var ErrCompletionNotConfigured = errors.New("completion service is not configured")

// CompletionRequest describes a single-prompt chat completion call.
type CompletionRequest struct {
	Model       string  // Upstream model identifier.
	Prompt      string  // User prompt, sent as a single user message.
	Temperature float64 // Sampling temperature.
	MaxTokens   int     // Response token budget.
}

// CompletionService abstracts the chat completion backend (Groq) from the
// use cases.
type CompletionService interface {
	// Complete sends the prompt to the model and returns the assistant's reply.
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
