// Package groq implements the completion service against the Groq
// OpenAI-compatible chat completions API.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"boardroom/config"
	"boardroom/internal/domain/service"

	"github.com/pkg/errors"
)

// client calls the Groq chat completions endpoint over HTTPS.
type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the Groq completion client. A missing API
// key is not a construction error: the original surfaces it on first use, so
// Complete reports ErrCompletionNotConfigured instead.
func NewClient(cfg *config.Config, logger *slog.Logger) service.CompletionService {
	groqCfg := cfg.Groq
	if groqCfg == nil {
		groqCfg = &config.GroqConfig{}
	}

	timeout := groqCfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &client{
		apiKey:  groqCfg.APIKey,
		baseURL: strings.TrimRight(groqCfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// newClientWithHTTP builds a client against an explicit endpoint for tests.
func newClientWithHTTP(apiKey, baseURL string, httpClient *http.Client, logger *slog.Logger) *client {
	return &client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends a single-prompt chat completion and returns the assistant's reply.
func (c *client) Complete(ctx context.Context, req *service.CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", errors.WithStack(service.ErrCompletionNotConfigured)
	}

	payload := chatCompletionRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WithStack(err)
	}

	c.logger.Debug("Calling Groq chat completion",
		slog.String("model", req.Model),
		slog.Int("promptChars", len(req.Prompt)),
		slog.Int("maxTokens", req.MaxTokens),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "groq request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read groq response")
	}

	var decoded chatCompletionResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", errors.Wrapf(err, "failed to decode groq response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decoded.Error != nil {
			return "", errors.Errorf("groq returned %d: %s", resp.StatusCode, decoded.Error.Message)
		}

		return "", errors.Errorf("groq returned non-success status: %d", resp.StatusCode)
	}

	if len(decoded.Choices) == 0 {
		return "", errors.New("groq response contained no choices")
	}

	content := decoded.Choices[0].Message.Content

	c.logger.Debug("Groq chat completion succeeded",
		slog.String("model", req.Model),
		slog.Int("responseChars", len(content)),
	)

	return content, nil
}
