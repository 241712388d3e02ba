package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"
)

// Generator is the remote generation capability. It returns the raw
// model output; an empty string with a nil error means the model
// produced nothing.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RemoteError is a generation-backend failure that carries the HTTP
// status, so rate limiting can be detected without string matching.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("generation API returned status %d: %s", e.StatusCode, e.Message)
}

type openRouterGenerator struct {
	apiKey string
	model  string
	logger *utils.Logger
	client *http.Client
}

type openRouterRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterResponse struct {
	Choices []choice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

type choice struct {
	Message message `json:"message"`
}

// NewOpenRouterGenerator talks to the OpenRouter chat/completions API.
func NewOpenRouterGenerator(apiKey, model string, logger *utils.Logger) Generator {
	return &openRouterGenerator{
		apiKey: apiKey,
		model:  model,
		logger: logger,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (g *openRouterGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := openRouterRequest{
		Model: g.model,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://openrouter.ai/api/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		g.logger.Error("generation API error", "status", resp.StatusCode, "body", string(body))
		return "", &RemoteError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var orResp openRouterResponse
	if err := json.Unmarshal(body, &orResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if orResp.Error != nil {
		return "", &RemoteError{StatusCode: resp.StatusCode, Message: orResp.Error.Message}
	}

	if len(orResp.Choices) == 0 {
		return "", nil
	}

	return orResp.Choices[0].Message.Content, nil
}
