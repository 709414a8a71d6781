package enhancer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"io"
	"net/http"
	"statusdrafter/pkg/config"
)

var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY not set")

// Provider sends one system and one user message to a chat completion model
// and returns the text of the first choice
//
//go:generate mockery --name Provider --output ./ --inpackage
type Provider interface {
	Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatError struct {
	Error struct {
		Message string      `json:"message"`
		Code    interface{} `json:"code"`
	} `json:"error"`
}

type openRouterProvider struct {
	apiKey string
	model  string
	url    string
	client *http.Client
	logger hclog.Logger
}

// NewOpenRouterProvider builds a provider for an OpenRouter compatible chat
// completion endpoint. A missing API key is reported on the first call.
func NewOpenRouterProvider(logger hclog.Logger, configs *config.StatusDrafterConfigurations, client *http.Client) Provider {
	if client == nil {
		client = &http.Client{}
	}
	return &openRouterProvider{
		apiKey: configs.OpenRouterAPIKey,
		model:  configs.OpenRouterModel,
		url:    configs.OpenRouterURL,
		client: client,
		logger: logger.Named("openrouter-provider"),
	}
}

func (p *openRouterProvider) Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	if p.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var providerErr chatError
		if json.Unmarshal(respBody, &providerErr) == nil && providerErr.Error.Message != "" {
			return "", fmt.Errorf("provider error (%d): %s", resp.StatusCode, providerErr.Error.Message)
		}
		return "", fmt.Errorf("provider error (%d): %s", resp.StatusCode, string(respBody))
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("provider returned no choices")
	}

	p.logger.Debug("completion received", "model", p.model, "length", len(completion.Choices[0].Message.Content))
	return completion.Choices[0].Message.Content, nil
}
