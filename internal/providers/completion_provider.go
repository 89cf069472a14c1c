package providers

import (
	"context"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// CompletionProvider is the black-box text-completion capability the
// extraction pipeline depends on. Tests substitute a canned implementation.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIProvider implements CompletionProvider against the OpenAI chat API
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

// NewOpenAIProvider creates a provider from environment configuration
func NewOpenAIProvider() *OpenAIProvider {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}

	config := openai.DefaultConfig(os.Getenv("OPENAI_API_KEY"))
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(3), 5), // 3 requests per second, burst of 5
		timeout: 60 * time.Second,
	}
}

// Complete submits the prompt and returns the raw model text.
// Exactly one attempt; the pipeline contract forbids retries.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
