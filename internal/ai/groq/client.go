package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// Groq exposes an OpenAI-compatible chat completions API.
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama3-8b-8192"

	defaultMaxRetries   = 3
	delayBetweenRetries = time.Second
)

// chatCompleter matches the single go-openai client method the generator
// needs. Kept as an interface so tests can stub the transport.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator wraps an OpenAI-compatible client pointed at the Groq API.
type Generator struct {
	client      chatCompleter
	modelName   string
	maxRetries  int
	maxTokens   int
	temperature float32
}

// Option tweaks generator behaviour per use case.
type Option func(*Generator)

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxTokens = n
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(g *Generator) {
		if t >= 0 {
			g.temperature = t
		}
	}
}

// NewGenerator creates a Generator talking to the Groq chat completions API.
func NewGenerator(apiKey, baseURL, model string, maxRetries int, opts ...Option) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("groq api key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL = strings.TrimSpace(baseURL); baseURL == "" {
		baseURL = defaultBaseURL
	}
	cfg.BaseURL = baseURL

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	g := &Generator{
		client:      openai.NewClientWithConfig(cfg),
		modelName:   model,
		maxRetries:  maxRetries,
		temperature: 0.3,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// GenerateContent sends the prompt as a single user message and returns the
// first choice. Transient API failures are retried; auth failures are not.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("groq generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	request := openai.ChatCompletionRequest{
		Model: g.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.temperature,
	}
	if g.maxTokens > 0 {
		request.MaxTokens = g.maxTokens
	}

	var resp openai.ChatCompletionResponse
	err := retry.Do(func() error {
		var err error
		resp, err = g.client.CreateChatCompletion(ctx, request)
		if err != nil {
			var apiErr *openai.RequestError
			if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusUnauthorized {
				return retry.Unrecoverable(err)
			}
			return err
		}
		return nil
	},
		retry.Attempts(uint(g.maxRetries)),
		retry.Delay(delayBetweenRetries),
		retry.Context(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("groq api returned no choices")
	}

	output := strings.TrimSpace(resp.Choices[0].Message.Content)
	if output == "" {
		return "", errors.New("groq api returned empty response")
	}

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}
