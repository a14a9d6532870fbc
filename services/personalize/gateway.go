package personalize

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"safetypath/config"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Completer executes one completion call: a system instruction plus a user
// prompt, returning the raw text of the first choice.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// NewCompleter builds the configured provider gateway wrapped with the
// timeout and bounded-retry policy.
func NewCompleter(cfg *config.Config) (Completer, error) {
	var inner Completer
	var err error

	switch cfg.LLMProvider {
	case "anthropic":
		inner = newAnthropicGateway(cfg)
	default:
		inner, err = newOpenAIGateway(cfg)
		if err != nil {
			return nil, err
		}
	}

	return &retryingCompleter{
		inner:      inner,
		timeout:    cfg.LLMTimeout,
		maxRetries: cfg.LLMMaxRetries,
	}, nil
}

// openAIGateway talks to any OpenAI-compatible chat completion endpoint; the
// default base URL points at DeepSeek.
type openAIGateway struct {
	llm       *openai.LLM
	maxTokens int
}

func newOpenAIGateway(cfg *config.Config) (*openAIGateway, error) {
	llm, err := openai.New(
		openai.WithModel(cfg.LLMModel),
		openai.WithToken(cfg.LLMAPIKey),
		openai.WithBaseURL(cfg.LLMBaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	return &openAIGateway{llm: llm, maxTokens: cfg.LLMMaxTokens}, nil
}

func (g *openAIGateway) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := g.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		return "", classifyProviderError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", &ProviderError{Category: ProviderEmpty, Message: "empty response from provider"}
	}
	return resp.Choices[0].Content, nil
}

type anthropicGateway struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

func newAnthropicGateway(cfg *config.Config) *anthropicGateway {
	client := anthropic.NewClient(option.WithAPIKey(cfg.LLMAPIKey))
	return &anthropicGateway{
		client:    &client,
		model:     cfg.LLMModel,
		maxTokens: cfg.LLMMaxTokens,
	}
}

func (g *anthropicGateway) Complete(ctx context.Context, system, prompt string) (string, error) {
	response, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", classifyProviderError(err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(textBlock.Text)
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", &ProviderError{Category: ProviderEmpty, Message: "empty response from provider"}
	}
	return text.String(), nil
}

// retryingCompleter wraps a gateway with a per-attempt timeout and a small
// bounded retry on transient failures. Authentication failures never retry;
// caller cancellation stops everything immediately.
type retryingCompleter struct {
	inner      Completer
	timeout    time.Duration
	maxRetries int
}

func (r *retryingCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	var lastErr *ProviderError

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
		result, err := r.inner.Complete(attemptCtx, system, prompt)
		cancel()

		if err == nil {
			return result, nil
		}

		provErr := asProviderError(err)
		lastErr = provErr

		if !provErr.Retryable() {
			log.Printf("[ERROR] Completion failed with non-retryable error: %v", provErr)
			return "", provErr
		}
		if ctx.Err() != nil {
			// Caller went away; the attempt error is just a symptom.
			return "", &ProviderError{Category: ProviderTimeout, Message: "request cancelled", Err: ctx.Err()}
		}
		if attempt < r.maxRetries {
			backoff := time.Duration(attempt+1) * 500 * time.Millisecond
			log.Printf("[INFO] Completion attempt %d failed (%s), retrying in %v", attempt+1, provErr.Category, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", &ProviderError{Category: ProviderTimeout, Message: "request cancelled", Err: ctx.Err()}
			}
		}
	}

	log.Printf("[ERROR] Completion failed after %d attempts: %v", r.maxRetries+1, lastErr)
	return "", lastErr
}

func asProviderError(err error) *ProviderError {
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return provErr
	}
	return classifyProviderError(err)
}

// classifyProviderError maps an SDK error onto the provider taxonomy. The
// SDKs do not expose a stable typed status, so this matches on the status
// codes and phrases they embed in error strings.
func classifyProviderError(err error) *ProviderError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ProviderError{Category: ProviderTimeout, Message: "provider call timed out", Err: err}
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "401") || strings.Contains(message, "unauthorized") ||
		strings.Contains(message, "authentication") || strings.Contains(message, "invalid api key"):
		return &ProviderError{Category: ProviderAuth, Message: "provider authentication failed", Err: err}
	case strings.Contains(message, "429") || strings.Contains(message, "402") ||
		strings.Contains(message, "rate limit") || strings.Contains(message, "quota"):
		return &ProviderError{Category: ProviderRateLimit, Message: "provider rate limit exceeded", Err: err}
	default:
		return &ProviderError{Category: ProviderUnavailable, Message: err.Error(), Err: err}
	}
}
