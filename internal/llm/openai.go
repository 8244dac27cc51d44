package llm

import (
	"context"
	"time"

	openai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/aysenurmengi/ai-languageExercises/internal/rag/interfaces"
)

// OpenAI is an LLM client backed by the OpenAI chat completion API.
// Each instance is bound to one model and one sampling temperature.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// NewOpenAI creates a new OpenAI client. maxTokens of 0 leaves the limit to
// the provider's default.
func NewOpenAI(apiKey, model string, temperature float32, maxTokens int, timeout time.Duration) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	client := openai.NewClientWithConfig(config)
	return &OpenAI{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}
}

// Generate sends a system + user prompt pair to the chat completion API and
// returns the generated text verbatim. A rate-limited call (HTTP 429) is
// retried once after a short pause before the failure is surfaced.
func (o *OpenAI) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: &o.temperature,
		MaxTokens:   o.maxTokens,
	}
	if systemPrompt != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	return o.complete(ctx, req)
}

// GenerateJSON sends a prompt with JSON response mode enabled, so the model
// is constrained to emit a single JSON object.
func (o *OpenAI) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: &o.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	return o.complete(ctx, req)
}

func (o *OpenAI) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(callCtx, req)
	if err != nil {
		upstream := wrapUpstream(err)
		if !isRateLimited(upstream) {
			return "", upstream
		}

		// Rate limited: wait once and retry, then give up.
		select {
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			return "", upstream
		}

		retryCtx, retryCancel := context.WithTimeout(ctx, o.timeout)
		defer retryCancel()
		resp, err = o.client.CreateChatCompletion(retryCtx, req)
		if err != nil {
			return "", wrapUpstream(err)
		}
	}

	if len(resp.Choices) == 0 {
		return "", wrapUpstream(errNoChoices)
	}
	return resp.Choices[0].Message.Content, nil
}

// compile-time check to ensure OpenAI implements the LLM interface
var _ interfaces.LLM = (*OpenAI)(nil)
