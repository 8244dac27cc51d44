// Package imagegen generates illustration images for exercises through the
// OpenAI image API.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/aysenurmengi/ai-languageExercises/internal/models"
)

// Generator produces base64-encoded PNG illustrations from text prompts.
type Generator struct {
	client      *openai.Client
	model       string
	timeout     time.Duration
	maxAttempts uint64
}

// NewGenerator creates a new image generator.
func NewGenerator(apiKey, model string, timeout time.Duration) *Generator {
	config := openai.DefaultConfig(apiKey)
	return &Generator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		timeout:     timeout,
		maxAttempts: 3,
	}
}

// Generate wraps the user's prompt in an illustration instruction and returns
// the generated image as a data URI. Transient upstream failures (429 and 5xx)
// are retried with exponential backoff up to a fixed number of attempts;
// there is no unbounded retry chain.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	imagePrompt := fmt.Sprintf(
		"High quality, detailed illustration about %s. Show the concept in a clear and educational way. Use vibrant colors and modern style.",
		prompt,
	)

	req := openai.ImageRequest{
		Model:          g.model,
		Prompt:         imagePrompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	}

	var b64 string
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		resp, err := g.client.CreateImage(callCtx, req)
		if err != nil {
			upstream := wrapUpstream(err)
			if retryable(upstream.StatusCode) {
				return upstream
			}
			return backoff.Permanent(upstream)
		}

		if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
			return backoff.Permanent(&models.UpstreamError{
				Err: errors.New("invalid response from image generation API"),
			})
		}

		b64 = resp.Data[0].B64JSON
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), g.maxAttempts)
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return "", err
	}

	return "data:image/png;base64," + b64, nil
}

// retryable reports whether the upstream status is worth another attempt.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func wrapUpstream(err error) *models.UpstreamError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &models.UpstreamError{StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &models.UpstreamError{StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return &models.UpstreamError{Err: err}
}
