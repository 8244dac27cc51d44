// Package llm provides clients for text-generation models.
package llm

import (
	"errors"
	"net/http"

	openai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/aysenurmengi/ai-languageExercises/internal/models"
)

// wrapUpstream converts an error from the OpenAI client into an UpstreamError
// carrying the provider's HTTP status. Timeouts and connection failures have
// no status and map to 0.
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

// isRateLimited reports whether the upstream rejected the call with HTTP 429.
func isRateLimited(err *models.UpstreamError) bool {
	return err.StatusCode == http.StatusTooManyRequests
}

var errNoChoices = errors.New("no completion choices returned")
