package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the document pipeline. Handlers map these onto HTTP
// status codes; everything else surfaces as an internal error.
var (
	// ErrUnsupportedFormat indicates the uploaded file's extension is not allow-listed.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed indicates the format-specific decoder failed.
	ErrExtractionFailed = errors.New("file processing failed")

	// ErrEmptyContent indicates the normalized text was zero-length.
	ErrEmptyContent = errors.New("empty or invalid file content")

	// ErrNotFound indicates no cache entry exists for a fingerprint.
	ErrNotFound = errors.New("document embeddings not found")
)

// UpstreamError wraps a failure of the completion or embedding API,
// preserving the provider's HTTP status so rate limits can be surfaced
// to the client as 429.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API error (status %d): %v", e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ValidationError indicates a malformed client request or a model response
// that does not match the expected schema.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
