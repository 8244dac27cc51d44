// Package service orchestrates the document and exercise-generation flows
// behind the HTTP API.
package service

import (
	"context"

	"github.com/aysenurmengi/ai-languageExercises/internal/imagegen"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/interfaces"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/pipeline"
	"github.com/aysenurmengi/ai-languageExercises/pkg/logger"
)

// Extensions accepted per endpoint. The question-answering path only takes
// plain text and PDF; the summarization path also accepts Word documents.
var (
	ProcessExtensions   = []string{".txt", ".pdf"}
	SummarizeExtensions = []string{".txt", ".pdf", ".doc", ".docx"}
)

// Service wires the pipelines together. It holds no request state: the
// fingerprint-keyed cache inside the pipelines is the only persistent state.
type Service struct {
	ingest    *pipeline.IngestPipeline
	retrieval *pipeline.RetrievalPipeline
	qa        *pipeline.QAPipeline
	summary   *pipeline.SummaryPipeline
	images    *imagegen.Generator
	quizLLM   interfaces.LLM
	log       *logger.Logger
}

// New creates a new Service.
func New(
	ingest *pipeline.IngestPipeline,
	retrieval *pipeline.RetrievalPipeline,
	qa *pipeline.QAPipeline,
	summary *pipeline.SummaryPipeline,
	images *imagegen.Generator,
	quizLLM interfaces.LLM,
	log *logger.Logger,
) *Service {
	return &Service{
		ingest:    ingest,
		retrieval: retrieval,
		qa:        qa,
		summary:   summary,
		images:    images,
		quizLLM:   quizLLM,
		log:       log,
	}
}

// ProcessDocument ingests an uploaded file and returns the extracted text,
// its fingerprint and whether the result came from the cache.
func (s *Service) ProcessDocument(ctx context.Context, path string) (*pipeline.IngestResult, error) {
	return s.ingest.Run(ctx, path, ProcessExtensions)
}

// Summarize ingests an uploaded file (persisting its embeddings if this is
// novel content) and produces a summary of the extracted text.
func (s *Service) Summarize(ctx context.Context, path string) (text, summary string, err error) {
	result, err := s.ingest.Run(ctx, path, SummarizeExtensions)
	if err != nil {
		return "", "", err
	}

	summary, err = s.summary.Run(ctx, result.Text)
	if err != nil {
		return "", "", err
	}
	return result.Text, summary, nil
}

// AskQuestion answers a free-text question about a previously ingested
// document identified by its fingerprint.
func (s *Service) AskQuestion(ctx context.Context, fingerprint, question string) (string, error) {
	contextBlock, err := s.retrieval.Run(ctx, fingerprint, question)
	if err != nil {
		return "", err
	}
	return s.qa.Run(ctx, question, contextBlock)
}

// GenerateImage produces an illustration for the prompt as a data URI.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return s.images.Generate(ctx, prompt)
}
