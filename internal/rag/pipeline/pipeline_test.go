package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/aysenurmengi/ai-languageExercises/pkg/logger"
)

// fakeEmbedder produces deterministic vectors so ranking order is predictable
// in tests. Each text embeds to a 2-dim vector derived from its content.
type fakeEmbedder struct {
	embedCalls      atomic.Int32
	embedBatchCalls atomic.Int32
	err             error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.embedCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return embedText(text), nil
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.embedBatchCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = embedText(text)
	}
	return vectors, nil
}

// embedText maps text to a unit-ish vector: texts containing "cat" point one
// way, everything else another, so similarity to a "cat" query is predictable.
func embedText(text string) []float32 {
	if strings.Contains(strings.ToLower(text), "cat") {
		return []float32{1, 0}
	}
	return []float32{0, 1}
}

// fakeLLM answers by echoing a prefix plus the user prompt, or fails on
// prompts containing failOn.
type fakeLLM struct {
	calls  atomic.Int32
	failOn string
	err    error
}

func (f *fakeLLM) Generate(_ context.Context, _, userPrompt string) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	if f.failOn != "" && strings.Contains(userPrompt, f.failOn) {
		return "", errors.New("upstream failure")
	}
	return fmt.Sprintf("summary(%d chars)", len(userPrompt)), nil
}

func (f *fakeLLM) GenerateJSON(_ context.Context, prompt string) (string, error) {
	return f.Generate(context.Background(), "", prompt)
}

func testLogger() *logger.Logger {
	logger.Init(logrus.PanicLevel)
	return logger.New("test")
}
