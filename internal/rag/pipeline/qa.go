package pipeline

import (
	"context"
	"fmt"

	"github.com/aysenurmengi/ai-languageExercises/internal/rag/interfaces"
	"github.com/aysenurmengi/ai-languageExercises/pkg/logger"
)

// QAPipeline is responsible for generating an answer based on a question and
// a retrieved context block.
type QAPipeline struct {
	llm interfaces.LLM
	log *logger.Logger
}

// NewQAPipeline creates a new QAPipeline.
func NewQAPipeline(llm interfaces.LLM, log *logger.Logger) *QAPipeline {
	return &QAPipeline{llm: llm, log: log}
}

// Run builds the completion prompt from the context and question and returns
// the generated answer verbatim.
func (p *QAPipeline) Run(ctx context.Context, question, contextBlock string) (string, error) {
	prompt := fmt.Sprintf(
		"Context: %s\n\nQuestion: %s\n\nAnswer the question based on the context provided.",
		contextBlock, question,
	)

	p.log.Info("Sending prompt to LLM to generate answer...")
	answer, err := p.llm.Generate(ctx, "", prompt)
	if err != nil {
		p.log.Error(fmt.Sprintf("LLM failed to generate answer: %v", err))
		return "", err
	}

	p.log.Info("Successfully generated answer from LLM.")
	return answer, nil
}
