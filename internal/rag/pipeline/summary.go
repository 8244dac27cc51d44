package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aysenurmengi/ai-languageExercises/internal/rag/interfaces"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/splitters"
	"github.com/aysenurmengi/ai-languageExercises/pkg/logger"
)

const chunkSummaryInstruction = `Create a concise summary that:
- Uses the author's voice and perspective
- Avoids third-person narration
- Maintains the original narrative flow
- Includes essential points
- Keeps the original writing style`

const combineSummaryInstruction = "Combine these summaries into one coherent summary, maintaining the flow and style."

// SummaryPipeline summarizes long text with a map-reduce flow: every
// sentence-bounded chunk is summarized independently, then one combine call
// merges the chunk summaries.
type SummaryPipeline struct {
	llm      interfaces.LLM
	splitter *splitters.SentenceSplitter
	log      *logger.Logger
}

// NewSummaryPipeline creates a new SummaryPipeline.
func NewSummaryPipeline(llm interfaces.LLM, splitter *splitters.SentenceSplitter, log *logger.Logger) *SummaryPipeline {
	return &SummaryPipeline{llm: llm, splitter: splitter, log: log}
}

// Run summarizes the text. Per-chunk summarization calls are issued
// concurrently and joined: if any chunk fails, the whole request fails and
// no partial summary is returned. The combine call runs only after every
// chunk summary succeeded.
func (p *SummaryPipeline) Run(ctx context.Context, text string) (string, error) {
	chunks := p.splitter.Split(text)
	if len(chunks) == 0 {
		return "", nil
	}
	p.log.WithField("chunks", len(chunks)).Info("Summarizing text chunks")

	summaries := make([]string, len(chunks))
	g, groupCtx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			summary, err := p.llm.Generate(groupCtx, chunkSummaryInstruction,
				fmt.Sprintf("Summarize this text section:\n\n%s", chunk))
			if err != nil {
				return fmt.Errorf("failed to summarize chunk %d: %w", i+1, err)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	p.log.Info("Generating final summary...")
	finalSummary, err := p.llm.Generate(ctx, combineSummaryInstruction, strings.Join(summaries, "\n\n"))
	if err != nil {
		return "", err
	}

	return finalSummary, nil
}
