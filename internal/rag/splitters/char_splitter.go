package splitters

import (
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/schema"
)

// CharSplitter splits text into fixed-size passages with a fixed overlap
// between consecutive passages. Boundaries are deterministic: re-splitting
// the same text always yields the same passages.
type CharSplitter struct {
	ChunkSize    int
	ChunkOverlap int
}

// NewCharSplitter creates a new CharSplitter. The overlap must be smaller
// than the chunk size; out-of-range values fall back to defaults.
func NewCharSplitter(chunkSize, chunkOverlap int) *CharSplitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 5
	}
	return &CharSplitter{
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
	}
}

// Split cuts the text into passages of at most ChunkSize characters, advancing
// by ChunkSize-ChunkOverlap each step so that adjacent passages share exactly
// ChunkOverlap characters. Offsets are counted in runes, not bytes, so a
// multi-byte character is never cut in half.
func (s *CharSplitter) Split(text string) []schema.Passage {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	step := s.ChunkSize - s.ChunkOverlap

	var passages []schema.Passage
	for start := 0; start < len(runes); start += step {
		end := start + s.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}

		passages = append(passages, schema.Passage{
			Index: len(passages),
			Text:  string(runes[start:end]),
		})

		if end == len(runes) {
			break
		}
	}

	return passages
}
