package splitters

import (
	"regexp"
	"strings"
)

// SentenceSplitter splits text into sentence-bounded chunks under a fixed
// character budget. It is used by the summarization pipeline, which needs
// larger chunks that never cut a sentence in half.
type SentenceSplitter struct {
	MaxLength int
	sentences *regexp.Regexp
}

// NewSentenceSplitter creates a new SentenceSplitter with the given budget.
func NewSentenceSplitter(maxLength int) *SentenceSplitter {
	if maxLength <= 0 {
		maxLength = 12000
	}
	return &SentenceSplitter{
		MaxLength: maxLength,
		sentences: regexp.MustCompile(`[^.!?]+[.!?]+`),
	}
}

// Split greedily packs whole sentences into chunks until adding the next
// sentence would exceed MaxLength. Text without any sentence terminator is
// returned as a single chunk.
func (s *SentenceSplitter) Split(text string) []string {
	sentences := s.sentences.FindAllString(text, -1)
	if len(sentences) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	var chunks []string
	var current strings.Builder
	for _, sentence := range sentences {
		if current.Len()+len(sentence) > s.MaxLength && current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
