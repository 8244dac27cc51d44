package splitters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceSplitterRespectsBudget(t *testing.T) {
	s := NewSentenceSplitter(30)
	text := "First sentence here. Second sentence here. Third sentence here."

	chunks := s.Split(text)
	require.True(t, len(chunks) > 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 2*s.MaxLength, "a single sentence may exceed the budget, but packing must not")
	}
}

func TestSentenceSplitterNeverCutsSentences(t *testing.T) {
	s := NewSentenceSplitter(40)
	text := "The cat sat on the mat. The dog ran in the park. Birds fly high."

	chunks := s.Split(text)
	// Every chunk ends on a sentence terminator.
	for _, chunk := range chunks {
		last := chunk[len(chunk)-1]
		assert.Contains(t, ".!?", string(last))
	}
	// Nothing is lost.
	assert.Equal(t, strings.ReplaceAll(text, " ", ""), strings.ReplaceAll(strings.Join(chunks, ""), " ", ""))
}

func TestSentenceSplitterNoTerminator(t *testing.T) {
	s := NewSentenceSplitter(100)

	chunks := s.Split("a fragment without any terminator")
	require.Len(t, chunks, 1)
	assert.Equal(t, "a fragment without any terminator", chunks[0])
}

func TestSentenceSplitterEmpty(t *testing.T) {
	s := NewSentenceSplitter(100)
	assert.Nil(t, s.Split("   "))
}
