package splitters

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharSplitterOverlap(t *testing.T) {
	s := NewCharSplitter(10, 2)
	text := strings.Repeat("abcdefgh", 4) // 32 chars, step = 8

	passages := s.Split(text)
	require.NotEmpty(t, passages)

	for i := 1; i < len(passages); i++ {
		prev := []rune(passages[i-1].Text)
		curr := []rune(passages[i].Text)
		// Adjacent passages share exactly ChunkOverlap characters.
		tail := string(prev[len(prev)-s.ChunkOverlap:])
		head := string(curr[:s.ChunkOverlap])
		assert.Equal(t, tail, head, "passages %d and %d do not overlap", i-1, i)
	}
}

func TestCharSplitterDeterminism(t *testing.T) {
	s := NewCharSplitter(10, 2)
	text := "The cat sat on the mat. The dog ran in the park."

	first := s.Split(text)
	second := s.Split(text)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}

func TestCharSplitterExactMultiple(t *testing.T) {
	// A text whose length is an exact multiple of chunkSize-overlap must
	// produce exactly length/step passages: no duplicated tail, no loss.
	s := NewCharSplitter(10, 2) // step = 8
	text := strings.Repeat("x", 24)

	passages := s.Split(text)
	require.Len(t, passages, 3)
	assert.Equal(t, strings.Repeat("x", 10), passages[0].Text)
	assert.Equal(t, strings.Repeat("x", 8), passages[2].Text)
}

func TestCharSplitterSingleChunk(t *testing.T) {
	s := NewCharSplitter(1000, 200)

	passages := s.Split("short text")
	require.Len(t, passages, 1)
	assert.Equal(t, "short text", passages[0].Text)
	assert.Equal(t, 0, passages[0].Index)
}

func TestCharSplitterEmpty(t *testing.T) {
	s := NewCharSplitter(1000, 200)
	assert.Nil(t, s.Split(""))
}

func TestCharSplitterMultibyte(t *testing.T) {
	s := NewCharSplitter(4, 1)
	text := "çınar ağacı gölgesi"

	passages := s.Split(text)
	require.NotEmpty(t, passages)
	for _, p := range passages {
		// Offsets are counted in runes, so no passage contains a broken rune.
		assert.True(t, utf8.ValidString(p.Text))
		assert.LessOrEqual(t, len([]rune(p.Text)), s.ChunkSize)
	}
}
