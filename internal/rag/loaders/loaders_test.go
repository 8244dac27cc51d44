package loaders

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aysenurmengi/ai-languageExercises/internal/models"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestForFileTxt(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("The cat sat on the mat."))

	loader, err := ForFile(path, []string{".txt", ".pdf"})
	require.NoError(t, err)

	docs, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "The cat sat on the mat.", docs[0].Text)
}

func TestForFileExtensionNotAllowed(t *testing.T) {
	path := writeFile(t, "notes.docx", []byte("irrelevant"))

	// .docx is valid for summarization but not for the QA allow-list.
	_, err := ForFile(path, []string{".txt", ".pdf"})
	assert.True(t, errors.Is(err, models.ErrUnsupportedFormat))
}

func TestForFileRenamedBinary(t *testing.T) {
	// PNG magic bytes behind a .pdf extension must not reach the PDF loader.
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	path := writeFile(t, "sneaky.pdf", png)

	_, err := ForFile(path, []string{".txt", ".pdf"})
	assert.True(t, errors.Is(err, models.ErrUnsupportedFormat))
}

func TestForFileCaseInsensitiveExtension(t *testing.T) {
	path := writeFile(t, "NOTES.TXT", []byte("The cat sat on the mat."))

	_, err := ForFile(path, []string{".txt"})
	assert.NoError(t, err)
}
