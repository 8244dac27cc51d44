// Package loaders provides format-specific document loaders and the logic
// for picking the right loader for an uploaded file.
package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/aysenurmengi/ai-languageExercises/internal/models"
	"github.com/aysenurmengi/ai-languageExercises/internal/rag/interfaces"
)

// plain-text MIME types that are acceptable for a .txt upload
var textMimePrefixes = []string{"text/", "application/octet-stream"}

// ForFile returns the loader matching the file's extension, restricted to the
// given allow-list of extensions (lower-case, including the leading dot).
// The file content's MIME type is sniffed as well, so a renamed binary cannot
// slip through the extension check.
func ForFile(path string, allowed []string) (interfaces.Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !contains(allowed, ext) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, ext)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to detect MIME type: %w", err)
	}

	switch ext {
	case ".pdf":
		if !mtype.Is("application/pdf") {
			return nil, fmt.Errorf("%w: file content is %s, not a PDF", models.ErrUnsupportedFormat, mtype.String())
		}
		return NewPdfLoader(), nil
	case ".doc", ".docx":
		return NewDocxLoader(), nil
	case ".txt":
		for _, prefix := range textMimePrefixes {
			if strings.HasPrefix(mtype.String(), prefix) {
				return NewTxtLoader(), nil
			}
		}
		return nil, fmt.Errorf("%w: file content is %s, not plain text", models.ErrUnsupportedFormat, mtype.String())
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, ext)
	}
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
