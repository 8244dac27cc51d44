// Package models holds the shared domain types of the exercise service.
package models

import "time"

// CacheEntry is the persisted record for one ingested document, keyed by the
// content fingerprint. Entries are immutable once written: a later upload of
// identical content is a cache hit and never overwrites the stored entry.
type CacheEntry struct {
	Text      string      `json:"text"`
	Vectors   [][]float32 `json:"vectors"`
	CreatedAt time.Time   `json:"createdAt"`
}

// QuizQuestion is one generated multiple-choice question.
type QuizQuestion struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// CEFRLevels are the language proficiency levels accepted by the
// question generator.
var CEFRLevels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// ValidLevel reports whether level is one of the accepted CEFR levels.
func ValidLevel(level string) bool {
	for _, l := range CEFRLevels {
		if l == level {
			return true
		}
	}
	return false
}
