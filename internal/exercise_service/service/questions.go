package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aysenurmengi/ai-languageExercises/internal/models"
)

// levelGuideline captures the vocabulary and grammar constraints for one
// CEFR level, used to keep generated questions within the learner's range.
type levelGuideline struct {
	Vocabulary string
	Structure  string
	Examples   string
	Rules      []string
}

var levelGuidelines = map[string]levelGuideline{
	"A1": {
		Vocabulary: "Use only the most basic and common everyday words. No complex vocabulary.",
		Structure:  "Use only simple present tense. Very short and basic sentences. No complex structures.",
		Examples:   "Use words like: is, are, have, like, go, eat, drink, play, read, write",
		Rules: []string{
			"Maximum 5-6 words per sentence",
			"Only use present simple tense",
			"Only basic question words (what, where, when)",
			"No passive voice, no complex tenses",
			"Focus on concrete objects and basic actions",
		},
	},
	"A2": {
		Vocabulary: "Basic everyday vocabulary plus simple topic-specific words.",
		Structure:  "Simple present and past tense. Basic future with \"going to\". Short, simple sentences.",
		Examples:   "Can use: yesterday, tomorrow, always, sometimes, often, and, but, because",
		Rules: []string{
			"Short simple sentences with basic conjunctions",
			"Present simple, past simple, going to future",
			"Common adjectives and adverbs",
			"Basic prepositions and articles",
			"Simple questions about daily life",
		},
	},
	"B1": {
		Vocabulary: "Common everyday vocabulary plus some topic-specific terms.",
		Structure:  "All basic tenses. Compound sentences. Some relative clauses.",
		Examples:   "Can discuss: likes/dislikes, opinions, simple explanations, basic comparisons",
		Rules: []string{
			"Longer sentences with multiple clauses",
			"All basic tenses including present perfect",
			"Comparative and superlative forms",
			"First conditional and basic modals",
			"Can express opinions and simple arguments",
		},
	},
	"B2": {
		Vocabulary: "Wider range of vocabulary including some academic and abstract terms.",
		Structure:  "More complex sentences. All tenses. Passive voice. Conditionals.",
		Examples:   "Can discuss: advantages/disadvantages, causes/effects, recommendations",
		Rules: []string{
			"Complex sentences and varied structures",
			"All tenses including perfect and continuous",
			"Passive voice and reported speech",
			"Second and third conditionals",
			"Can express detailed opinions and arguments",
		},
	},
	"C1": {
		Vocabulary: "Advanced vocabulary including idiomatic expressions and academic terms.",
		Structure:  "Complex academic language. All grammatical structures. Abstract concepts.",
		Examples:   "Can discuss: implications, analysis, evaluation, detailed arguments",
		Rules: []string{
			"Sophisticated sentence structures",
			"Advanced grammatical constructions",
			"Idiomatic expressions and colloquialisms",
			"Complex academic concepts",
			"Can express subtle differences in meaning",
		},
	},
	"C2": {
		Vocabulary: "Sophisticated vocabulary including technical and specialized terms.",
		Structure:  "Native-like command of complex structures. Professional academic language.",
		Examples:   "Can discuss: complex theories, critical analysis, expert-level topics",
		Rules: []string{
			"Native-like fluency and accuracy",
			"Complex academic and technical language",
			"Sophisticated argumentation",
			"Nuanced expression of ideas",
			"Professional and specialized terminology",
		},
	},
}

// GenerateQuestions asks the model for multiple-choice questions at the given
// CEFR level and validates the response against the expected schema before
// returning it. Any shape mismatch is a ValidationError, never silently coerced.
func (s *Service) GenerateQuestions(ctx context.Context, topic, level string, numberOfQuestions int) ([]models.QuizQuestion, error) {
	if !models.ValidLevel(level) {
		return nil, &models.ValidationError{
			Reason: fmt.Sprintf("level must be one of: %s", strings.Join(models.CEFRLevels, ", ")),
		}
	}
	if numberOfQuestions <= 0 {
		return nil, &models.ValidationError{Reason: "numberOfQuestions must be positive"}
	}

	guide := levelGuidelines[level]
	prompt := buildQuestionPrompt(topic, level, numberOfQuestions, guide)

	s.log.WithField("level", level).Info("Generating quiz questions")
	raw, err := s.quizLLM.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := parseQuestions(raw, numberOfQuestions)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func buildQuestionPrompt(topic, level string, n int, guide levelGuideline) string {
	var rules strings.Builder
	for _, rule := range guide.Rules {
		rules.WriteString("  - ")
		rules.WriteString(rule)
		rules.WriteString("\n")
	}

	return fmt.Sprintf(`Topic: %s
Task: Create %d multiple-choice questions for %s level English learners.

Language Level Guidelines (%s):
- Vocabulary Range: %s
- Sentence Structure: %s
- Example Usage: %s

Strict Level Rules:
%s
Requirements:
1. Questions MUST strictly follow %s level constraints: use ONLY vocabulary and grammatical structures appropriate for %s, and keep sentence length, complexity and contexts familiar to %s learners.
2. Start with simpler questions within %s range and gradually increase complexity while staying within %s limits.
3. All answer options must use %s-appropriate language; distractors should be plausible but clearly incorrect, and all options should have similar length and structure.

Format the response as a JSON object with this structure:
{
  "questions": [
    {
      "text": "Question text here",
      "options": ["A) option1", "B) option2", "C) option3", "D) option4"],
      "correctAnswer": "A) option1"
    }
  ]
}

Critical Reminders:
- STRICTLY maintain %s level language throughout
- Do NOT use vocabulary or grammar above %s level
- Keep questions clear and unambiguous for %s learners`,
		topic, n, level, level,
		guide.Vocabulary, guide.Structure, guide.Examples, rules.String(),
		level, level, level, level, level, level, level, level, level)
}

// parseQuestions validates the model's JSON output: the expected field names,
// exactly four options per question, the correct answer among the options and
// the requested question count.
func parseQuestions(raw string, expected int) ([]models.QuizQuestion, error) {
	var payload struct {
		Questions []models.QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &models.ValidationError{Reason: "the response format was invalid"}
	}

	if len(payload.Questions) != expected {
		return nil, &models.ValidationError{
			Reason: fmt.Sprintf("expected %d questions, got %d", expected, len(payload.Questions)),
		}
	}

	for i, q := range payload.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, &models.ValidationError{Reason: fmt.Sprintf("question %d has empty text", i+1)}
		}
		if len(q.Options) != 4 {
			return nil, &models.ValidationError{
				Reason: fmt.Sprintf("question %d has %d options, expected 4", i+1, len(q.Options)),
			}
		}
		valid := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				valid = true
				break
			}
		}
		if !valid {
			return nil, &models.ValidationError{
				Reason: fmt.Sprintf("question %d correct answer is not among the options", i+1),
			}
		}
	}

	return payload.Questions, nil
}
