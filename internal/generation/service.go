package generation

import (
	"context"
	"encoding/json"
	"time"

	"studykit-backend/internal/llm"
	"studykit-backend/internal/shared/metrics"
	"studykit-backend/internal/shared/telemetry"
)

// Summary is the API representation of a generated summary.
type Summary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

// QuizQuestion is the API representation of one quiz question. The
// correct answer is carried as the option string itself, never as an
// index, so every surface of the API agrees on one representation.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is the API representation of a generated quiz.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// Flashcard is the API representation of one flashcard.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Flashcards is the API representation of a generated flashcard set.
type Flashcards struct {
	Flashcards []Flashcard `json:"flashcards"`
}

// Bundle combines all three artifacts for the one-shot upload flow.
type Bundle struct {
	Summary    Summary    `json:"summary"`
	Quiz       Quiz       `json:"quiz"`
	Flashcards Flashcards `json:"flashcards"`
}

// Service turns source text into study materials: prompt build, model
// call, JSON extraction, schema validation, response shaping.
type Service struct {
	LLM       llm.Client
	MaxTokens int
}

// Summary generates a summary with key points from the text.
func (s *Service) Summary(ctx context.Context, text string) (Summary, error) {
	raw, err := s.complete(ctx, "summary", llm.SummaryPrompt(text))
	if err != nil {
		return Summary{}, err
	}
	payload, err := llm.DecodeSummary(raw)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Summary: payload.Summary, KeyPoints: payload.KeyPoints}, nil
}

// Quiz generates multiple-choice questions from the text.
func (s *Service) Quiz(ctx context.Context, text string) (Quiz, error) {
	raw, err := s.complete(ctx, "quiz", llm.QuizPrompt(text))
	if err != nil {
		return Quiz{}, err
	}
	payload, err := llm.DecodeQuiz(raw)
	if err != nil {
		return Quiz{}, err
	}

	questions := make([]QuizQuestion, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		questions = append(questions, QuizQuestion{
			Question: q.Question,
			Options:  q.Options,
			// Index already validated against Options by DecodeQuiz.
			CorrectAnswer: q.Options[q.CorrectAnswer],
			Explanation:   q.Explanation,
		})
	}
	return Quiz{Questions: questions}, nil
}

// Flashcards generates front/back flashcards from the text.
func (s *Service) Flashcards(ctx context.Context, text string) (Flashcards, error) {
	raw, err := s.complete(ctx, "flashcards", llm.FlashcardsPrompt(text))
	if err != nil {
		return Flashcards{}, err
	}
	payload, err := llm.DecodeFlashcards(raw)
	if err != nil {
		return Flashcards{}, err
	}

	cards := make([]Flashcard, 0, len(payload.Flashcards))
	for _, card := range payload.Flashcards {
		cards = append(cards, Flashcard{Front: card.Front, Back: card.Back})
	}
	return Flashcards{Flashcards: cards}, nil
}

// All generates summary, quiz, and flashcards in sequence. The first
// failing stage aborts the whole bundle; earlier results are discarded.
func (s *Service) All(ctx context.Context, text string) (Bundle, error) {
	summary, err := s.Summary(ctx, text)
	if err != nil {
		return Bundle{}, err
	}
	quiz, err := s.Quiz(ctx, text)
	if err != nil {
		return Bundle{}, err
	}
	flashcards, err := s.Flashcards(ctx, text)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{Summary: summary, Quiz: quiz, Flashcards: flashcards}, nil
}

// complete runs one model round trip and extracts the JSON object from
// the raw completion.
func (s *Service) complete(ctx context.Context, kind, prompt string) (rawObject json.RawMessage, err error) {
	metrics.IncGenerationStarted()
	start := time.Now()
	defer func() {
		durationMs := float64(time.Since(start).Microseconds()) / 1000.0
		metrics.ObserveGenerationDurationMs(durationMs)
		if err != nil {
			metrics.IncGenerationFailed()
			telemetry.Error("generation.failed", map[string]any{
				"kind":        kind,
				"duration_ms": durationMs,
				"error":       err.Error(),
			})
			return
		}
		metrics.IncGenerationCompleted()
		telemetry.Info("generation.complete", map[string]any{
			"kind":        kind,
			"duration_ms": durationMs,
		})
	}()

	content, err := s.LLM.Complete(ctx, prompt, s.MaxTokens)
	if err != nil {
		return nil, err
	}
	return llm.ExtractJSON(content)
}
