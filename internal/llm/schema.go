package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Expected model output shapes, one per prompt:
//
//	summary:    {"summary": "string", "key_points": ["string"]}
//	quiz:       {"questions": [{"question", "options", "correct_answer", "explanation"}]}
//	flashcards: {"flashcards": [{"front", "back"}]}
//
// Decoded output is validated against these shapes and rejected with
// ErrContract on violation instead of silently substituting defaults.

// SummaryPayload is the expected summary response shape.
type SummaryPayload struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

// Validate checks the summary contract.
func (p SummaryPayload) Validate() error {
	if strings.TrimSpace(p.Summary) == "" {
		return fmt.Errorf("%w: summary is empty", ErrContract)
	}
	if len(p.KeyPoints) == 0 {
		return fmt.Errorf("%w: key_points is empty", ErrContract)
	}
	for i, point := range p.KeyPoints {
		if strings.TrimSpace(point) == "" {
			return fmt.Errorf("%w: key_points[%d] is empty", ErrContract, i)
		}
	}
	return nil
}

// QuizQuestionPayload is one question in the quiz response shape. The
// model is asked for exactly four options, but only "at least two" is
// enforced; CorrectAnswer must index into Options.
type QuizQuestionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Validate checks one question's contract.
func (q QuizQuestionPayload) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question is empty", ErrContract)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: question needs at least 2 options, got %d", ErrContract, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: options[%d] is empty", ErrContract, i)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: correct_answer %d out of range for %d options", ErrContract, q.CorrectAnswer, len(q.Options))
	}
	return nil
}

// QuizPayload is the expected quiz response shape.
type QuizPayload struct {
	Questions []QuizQuestionPayload `json:"questions"`
}

// Validate checks the quiz contract.
func (p QuizPayload) Validate() error {
	if len(p.Questions) == 0 {
		return fmt.Errorf("%w: questions is empty", ErrContract)
	}
	for i, q := range p.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("questions[%d]: %w", i, err)
		}
	}
	return nil
}

// FlashcardPayload is one card in the flashcards response shape.
type FlashcardPayload struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashcardsPayload is the expected flashcards response shape.
type FlashcardsPayload struct {
	Flashcards []FlashcardPayload `json:"flashcards"`
}

// Validate checks the flashcards contract.
func (p FlashcardsPayload) Validate() error {
	if len(p.Flashcards) == 0 {
		return fmt.Errorf("%w: flashcards is empty", ErrContract)
	}
	for i, card := range p.Flashcards {
		if strings.TrimSpace(card.Front) == "" {
			return fmt.Errorf("%w: flashcards[%d].front is empty", ErrContract, i)
		}
		if strings.TrimSpace(card.Back) == "" {
			return fmt.Errorf("%w: flashcards[%d].back is empty", ErrContract, i)
		}
	}
	return nil
}

// DecodeSummary decodes and validates a summary object.
func DecodeSummary(raw json.RawMessage) (SummaryPayload, error) {
	var payload SummaryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return SummaryPayload{}, fmt.Errorf("%w: %v", ErrContract, err)
	}
	if err := payload.Validate(); err != nil {
		return SummaryPayload{}, err
	}
	return payload, nil
}

// DecodeQuiz decodes and validates a quiz object.
func DecodeQuiz(raw json.RawMessage) (QuizPayload, error) {
	var payload QuizPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return QuizPayload{}, fmt.Errorf("%w: %v", ErrContract, err)
	}
	if err := payload.Validate(); err != nil {
		return QuizPayload{}, err
	}
	return payload, nil
}

// DecodeFlashcards decodes and validates a flashcards object.
func DecodeFlashcards(raw json.RawMessage) (FlashcardsPayload, error) {
	var payload FlashcardsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return FlashcardsPayload{}, fmt.Errorf("%w: %v", ErrContract, err)
	}
	if err := payload.Validate(); err != nil {
		return FlashcardsPayload{}, err
	}
	return payload, nil
}
