package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeSummaryGood(t *testing.T) {
	raw := json.RawMessage(`{"summary": "A short text.", "key_points": ["one", "two"]}`)
	payload, err := DecodeSummary(raw)
	if err != nil {
		t.Fatalf("DecodeSummary: %v", err)
	}
	if payload.Summary != "A short text." || len(payload.KeyPoints) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDecodeSummaryRejectsEmptySummary(t *testing.T) {
	raw := json.RawMessage(`{"summary": "  ", "key_points": ["one"]}`)
	if _, err := DecodeSummary(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract, got %v", err)
	}
}

func TestDecodeSummaryRejectsMissingKeyPoints(t *testing.T) {
	raw := json.RawMessage(`{"summary": "text"}`)
	if _, err := DecodeSummary(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract, got %v", err)
	}
}

func TestDecodeSummaryRejectsWrongType(t *testing.T) {
	raw := json.RawMessage(`{"summary": 42, "key_points": ["one"]}`)
	if _, err := DecodeSummary(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract for type mismatch, got %v", err)
	}
}

func TestDecodeQuizGood(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "What is Go?", "options": ["A language", "A fish", "A game", "A planet"], "correct_answer": 0, "explanation": "Go is a language."}
		]
	}`)
	payload, err := DecodeQuiz(raw)
	if err != nil {
		t.Fatalf("DecodeQuiz: %v", err)
	}
	if len(payload.Questions) != 1 || payload.Questions[0].CorrectAnswer != 0 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDecodeQuizRejectsEmptyQuestions(t *testing.T) {
	raw := json.RawMessage(`{"questions": []}`)
	if _, err := DecodeQuiz(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract, got %v", err)
	}
}

func TestDecodeQuizRejectsOutOfRangeAnswer(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "Pick one", "options": ["a", "b"], "correct_answer": 2, "explanation": "x"}
		]
	}`)
	if _, err := DecodeQuiz(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract for out-of-range index, got %v", err)
	}
}

func TestDecodeQuizRejectsNegativeAnswer(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "Pick one", "options": ["a", "b"], "correct_answer": -1, "explanation": "x"}
		]
	}`)
	if _, err := DecodeQuiz(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract for negative index, got %v", err)
	}
}

func TestDecodeQuizAllowsNonStandardOptionCount(t *testing.T) {
	// Four options are requested from the model but not enforced.
	raw := json.RawMessage(`{
		"questions": [
			{"question": "Pick one", "options": ["a", "b", "c"], "correct_answer": 2, "explanation": "x"}
		]
	}`)
	if _, err := DecodeQuiz(raw); err != nil {
		t.Fatalf("expected three options to pass, got %v", err)
	}
}

func TestDecodeQuizRejectsTooFewOptions(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "Pick one", "options": ["only"], "correct_answer": 0, "explanation": "x"}
		]
	}`)
	if _, err := DecodeQuiz(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract for single option, got %v", err)
	}
}

func TestDecodeFlashcardsGood(t *testing.T) {
	raw := json.RawMessage(`{"flashcards": [{"front": "Term", "back": "Definition"}]}`)
	payload, err := DecodeFlashcards(raw)
	if err != nil {
		t.Fatalf("DecodeFlashcards: %v", err)
	}
	if len(payload.Flashcards) != 1 || payload.Flashcards[0].Front != "Term" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDecodeFlashcardsRejectsEmptySides(t *testing.T) {
	raw := json.RawMessage(`{"flashcards": [{"front": "Term", "back": ""}]}`)
	if _, err := DecodeFlashcards(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract, got %v", err)
	}
}

func TestDecodeFlashcardsRejectsEmptyList(t *testing.T) {
	raw := json.RawMessage(`{"flashcards": []}`)
	if _, err := DecodeFlashcards(raw); !errors.Is(err, ErrContract) {
		t.Fatalf("expected ErrContract, got %v", err)
	}
}
