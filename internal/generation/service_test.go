package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"studykit-backend/internal/llm"
)

// scriptedClient answers prompts by kind, keyed on template wording.
type scriptedClient struct {
	summary    string
	quiz       string
	flashcards string
	err        error
	calls      []string
}

func (c *scriptedClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	kind := promptKind(prompt)
	c.calls = append(c.calls, kind)
	if c.err != nil {
		return "", c.err
	}
	switch kind {
	case "summary":
		return c.summary, nil
	case "quiz":
		return c.quiz, nil
	case "flashcards":
		return c.flashcards, nil
	}
	return "", fmt.Errorf("unrecognized prompt: %s", prompt)
}

func promptKind(prompt string) string {
	switch {
	case strings.Contains(prompt, "summary along with key points"):
		return "summary"
	case strings.Contains(prompt, "multiple-choice questions"):
		return "quiz"
	case strings.Contains(prompt, "flashcards for studying"):
		return "flashcards"
	}
	return "unknown"
}

const (
	validSummaryJSON = `{"summary": "The text covers Go.", "key_points": ["a", "b", "c", "d", "e"]}`
	validQuizJSON    = `{"questions": [{"question": "What is Go?", "options": ["Language", "Fish", "Game", "Planet"], "correct_answer": 0, "explanation": "Go is a programming language."}]}`
	validCardsJSON   = `{"flashcards": [{"front": "Goroutine", "back": "A lightweight thread managed by the Go runtime."}]}`
)

func validClient() *scriptedClient {
	return &scriptedClient{
		summary:    validSummaryJSON,
		quiz:       validQuizJSON,
		flashcards: validCardsJSON,
	}
}

func TestSummaryDecodesModelOutput(t *testing.T) {
	svc := &Service{LLM: validClient()}

	summary, err := svc.Summary(context.Background(), "source text")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Summary != "The text covers Go." {
		t.Fatalf("unexpected summary: %q", summary.Summary)
	}
	if len(summary.KeyPoints) != 5 {
		t.Fatalf("expected 5 key points, got %d", len(summary.KeyPoints))
	}
}

func TestQuizMapsCorrectAnswerIndexToOption(t *testing.T) {
	client := validClient()
	client.quiz = `{"questions": [{"question": "Pick B", "options": ["A", "B", "C", "D"], "correct_answer": 1, "explanation": "Because B."}]}`
	svc := &Service{LLM: client}

	quiz, err := svc.Quiz(context.Background(), "source text")
	if err != nil {
		t.Fatalf("Quiz: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(quiz.Questions))
	}
	q := quiz.Questions[0]
	if q.CorrectAnswer != "B" {
		t.Fatalf("expected correct_answer mapped to option string B, got %q", q.CorrectAnswer)
	}
	if q.Explanation != "Because B." {
		t.Fatalf("expected explanation carried through, got %q", q.Explanation)
	}
}

func TestQuizWrapsModelProse(t *testing.T) {
	client := validClient()
	client.quiz = "Sure! Here is your quiz:\n" + validQuizJSON + "\nHope that helps."
	svc := &Service{LLM: client}

	quiz, err := svc.Quiz(context.Background(), "source text")
	if err != nil {
		t.Fatalf("Quiz: %v", err)
	}
	if quiz.Questions[0].CorrectAnswer != "Language" {
		t.Fatalf("unexpected correct answer: %q", quiz.Questions[0].CorrectAnswer)
	}
}

func TestAllRunsStagesInOrder(t *testing.T) {
	client := validClient()
	svc := &Service{LLM: client}

	bundle, err := svc.All(context.Background(), "source text")
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want := []string{"summary", "quiz", "flashcards"}
	if len(client.calls) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), client.calls)
	}
	for i := range want {
		if client.calls[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s", i, want[i], client.calls[i])
		}
	}
	if bundle.Summary.Summary == "" || len(bundle.Quiz.Questions) == 0 || len(bundle.Flashcards.Flashcards) == 0 {
		t.Fatalf("bundle incomplete: %+v", bundle)
	}
}

func TestAllAbortsAfterFirstFailure(t *testing.T) {
	client := validClient()
	client.quiz = "no json here at all"
	svc := &Service{LLM: client}

	_, err := svc.All(context.Background(), "source text")
	if !errors.Is(err, llm.ErrParse) {
		t.Fatalf("expected ErrParse from quiz stage, got %v", err)
	}
	// Flashcards stage never runs once quiz fails.
	want := []string{"summary", "quiz"}
	if len(client.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, client.calls)
	}
}

func TestServicePropagatesGatewayError(t *testing.T) {
	client := &scriptedClient{err: fmt.Errorf("%w: http status 503", llm.ErrGateway)}
	svc := &Service{LLM: client}

	if _, err := svc.Summary(context.Background(), "text"); !errors.Is(err, llm.ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestServiceRejectsContractViolation(t *testing.T) {
	client := validClient()
	client.summary = `{"summary": "", "key_points": []}`
	svc := &Service{LLM: client}

	if _, err := svc.Summary(context.Background(), "text"); !errors.Is(err, llm.ErrContract) {
		t.Fatalf("expected ErrContract, got %v", err)
	}
}

func TestServiceNotConfigured(t *testing.T) {
	svc := &Service{LLM: llm.Disabled{}}

	if _, err := svc.Flashcards(context.Background(), "text"); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
