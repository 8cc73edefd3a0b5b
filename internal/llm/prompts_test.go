package llm

import (
	"strings"
	"testing"
)

const sourceText = "Photosynthesis converts light energy into chemical energy."

func TestSummaryPromptEmbedsTextAndRequestsJSON(t *testing.T) {
	prompt := SummaryPrompt(sourceText)
	if !strings.Contains(prompt, sourceText) {
		t.Fatalf("prompt does not contain source text:\n%s", prompt)
	}
	if !strings.Contains(prompt, "JSON format") {
		t.Fatalf("prompt does not request JSON format:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"key_points"`) {
		t.Fatalf("prompt does not describe key_points field:\n%s", prompt)
	}
}

func TestQuizPromptEmbedsTextAndRequestsJSON(t *testing.T) {
	prompt := QuizPrompt(sourceText)
	if !strings.Contains(prompt, sourceText) {
		t.Fatalf("prompt does not contain source text:\n%s", prompt)
	}
	if !strings.Contains(prompt, "JSON format") {
		t.Fatalf("prompt does not request JSON format:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"correct_answer"`) {
		t.Fatalf("prompt does not describe correct_answer field:\n%s", prompt)
	}
	if !strings.Contains(prompt, "exactly 4 options") {
		t.Fatalf("prompt does not constrain option count:\n%s", prompt)
	}
}

func TestFlashcardsPromptEmbedsTextAndRequestsJSON(t *testing.T) {
	prompt := FlashcardsPrompt(sourceText)
	if !strings.Contains(prompt, sourceText) {
		t.Fatalf("prompt does not contain source text:\n%s", prompt)
	}
	if !strings.Contains(prompt, "JSON format") {
		t.Fatalf("prompt does not request JSON format:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"front"`) || !strings.Contains(prompt, `"back"`) {
		t.Fatalf("prompt does not describe front/back fields:\n%s", prompt)
	}
}

func TestPromptsEmbedTextVerbatim(t *testing.T) {
	// Long inputs are embedded whole; no truncation or chunking happens
	// at the prompt layer.
	long := strings.Repeat("lorem ipsum dolor sit amet ", 2000)
	for name, build := range map[string]func(string) string{
		"summary":    SummaryPrompt,
		"quiz":       QuizPrompt,
		"flashcards": FlashcardsPrompt,
	} {
		if !strings.Contains(build(long), long) {
			t.Fatalf("%s prompt truncated the source text", name)
		}
	}
}
