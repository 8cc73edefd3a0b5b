package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/summary.txt
	summaryTemplate string
	//go:embed prompts/quiz.txt
	quizTemplate string
	//go:embed prompts/flashcards.txt
	flashcardsTemplate string
)

const textPlaceholder = "{{TEXT}}"

// SummaryPrompt asks for a 2-3 paragraph summary plus five key points.
func SummaryPrompt(text string) string {
	return strings.ReplaceAll(summaryTemplate, textPlaceholder, text)
}

// QuizPrompt asks for five multiple-choice questions with four options
// each and a 0-based correct_answer index.
func QuizPrompt(text string) string {
	return strings.ReplaceAll(quizTemplate, textPlaceholder, text)
}

// FlashcardsPrompt asks for eight front/back flashcards.
func FlashcardsPrompt(text string) string {
	return strings.ReplaceAll(flashcardsTemplate, textPlaceholder, text)
}
