package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studykit-backend/internal/extract"
	"studykit-backend/internal/generation"
	"studykit-backend/internal/shared/metrics"
	"studykit-backend/internal/shared/util"
)

// Generator produces study artifacts from source text. Satisfied by
// *generation.Service.
type Generator interface {
	Summary(ctx context.Context, text string) (generation.Summary, error)
	Quiz(ctx context.Context, text string) (generation.Quiz, error)
	Flashcards(ctx context.Context, text string) (generation.Flashcards, error)
}

// Service contains business logic for stored documents.
type Service struct {
	Repo Repo
	Gen  Generator
	IDs  *util.TimeID
}

// Upload extracts text from the PDF payload and stores a new document
// for later processing. The extracted text is kept on the record; the
// PDF bytes are discarded.
func (s *Service) Upload(ctx context.Context, title string, pdf []byte) (Document, error) {
	if strings.TrimSpace(title) == "" {
		return Document{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	text, err := extract.Text(pdf)
	if err != nil {
		return Document{}, err
	}

	id := s.IDs.Next()
	doc := Document{
		ID:        id,
		UserID:    DefaultUserID,
		Title:     title,
		FilePath:  "/uploads/" + id + ".pdf",
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	metrics.IncDocumentsUploaded()
	return doc, nil
}

// Process generates summary, quiz, and flashcards from the stored text
// and persists them in the study schema, overwriting any outputs from a
// previous run. Generation is sequential and all-or-nothing: the first
// failing stage aborts the call and nothing is stored.
func (s *Service) Process(ctx context.Context, id string) error {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(doc.Text) == "" {
		return ErrNoText
	}

	summary, err := s.Gen.Summary(ctx, doc.Text)
	if err != nil {
		return err
	}
	quiz, err := s.Gen.Quiz(ctx, doc.Text)
	if err != nil {
		return err
	}
	flashcards, err := s.Gen.Flashcards(ctx, doc.Text)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	storedSummary, storedCards, storedQuiz := shapeOutputs(doc, summary, quiz, flashcards, now)
	return s.Repo.SaveOutputs(ctx, id, storedSummary, storedCards, storedQuiz)
}

// Get returns the full record for a document.
func (s *Service) Get(ctx context.Context, id string) (Document, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns document descriptors in creation order.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.Repo.List(ctx)
}

// shapeOutputs reshapes generated artifacts into the stored study
// schema: synthetic ids derived from the document id and position, quiz
// title prefixed with the document title, and the shared timestamp.
func shapeOutputs(doc Document, summary generation.Summary, quiz generation.Quiz, flashcards generation.Flashcards, now time.Time) (Summary, []Flashcard, Quiz) {
	storedSummary := Summary{
		ID:         "sum-" + doc.ID,
		DocumentID: doc.ID,
		Content:    summary.Summary,
		CreatedAt:  now,
	}

	storedCards := make([]Flashcard, 0, len(flashcards.Flashcards))
	for i, card := range flashcards.Flashcards {
		storedCards = append(storedCards, Flashcard{
			ID:         fmt.Sprintf("fc-%s-%d", doc.ID, i+1),
			DocumentID: doc.ID,
			Question:   card.Front,
			Answer:     card.Back,
			CreatedAt:  now,
		})
	}

	quizID := "quiz-" + doc.ID
	questions := make([]QuizQuestion, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions = append(questions, QuizQuestion{
			ID:            fmt.Sprintf("q-%s-%d", doc.ID, i+1),
			QuizID:        quizID,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			CreatedAt:     now,
		})
	}
	storedQuiz := Quiz{
		ID:         quizID,
		DocumentID: doc.ID,
		Title:      "Quiz: " + doc.Title,
		CreatedAt:  now,
		Questions:  questions,
	}

	return storedSummary, storedCards, storedQuiz
}
