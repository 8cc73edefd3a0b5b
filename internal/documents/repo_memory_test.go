package documents

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func testDoc(id, title string) Document {
	return Document{
		ID:        id,
		UserID:    DefaultUserID,
		Title:     title,
		FilePath:  "/uploads/" + id + ".pdf",
		Text:      "some extracted text",
		CreatedAt: time.Now().UTC(),
	}
}

func TestMemoryRepoCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testDoc("doc-1", "Intro to Go")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Intro to Go" {
		t.Fatalf("Title = %q, want %q", got.Title, "Intro to Go")
	}
	if got.Text != "some extracted text" {
		t.Fatalf("Text = %q, want extracted text preserved", got.Text)
	}
	if got.Processed {
		t.Fatal("new document should not be marked processed")
	}
}

func TestMemoryRepoGetUnknown(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoListCreationOrder(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	ids := []string{"doc-3", "doc-1", "doc-2"}
	for _, id := range ids {
		if err := repo.Create(ctx, testDoc(id, "title "+id)); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	docs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != len(ids) {
		t.Fatalf("got %d documents, want %d", len(docs), len(ids))
	}
	for i, id := range ids {
		if docs[i].ID != id {
			t.Fatalf("docs[%d].ID = %q, want %q (creation order)", i, docs[i].ID, id)
		}
	}
}

func TestMemoryRepoSaveOutputs(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testDoc("doc-1", "Notes")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	summary := Summary{ID: "sum-doc-1", DocumentID: "doc-1", Content: "short", CreatedAt: now}
	cards := []Flashcard{{ID: "fc-doc-1-1", DocumentID: "doc-1", Question: "q", Answer: "a", CreatedAt: now}}
	quiz := Quiz{ID: "quiz-doc-1", DocumentID: "doc-1", Title: "Quiz: Notes", CreatedAt: now}

	if err := repo.SaveOutputs(ctx, "doc-1", summary, cards, quiz); err != nil {
		t.Fatalf("SaveOutputs: %v", err)
	}

	got, err := repo.GetByID(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Processed {
		t.Fatal("expected document to be marked processed")
	}
	if got.Summary == nil || got.Summary.Content != "short" {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if len(got.Flashcards) != 1 || got.Flashcards[0].Question != "q" {
		t.Fatalf("unexpected flashcards: %+v", got.Flashcards)
	}
	if got.Quiz == nil || got.Quiz.Title != "Quiz: Notes" {
		t.Fatalf("unexpected quiz: %+v", got.Quiz)
	}
}

func TestMemoryRepoSaveOutputsOverwrites(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testDoc("doc-1", "Notes")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	first := Summary{ID: "sum-doc-1", DocumentID: "doc-1", Content: "first run"}
	if err := repo.SaveOutputs(ctx, "doc-1", first, []Flashcard{{ID: "fc-doc-1-1"}, {ID: "fc-doc-1-2"}}, Quiz{ID: "quiz-doc-1"}); err != nil {
		t.Fatalf("SaveOutputs first: %v", err)
	}

	second := Summary{ID: "sum-doc-1", DocumentID: "doc-1", Content: "second run"}
	if err := repo.SaveOutputs(ctx, "doc-1", second, []Flashcard{{ID: "fc-doc-1-1"}}, Quiz{ID: "quiz-doc-1"}); err != nil {
		t.Fatalf("SaveOutputs second: %v", err)
	}

	got, err := repo.GetByID(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Summary.Content != "second run" {
		t.Fatalf("Summary.Content = %q, want outputs from the second run", got.Summary.Content)
	}
	if len(got.Flashcards) != 1 {
		t.Fatalf("got %d flashcards, want 1 (previous run replaced)", len(got.Flashcards))
	}
}

func TestMemoryRepoSaveOutputsUnknown(t *testing.T) {
	repo := NewMemoryRepo()
	err := repo.SaveOutputs(context.Background(), "missing", Summary{}, nil, Quiz{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoConcurrentAccess(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("doc-%d", n)
			_ = repo.Create(ctx, testDoc(id, "concurrent"))
			_, _ = repo.GetByID(ctx, id)
			_, _ = repo.List(ctx)
		}(i)
	}
	wg.Wait()

	docs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 8 {
		t.Fatalf("got %d documents, want 8", len(docs))
	}
}
