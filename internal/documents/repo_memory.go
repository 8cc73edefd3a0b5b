package documents

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, scoped to process
// lifetime. The mutex serializes concurrent access, so two process
// calls racing on the same id resolve to a deterministic last write.
// There is no eviction and no capacity bound.
type MemoryRepo struct {
	mu    sync.RWMutex
	docs  map[string]Document
	order []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		docs: make(map[string]Document),
	}
}

// Create stores a new document.
func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.docs[doc.ID]; !exists {
		r.order = append(r.order, doc.ID)
	}
	r.docs[doc.ID] = doc
	return nil
}

// GetByID returns a document by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

// List returns all documents in creation order.
func (r *MemoryRepo) List(ctx context.Context) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Document, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out, nil
}

// SaveOutputs overwrites the derived outputs of a document and marks it
// processed. The read-modify-write happens under the write lock.
func (r *MemoryRepo) SaveOutputs(ctx context.Context, id string, summary Summary, flashcards []Flashcard, quiz Quiz) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return ErrNotFound
	}
	doc.Summary = &summary
	doc.Flashcards = flashcards
	doc.Quiz = &quiz
	doc.Processed = true
	r.docs[id] = doc
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
