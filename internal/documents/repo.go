package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id string) (Document, error)
	// List returns documents in creation order. Implementations may omit
	// Text and derived outputs; listings only need descriptors.
	List(ctx context.Context) ([]Document, error)
	// SaveOutputs replaces the derived outputs of a document in one
	// atomic step and marks it processed. Prior outputs are overwritten,
	// never appended to.
	SaveOutputs(ctx context.Context, id string, summary Summary, flashcards []Flashcard, quiz Quiz) error
}
