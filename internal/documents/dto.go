package documents

import "time"

// ListItemResponse is the outward-facing shape of a document in list
// results. Text and generated outputs are omitted.
type ListItemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func toListItem(doc Document) ListItemResponse {
	return ListItemResponse{
		ID:        doc.ID,
		Title:     doc.Title,
		CreatedAt: doc.CreatedAt,
	}
}

// DetailResponse is the full outward-facing representation of a
// document, generated outputs included. Summary and Quiz are null
// until the document has been processed; Flashcards is always an
// array, empty before processing.
type DetailResponse struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	CreatedAt  time.Time   `json:"created_at"`
	UserID     string      `json:"user_id"`
	FilePath   string      `json:"file_path"`
	Summary    *Summary    `json:"summary"`
	Flashcards []Flashcard `json:"flashcards"`
	Quiz       *Quiz       `json:"quiz"`
}

func toDetail(doc Document) DetailResponse {
	cards := doc.Flashcards
	if cards == nil {
		cards = []Flashcard{}
	}
	return DetailResponse{
		ID:         doc.ID,
		Title:      doc.Title,
		CreatedAt:  doc.CreatedAt,
		UserID:     doc.UserID,
		FilePath:   doc.FilePath,
		Summary:    doc.Summary,
		Flashcards: cards,
		Quiz:       doc.Quiz,
	}
}
