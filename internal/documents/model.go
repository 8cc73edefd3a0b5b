package documents

import "time"

// DefaultUserID owns every document; the API has no authentication and
// serves a single implicit user.
const DefaultUserID = "default-user-id"

// Document is one uploaded PDF and its derived study materials. IDs are
// unix-timestamp strings issued by a monotonic generator, so they are
// unique and ordered within a process lifetime. FilePath is synthesized
// for API compatibility; the PDF bytes themselves are never persisted.
type Document struct {
	ID         string
	UserID     string
	Title      string
	FilePath   string
	Text       string
	Processed  bool
	Summary    *Summary
	Flashcards []Flashcard
	Quiz       *Quiz
	CreatedAt  time.Time
}

// Summary is the stored summary derived from a document.
type Summary struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Flashcard is one stored study card derived from a document.
type Flashcard struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuizQuestion is one stored quiz question. CorrectAnswer holds the
// full option string, not an index.
type QuizQuestion struct {
	ID            string    `json:"id"`
	QuizID        string    `json:"quiz_id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}

// Quiz is the stored quiz derived from a document.
type Quiz struct {
	ID         string         `json:"id"`
	DocumentID string         `json:"document_id"`
	Title      string         `json:"title"`
	CreatedAt  time.Time      `json:"created_at"`
	Questions  []QuizQuestion `json:"questions"`
}
