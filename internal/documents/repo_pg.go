package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Derived outputs are stored as
// JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, user_id, title, file_path, pdf_text, processed, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.Title,
		doc.FilePath,
		doc.Text,
		doc.Processed,
		doc.CreatedAt,
	)
	return err
}

// GetByID fetches a full document record.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	const query = `
SELECT id, user_id, title, file_path, pdf_text, processed, summary, flashcards, quiz, created_at
FROM documents
WHERE id = $1
LIMIT 1`

	var doc Document
	var summaryRaw, flashcardsRaw, quizRaw []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&doc.FilePath,
		&doc.Text,
		&doc.Processed,
		&summaryRaw,
		&flashcardsRaw,
		&quizRaw,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}

	if len(summaryRaw) > 0 {
		doc.Summary = &Summary{}
		if err := json.Unmarshal(summaryRaw, doc.Summary); err != nil {
			return Document{}, fmt.Errorf("decode summary: %w", err)
		}
	}
	if len(flashcardsRaw) > 0 {
		if err := json.Unmarshal(flashcardsRaw, &doc.Flashcards); err != nil {
			return Document{}, fmt.Errorf("decode flashcards: %w", err)
		}
	}
	if len(quizRaw) > 0 {
		doc.Quiz = &Quiz{}
		if err := json.Unmarshal(quizRaw, doc.Quiz); err != nil {
			return Document{}, fmt.Errorf("decode quiz: %w", err)
		}
	}
	return doc, nil
}

// List returns document descriptors in creation order. Text and derived
// outputs are not loaded.
func (r *PGRepo) List(ctx context.Context) ([]Document, error) {
	const query = `
SELECT id, user_id, title, file_path, processed, created_at
FROM documents
ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.Title,
			&doc.FilePath,
			&doc.Processed,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// SaveOutputs overwrites the derived outputs and marks the row
// processed in a single statement.
func (r *PGRepo) SaveOutputs(ctx context.Context, id string, summary Summary, flashcards []Flashcard, quiz Quiz) error {
	const query = `
UPDATE documents
SET summary = $2, flashcards = $3, quiz = $4, processed = TRUE
WHERE id = $1`

	summaryRaw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	flashcardsRaw, err := json.Marshal(flashcards)
	if err != nil {
		return fmt.Errorf("encode flashcards: %w", err)
	}
	quizRaw, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, id, summaryRaw, flashcardsRaw, quizRaw)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
