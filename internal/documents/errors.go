package documents

import "errors"

var (
	// ErrNotFound means the document id is not in the store.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput covers missing or malformed client input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoText means the stored document has no text to process.
	ErrNoText = errors.New("no text content found for this document")
)
