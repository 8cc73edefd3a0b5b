package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotPDF reports that the payload could not be opened as a PDF.
	ErrNotPDF = errors.New("not a valid PDF")
	// ErrNoText reports a parseable PDF with no extractable text.
	ErrNoText = errors.New("no text found in PDF")
)

// Text pulls plain text from an in-memory PDF payload using
// github.com/ledongthuc/pdf. Per-page text is joined with a newline and
// the result is trimmed. A page that fails to parse fails the whole
// document rather than producing partial text.
func Text(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	var pages []string
	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d of %d: %w", i, total, err)
		}
		pages = append(pages, content)
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
