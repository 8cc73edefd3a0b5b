package generation

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studykit-backend/internal/extract"
	"studykit-backend/internal/llm"
	"studykit-backend/internal/shared/server/respond"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	maxTextSize   = 10 << 20
)

// Handler wires the one-shot generation endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload-pdf", h.uploadPDF)
	rg.POST("/generate-summary", h.generateSummary)
	rg.POST("/generate-quiz", h.generateQuiz)
	rg.POST("/generate-flashcards", h.generateFlashcards)
}

// uploadPDF extracts text from the uploaded file and returns summary,
// quiz, and flashcards in one response.
func (h *Handler) uploadPDF(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if !IsPDFFilename(fileHeader.Filename) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only PDF files are allowed", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	text, err := extract.Text(data)
	if err != nil {
		respondExtractionError(c, err)
		return
	}

	bundle, err := h.Svc.All(c.Request.Context(), text)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	respond.OK(c, bundle)
}

func (h *Handler) generateSummary(c *gin.Context) {
	text, ok := sourceText(c)
	if !ok {
		return
	}
	summary, err := h.Svc.Summary(c.Request.Context(), text)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	respond.OK(c, summary)
}

func (h *Handler) generateQuiz(c *gin.Context) {
	text, ok := sourceText(c)
	if !ok {
		return
	}
	quiz, err := h.Svc.Quiz(c.Request.Context(), text)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	respond.OK(c, quiz)
}

func (h *Handler) generateFlashcards(c *gin.Context) {
	text, ok := sourceText(c)
	if !ok {
		return
	}
	flashcards, err := h.Svc.Flashcards(c.Request.Context(), text)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	respond.OK(c, flashcards)
}

// IsPDFFilename reports whether the name carries a .pdf suffix,
// case-insensitive. Only the name is inspected; content validation is
// left to the extractor.
func IsPDFFilename(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// sourceText reads the text to process from the raw request body, with
// the "text" query parameter as a fallback. Responds 400 and returns
// ok=false when both are empty.
func sourceText(c *gin.Context) (string, bool) {
	var text string
	if c.Request.Body != nil {
		data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxTextSize))
		if err == nil {
			text = string(data)
		}
	}
	if strings.TrimSpace(text) == "" {
		text = c.Query("text")
	}
	if strings.TrimSpace(text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Text cannot be empty", nil)
		return "", false
	}
	return text, true
}

// respondExtractionError maps extractor failures: client errors for
// unparseable or empty PDFs, internal otherwise.
func respondExtractionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrNotPDF):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Error extracting PDF text: "+err.Error(), nil)
	case errors.Is(err, extract.ErrNoText):
		respond.Error(c, http.StatusBadRequest, "validation_error", "No text found in PDF", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error extracting PDF text: "+err.Error(), nil)
	}
}

// respondGenerationError maps generation pipeline failures onto the
// standardized error body. Upstream messages are surfaced verbatim.
func respondGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, "not_configured", "OpenRouter API key not configured", nil)
	case errors.Is(err, llm.ErrContract):
		respond.Error(c, http.StatusInternalServerError, "llm_contract", err.Error(), nil)
	case errors.Is(err, llm.ErrParse):
		respond.Error(c, http.StatusInternalServerError, "llm_parse", "Error parsing API response: "+err.Error(), nil)
	case errors.Is(err, llm.ErrGateway):
		respond.Error(c, http.StatusInternalServerError, "llm_error", "OpenRouter API error: "+err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
	}
}
