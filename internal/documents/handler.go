package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"studykit-backend/internal/extract"
	"studykit-backend/internal/generation"
	"studykit-backend/internal/llm"
	"studykit-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the document endpoints to the service.
type Handler struct {
	Svc *Service

	// DemoMode serves a canned sample document for unknown ids on GET
	// instead of a 404.
	DemoMode bool
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, demoMode bool) *Handler {
	return &Handler{Svc: svc, DemoMode: demoMode}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/upload", h.upload)
	rg.POST("/documents/:id/process", h.process)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
}

// upload accepts a multipart form with a "pdf" file and a "title"
// field, extracts the text, and stores the document for processing.
func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "PDF file is required", nil)
		return
	}
	if !generation.IsPDFFilename(fileHeader.Filename) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File must be a PDF", nil)
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

	doc, err := h.Svc.Upload(c.Request.Context(), c.PostForm("title"), data)
	if err != nil {
		respondUploadError(c, err)
		return
	}

	c.Set("documentId", doc.ID)
	respond.Created(c, toListItem(doc))
}

// process runs the generation pipeline over the stored text and
// persists the outputs.
func (h *Handler) process(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	if err := h.Svc.Process(c.Request.Context(), id); err != nil {
		respondProcessError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"status":      "success",
		"message":     "Document processed successfully with AI-generated content",
		"document_id": id,
	})
}

// list returns document descriptors in creation order as a bare array.
func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error fetching documents: "+err.Error(), nil)
		return
	}

	items := make([]ListItemResponse, 0, len(docs))
	for _, doc := range docs {
		items = append(items, toListItem(doc))
	}
	respond.OK(c, items)
}

// get returns the full document record. Unknown ids fall back to the
// sample document when demo mode is on.
func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	doc, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound) && h.DemoMode:
			respond.OK(c, toDetail(sampleDocument(id)))
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Error fetching document: "+err.Error(), nil)
		}
		return
	}

	respond.OK(c, toDetail(doc))
}

// respondUploadError maps upload failures: client errors for bad input
// and unusable PDFs, internal otherwise.
func respondUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, extract.ErrNotPDF):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Error extracting PDF text: "+err.Error(), nil)
	case errors.Is(err, extract.ErrNoText):
		respond.Error(c, http.StatusBadRequest, "validation_error", "No text found in PDF", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error uploading document: "+err.Error(), nil)
	}
}

// respondProcessError maps processing failures onto the standardized
// error body. Generation failures carry their upstream detail.
func respondProcessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Document not found", nil)
	case errors.Is(err, ErrNoText):
		respond.Error(c, http.StatusBadRequest, "validation_error", "No text content found for this document", nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, "not_configured", "OpenRouter API key not configured", nil)
	case errors.Is(err, llm.ErrContract):
		respond.Error(c, http.StatusInternalServerError, "llm_contract", err.Error(), nil)
	case errors.Is(err, llm.ErrParse):
		respond.Error(c, http.StatusInternalServerError, "llm_parse", "Error parsing API response: "+err.Error(), nil)
	case errors.Is(err, llm.ErrGateway):
		respond.Error(c, http.StatusInternalServerError, "llm_error", "OpenRouter API error: "+err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error processing document: "+err.Error(), nil)
	}
}
