package analytics

import (
	"github.com/gin-gonic/gin"

	"studykit-backend/internal/shared/server/respond"
	"studykit-backend/internal/shared/util"
)

// Handler serves the analytics surface. Tracking endpoints acknowledge
// with synthesized ids and persist nothing; request bodies are ignored.
type Handler struct {
	IDs *util.TimeID

	// Demo serves the canned demo dataset on the pagedata endpoint.
	// When off the payload keeps its shape but all values are zero.
	Demo bool
}

// NewHandler constructs a Handler.
func NewHandler(ids *util.TimeID, demo bool) *Handler {
	return &Handler{IDs: ids, Demo: demo}
}

// RegisterRoutes attaches analytics routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/pagedata", h.pageData)
	rg.POST("/analytics/session/start", h.startSession)
	rg.POST("/analytics/session/:id/end", h.endSession)
	rg.POST("/analytics/flashcard/attempt", h.trackFlashcardAttempt)
	rg.POST("/analytics/quiz/attempt", h.trackQuizAttempt)
}

func (h *Handler) pageData(c *gin.Context) {
	if h.Demo {
		respond.OK(c, DemoPageData())
		return
	}
	respond.OK(c, EmptyPageData())
}

func (h *Handler) startSession(c *gin.Context) {
	respond.OK(c, gin.H{
		"id":     "session-" + h.IDs.Next(),
		"status": "started",
	})
}

func (h *Handler) endSession(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":     "ended",
		"session_id": c.Param("id"),
	})
}

func (h *Handler) trackFlashcardAttempt(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":     "tracked",
		"attempt_id": "attempt-" + h.IDs.Next(),
	})
}

func (h *Handler) trackQuizAttempt(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":          "tracked",
		"quiz_attempt_id": "quiz-attempt-" + h.IDs.Next(),
	})
}
