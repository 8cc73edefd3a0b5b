package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studykit-backend/internal/analytics"
	"studykit-backend/internal/documents"
	"studykit-backend/internal/generation"
	"studykit-backend/internal/shared/config"
	"studykit-backend/internal/shared/metrics"
	"studykit-backend/internal/shared/server/middleware"
	"studykit-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers wired into the engine.
type RouterDeps struct {
	Config            config.Config
	GenerationHandler *generation.Handler
	DocumentsHandler  *documents.Handler
	AnalyticsHandler  *analytics.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/ping", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "healthy", "model": deps.Config.LLMModel})
	})
	r.GET("/test", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "ok", "message": "Backend is connected successfully"})
	})
	r.GET("/metrics", metrics.Handler())

	root := r.Group("")
	deps.GenerationHandler.RegisterRoutes(root)
	deps.DocumentsHandler.RegisterRoutes(root)
	deps.AnalyticsHandler.RegisterRoutes(root)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
