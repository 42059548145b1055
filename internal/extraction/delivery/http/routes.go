package http

import (
	"github.com/gin-gonic/gin"

	"coursepilot/internal/middleware"
)

// MapExtractionRoutes registers the extraction endpoints on the given group.
func MapExtractionRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())
	rg.POST("/tasks", mw.Idempotency(), h.Extract)
}
