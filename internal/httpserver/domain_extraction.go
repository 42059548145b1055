package httpserver

import (
	"context"

	extractionHTTP "coursepilot/internal/extraction/delivery/http"
	"coursepilot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupExtractionDomain initializes the extraction domain and registers its
// routes. The usecase is built in main (it needs the LLM manager and the
// optional calendar feed); only the HTTP surface is assembled here.
func (srv HTTPServer) setupExtractionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := extractionHTTP.New(srv.l, srv.extractionUC)

	// Registers POST /api/v1/extraction/tasks
	extractionHTTP.MapExtractionRoutes(api.Group("/extraction"), h, mw)

	srv.l.Infof(ctx, "Extraction domain registered")
	return nil
}
