package api

import (
	"github.com/gin-gonic/gin"

	"github.com/youruser/awayteam/internal/pipeline"
)

// RegisterRoutes mounts the API and serves generated files from outputDir under /generated.
func RegisterRoutes(r *gin.Engine, h *Handlers, outputDir string) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/filter", h.filterHandler)
		api.GET("/decks", h.decksHandler)
		api.GET("/decks/:deck/cards/:index", h.cardHandler)
		api.GET("/decks/:deck/sheets/:index", h.sheetHandler)
		api.GET("/qr", qrHandler)
	}
	if outputDir != "" {
		r.Static("/generated", outputDir)
	}
}

// NewRouter is a gin engine with the default middleware and every route mounted.
func NewRouter(p *pipeline.Pipeline, cat *pipeline.Catalog, outputDir string) *gin.Engine {
	r := gin.Default()
	RegisterRoutes(r, NewHandlers(p, cat), outputDir)
	return r
}
