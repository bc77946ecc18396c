package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/searchlite/searchlite/services"
)

const maxRequestBodySize = 10 << 20 // 10 MB

// API holds dependencies for API handlers, primarily the engine services.
type API struct {
	engine services.Engine
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.Engine) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the search engine.
func SetupRoutes(router *gin.Engine, engine services.Engine) {
	apiHandler := NewAPI(engine)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/stats", apiHandler.StatsHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/search", apiHandler.SearchHandler)
	router.GET("/autocomplete", apiHandler.AutocompleteHandler)
	router.POST("/scrape", apiHandler.ScrapeHandler)
	router.GET("/random", apiHandler.RandomDocumentsHandler) // Uniform random sample

	docRoutes := router.Group("/documents")
	{
		docRoutes.POST("", apiHandler.AddDocumentsHandler)           // Add documents
		docRoutes.GET("", apiHandler.ListDocumentsHandler)           // List all documents
		docRoutes.GET("/:documentId", apiHandler.GetDocumentHandler) // Get specific document
	}
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatsHandler reports corpus and vocabulary sizes.
func (api *API) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Stats())
}
