package routes

import (
	"github.com/gin-gonic/gin"

	"blogsummarizer/internal/interfaces/http/handlers"
)

// SummaryRouteConfig holds dependencies for summary routes.
type SummaryRouteConfig struct {
	SummarizeHandler *handlers.SummarizeHandler
	HealthHandler    *handlers.HealthHandler
}

// SetupSummaryRoutes configures the summarize, lookup, health and version routes.
func SetupSummaryRoutes(engine *gin.Engine, cfg *SummaryRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.HealthCheck)
	engine.GET("/version", cfg.HealthHandler.Version)

	api := engine.Group("/api")
	{
		api.POST("/summarize", cfg.SummarizeHandler.Summarize)
		api.GET("/summaries/:id", cfg.SummarizeHandler.GetSummary)
	}
}
