package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"blogsummarizer/internal/interfaces/http/middleware"
	"blogsummarizer/internal/interfaces/http/routes"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter creates a router over an already wired container
func NewRouter(container *Container) *Router {
	return &Router{
		engine:    container.engine,
		container: container,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	log := r.container.log

	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(log))
	r.engine.Use(middleware.CORS(r.container.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	routes.SetupSummaryRoutes(r.engine, &routes.SummaryRouteConfig{
		SummarizeHandler: r.container.summarizeHandler,
		HealthHandler:    r.container.healthHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases the store clients held by the container
func (r *Router) Shutdown(ctx context.Context) error {
	return r.container.Shutdown(ctx)
}
