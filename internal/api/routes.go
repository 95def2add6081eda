package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the dashboard and API routes
func SetupRoutes(handler *Handler) (*gin.Engine, error) {
	tmpl, err := pageTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}
	static, err := staticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Middleware
	router.Use(Recovery())
	router.Use(RequestID())
	router.Use(CORS())
	router.Use(Logger())

	// Dashboard
	router.GET("/", handler.Dashboard)
	router.StaticFS("/static", http.FS(static))

	// Health check
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/stats", handler.GetStats)
		api.GET("/trends", handler.GetTrends)
		api.GET("/daily", handler.GetDaily)
		api.GET("/governance", handler.GetGovernance)
	}

	router.NoRoute(handler.NotFound)

	return router, nil
}
