package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/wavemetrics/chartsync/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes (all mutating admin operations require authentication)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/charts/:id/schedule", middleware.Auth(authCfg), handler.CreateSchedule)
		v1.DELETE("/charts/:id/schedule", middleware.Auth(authCfg), handler.DeleteSchedule)
		v1.POST("/charts/:id/sync", middleware.Auth(authCfg), handler.TriggerSync)

		v1.GET("/schedules/:id/executions", handler.ListExecutions)

		v1.POST("/executions/:id/cancel", middleware.Auth(authCfg), handler.CancelExecution)
	}
}
