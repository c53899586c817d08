package api

import (
	"github.com/gin-gonic/gin"

	"github.com/fairwaysim/backend/internal/api/handlers"
	"github.com/fairwaysim/backend/internal/config"
	"github.com/fairwaysim/backend/internal/sim"
	"github.com/fairwaysim/backend/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, simulator *sim.Simulator, cfg *config.Config) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		v1.GET("/surfaces", handlers.ListSurfaces)

		shots := v1.Group("/shots")
		{
			shots.POST("/simulate", handlers.SimulateShot(simulator, cfg))
		}

		// WebSocket trajectory stream for range displays
		v1.GET("/ws", ws.HandleShotStream(simulator, cfg))
	}
}
