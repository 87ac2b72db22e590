package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stc-cow/cowtrack-backend-go/internal/config"
	"github.com/stc-cow/cowtrack-backend-go/internal/handler"
	"github.com/stc-cow/cowtrack-backend-go/internal/middleware"
)

// Handlers bundles the wired handlers for route registration.
type Handlers struct {
	Analytics *handler.AnalyticsHandler
	Locations *handler.LocationHandler
	Ingest    *handler.IngestHandler
	Assistant *handler.AssistantHandler
}

// SetupRouter wires middleware and routes.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS for the dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", handler.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/analytics/overview", h.Analytics.GetOverview)
		api.GET("/analytics/dwell", h.Analytics.GetDwell)
		api.GET("/analytics/aging", h.Analytics.GetAging)
		api.GET("/analytics/aging/short-idle", h.Analytics.GetShortIdle)
		api.GET("/analytics/events", h.Analytics.GetEvents)
		api.GET("/analytics/vendors", h.Analytics.GetVendors)
		api.GET("/analytics/map", h.Analytics.GetMapOverlay)

		api.GET("/cows", h.Analytics.GetCOWs)
		api.GET("/cows/:id/metrics", h.Analytics.GetCOWMetrics)
		api.GET("/warehouses", h.Analytics.GetWarehouses)
		api.GET("/warehouses/:id/metrics", h.Analytics.GetWarehouseMetrics)
		api.GET("/regions", h.Analytics.GetRegions)
		api.GET("/regions/:name/metrics", h.Analytics.GetRegionMetrics)

		api.GET("/locations", h.Locations.GetLocations)
		api.GET("/locations/:id", h.Locations.GetLocationByID)

		api.POST("/assistant/ask", h.Assistant.Ask)
		api.GET("/assistant/sessions/:id", h.Assistant.Transcript)

		// Imports replace the stored snapshot; token required.
		imports := api.Group("/import", middleware.Auth(cfg.JWTSecret))
		{
			imports.POST("/locations", h.Ingest.ImportLocations)
			imports.POST("/movements", h.Ingest.ImportMovements)
		}
	}

	return r
}
