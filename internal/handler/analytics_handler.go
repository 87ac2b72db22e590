package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stc-cow/cowtrack-backend-go/internal/service"
	"github.com/stc-cow/cowtrack-backend-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for the aggregation endpoints
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetOverview handles GET /api/v1/analytics/overview
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.GetFleetOverview()
	if err != nil {
		response.InternalError(c, "Failed to compute fleet overview")
		return
	}
	response.Success(c, overview)
}

// GetCOWs handles GET /api/v1/cows
func (h *AnalyticsHandler) GetCOWs(c *gin.Context) {
	cows, err := h.service.GetCOWList()
	if err != nil {
		response.InternalError(c, "Failed to compute COW metrics")
		return
	}
	response.Success(c, cows)
}

// GetCOWMetrics handles GET /api/v1/cows/:id/metrics
func (h *AnalyticsHandler) GetCOWMetrics(c *gin.Context) {
	metrics, err := h.service.GetCOWMetrics(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to compute COW metrics")
		return
	}
	if metrics == nil {
		response.NotFound(c, "COW not found")
		return
	}
	response.Success(c, metrics)
}

// GetWarehouses handles GET /api/v1/warehouses
func (h *AnalyticsHandler) GetWarehouses(c *gin.Context) {
	warehouses, err := h.service.GetAllWarehouseMetrics()
	if err != nil {
		response.InternalError(c, "Failed to compute warehouse metrics")
		return
	}
	response.Success(c, warehouses)
}

// GetWarehouseMetrics handles GET /api/v1/warehouses/:id/metrics
func (h *AnalyticsHandler) GetWarehouseMetrics(c *gin.Context) {
	metrics, err := h.service.GetWarehouseMetrics(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to compute warehouse metrics")
		return
	}
	if metrics == nil {
		response.NotFound(c, "Warehouse not found")
		return
	}
	response.Success(c, metrics)
}

// GetRegions handles GET /api/v1/regions
func (h *AnalyticsHandler) GetRegions(c *gin.Context) {
	regions, err := h.service.GetAllRegionMetrics()
	if err != nil {
		response.InternalError(c, "Failed to compute region metrics")
		return
	}
	response.Success(c, regions)
}

// GetRegionMetrics handles GET /api/v1/regions/:name/metrics
func (h *AnalyticsHandler) GetRegionMetrics(c *gin.Context) {
	metrics, err := h.service.GetRegionMetrics(c.Param("name"))
	if err != nil {
		response.InternalError(c, "Failed to compute region metrics")
		return
	}
	response.Success(c, metrics)
}

// GetDwell handles GET /api/v1/analytics/dwell
func (h *AnalyticsHandler) GetDwell(c *gin.Context) {
	summary, err := h.service.GetDwellSummary()
	if err != nil {
		response.InternalError(c, "Failed to compute dwell summary")
		return
	}
	response.Success(c, summary)
}

// GetAging handles GET /api/v1/analytics/aging
func (h *AnalyticsHandler) GetAging(c *gin.Context) {
	report, err := h.service.GetAgingReport()
	if err != nil {
		response.InternalError(c, "Failed to compute aging report")
		return
	}
	response.Success(c, report)
}

// GetShortIdle handles GET /api/v1/analytics/aging/short-idle
func (h *AnalyticsHandler) GetShortIdle(c *gin.Context) {
	report, err := h.service.GetShortIdleReport()
	if err != nil {
		response.InternalError(c, "Failed to compute short-idle report")
		return
	}
	response.Success(c, report)
}

// GetEvents handles GET /api/v1/analytics/events
func (h *AnalyticsHandler) GetEvents(c *gin.Context) {
	rollup, err := h.service.GetEventRollup()
	if err != nil {
		response.InternalError(c, "Failed to compute event rollup")
		return
	}
	response.Success(c, rollup)
}

// GetVendors handles GET /api/v1/analytics/vendors
func (h *AnalyticsHandler) GetVendors(c *gin.Context) {
	rollup, err := h.service.GetVendorRollup()
	if err != nil {
		response.InternalError(c, "Failed to compute vendor rollup")
		return
	}
	response.Success(c, rollup)
}

// GetMapOverlay handles GET /api/v1/analytics/map
func (h *AnalyticsHandler) GetMapOverlay(c *gin.Context) {
	points, err := h.service.GetMapOverlay()
	if err != nil {
		response.InternalError(c, "Failed to compute map overlay")
		return
	}
	response.Success(c, points)
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "COW fleet tracking API is running",
	})
}
