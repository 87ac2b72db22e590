package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stc-cow/cowtrack-backend-go/internal/models"
	"github.com/stc-cow/cowtrack-backend-go/internal/repository"
	"github.com/stc-cow/cowtrack-backend-go/pkg/response"
)

// LocationHandler handles HTTP requests for the location directory
type LocationHandler struct {
	repo *repository.LocationRepository
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(repo *repository.LocationRepository) *LocationHandler {
	return &LocationHandler{repo: repo}
}

// GetLocations handles GET /api/v1/locations
func (h *LocationHandler) GetLocations(c *gin.Context) {
	var filter models.LocationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	locations, err := h.repo.GetAll(filter)
	if err != nil {
		response.InternalError(c, "Failed to get locations")
		return
	}
	response.Success(c, locations)
}

// GetLocationByID handles GET /api/v1/locations/:id
func (h *LocationHandler) GetLocationByID(c *gin.Context) {
	loc, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get location")
		return
	}
	if loc == nil {
		response.NotFound(c, "Location not found")
		return
	}
	response.Success(c, loc)
}
