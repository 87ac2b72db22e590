package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/stc-cow/cowtrack-backend-go/internal/service"
	"github.com/stc-cow/cowtrack-backend-go/pkg/response"
)

// IngestHandler handles CSV import requests
type IngestHandler struct {
	service *service.IngestService
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(service *service.IngestService) *IngestHandler {
	return &IngestHandler{service: service}
}

// ImportLocations handles POST /api/v1/import/locations
func (h *IngestHandler) ImportLocations(c *gin.Context) {
	body, err := h.csvBody(c)
	if err != nil {
		response.BadRequest(c, "No CSV payload supplied")
		return
	}
	defer body.Close()

	batchID, count, err := h.service.ImportLocations(body)
	if err != nil {
		response.BadRequest(c, "Failed to import locations: "+err.Error())
		return
	}
	response.Success(c, gin.H{"batch_id": batchID, "imported": count})
}

// ImportMovements handles POST /api/v1/import/movements
func (h *IngestHandler) ImportMovements(c *gin.Context) {
	body, err := h.csvBody(c)
	if err != nil {
		response.BadRequest(c, "No CSV payload supplied")
		return
	}
	defer body.Close()

	batchID, count, err := h.service.ImportMovements(body)
	if err != nil {
		response.BadRequest(c, "Failed to import movements: "+err.Error())
		return
	}
	response.Success(c, gin.H{"batch_id": batchID, "imported": count})
}

// csvBody accepts either a multipart "file" upload or a raw CSV body.
func (h *IngestHandler) csvBody(c *gin.Context) (io.ReadCloser, error) {
	if file, err := c.FormFile("file"); err == nil {
		return file.Open()
	}
	return c.Request.Body, nil
}
