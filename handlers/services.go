package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rhiclean/services/availability"
	"rhiclean/services/catalog"
)

// CatalogHandler serves the static service catalog and per-date slot
// availability the widget renders its date grid from.
type CatalogHandler struct {
	Availability availability.Source
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(src availability.Source) *CatalogHandler {
	return &CatalogHandler{Availability: src}
}

// GetServices handles GET /api/services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Services())
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD and
// reports every catalog slot with its occupancy on that date.
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date query parameter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": availability.SlotsFor(h.Availability, date),
	})
}
