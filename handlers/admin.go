// File: rhiclean/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rhiclean/services/booking"
)

// AdminHandler encapsulates the admin-only booking operations:
// list-all, status transition and deletion.
type AdminHandler struct {
	Service booking.Service
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc booking.Service) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// ListBookings handles GET /api/admin-bookings and returns every
// record in insertion order.
func (ah *AdminHandler) ListBookings(c *gin.Context) {
	bookings := ah.Service.ListAll(c.Request.Context())
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus handles PUT /api/admin-bookings with a
// {id, status} body and returns the updated record.
func (ah *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := ah.Service.Transition(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		switch {
		case booking.IsInvalidStatus(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case booking.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			zap.L().Error("UpdateBookingStatus: transition failed", zap.Int64("id", req.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// DeleteBooking handles DELETE /api/admin-bookings with an {id} body.
// Deletion is idempotent; an absent id still acknowledges success.
func (ah *AdminHandler) DeleteBooking(c *gin.Context) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := ah.Service.Delete(c.Request.Context(), req.ID); err != nil {
		zap.L().Error("DeleteBooking: delete failed", zap.Int64("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted"})
}
