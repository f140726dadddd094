package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rhiclean/models"
	"rhiclean/services/booking"
)

// BookingHandler serves the public booking-creation endpoints.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings. Contact-field presence is
// the wizard's responsibility, not enforced here.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("CreateBooking: failed to store booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking confirmed!",
		"booking": b,
	})
}

// CreateAdminBooking handles POST /api/admin-bookings, the public
// create used by the widget's details step. Same shape as
// CreateBooking plus the email field; the record always starts pending.
func (h *BookingHandler) CreateAdminBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("CreateAdminBooking: failed to store booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking submitted! We will confirm via email.",
		"booking": b,
	})
}
