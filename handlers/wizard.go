package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rhiclean/models"
	"rhiclean/services/wizard"
)

// WizardHandler exposes the four-step booking wizard over HTTP. Each
// session walks service -> datetime -> details -> confirmation.
type WizardHandler struct {
	Service wizard.Service
	Logger  *zap.Logger
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(svc wizard.Service, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: svc, Logger: logger}
}

// StartSession handles POST /api/wizard/session.
func (h *WizardHandler) StartSession(c *gin.Context) {
	session, err := h.Service.Start(c.Request.Context())
	if err != nil {
		h.Logger.Error("StartSession: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start wizard session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /api/wizard/session/:sessionID.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectService handles PUT /api/wizard/session/:sessionID/service.
func (h *WizardHandler) SelectService(c *gin.Context) {
	var req struct {
		ServiceID int `json:"serviceId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectService(c.Request.Context(), c.Param("sessionID"), req.ServiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDateTime handles PUT /api/wizard/session/:sessionID/datetime.
func (h *WizardHandler) SelectDateTime(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectDateTime(c.Request.Context(), c.Param("sessionID"), req.Date, req.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitDetails handles POST /api/wizard/session/:sessionID/details.
// The response carries the session at the confirmation step; the
// acknowledged flag distinguishes a confirmed store write from an
// attempted one.
func (h *WizardHandler) SubmitDetails(c *gin.Context) {
	var details models.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	session, err := h.Service.SubmitDetails(c.Request.Context(), c.Param("sessionID"), details)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RestartSession handles POST /api/wizard/session/:sessionID/restart.
func (h *WizardHandler) RestartSession(c *gin.Context) {
	session, err := h.Service.Restart(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession handles DELETE /api/wizard/session/:sessionID.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.Logger.Error("CancelSession: failed to drop session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel wizard session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var fe *wizard.FlowError
	switch {
	case wizard.IsSessionNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "wizard session not found or expired"})
	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, gin.H{"error": fe.Message})
	default:
		h.Logger.Error("wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wizard operation failed"})
	}
}
