package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rhiclean/services/auth"
)

// AuthHandler serves the admin dashboard login.
type AuthHandler struct {
	Gate *auth.Gate
}

// NewAuthHandler creates a new AuthHandler bound to the admin gate.
func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{Gate: gate}
}

// AdminLogin handles POST /api/admin-login. On a matching pair it mints
// a new admin credential; otherwise it answers 401.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	token, err := h.Gate.Login(req.Email, req.Password)
	if err != nil {
		logger.Warn("Admin login rejected", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"message": "Login successful",
	})
}
