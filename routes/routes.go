package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rhiclean/handlers"
	"rhiclean/middleware"
)

// RegisterPublicRoutes registers the catalog, availability and booking
// creation endpoints plus the admin login.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.GetServices)
		api.GET("/availability", hb.Catalog.GetAvailability)
		api.POST("/bookings", hb.Booking.CreateBooking)
		api.POST("/admin-bookings", hb.Booking.CreateAdminBooking)
		api.POST("/admin-login", hb.Auth.AdminLogin)
	}
}

// RegisterWizardRoutes sets up the endpoints for the booking wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.POST("/session", hb.Wizard.StartSession)
		wizardGroup.GET("/session/:sessionID", hb.Wizard.GetSession)
		wizardGroup.PUT("/session/:sessionID/service", hb.Wizard.SelectService)
		wizardGroup.PUT("/session/:sessionID/datetime", hb.Wizard.SelectDateTime)
		wizardGroup.POST("/session/:sessionID/details", hb.Wizard.SubmitDetails)
		wizardGroup.POST("/session/:sessionID/restart", hb.Wizard.RestartSession)
		wizardGroup.DELETE("/session/:sessionID", hb.Wizard.CancelSession)
	}
}

// RegisterAdminRoutes sets up the admin-gated booking operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api")
	{
		adminGroup.Use(middleware.AdminAuth())
		adminGroup.GET("/admin-bookings", hb.Admin.ListBookings)
		adminGroup.PUT("/admin-bookings", hb.Admin.UpdateBookingStatus)
		adminGroup.DELETE("/admin-bookings", hb.Admin.DeleteBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm the RHI booking service"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// CORS is deliberately wide open: the widget is embedded on
	// arbitrary customer pages.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
