// File: rhiclean/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rhiclean/config"
	bookingRepo "rhiclean/database/repository/booking"
	"rhiclean/handlers"
	"rhiclean/middleware"
	"rhiclean/routes"
	"rhiclean/services/auth"
	"rhiclean/services/availability"
	"rhiclean/services/booking"
	"rhiclean/services/wizard"
	"rhiclean/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The booking store is process-memory: records live exactly as long
	// as the serving process.
	repo := bookingRepo.NewMemoryRepo()

	// services.
	bookingService := &booking.DefaultService{Repo: repo}
	schedule := availability.DefaultSchedule()
	gate := auth.NewGate(config.AppConfig.AdminEmail, config.AppConfig.AdminPassword)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	wizardService := &wizard.DefaultService{
		Store:        wizard.NewRedisStore(utils.GetSessionCacheClient(), sessionTTL),
		Availability: schedule,
		Bookings:     bookingService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Admin:   handlers.NewAdminHandler(bookingService),
		Auth:    handlers.NewAuthHandler(gate),
		Catalog: handlers.NewCatalogHandler(schedule),
		Wizard:  handlers.NewWizardHandler(wizardService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
