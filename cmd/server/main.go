package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/skyfare/airline-reservation/internal/handlers"
	"github.com/skyfare/airline-reservation/internal/router"
	"github.com/skyfare/airline-reservation/internal/service"
	"github.com/skyfare/airline-reservation/internal/websocket"
)

const (
	DefaultPort = "8080"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = DefaultPort
	}

	// Start the websocket hub and bridge flight delay signals onto it
	hub := websocket.GetHub()
	notifier := websocket.NewDelayNotifier(hub)

	// Initialize services
	bookingService := service.NewBookingService(notifier)

	// Initialize handlers
	h := handlers.NewHandler(bookingService)

	// Create router
	r := router.SetupRouter(h)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Reservation API starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
