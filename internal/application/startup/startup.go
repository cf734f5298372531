// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dspfilms/studio-go/internal/application/container"
	"github.com/dspfilms/studio-go/internal/infrastructure/email"
	"github.com/dspfilms/studio-go/internal/infrastructure/observability/logging"
	"github.com/dspfilms/studio-go/internal/infrastructure/persistence/database"
	"github.com/dspfilms/studio-go/internal/infrastructure/persistence/schema"
	"github.com/dspfilms/studio-go/internal/presentation/http/server"
	"github.com/dspfilms/studio-go/pkg/config"
)

// Initialize performs the complete startup sequence: logger, database,
// schema, container, HTTP server, and graceful shutdown.
func Initialize() error {
	setupGinMode()

	start := time.Now().UTC()

	logger, err := logging.NewChanneledLogger(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	logger.Startup().Info("Starting studio server")

	// Database
	db, err := database.NewConnectionWithLogger(config.DBDriver, config.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	tableCreator := schema.NewTableCreator()
	if err := tableCreator.CreateSchema(db.DB); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	logger.Startup().Info("Database schema ready")

	if err := tableCreator.SeedInitialAdmin(db.DB, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	// Email is optional; without a provider inquiries still persist.
	var emailSvc email.Service
	if svc, err := email.NewService(); err != nil {
		logger.Startup().Info("Email service not configured, inquiry notifications disabled", "reason", err.Error())
	} else {
		emailSvc = svc
		logger.Startup().Info("Email service ready")
	}

	appContainer := container.NewContainer(db, logger, emailSvc)
	logger.Startup().Info("Dependency injection container created with singleton services")

	_, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	port := os.Getenv("PORT")
	if port == "" {
		port = config.Port
	}
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

func setupGinMode() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
