// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novamark/sitebridge-go/internal/application/container"
	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/cleanup"
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/manager"
	"github.com/novamark/sitebridge-go/internal/infrastructure/email"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
	"github.com/novamark/sitebridge-go/internal/presentation/http/server"
	"github.com/novamark/sitebridge-go/pkg/config"
)

// Initialize performs the complete startup sequence and blocks until shutdown
func Initialize() error {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	logger, err := logging.NewChanneledLogger(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Starting sitebridge content gateway",
		"wordpressAPI", config.WordPressAPIURL)

	// Cache system
	cacheManager := manager.NewManager()
	logger.Startup().Info("Cache manager initialized",
		"contentTTL", config.ContentCacheTTL, "pageTTL", config.PageCacheTTL)

	// Email is optional; the contact endpoint degrades to 503 without it.
	mailer, err := email.NewService()
	if err != nil {
		logger.Startup().Warn("Email delivery not configured, contact form disabled", "error", err.Error())
		mailer = nil
	} else {
		logger.Startup().Info("Email delivery configured")
	}

	// Dependency injection container
	appContainer := container.NewContainer(cacheManager, logger, mailer)
	logger.Startup().Info("Dependency injection container created with singleton services")

	if config.RevalidationSecret == "" {
		logger.Startup().Warn("REVALIDATION_SECRET is not set, revalidation webhook disabled")
	}

	// Background cleanup worker
	cleanupWorker := cleanup.NewWorker(cacheManager, logger, cleanup.NewConfig())
	go cleanupWorker.Start(ctx)
	logger.Startup().Info("Background cleanup worker started",
		"interval", config.CacheCleanupInterval)

	// Warm the page cache so first visitors never pay assembly latency.
	warmStart := time.Now()
	warmRoutes(ctx, appContainer.AssemblyService)
	logger.Startup().Info("Page cache warmed", "duration", time.Since(warmStart))

	// HTTP server
	port := config.Port
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

// warmRoutes assembles every known page once so the page store starts full.
func warmRoutes(ctx context.Context, assembly *services.AssemblyService) {
	slugs := services.KnownSlugs()

	var wg sync.WaitGroup
	wg.Add(len(slugs))
	for _, slug := range slugs {
		go func(slug string) {
			defer wg.Done()
			assembly.ViewForSlug(ctx, slug)
		}(slug)
	}
	wg.Wait()
}
