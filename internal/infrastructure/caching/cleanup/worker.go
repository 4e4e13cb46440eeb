// Package cleanup provides the background cache cleanup worker
package cleanup

import (
	"context"
	"time"

	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/interfaces"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// Worker periodically purges expired cache entries.
type Worker struct {
	cache  interfaces.Cache
	logger *logging.ChanneledLogger
	config *Config
}

// NewWorker creates a cleanup worker with injected configuration
func NewWorker(cache interfaces.Cache, logger *logging.ChanneledLogger, config *Config) *Worker {
	return &Worker{
		cache:  cache,
		logger: logger,
		config: config,
	}
}

// Start begins the cleanup routine, using the configured interval. It blocks
// until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	w.logger.Cache().Info("Cache cleanup worker started",
		"interval", w.config.Interval, "verbose", w.config.Verbose)

	for {
		select {
		case <-ctx.Done():
			w.logger.Cache().Info("Cache cleanup worker stopping")
			return
		case <-ticker.C:
			w.performCleanup()
		}
	}
}

func (w *Worker) performCleanup() {
	start := time.Now()
	removed := w.cache.PurgeExpired()
	duration := time.Since(start)

	if removed > 0 {
		w.logger.Cache().Info("Cache cleanup finished",
			"removed", removed, "duration", duration)
		return
	}
	if w.config.Verbose {
		w.logger.Cache().Debug("Cache cleanup completed with no expired entries",
			"duration", duration)
	}
}
