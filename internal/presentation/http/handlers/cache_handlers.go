package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/interfaces"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// CacheHandlers exposes cache observability endpoints
type CacheHandlers struct {
	cache  interfaces.Cache
	logger *logging.ChanneledLogger
}

// NewCacheHandlers creates cache handlers with injected dependencies
func NewCacheHandlers(cache interfaces.Cache, logger *logging.ChanneledLogger) *CacheHandlers {
	return &CacheHandlers{cache: cache, logger: logger}
}

// GetHealth reports cache entry counts and hit/miss statistics
func (h *CacheHandlers) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.cache.Health())
}
