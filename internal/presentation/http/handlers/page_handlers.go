// Package handlers provides HTTP handlers for the content gateway endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// PageHandlers contains the assembled-route HTTP handlers
type PageHandlers struct {
	assembly *services.AssemblyService
	logger   *logging.ChanneledLogger
}

// NewPageHandlers creates page handlers with injected dependencies
func NewPageHandlers(assembly *services.AssemblyService, logger *logging.ChanneledLogger) *PageHandlers {
	return &PageHandlers{assembly: assembly, logger: logger}
}

// GetPage returns the assembled view-model for a known page slug
func (h *PageHandlers) GetPage(c *gin.Context) {
	start := time.Now()
	slug := c.Param("slug")

	view, ok := h.assembly.ViewForSlug(c.Request.Context(), slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page: " + slug})
		return
	}

	h.logger.Content().Info("Page request completed",
		"slug", slug, "duration", time.Since(start))
	c.JSON(http.StatusOK, view)
}
