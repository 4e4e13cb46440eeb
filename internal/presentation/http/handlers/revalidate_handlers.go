package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// RevalidateRequest represents the CMS webhook payload
type RevalidateRequest struct {
	PostType string `json:"post_type"`
	Slug     string `json:"slug"`
}

// RevalidateHandlers contains the cache-invalidation webhook handler
type RevalidateHandlers struct {
	revalidation *services.RevalidationService
	secret       string
	logger       *logging.ChanneledLogger
}

// NewRevalidateHandlers creates revalidation handlers with injected
// dependencies. An empty secret disables the webhook entirely: every call is
// rejected rather than letting an unconfigured deploy accept anything.
func NewRevalidateHandlers(revalidation *services.RevalidationService, secret string, logger *logging.ChanneledLogger) *RevalidateHandlers {
	return &RevalidateHandlers{revalidation: revalidation, secret: secret, logger: logger}
}

// Revalidate authenticates the CMS webhook and applies the invalidation rules
func (h *RevalidateHandlers) Revalidate(c *gin.Context) {
	provided := c.GetHeader("x-revalidation-secret")
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
		h.logger.Webhook().Warn("Revalidation rejected: invalid secret",
			"remoteAddr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid secret"})
		return
	}

	var req RevalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error revalidating",
			"error":   err.Error(),
		})
		return
	}

	paths := h.revalidation.Revalidate(req.PostType, req.Slug)

	c.JSON(http.StatusOK, gin.H{
		"revalidated": true,
		"paths":       paths,
		"now":         time.Now().UnixMilli(),
	})
}
