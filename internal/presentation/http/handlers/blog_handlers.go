package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// BlogHandlers contains the blog HTTP handlers
type BlogHandlers struct {
	blogService *services.BlogService
	logger      *logging.ChanneledLogger
}

// NewBlogHandlers creates blog handlers with injected dependencies
func NewBlogHandlers(blogService *services.BlogService, logger *logging.ChanneledLogger) *BlogHandlers {
	return &BlogHandlers{blogService: blogService, logger: logger}
}

// GetPosts returns all blog post view-models
func (h *BlogHandlers) GetPosts(c *gin.Context) {
	start := time.Now()

	posts := h.blogService.Posts(c.Request.Context())

	h.logger.Content().Info("Blog listing request completed",
		"count", len(posts), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GetPostBySlug returns a single blog post view-model
func (h *BlogHandlers) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post := h.blogService.PostBySlug(c.Request.Context(), slug)
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found: " + slug})
		return
	}

	c.JSON(http.StatusOK, post)
}
