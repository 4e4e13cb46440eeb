package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// CatalogHandlers contains the HTTP handlers for the slug-addressable
// catalog collections (products, services, solutions, industries)
type CatalogHandlers struct {
	catalogService *services.CatalogService
	logger         *logging.ChanneledLogger
}

// NewCatalogHandlers creates catalog handlers with injected dependencies
func NewCatalogHandlers(catalogService *services.CatalogService, logger *logging.ChanneledLogger) *CatalogHandlers {
	return &CatalogHandlers{catalogService: catalogService, logger: logger}
}

func (h *CatalogHandlers) GetProducts(c *gin.Context) {
	h.listing(c, h.catalogService.Products)
}

func (h *CatalogHandlers) GetProductBySlug(c *gin.Context) {
	h.detail(c, h.catalogService.ProductBySlug)
}

func (h *CatalogHandlers) GetServices(c *gin.Context) {
	h.listing(c, h.catalogService.Services)
}

func (h *CatalogHandlers) GetServiceBySlug(c *gin.Context) {
	h.detail(c, h.catalogService.ServiceBySlug)
}

func (h *CatalogHandlers) GetSolutions(c *gin.Context) {
	h.listing(c, h.catalogService.Solutions)
}

func (h *CatalogHandlers) GetSolutionBySlug(c *gin.Context) {
	h.detail(c, h.catalogService.SolutionBySlug)
}

func (h *CatalogHandlers) GetIndustries(c *gin.Context) {
	h.listing(c, h.catalogService.Industries)
}

func (h *CatalogHandlers) GetIndustryBySlug(c *gin.Context) {
	h.detail(c, h.catalogService.IndustryBySlug)
}

func (h *CatalogHandlers) listing(c *gin.Context, items func(context.Context) []content.CatalogItemView) {
	views := items(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"items": views,
		"count": len(views),
	})
}

func (h *CatalogHandlers) detail(c *gin.Context, find func(context.Context, string) *content.CatalogItemView) {
	slug := c.Param("slug")

	view := find(c.Request.Context(), slug)
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found: " + slug})
		return
	}

	c.JSON(http.StatusOK, view)
}
