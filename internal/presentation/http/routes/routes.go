// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamark/sitebridge-go/internal/application/container"
	"github.com/novamark/sitebridge-go/internal/presentation/http/handlers"
	"github.com/novamark/sitebridge-go/internal/presentation/http/middleware"
	"github.com/novamark/sitebridge-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// Initialize handlers
	pageHandlers := handlers.NewPageHandlers(container.AssemblyService, container.Logger)
	blogHandlers := handlers.NewBlogHandlers(container.BlogService, container.Logger)
	catalogHandlers := handlers.NewCatalogHandlers(container.CatalogService, container.Logger)
	cacheHandlers := handlers.NewCacheHandlers(container.CacheManager, container.Logger)
	revalidateHandlers := handlers.NewRevalidateHandlers(container.RevalidationService, config.RevalidationSecret, container.Logger)
	contactHandlers := handlers.NewContactHandlers(container.ContactService, container.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Webhook endpoints stay outside /api/v1 to match the CMS configuration.
	r.POST("/api/revalidate", revalidateHandlers.Revalidate)
	r.POST("/api/contact", contactHandlers.SubmitContact)

	api := r.Group("/api/v1")
	{
		api.GET("/pages/:slug", pageHandlers.GetPage)

		api.GET("/blog", blogHandlers.GetPosts)
		api.GET("/blog/:slug", blogHandlers.GetPostBySlug)

		api.GET("/products", catalogHandlers.GetProducts)
		api.GET("/products/:slug", catalogHandlers.GetProductBySlug)
		api.GET("/services", catalogHandlers.GetServices)
		api.GET("/services/:slug", catalogHandlers.GetServiceBySlug)
		api.GET("/solutions", catalogHandlers.GetSolutions)
		api.GET("/solutions/:slug", catalogHandlers.GetSolutionBySlug)
		api.GET("/industries", catalogHandlers.GetIndustries)
		api.GET("/industries/:slug", catalogHandlers.GetIndustryBySlug)

		api.GET("/cache/health", cacheHandlers.GetHealth)
	}

	return r
}
