// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/novamark/sitebridge-go/internal/application/services"
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/manager"
	"github.com/novamark/sitebridge-go/internal/infrastructure/email"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
	"github.com/novamark/sitebridge-go/internal/infrastructure/wordpress"
	"github.com/novamark/sitebridge-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Content Services (stateless singletons)
	PageService         *services.PageService
	BlogService         *services.BlogService
	CatalogService      *services.CatalogService
	SiteService         *services.SiteService
	AssemblyService     *services.AssemblyService
	RevalidationService *services.RevalidationService
	ContactService      *services.ContactService

	// Infrastructure Dependencies
	CacheManager *manager.Manager
	Logger       *logging.ChanneledLogger
}

// NewContainer creates and wires all singleton services. The mailer may be
// nil when email credentials are absent; contact submissions then report the
// integration as unavailable.
func NewContainer(cacheManager *manager.Manager, logger *logging.ChanneledLogger, mailer email.Service) *Container {
	client := wordpress.NewClient(config.WordPressAPIURL, config.WordPressTimeout, cacheManager, logger)
	repo := wordpress.NewRepository(client, config.ContentCacheTTL)

	pageService := services.NewPageService(repo)
	blogService := services.NewBlogService(repo)
	catalogService := services.NewCatalogService(repo)
	siteService := services.NewSiteService(repo)

	return &Container{
		PageService:    pageService,
		BlogService:    blogService,
		CatalogService: catalogService,
		SiteService:    siteService,
		AssemblyService: services.NewAssemblyService(
			pageService, blogService, catalogService, siteService,
			cacheManager, config.PageCacheTTL, logger,
		),
		RevalidationService: services.NewRevalidationService(cacheManager, logger),
		ContactService:      services.NewContactService(mailer, logger),

		CacheManager: cacheManager,
		Logger:       logger,
	}
}
