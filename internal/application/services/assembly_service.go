package services

import (
	"context"
	"sync"
	"time"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/interfaces"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// AssemblyService builds the full view-model for one route. All entity
// fetches a route needs run concurrently; each fails independently, so a
// degraded CMS blanks out at most its own section.
type AssemblyService struct {
	pages   *PageService
	blog    *BlogService
	catalog *CatalogService
	site    *SiteService
	cache   interfaces.PageCache
	ttl     time.Duration
	logger  *logging.ChanneledLogger
}

// NewAssemblyService creates the page-assembly service.
func NewAssemblyService(
	pages *PageService,
	blog *BlogService,
	catalog *CatalogService,
	site *SiteService,
	cache interfaces.PageCache,
	ttl time.Duration,
	logger *logging.ChanneledLogger,
) *AssemblyService {
	return &AssemblyService{
		pages:   pages,
		blog:    blog,
		catalog: catalog,
		site:    site,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

// ViewForSlug assembles the view-model for a known page slug. Unknown slugs
// report false for the routing layer to surface as not found.
func (s *AssemblyService) ViewForSlug(ctx context.Context, slug string) (any, bool) {
	switch slug {
	case "home":
		return s.Home(ctx), true
	case "about":
		return s.About(ctx), true
	case "services":
		return s.ServicesPage(ctx), true
	case "solutions":
		return s.SolutionsPage(ctx), true
	case "products":
		return s.ProductsPage(ctx), true
	case "industries":
		return s.IndustriesPage(ctx), true
	case "blog":
		return s.Blog(ctx), true
	case "careers":
		return s.Careers(ctx), true
	case "contact":
		return s.Contact(ctx), true
	}
	return nil, false
}

// Home assembles the home route view-model.
func (s *AssemblyService) Home(ctx context.Context) content.HomeView {
	if cached, ok := s.cache.GetPage("/"); ok {
		if view, ok := cached.(content.HomeView); ok {
			return view
		}
	}

	start := time.Now()
	var view content.HomeView

	s.fanOut(
		func() { view.Page = s.pages.Resolve(ctx, "home") },
		func() { view.Stats = s.site.Stats(ctx) },
		func() { view.Products = s.catalog.Products(ctx) },
		func() { view.Steps = s.site.Steps(ctx) },
		func() { view.ProcessSteps = s.site.ProcessSteps(ctx) },
		func() { view.FAQs = s.site.FAQs(ctx) },
		func() { view.Logos = s.site.ClientLogos(ctx) },
	)

	s.store("/", view, start)
	return view
}

// About assembles the about route view-model.
func (s *AssemblyService) About(ctx context.Context) content.AboutView {
	if cached, ok := s.cache.GetPage("/about"); ok {
		if view, ok := cached.(content.AboutView); ok {
			return view
		}
	}

	start := time.Now()
	var view content.AboutView

	s.fanOut(
		func() { view.Page = s.pages.Resolve(ctx, "about") },
		func() { view.Departments = s.site.TeamDepartments(ctx) },
		func() { view.ValueProps = s.site.ValueProps(ctx) },
		func() { view.Logos = s.site.ClientLogos(ctx) },
	)

	s.store("/about", view, start)
	return view
}

// ServicesPage assembles the services listing route view-model.
func (s *AssemblyService) ServicesPage(ctx context.Context) content.ListingView {
	return s.listing(ctx, "/services", "services", s.catalog.Services)
}

// SolutionsPage assembles the solutions listing route view-model.
func (s *AssemblyService) SolutionsPage(ctx context.Context) content.ListingView {
	return s.listing(ctx, "/solutions", "solutions", s.catalog.Solutions)
}

// IndustriesPage assembles the industries listing route view-model.
func (s *AssemblyService) IndustriesPage(ctx context.Context) content.ListingView {
	return s.listing(ctx, "/industries", "industries", s.catalog.Industries)
}

// ProductsPage assembles the products route view-model.
func (s *AssemblyService) ProductsPage(ctx context.Context) content.ProductsView {
	if cached, ok := s.cache.GetPage("/products"); ok {
		if view, ok := cached.(content.ProductsView); ok {
			return view
		}
	}

	start := time.Now()
	var view content.ProductsView

	s.fanOut(
		func() { view.Page = s.pages.Resolve(ctx, "products") },
		func() { view.Items = s.catalog.Products(ctx) },
		func() { view.Testimonials = s.site.Testimonials(ctx) },
	)

	s.store("/products", view, start)
	return view
}

// Blog assembles the blog listing route view-model.
func (s *AssemblyService) Blog(ctx context.Context) content.BlogView {
	if cached, ok := s.cache.GetPage("/blog"); ok {
		if view, ok := cached.(content.BlogView); ok {
			return view
		}
	}

	start := time.Now()
	var view content.BlogView

	s.fanOut(
		func() { view.Page = s.pages.Resolve(ctx, "blog") },
		func() { view.Posts = s.blog.Posts(ctx) },
	)

	s.store("/blog", view, start)
	return view
}

// Careers assembles the careers route view-model.
func (s *AssemblyService) Careers(ctx context.Context) content.CareersView {
	if cached, ok := s.cache.GetPage("/careers"); ok {
		if view, ok := cached.(content.CareersView); ok {
			return view
		}
	}

	start := time.Now()
	var view content.CareersView

	s.fanOut(
		func() { view.Page = s.pages.Resolve(ctx, "careers") },
		func() { view.Positions = s.site.CareerPositions(ctx) },
		func() { view.Benefits = s.site.CareerBenefits(ctx) },
	)

	s.store("/careers", view, start)
	return view
}

// Contact assembles the contact route view-model.
func (s *AssemblyService) Contact(ctx context.Context) content.ContactView {
	if cached, ok := s.cache.GetPage("/contact"); ok {
		if view, ok := cached.(content.ContactView); ok {
			return view
		}
	}

	start := time.Now()
	var view content.ContactView

	s.fanOut(
		func() { view.Page = s.pages.Resolve(ctx, "contact") },
		func() { view.Offices = s.site.OfficeLocations(ctx) },
	)

	s.store("/contact", view, start)
	return view
}

// listing covers the routes whose shape is a page header plus one catalog
// collection.
func (s *AssemblyService) listing(ctx context.Context, path, slug string, items func(context.Context) []content.CatalogItemView) content.ListingView {
	if cached, ok := s.cache.GetPage(path); ok {
		if view, ok := cached.(content.ListingView); ok {
			return view
		}
	}

	start := time.Now()
	var view content.ListingView

	s.fanOut(
		func() { view.Page = s.pages.Resolve(ctx, slug) },
		func() { view.Items = items(ctx) },
	)

	s.store(path, view, start)
	return view
}

// fanOut runs the route's independent fetches concurrently and waits for all
// of them to settle. Each closure writes a distinct field of the view-model.
func (s *AssemblyService) fanOut(tasks ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(run func()) {
			defer wg.Done()
			run()
		}(task)
	}
	wg.Wait()
}

func (s *AssemblyService) store(path string, view any, start time.Time) {
	s.cache.SetPage(path, view, s.ttl)
	s.logger.Content().Debug("Page view-model assembled",
		"path", path, "duration", time.Since(start))
}
