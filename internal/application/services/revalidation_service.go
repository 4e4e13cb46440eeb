package services

import (
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/interfaces"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// pageSlugPaths maps a page slug from the CMS to the single route it backs.
var pageSlugPaths = map[string]string{
	"home":       "/",
	"about":      "/about",
	"services":   "/services",
	"solutions":  "/solutions",
	"products":   "/products",
	"industries": "/industries",
	"blog":       "/blog",
	"careers":    "/careers",
	"contact":    "/contact",
}

// invalidationRule names the paths and response tags a content type dirties.
type invalidationRule struct {
	Paths []string
	Tags  []string
}

// postTypeRules is the static content-type → invalidation table. Types that
// decorate the home page include "/" alongside their own route.
var postTypeRules = map[string]invalidationRule{
	"post":            {Paths: []string{"/blog"}, Tags: []string{"blog-posts"}},
	"service":         {Paths: []string{"/services", "/"}, Tags: []string{"services"}},
	"solution":        {Paths: []string{"/solutions"}, Tags: []string{"solutions"}},
	"product":         {Paths: []string{"/products", "/"}, Tags: []string{"products"}},
	"industry":        {Paths: []string{"/industries"}, Tags: []string{"industries"}},
	"faq_item":        {Paths: []string{"/"}, Tags: []string{"faq-items"}},
	"stat":            {Paths: []string{"/"}, Tags: []string{"stats"}},
	"step":            {Paths: []string{"/"}, Tags: []string{"steps"}},
	"process_step":    {Paths: []string{"/"}, Tags: []string{"process-steps"}},
	"testimonial":     {Paths: []string{"/products"}, Tags: []string{"testimonials"}},
	"team_department": {Paths: []string{"/about"}, Tags: []string{"team-departments"}},
	"value_prop":      {Paths: []string{"/about"}, Tags: []string{"value-props"}},
	"career_position": {Paths: []string{"/careers"}, Tags: []string{"career-positions"}},
	"career_benefit":  {Paths: []string{"/careers"}, Tags: []string{"career-benefits"}},
	"client_logo":     {Paths: []string{"/", "/about"}, Tags: []string{"client-logos"}},
	"office_location": {Paths: []string{"/contact"}, Tags: []string{"office-locations"}},
}

// RevalidationService translates CMS change notifications into cache
// invalidations against the page and response stores.
type RevalidationService struct {
	cache  interfaces.Cache
	logger *logging.ChanneledLogger
}

// NewRevalidationService creates a new revalidation application service
func NewRevalidationService(cache interfaces.Cache, logger *logging.ChanneledLogger) *RevalidationService {
	return &RevalidationService{cache: cache, logger: logger}
}

// Revalidate applies the static invalidation rules for a changed item and
// returns the route paths that were invalidated. An unrecognized post type is
// a successful no-op so new CMS types never break the webhook.
func (s *RevalidationService) Revalidate(postType, slug string) []string {
	paths := make([]string, 0, 4)
	tags := make([]string, 0, 4)

	if postType == "page" {
		if path, ok := pageSlugPaths[slug]; ok {
			paths = append(paths, path)
			tags = append(tags, "page-"+slug)
		}
	}

	if rule, ok := postTypeRules[postType]; ok {
		paths = append(paths, rule.Paths...)
		tags = append(tags, rule.Tags...)
	}

	if postType == "post" && slug != "" {
		paths = append(paths, "/blog/"+slug)
		tags = append(tags, "post-"+slug)
	}

	paths = dedupe(paths)
	for _, path := range paths {
		s.cache.InvalidatePath(path)
	}

	entries := 0
	for _, tag := range dedupe(tags) {
		entries += s.cache.InvalidateTag(tag)
	}

	s.logger.Webhook().Info("Cache revalidated",
		"postType", postType, "slug", slug,
		"paths", paths, "entriesPurged", entries)
	return paths
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
