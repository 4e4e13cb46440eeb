package wordpress

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/domain/repositories"
)

const (
	// collectionFields trims collection payloads to what the view-models read.
	collectionFields = "id,slug,title,acf"

	// postFields additionally carries the rich-text body and embed links.
	postFields = "id,slug,date,title,excerpt,content,acf,_links"

	postEmbed = "wp:term,wp:featuredmedia"
)

// Repository implements every per-entity accessor group against the CMS.
// List accessors resolve fetch failures to an empty sequence, single-item
// accessors to nil; errors never propagate past this boundary.
type Repository struct {
	client *Client
	ttl    time.Duration
}

var (
	_ repositories.PageRepository    = (*Repository)(nil)
	_ repositories.PostRepository    = (*Repository)(nil)
	_ repositories.CatalogRepository = (*Repository)(nil)
	_ repositories.SiteRepository    = (*Repository)(nil)
)

// NewRepository creates the CMS-backed repository with the given content TTL.
func NewRepository(client *Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// FindPage fetches a ContentPage field bag by slug.
func (r *Repository) FindPage(ctx context.Context, slug string) *content.CollectionItem {
	if slug == "" {
		return nil
	}
	endpoint := fmt.Sprintf("/pages?slug=%s&per_page=1&_fields=%s",
		url.QueryEscape(slug), collectionFields)
	items := r.client.FetchItems(ctx, endpoint, r.ttl, []string{"page-" + slug})
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

// FindPosts fetches all blog posts with taxonomy and featured media embedded.
func (r *Repository) FindPosts(ctx context.Context) []content.CollectionItem {
	endpoint := fmt.Sprintf("/posts?per_page=100&_fields=%s&_embed=%s&orderby=date&order=asc",
		postFields, postEmbed)
	return r.sorted(r.client.FetchItems(ctx, endpoint, r.ttl, []string{"blog-posts"}))
}

// FindPostBySlug fetches a single post; multiple matches resolve to the first.
func (r *Repository) FindPostBySlug(ctx context.Context, slug string) *content.CollectionItem {
	if slug == "" {
		return nil
	}
	endpoint := fmt.Sprintf("/posts?slug=%s&per_page=100&_fields=%s&_embed=%s",
		url.QueryEscape(slug), postFields, postEmbed)
	items := r.client.FetchItems(ctx, endpoint, r.ttl, []string{"blog-posts", "post-" + slug})
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

func (r *Repository) FindProducts(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "products", "products")
}

func (r *Repository) FindProductBySlug(ctx context.Context, slug string) *content.CollectionItem {
	return r.bySlug(ctx, "products", "products", slug)
}

func (r *Repository) FindServices(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "services", "services")
}

func (r *Repository) FindServiceBySlug(ctx context.Context, slug string) *content.CollectionItem {
	return r.bySlug(ctx, "services", "services", slug)
}

func (r *Repository) FindSolutions(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "solutions", "solutions")
}

func (r *Repository) FindSolutionBySlug(ctx context.Context, slug string) *content.CollectionItem {
	return r.bySlug(ctx, "solutions", "solutions", slug)
}

func (r *Repository) FindIndustries(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "industries", "industries")
}

func (r *Repository) FindIndustryBySlug(ctx context.Context, slug string) *content.CollectionItem {
	return r.bySlug(ctx, "industries", "industries", slug)
}

func (r *Repository) FindStats(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "stats", "stats")
}

func (r *Repository) FindSteps(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "steps", "steps")
}

func (r *Repository) FindProcessSteps(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "process-steps", "process-steps")
}

func (r *Repository) FindFAQItems(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "faq-items", "faq-items")
}

func (r *Repository) FindTestimonials(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "testimonials", "testimonials")
}

func (r *Repository) FindClientLogos(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "client-logos", "client-logos")
}

func (r *Repository) FindCareerPositions(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "career-positions", "career-positions")
}

func (r *Repository) FindCareerBenefits(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "career-benefits", "career-benefits")
}

func (r *Repository) FindOfficeLocations(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "office-locations", "office-locations")
}

func (r *Repository) FindTeamDepartments(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "team-departments", "team-departments")
}

func (r *Repository) FindValueProps(ctx context.Context) []content.CollectionItem {
	return r.collection(ctx, "value-props", "value-props")
}

// collection fetches a full custom-post-type collection in one call and
// applies the editor-controlled ordering.
func (r *Repository) collection(ctx context.Context, resource, tag string) []content.CollectionItem {
	endpoint := fmt.Sprintf("/%s?per_page=100&_fields=%s&orderby=date&order=asc",
		resource, collectionFields)
	return r.sorted(r.client.FetchItems(ctx, endpoint, r.ttl, []string{tag}))
}

// bySlug fetches a single item of a custom post type. Uniqueness is not
// assumed upstream; the first match wins.
func (r *Repository) bySlug(ctx context.Context, resource, tag, slug string) *content.CollectionItem {
	if slug == "" {
		return nil
	}
	endpoint := fmt.Sprintf("/%s?slug=%s&per_page=100&_fields=%s",
		resource, url.QueryEscape(slug), collectionFields)
	items := r.client.FetchItems(ctx, endpoint, r.ttl, []string{tag})
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

func (r *Repository) sorted(items []content.CollectionItem) []content.CollectionItem {
	if items == nil {
		return []content.CollectionItem{}
	}
	content.SortByDisplayOrder(items)
	return items
}
