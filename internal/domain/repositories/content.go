// Package repositories defines the read-only contracts the application layer
// uses to reach CMS content.
package repositories

import (
	"context"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
)

// PageRepository resolves ContentPage field bags by slug.
type PageRepository interface {
	FindPage(ctx context.Context, slug string) *content.CollectionItem
}

// PostRepository resolves blog posts.
type PostRepository interface {
	FindPosts(ctx context.Context) []content.CollectionItem
	FindPostBySlug(ctx context.Context, slug string) *content.CollectionItem
}

// CatalogRepository resolves the slug-addressable editorial collections.
type CatalogRepository interface {
	FindProducts(ctx context.Context) []content.CollectionItem
	FindProductBySlug(ctx context.Context, slug string) *content.CollectionItem
	FindServices(ctx context.Context) []content.CollectionItem
	FindServiceBySlug(ctx context.Context, slug string) *content.CollectionItem
	FindSolutions(ctx context.Context) []content.CollectionItem
	FindSolutionBySlug(ctx context.Context, slug string) *content.CollectionItem
	FindIndustries(ctx context.Context) []content.CollectionItem
	FindIndustryBySlug(ctx context.Context, slug string) *content.CollectionItem
}

// SiteRepository resolves the listing-only collections that decorate pages.
type SiteRepository interface {
	FindStats(ctx context.Context) []content.CollectionItem
	FindSteps(ctx context.Context) []content.CollectionItem
	FindProcessSteps(ctx context.Context) []content.CollectionItem
	FindFAQItems(ctx context.Context) []content.CollectionItem
	FindTestimonials(ctx context.Context) []content.CollectionItem
	FindClientLogos(ctx context.Context) []content.CollectionItem
	FindCareerPositions(ctx context.Context) []content.CollectionItem
	FindCareerBenefits(ctx context.Context) []content.CollectionItem
	FindOfficeLocations(ctx context.Context) []content.CollectionItem
	FindTeamDepartments(ctx context.Context) []content.CollectionItem
	FindValueProps(ctx context.Context) []content.CollectionItem
}
