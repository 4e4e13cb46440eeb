package services

import (
	"context"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/domain/repositories"
	"github.com/novamark/sitebridge-go/internal/infrastructure/content/fallback"
)

// CatalogService shapes the slug-addressable editorial collections
// (products, services, solutions, industries) with fallback substitution.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new catalog application service
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Products(ctx context.Context) []content.CatalogItemView {
	return catalogViews(s.repo.FindProducts(ctx), fallback.Products)
}

func (s *CatalogService) ProductBySlug(ctx context.Context, slug string) *content.CatalogItemView {
	return s.bySlug(ctx, slug, s.repo.FindProductBySlug, fallback.Products)
}

func (s *CatalogService) Services(ctx context.Context) []content.CatalogItemView {
	return catalogViews(s.repo.FindServices(ctx), fallback.Services)
}

func (s *CatalogService) ServiceBySlug(ctx context.Context, slug string) *content.CatalogItemView {
	return s.bySlug(ctx, slug, s.repo.FindServiceBySlug, fallback.Services)
}

func (s *CatalogService) Solutions(ctx context.Context) []content.CatalogItemView {
	return catalogViews(s.repo.FindSolutions(ctx), fallback.Solutions)
}

func (s *CatalogService) SolutionBySlug(ctx context.Context, slug string) *content.CatalogItemView {
	return s.bySlug(ctx, slug, s.repo.FindSolutionBySlug, fallback.Solutions)
}

func (s *CatalogService) Industries(ctx context.Context) []content.CatalogItemView {
	return catalogViews(s.repo.FindIndustries(ctx), fallback.Industries)
}

func (s *CatalogService) IndustryBySlug(ctx context.Context, slug string) *content.CatalogItemView {
	return s.bySlug(ctx, slug, s.repo.FindIndustryBySlug, fallback.Industries)
}

// catalogViews normalizes a live collection, or substitutes the fallback
// dataset wholesale when the live collection is empty.
func catalogViews(items []content.CollectionItem, fb func() []content.CatalogItemView) []content.CatalogItemView {
	if len(items) == 0 {
		return fb()
	}

	views := make([]content.CatalogItemView, len(items))
	for i, item := range items {
		views[i] = content.CatalogItemViewFromItem(item)
	}
	return views
}

// bySlug resolves a detail view: live lookup first, then the fallback
// dataset, then nil for a not-found outcome.
func (s *CatalogService) bySlug(
	ctx context.Context,
	slug string,
	find func(context.Context, string) *content.CollectionItem,
	fb func() []content.CatalogItemView,
) *content.CatalogItemView {
	if slug == "" {
		return nil
	}

	if item := find(ctx, slug); item != nil {
		view := content.CatalogItemViewFromItem(*item)
		return &view
	}
	return fallback.CatalogItemBySlug(fb(), slug)
}
