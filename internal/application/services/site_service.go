package services

import (
	"context"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/domain/repositories"
)

// SiteService shapes the listing-only collections that decorate pages.
// These types have no fallback dataset; an unavailable CMS yields empty
// sections, not errors.
type SiteService struct {
	repo repositories.SiteRepository
}

// NewSiteService creates a new site application service
func NewSiteService(repo repositories.SiteRepository) *SiteService {
	return &SiteService{repo: repo}
}

func (s *SiteService) Stats(ctx context.Context) []content.StatView {
	return mapItems(s.repo.FindStats(ctx), content.StatViewFromItem)
}

func (s *SiteService) Steps(ctx context.Context) []content.StepView {
	return mapItems(s.repo.FindSteps(ctx), content.StepViewFromItem)
}

func (s *SiteService) ProcessSteps(ctx context.Context) []content.StepView {
	return mapItems(s.repo.FindProcessSteps(ctx), content.StepViewFromItem)
}

func (s *SiteService) FAQs(ctx context.Context) []content.FAQView {
	return mapItems(s.repo.FindFAQItems(ctx), content.FAQViewFromItem)
}

func (s *SiteService) Testimonials(ctx context.Context) []content.TestimonialView {
	return mapItems(s.repo.FindTestimonials(ctx), content.TestimonialViewFromItem)
}

func (s *SiteService) ClientLogos(ctx context.Context) []content.LogoView {
	return mapItems(s.repo.FindClientLogos(ctx), content.LogoViewFromItem)
}

func (s *SiteService) CareerPositions(ctx context.Context) []content.PositionView {
	return mapItems(s.repo.FindCareerPositions(ctx), content.PositionViewFromItem)
}

func (s *SiteService) CareerBenefits(ctx context.Context) []content.BenefitView {
	return mapItems(s.repo.FindCareerBenefits(ctx), content.BenefitViewFromItem)
}

func (s *SiteService) OfficeLocations(ctx context.Context) []content.OfficeView {
	return mapItems(s.repo.FindOfficeLocations(ctx), content.OfficeViewFromItem)
}

func (s *SiteService) TeamDepartments(ctx context.Context) []content.DepartmentView {
	return mapItems(s.repo.FindTeamDepartments(ctx), content.DepartmentViewFromItem)
}

func (s *SiteService) ValueProps(ctx context.Context) []content.ValuePropView {
	return mapItems(s.repo.FindValueProps(ctx), content.ValuePropViewFromItem)
}

func mapItems[T any](items []content.CollectionItem, shape func(content.CollectionItem) T) []T {
	views := make([]T, len(items))
	for i, item := range items {
		views[i] = shape(item)
	}
	return views
}
