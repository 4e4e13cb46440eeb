package services

import (
	"context"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/domain/repositories"
	"github.com/novamark/sitebridge-go/internal/infrastructure/content/fallback"
)

// BlogService shapes blog posts into normalized view-models, substituting
// the static fallback dataset when the live collection is empty.
type BlogService struct {
	repo repositories.PostRepository
}

// NewBlogService creates a new blog application service
func NewBlogService(repo repositories.PostRepository) *BlogService {
	return &BlogService{repo: repo}
}

// Posts returns all post view-models. An empty live collection resolves to
// the fallback dataset wholesale.
func (s *BlogService) Posts(ctx context.Context) []content.PostView {
	items := s.repo.FindPosts(ctx)
	if len(items) == 0 {
		return fallback.Posts()
	}

	views := make([]content.PostView, len(items))
	for i, item := range items {
		views[i] = content.PostViewFromItem(item)
	}
	return views
}

// PostBySlug resolves a post detail view: live lookup first, then the
// fallback dataset, then nil for a not-found outcome.
func (s *BlogService) PostBySlug(ctx context.Context, slug string) *content.PostView {
	if slug == "" {
		return nil
	}

	if item := s.repo.FindPostBySlug(ctx, slug); item != nil {
		view := content.PostViewFromItem(*item)
		return &view
	}
	return fallback.PostBySlug(slug)
}
