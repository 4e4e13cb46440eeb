package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/manager"
)

// fakeSiteRepo counts lookups so tests can observe cache reuse.
type fakeSiteRepo struct {
	calls atomic.Int64
}

func (f *fakeSiteRepo) find() []content.CollectionItem {
	f.calls.Add(1)
	return []content.CollectionItem{
		{ID: 1, Title: content.RenderedText{Rendered: "Entry"}, ACF: content.ACFFields{}},
	}
}

func (f *fakeSiteRepo) FindStats(ctx context.Context) []content.CollectionItem        { return f.find() }
func (f *fakeSiteRepo) FindSteps(ctx context.Context) []content.CollectionItem        { return f.find() }
func (f *fakeSiteRepo) FindProcessSteps(ctx context.Context) []content.CollectionItem { return f.find() }
func (f *fakeSiteRepo) FindFAQItems(ctx context.Context) []content.CollectionItem     { return f.find() }
func (f *fakeSiteRepo) FindTestimonials(ctx context.Context) []content.CollectionItem { return f.find() }
func (f *fakeSiteRepo) FindClientLogos(ctx context.Context) []content.CollectionItem  { return f.find() }
func (f *fakeSiteRepo) FindCareerPositions(ctx context.Context) []content.CollectionItem {
	return f.find()
}
func (f *fakeSiteRepo) FindCareerBenefits(ctx context.Context) []content.CollectionItem {
	return f.find()
}
func (f *fakeSiteRepo) FindOfficeLocations(ctx context.Context) []content.CollectionItem {
	return f.find()
}
func (f *fakeSiteRepo) FindTeamDepartments(ctx context.Context) []content.CollectionItem {
	return f.find()
}
func (f *fakeSiteRepo) FindValueProps(ctx context.Context) []content.CollectionItem { return f.find() }

func newAssembly(t *testing.T, site *fakeSiteRepo) (*AssemblyService, *manager.Manager) {
	t.Helper()
	cache := manager.NewManager()

	svc := NewAssemblyService(
		NewPageService(&fakePageRepo{}),
		NewBlogService(&fakePostRepo{}),
		NewCatalogService(&fakeCatalogRepo{}),
		NewSiteService(site),
		cache,
		time.Minute,
		quietLogger(t),
	)
	return svc, cache
}

func TestHomeAssemblesAllSections(t *testing.T) {
	svc, _ := newAssembly(t, &fakeSiteRepo{})

	view := svc.Home(context.Background())

	assert.Equal(t, "Software that moves your business forward", view.Page["hero_title"])
	assert.Len(t, view.Stats, 1)
	assert.Len(t, view.Steps, 1)
	assert.Len(t, view.ProcessSteps, 1)
	assert.Len(t, view.FAQs, 1)
	assert.Len(t, view.Logos, 1)
	assert.NotEmpty(t, view.Products, "empty live products resolve to fallback")
}

func TestHomeSecondCallServedFromPageCache(t *testing.T) {
	site := &fakeSiteRepo{}
	svc, cache := newAssembly(t, site)

	first := svc.Home(context.Background())
	after := site.calls.Load()

	second := svc.Home(context.Background())
	assert.Equal(t, first, second)
	assert.Equal(t, after, site.calls.Load(), "cached view must not refetch")

	_, ok := cache.GetPage("/")
	assert.True(t, ok)
}

func TestInvalidatedPathReassembles(t *testing.T) {
	site := &fakeSiteRepo{}
	svc, cache := newAssembly(t, site)

	svc.Contact(context.Background())
	before := site.calls.Load()

	cache.InvalidatePath("/contact")
	svc.Contact(context.Background())

	assert.Greater(t, site.calls.Load(), before, "invalidation must force reassembly")
}

func TestViewForSlugDispatch(t *testing.T) {
	svc, _ := newAssembly(t, &fakeSiteRepo{})
	ctx := context.Background()

	for _, slug := range []string{
		"home", "about", "services", "solutions", "products",
		"industries", "blog", "careers", "contact",
	} {
		view, ok := svc.ViewForSlug(ctx, slug)
		require.True(t, ok, "slug %q must be routable", slug)
		require.NotNil(t, view)
	}

	_, ok := svc.ViewForSlug(ctx, "pricing")
	assert.False(t, ok)
}

func TestListingRouteShape(t *testing.T) {
	svc, cache := newAssembly(t, &fakeSiteRepo{})

	view := svc.ServicesPage(context.Background())
	assert.Equal(t, "Services", view.Page["hero_title"])
	assert.NotEmpty(t, view.Items)

	_, ok := cache.GetPage("/services")
	assert.True(t, ok)
}
