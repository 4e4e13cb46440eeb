package wordpress

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/manager"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

func quietLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: false,
		OutputToFile:    false,
	})
	require.NoError(t, err)
	return logger
}

func newTestRepository(t *testing.T, handler http.HandlerFunc) (*Repository, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, 5*time.Second, manager.NewManager(), quietLogger(t))
	return NewRepository(client, time.Minute), srv
}

func TestFindStatsSortsByDisplayOrder(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "id,slug,title,acf", r.URL.Query().Get("_fields"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"title":{"rendered":"Second"},"acf":{"display_order":2}},
			{"id":2,"title":{"rendered":"First"},"acf":{"display_order":1}},
			{"id":3,"title":{"rendered":"Unordered"}}
		]`))
	})

	items := repo.FindStats(context.Background())
	require.Len(t, items, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{items[0].ID, items[1].ID, items[2].ID})
}

func TestCollectionUpstreamErrorResolvesEmpty(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	items := repo.FindProducts(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCollectionMalformedPayloadResolvesEmpty(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"rest_no_route"}`))
	})

	items := repo.FindServices(context.Background())
	assert.Empty(t, items)
}

func TestFindProductBySlugPicksFirstMatch(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "pulseboard", r.URL.Query().Get("slug"))

		w.Write([]byte(`[
			{"id":10,"slug":"pulseboard","title":{"rendered":"Pulseboard"}},
			{"id":11,"slug":"pulseboard","title":{"rendered":"Duplicate"}}
		]`))
	})

	item := repo.FindProductBySlug(context.Background(), "pulseboard")
	require.NotNil(t, item)
	assert.Equal(t, 10, item.ID)
}

func TestFindProductBySlugEmptySlugSkipsRequest(t *testing.T) {
	requested := false
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})

	item := repo.FindProductBySlug(context.Background(), "")
	assert.Nil(t, item)
	assert.False(t, requested, "empty slug must not hit the CMS")
}

func TestFindPostBySlugNotFound(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	assert.Nil(t, repo.FindPostBySlug(context.Background(), "missing"))
}

func TestFindPostsRequestShape(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "wp:term,wp:featuredmedia", r.URL.Query().Get("_embed"))
		assert.Equal(t, "date", r.URL.Query().Get("orderby"))
		assert.Equal(t, "asc", r.URL.Query().Get("order"))

		w.Write([]byte(`[{"id":1,"slug":"hello","title":{"rendered":"Hello"}}]`))
	})

	posts := repo.FindPosts(context.Background())
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Slug)
}

func TestFindPageSecondFetchServedFromCache(t *testing.T) {
	hits := 0
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`[{"id":5,"slug":"about","title":{"rendered":"About"},"acf":{"hero_title":"Built by people"}}]`))
	})

	first := repo.FindPage(context.Background(), "about")
	second := repo.FindPage(context.Background(), "about")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, hits, "second lookup must hit the response cache")
}
