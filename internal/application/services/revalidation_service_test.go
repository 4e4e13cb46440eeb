package services

import (
	"encoding/json"
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

func TestRevalidatePageSlug(t *testing.T) {
	cache := manager.NewManager()
	cache.SetPage("/about", "vm", time.Minute)
	cache.SetResponse("/pages?slug=about", json.RawMessage(`[]`), time.Minute, []string{"page-about"})

	svc := NewRevalidationService(cache, quietLogger(t))
	paths := svc.Revalidate("page", "about")

	assert.Equal(t, []string{"/about"}, paths)

	_, ok := cache.GetPage("/about")
	assert.False(t, ok, "page entry must be invalidated")
	_, ok = cache.GetResponse("/pages?slug=about")
	assert.False(t, ok, "tagged response must be invalidated")
}

func TestRevalidatePostIncludesDetailPath(t *testing.T) {
	cache := manager.NewManager()
	cache.SetPage("/blog", "vm", time.Minute)
	cache.SetPage("/blog/my-post", "vm", time.Minute)
	cache.SetResponse("/posts", json.RawMessage(`[]`), time.Minute, []string{"blog-posts"})
	cache.SetResponse("/posts?slug=my-post", json.RawMessage(`[]`), time.Minute, []string{"blog-posts", "post-my-post"})

	svc := NewRevalidationService(cache, quietLogger(t))
	paths := svc.Revalidate("post", "my-post")

	assert.ElementsMatch(t, []string{"/blog", "/blog/my-post"}, paths)

	_, ok := cache.GetResponse("/posts")
	assert.False(t, ok)
	_, ok = cache.GetResponse("/posts?slug=my-post")
	assert.False(t, ok)
}

func TestRevalidatePostWithoutSlug(t *testing.T) {
	cache := manager.NewManager()
	svc := NewRevalidationService(cache, quietLogger(t))

	paths := svc.Revalidate("post", "")
	assert.Equal(t, []string{"/blog"}, paths)
}

func TestRevalidateHomeDecorators(t *testing.T) {
	cache := manager.NewManager()
	svc := NewRevalidationService(cache, quietLogger(t))

	assert.Equal(t, []string{"/"}, svc.Revalidate("stat", "anything"))
	assert.Equal(t, []string{"/services", "/"}, svc.Revalidate("service", "consulting"))
	assert.Equal(t, []string{"/", "/about"}, svc.Revalidate("client_logo", ""))
}

func TestRevalidateUnknownTypeIsNoOp(t *testing.T) {
	cache := manager.NewManager()
	cache.SetPage("/", "vm", time.Minute)

	svc := NewRevalidationService(cache, quietLogger(t))
	paths := svc.Revalidate("mystery_type", "whatever")

	assert.Empty(t, paths)
	_, ok := cache.GetPage("/")
	assert.True(t, ok, "unknown types must not touch the cache")
}

func TestRevalidateHomePageSlug(t *testing.T) {
	cache := manager.NewManager()
	svc := NewRevalidationService(cache, quietLogger(t))

	assert.Equal(t, []string{"/"}, svc.Revalidate("page", "home"))
}

func TestRevalidateUnknownPageSlug(t *testing.T) {
	cache := manager.NewManager()
	svc := NewRevalidationService(cache, quietLogger(t))

	assert.Empty(t, svc.Revalidate("page", "no-such-page"))
}
