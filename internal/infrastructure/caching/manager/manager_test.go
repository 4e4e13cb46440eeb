package manager

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCacheRoundTrip(t *testing.T) {
	m := NewManager()

	body := json.RawMessage(`[{"id":1}]`)
	m.SetResponse("/stats", body, time.Minute, []string{"stats"})

	got, ok := m.GetResponse("/stats")
	require.True(t, ok)
	assert.Equal(t, body, got)

	_, ok = m.GetResponse("/unknown")
	assert.False(t, ok)

	m.InvalidateEndpoint("/stats")
	_, ok = m.GetResponse("/stats")
	assert.False(t, ok)
}

func TestResponseCacheTTLExpiry(t *testing.T) {
	m := NewManager()

	m.SetResponse("/stats", json.RawMessage(`[]`), -time.Second, []string{"stats"})

	_, ok := m.GetResponse("/stats")
	assert.False(t, ok, "expired entries must miss on read")
}

func TestInvalidateTag(t *testing.T) {
	m := NewManager()

	m.SetResponse("/posts", json.RawMessage(`[]`), time.Minute, []string{"blog-posts"})
	m.SetResponse("/posts?slug=a", json.RawMessage(`[]`), time.Minute, []string{"blog-posts", "post-a"})
	m.SetResponse("/stats", json.RawMessage(`[]`), time.Minute, []string{"stats"})

	assert.Equal(t, 2, m.InvalidateTag("blog-posts"))

	_, ok := m.GetResponse("/posts")
	assert.False(t, ok)
	_, ok = m.GetResponse("/posts?slug=a")
	assert.False(t, ok)
	_, ok = m.GetResponse("/stats")
	assert.True(t, ok, "untagged entries survive")

	// Idempotent: the tag is already gone.
	assert.Equal(t, 0, m.InvalidateTag("blog-posts"))
	assert.Equal(t, 0, m.InvalidateTag("never-existed"))
}

func TestPageCacheRoundTrip(t *testing.T) {
	m := NewManager()

	type view struct{ Title string }
	m.SetPage("/about", view{Title: "About"}, time.Minute)

	got, ok := m.GetPage("/about")
	require.True(t, ok)
	assert.Equal(t, view{Title: "About"}, got)

	assert.True(t, m.InvalidatePath("/about"))
	_, ok = m.GetPage("/about")
	assert.False(t, ok)

	// Idempotent: absent paths are a no-op.
	assert.False(t, m.InvalidatePath("/about"))
	assert.False(t, m.InvalidatePath("/never-cached"))
}

func TestPageCacheTTLExpiry(t *testing.T) {
	m := NewManager()

	m.SetPage("/", "stale", -time.Second)

	_, ok := m.GetPage("/")
	assert.False(t, ok)
}

func TestPurgeExpired(t *testing.T) {
	m := NewManager()

	m.SetResponse("/fresh", json.RawMessage(`[]`), time.Minute, nil)
	m.SetResponse("/stale", json.RawMessage(`[]`), -time.Second, nil)
	m.SetPage("/fresh", "vm", time.Minute)
	m.SetPage("/stale", "vm", -time.Second)

	assert.Equal(t, 2, m.PurgeExpired())

	stats := m.Stats()
	assert.Equal(t, 1, stats.Responses)
	assert.Equal(t, 1, stats.Pages)
}

func TestStatsCounters(t *testing.T) {
	m := NewManager()

	m.SetResponse("/stats", json.RawMessage(`[]`), time.Minute, nil)
	m.GetResponse("/stats")
	m.GetResponse("/missing")
	m.GetPage("/missing")

	stats := m.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}

func TestInvalidateAll(t *testing.T) {
	m := NewManager()

	m.SetResponse("/a", json.RawMessage(`[]`), time.Minute, nil)
	m.SetPage("/a", "vm", time.Minute)

	m.InvalidateAll()

	stats := m.Stats()
	assert.Equal(t, 0, stats.Responses)
	assert.Equal(t, 0, stats.Pages)
}

func TestHealth(t *testing.T) {
	m := NewManager()

	health := m.Health()
	assert.Equal(t, "ok", health["status"])
	assert.Contains(t, health, "hits")
	assert.Contains(t, health, "checkedAt")
}
