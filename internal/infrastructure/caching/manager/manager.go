// Package manager combines the cache stores behind the single Cache interface.
package manager

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/interfaces"
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/stores"
)

// Manager owns the response and page stores and tracks lookup counters.
type Manager struct {
	responses *stores.ResponseStore
	pages     *stores.PageStore

	hits   atomic.Int64
	misses atomic.Int64
}

// Compile-time check that Manager satisfies the combined Cache contract.
var _ interfaces.Cache = (*Manager)(nil)

// NewManager creates a cache manager with empty stores.
func NewManager() *Manager {
	return &Manager{
		responses: stores.NewResponseStore(),
		pages:     stores.NewPageStore(),
	}
}

// GetResponse retrieves a cached upstream response body.
func (m *Manager) GetResponse(endpoint string) (json.RawMessage, bool) {
	body, ok := m.responses.Get(endpoint)
	m.count(ok)
	return body, ok
}

// SetResponse stores an upstream response body with TTL and tags.
func (m *Manager) SetResponse(endpoint string, body json.RawMessage, ttl time.Duration, tags []string) {
	m.responses.Set(endpoint, body, ttl, tags)
}

// InvalidateEndpoint removes a single cached upstream response.
func (m *Manager) InvalidateEndpoint(endpoint string) {
	m.responses.InvalidateEndpoint(endpoint)
}

// InvalidateTag removes every cached upstream response carrying the tag.
func (m *Manager) InvalidateTag(tag string) int {
	return m.responses.InvalidateTag(tag)
}

// GetPage retrieves an assembled page view-model by route path.
func (m *Manager) GetPage(path string) (any, bool) {
	vm, ok := m.pages.Get(path)
	m.count(ok)
	return vm, ok
}

// SetPage stores an assembled page view-model under its route path.
func (m *Manager) SetPage(path string, viewModel any, ttl time.Duration) {
	m.pages.Set(path, viewModel, ttl)
}

// InvalidatePath removes a single cached page view-model.
func (m *Manager) InvalidatePath(path string) bool {
	return m.pages.InvalidatePath(path)
}

// PurgeExpired removes all expired entries across stores.
func (m *Manager) PurgeExpired() int {
	return m.responses.PurgeExpired() + m.pages.PurgeExpired()
}

// InvalidateAll clears both stores.
func (m *Manager) InvalidateAll() {
	m.responses.Clear()
	m.pages.Clear()
}

// Stats returns lookup counters and live entry counts.
func (m *Manager) Stats() interfaces.CacheStats {
	return interfaces.CacheStats{
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Responses: m.responses.Len(),
		Pages:     m.pages.Len(),
	}
}

// Health reports cache status for the health endpoint.
func (m *Manager) Health() map[string]any {
	stats := m.Stats()
	return map[string]any{
		"status":    "ok",
		"hits":      stats.Hits,
		"misses":    stats.Misses,
		"responses": stats.Responses,
		"pages":     stats.Pages,
		"checkedAt": time.Now().UTC().Format(time.RFC3339),
	}
}

func (m *Manager) count(hit bool) {
	if hit {
		m.hits.Add(1)
		return
	}
	m.misses.Add(1)
}
