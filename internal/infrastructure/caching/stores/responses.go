// Package stores provides concrete cache store implementations
package stores

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/types"
)

// ResponseStore caches upstream CMS response bodies keyed by endpoint, with
// TTL expiry on read and tag-based invalidation.
type ResponseStore struct {
	entries map[string]*types.CachedResponse
	mu      sync.RWMutex
}

// NewResponseStore creates an empty response store
func NewResponseStore() *ResponseStore {
	return &ResponseStore{
		entries: make(map[string]*types.CachedResponse),
	}
}

// Get retrieves a cached response body; expired entries miss.
func (rs *ResponseStore) Get(endpoint string) (json.RawMessage, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	entry, exists := rs.entries[endpoint]
	if !exists || entry.Expired(time.Now().UTC()) {
		return nil, false
	}
	return entry.Body, true
}

// Set stores a response body under its endpoint with the given TTL and tags.
func (rs *ResponseStore) Set(endpoint string, body json.RawMessage, ttl time.Duration, tags []string) {
	now := time.Now().UTC()

	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.entries[endpoint] = &types.CachedResponse{
		Endpoint:  endpoint,
		Body:      body,
		Tags:      tags,
		StoredAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// InvalidateEndpoint removes a single cached response. Removing an absent
// endpoint is a no-op.
func (rs *ResponseStore) InvalidateEndpoint(endpoint string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.entries, endpoint)
}

// InvalidateTag removes every entry registered under the tag and returns the
// number of entries removed.
func (rs *ResponseStore) InvalidateTag(tag string) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	removed := 0
	for endpoint, entry := range rs.entries {
		if entry.HasTag(tag) {
			delete(rs.entries, endpoint)
			removed++
		}
	}
	return removed
}

// PurgeExpired removes entries whose TTL has elapsed and returns the count.
func (rs *ResponseStore) PurgeExpired() int {
	now := time.Now().UTC()

	rs.mu.Lock()
	defer rs.mu.Unlock()

	removed := 0
	for endpoint, entry := range rs.entries {
		if entry.Expired(now) {
			delete(rs.entries, endpoint)
			removed++
		}
	}
	return removed
}

// Len returns the number of live entries.
func (rs *ResponseStore) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.entries)
}

// Clear removes all entries.
func (rs *ResponseStore) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.entries = make(map[string]*types.CachedResponse)
}
