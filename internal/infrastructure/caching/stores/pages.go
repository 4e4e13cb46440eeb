package stores

import (
	"sync"
	"time"

	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/types"
)

// PageStore caches assembled page view-models keyed by route path.
type PageStore struct {
	entries map[string]*types.CachedPage
	mu      sync.RWMutex
}

// NewPageStore creates an empty page store
func NewPageStore() *PageStore {
	return &PageStore{
		entries: make(map[string]*types.CachedPage),
	}
}

// Get retrieves a cached view-model; expired entries miss.
func (ps *PageStore) Get(path string) (any, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	entry, exists := ps.entries[path]
	if !exists || entry.Expired(time.Now().UTC()) {
		return nil, false
	}
	return entry.ViewModel, true
}

// Set stores a view-model under its route path with the given TTL.
func (ps *PageStore) Set(path string, viewModel any, ttl time.Duration) {
	now := time.Now().UTC()

	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.entries[path] = &types.CachedPage{
		Path:      path,
		ViewModel: viewModel,
		StoredAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// InvalidatePath removes a single cached page, reporting whether an entry
// was present. Invalidating an absent path is a no-op.
func (ps *PageStore) InvalidatePath(path string) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	_, existed := ps.entries[path]
	delete(ps.entries, path)
	return existed
}

// PurgeExpired removes entries whose TTL has elapsed and returns the count.
func (ps *PageStore) PurgeExpired() int {
	now := time.Now().UTC()

	ps.mu.Lock()
	defer ps.mu.Unlock()

	removed := 0
	for path, entry := range ps.entries {
		if entry.Expired(now) {
			delete(ps.entries, path)
			removed++
		}
	}
	return removed
}

// Len returns the number of live entries.
func (ps *PageStore) Len() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return len(ps.entries)
}

// Clear removes all entries.
func (ps *PageStore) Clear() {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.entries = make(map[string]*types.CachedPage)
}
