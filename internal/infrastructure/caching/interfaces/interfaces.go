// Package interfaces defines cache operation contracts for the content gateway.
package interfaces

import (
	"encoding/json"
	"time"
)

// ResponseCache defines operations for caching upstream CMS responses with
// tag-based invalidation.
type ResponseCache interface {
	GetResponse(endpoint string) (json.RawMessage, bool)
	SetResponse(endpoint string, body json.RawMessage, ttl time.Duration, tags []string)
	InvalidateEndpoint(endpoint string)
	InvalidateTag(tag string) int
}

// PageCache defines operations for caching assembled page view-models with
// path-based invalidation.
type PageCache interface {
	GetPage(path string) (any, bool)
	SetPage(path string, viewModel any, ttl time.Duration)
	InvalidatePath(path string) bool
}

// Cache is the main interface that combines all cache operations
type Cache interface {
	ResponseCache
	PageCache
	PurgeExpired() int
	InvalidateAll()
	Stats() CacheStats
	Health() map[string]any
}

// CacheStats summarizes lookup counters and entry counts across the stores.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Responses int   `json:"responses"`
	Pages     int   `json:"pages"`
}
