// Package types defines the cache entry shapes shared by the cache stores.
package types

import (
	"encoding/json"
	"time"
)

// CachedResponse holds one upstream CMS response body together with the
// cache tags it was registered under.
type CachedResponse struct {
	Endpoint  string
	Body      json.RawMessage
	Tags      []string
	StoredAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the entry's TTL has elapsed.
func (r *CachedResponse) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// HasTag reports whether the entry was registered under the given tag.
func (r *CachedResponse) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CachedPage holds one assembled page view-model keyed by its route path.
type CachedPage struct {
	Path      string
	ViewModel any
	StoredAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the entry's TTL has elapsed.
func (p *CachedPage) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
