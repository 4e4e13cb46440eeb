// Package wordpress implements the CMS content fetcher and the per-entity
// repositories on top of the WordPress REST API.
package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/infrastructure/caching/interfaces"
	"github.com/novamark/sitebridge-go/internal/infrastructure/observability/logging"
)

// Client fetches CMS resources with a declared cache lifetime and tag set.
// Every failure resolves to nil; callers treat nil as "unavailable" and
// degrade, never crash a page render.
type Client struct {
	baseURL string
	http    *http.Client
	cache   interfaces.ResponseCache
	logger  *logging.ChanneledLogger
}

// NewClient creates a CMS client against the given API base URL.
func NewClient(baseURL string, timeout time.Duration, cache interfaces.ResponseCache, logger *logging.ChanneledLogger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
		logger:  logger,
	}
}

// Fetch returns the JSON body for a relative API endpoint, serving from the
// response cache within the TTL window. Network errors and non-2xx statuses
// are logged and resolved to nil.
func (c *Client) Fetch(ctx context.Context, endpoint string, ttl time.Duration, tags []string) json.RawMessage {
	if body, ok := c.cache.GetResponse(endpoint); ok {
		return body
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		c.logger.LogUpstreamFetch(endpoint, 0, time.Since(start), err)
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.LogUpstreamFetch(endpoint, 0, time.Since(start), err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.LogUpstreamFetch(endpoint, resp.StatusCode, time.Since(start),
			fmt.Errorf("unexpected status %d", resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.LogUpstreamFetch(endpoint, resp.StatusCode, time.Since(start), err)
		return nil
	}

	c.cache.SetResponse(endpoint, body, ttl, tags)
	c.logger.LogUpstreamFetch(endpoint, resp.StatusCode, time.Since(start), nil)
	return body
}

// FetchItems fetches and decodes a collection endpoint. A nil body or a
// payload that is not a JSON array resolves to nil.
func (c *Client) FetchItems(ctx context.Context, endpoint string, ttl time.Duration, tags []string) []content.CollectionItem {
	body := c.Fetch(ctx, endpoint, ttl, tags)
	if body == nil {
		return nil
	}

	var items []content.CollectionItem
	if err := json.Unmarshal(body, &items); err != nil {
		c.logger.Upstream().Error("Failed to decode collection payload",
			"endpoint", endpoint, "error", err.Error())
		return nil
	}
	return items
}
