// Package fallback holds the statically authored editorial content used when
// the live CMS collection for a type is empty. Datasets are substituted
// wholesale, never merged item-by-item with live data.
package fallback

import "github.com/novamark/sitebridge-go/internal/domain/entities/content"

// CatalogItemBySlug finds a fallback catalog item by slug, nil when absent.
func CatalogItemBySlug(items []content.CatalogItemView, slug string) *content.CatalogItemView {
	for i := range items {
		if items[i].Slug == slug {
			return &items[i]
		}
	}
	return nil
}
