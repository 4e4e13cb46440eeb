// Package content defines the CMS content entities and the normalized
// view-models handed to the presentation layer.
package content

import "sort"

// RenderedText is the WordPress rich-text envelope.
type RenderedText struct {
	Rendered string `json:"rendered"`
}

// ACFFields is the arbitrary editor-defined field map attached to every
// content item. Fields are optional; consumers read through the typed
// accessors and supply explicit defaults.
type ACFFields map[string]any

// String returns the field as a string, or def when absent, empty, or not a
// string.
func (f ACFFields) String(key, def string) string {
	if f == nil {
		return def
	}
	if v, ok := f[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Int returns the field as an int, or def when absent or not numeric. JSON
// numbers arrive as float64; numeric strings are not coerced.
func (f ACFFields) Int(key string, def int) int {
	if f == nil {
		return def
	}
	switch v := f[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// DisplayOrder returns the editor-controlled ordering key, 0 when missing.
func (f ACFFields) DisplayOrder() int {
	return f.Int("display_order", 0)
}

// EmbeddedTerm is a taxonomy term delivered via the _embed directive.
type EmbeddedTerm struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Taxonomy string `json:"taxonomy"`
}

// EmbeddedMedia is a featured-media record delivered via the _embed directive.
type EmbeddedMedia struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

// Embedded carries the expanded relations of a collection item.
type Embedded struct {
	Terms         [][]EmbeddedTerm `json:"wp:term"`
	FeaturedMedia []EmbeddedMedia  `json:"wp:featuredmedia"`
}

// CollectionItem is the raw shape of one CMS item as returned by the REST
// API. Title and excerpt text is HTML-entity-encoded until normalized.
type CollectionItem struct {
	ID       int          `json:"id"`
	Slug     string       `json:"slug,omitempty"`
	Date     string       `json:"date,omitempty"`
	Title    RenderedText `json:"title"`
	Content  RenderedText `json:"content"`
	Excerpt  RenderedText `json:"excerpt"`
	ACF      ACFFields    `json:"acf"`
	Embedded *Embedded    `json:"_embedded,omitempty"`
}

// CategoryName resolves the item's first category term, or def when the
// embed carries none.
func (i *CollectionItem) CategoryName(def string) string {
	if i.Embedded == nil {
		return def
	}
	for _, group := range i.Embedded.Terms {
		for _, term := range group {
			if term.Taxonomy == "category" && term.Name != "" {
				return term.Name
			}
		}
	}
	return def
}

// FeaturedImageURL resolves the item's featured media URL, or def when the
// embed carries none.
func (i *CollectionItem) FeaturedImageURL(def string) string {
	if i.Embedded == nil || len(i.Embedded.FeaturedMedia) == 0 {
		return def
	}
	if url := i.Embedded.FeaturedMedia[0].SourceURL; url != "" {
		return url
	}
	return def
}

// SortByDisplayOrder orders items ascending by acf.display_order (missing
// treated as 0). The sort is stable so ties keep CMS response order.
func SortByDisplayOrder(items []CollectionItem) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].ACF.DisplayOrder() < items[b].ACF.DisplayOrder()
	})
}
