package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestACFFieldsAccessors(t *testing.T) {
	fields := ACFFields{
		"headline":      "Ship faster",
		"empty":         "",
		"order_float":   float64(3),
		"order_int":     7,
		"order_string":  "12",
		"display_order": float64(5),
	}

	assert.Equal(t, "Ship faster", fields.String("headline", "fallback"))
	assert.Equal(t, "fallback", fields.String("missing", "fallback"))
	assert.Equal(t, "fallback", fields.String("empty", "fallback"))
	assert.Equal(t, "fallback", fields.String("order_int", "fallback"))

	assert.Equal(t, 3, fields.Int("order_float", -1))
	assert.Equal(t, 7, fields.Int("order_int", -1))
	assert.Equal(t, -1, fields.Int("order_string", -1))
	assert.Equal(t, -1, fields.Int("missing", -1))

	assert.Equal(t, 5, fields.DisplayOrder())
	assert.Equal(t, 0, ACFFields{}.DisplayOrder())
	assert.Equal(t, 0, ACFFields(nil).DisplayOrder())
	assert.Equal(t, "fallback", ACFFields(nil).String("any", "fallback"))
}

func TestSortByDisplayOrder(t *testing.T) {
	items := []CollectionItem{
		{ID: 1, ACF: ACFFields{"display_order": float64(2)}},
		{ID: 2},
		{ID: 3, ACF: ACFFields{"display_order": float64(1)}},
		{ID: 4, ACF: ACFFields{"display_order": float64(1)}},
		{ID: 5, ACF: ACFFields{"display_order": float64(0)}},
	}

	SortByDisplayOrder(items)

	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	// Missing and zero orders lead, ties keep response order.
	assert.Equal(t, []int{2, 5, 3, 4, 1}, ids)
}

func TestCategoryName(t *testing.T) {
	item := CollectionItem{
		Embedded: &Embedded{
			Terms: [][]EmbeddedTerm{
				{{ID: 1, Name: "react", Taxonomy: "post_tag"}},
				{{ID: 2, Name: "Engineering", Taxonomy: "category"}},
			},
		},
	}

	assert.Equal(t, "Engineering", item.CategoryName("Insights"))

	bare := CollectionItem{}
	assert.Equal(t, "Insights", bare.CategoryName("Insights"))

	tagsOnly := CollectionItem{
		Embedded: &Embedded{
			Terms: [][]EmbeddedTerm{{{ID: 1, Name: "react", Taxonomy: "post_tag"}}},
		},
	}
	assert.Equal(t, "Insights", tagsOnly.CategoryName("Insights"))
}

func TestFeaturedImageURL(t *testing.T) {
	item := CollectionItem{
		Embedded: &Embedded{
			FeaturedMedia: []EmbeddedMedia{{ID: 9, SourceURL: "https://cms.example.com/img.jpg"}},
		},
	}

	assert.Equal(t, "https://cms.example.com/img.jpg", item.FeaturedImageURL("/placeholder.svg"))

	bare := CollectionItem{}
	assert.Equal(t, "/placeholder.svg", bare.FeaturedImageURL("/placeholder.svg"))

	emptyURL := CollectionItem{Embedded: &Embedded{FeaturedMedia: []EmbeddedMedia{{ID: 9}}}}
	assert.Equal(t, "/placeholder.svg", emptyURL.FeaturedImageURL("/placeholder.svg"))
}
