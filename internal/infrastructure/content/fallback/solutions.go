package fallback

import "github.com/novamark/sitebridge-go/internal/domain/entities/content"

var solutions = []content.CatalogItemView{
	{
		ID:      9301,
		Slug:    "headless-commerce",
		Title:   "Headless Commerce",
		Summary: "Composable storefronts that separate merchandising from presentation so both teams can move independently.",
		Icon:    "shopping-cart",
		Features: []string{
			"Sub-second product page loads",
			"CMS-driven merchandising",
			"Checkout A/B testing without redeploys",
		},
	},
	{
		ID:      9302,
		Slug:    "customer-portals",
		Title:   "Customer Portals",
		Summary: "Self-service portals that cut support volume by letting customers manage accounts, billing, and requests directly.",
		Icon:    "users",
		Features: []string{
			"Single sign-on with your identity provider",
			"Billing and subscription management",
			"Ticketing integrated with your help desk",
		},
	},
	{
		ID:      9303,
		Slug:    "content-platforms",
		Title:   "Content Platforms",
		Summary: "Editorial platforms where marketing publishes daily without an engineering ticket in sight.",
		Icon:    "file-text",
		Features: []string{
			"Headless CMS with live preview",
			"Structured content modeling",
			"Instant cache invalidation on publish",
		},
	},
}

// Solutions returns the static solutions dataset.
func Solutions() []content.CatalogItemView {
	return solutions
}
