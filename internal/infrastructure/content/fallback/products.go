package fallback

import "github.com/novamark/sitebridge-go/internal/domain/entities/content"

var products = []content.CatalogItemView{
	{
		ID:      9101,
		Slug:    "pulseboard",
		Title:   "Pulseboard",
		Summary: "A real-time operations dashboard that pulls KPIs from your existing tools into one shared view.",
		Icon:    "activity",
		Features: []string{
			"Live metric streaming from 40+ integrations",
			"Shared annotations and incident timelines",
			"Role-based views for exec, ops, and engineering",
		},
	},
	{
		ID:      9102,
		Slug:    "formkit-pro",
		Title:   "FormKit Pro",
		Summary: "Embeddable, accessible form flows with built-in validation, routing, and CRM sync.",
		Icon:    "clipboard",
		Features: []string{
			"WCAG 2.2 AA compliant out of the box",
			"Conditional logic without code",
			"Native HubSpot and Salesforce sync",
		},
	},
	{
		ID:      9103,
		Slug:    "relaymail",
		Title:   "RelayMail",
		Summary: "Transactional email infrastructure with template previews and deliverability monitoring.",
		Icon:    "mail",
		Features: []string{
			"Versioned templates with visual diff",
			"Per-domain deliverability scoring",
			"Webhook event stream for every send",
		},
	},
}

// Products returns the static product dataset.
func Products() []content.CatalogItemView {
	return products
}
