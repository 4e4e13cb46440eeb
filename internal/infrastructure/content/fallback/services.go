package fallback

import "github.com/novamark/sitebridge-go/internal/domain/entities/content"

var services = []content.CatalogItemView{
	{
		ID:      9201,
		Slug:    "product-engineering",
		Title:   "Product Engineering",
		Summary: "Full-stack delivery teams that take a product from concept through launch and iteration.",
		Icon:    "code",
		Features: []string{
			"Dedicated cross-functional squads",
			"Weekly shipped increments",
			"Production ownership and on-call",
		},
	},
	{
		ID:      9202,
		Slug:    "platform-modernization",
		Title:   "Platform Modernization",
		Summary: "Incremental migration of legacy systems to maintainable, observable platforms without a big-bang rewrite.",
		Icon:    "layers",
		Features: []string{
			"Strangler-pattern migration plans",
			"Zero-downtime cutovers",
			"Knowledge transfer built into every sprint",
		},
	},
	{
		ID:      9203,
		Slug:    "design-systems",
		Title:   "Design Systems",
		Summary: "Token-driven design systems that keep product, marketing, and brand shipping from one source of truth.",
		Icon:    "grid",
		Features: []string{
			"Design token pipelines",
			"Documented, versioned component libraries",
			"Adoption playbooks for product teams",
		},
	},
	{
		ID:      9204,
		Slug:    "managed-delivery",
		Title:   "Managed Delivery",
		Summary: "Ongoing feature delivery, maintenance, and SLO-backed support for products we build or inherit.",
		Icon:    "shield",
		Features: []string{
			"SLO-backed response times",
			"Quarterly roadmap planning",
			"Security patching and dependency care",
		},
	},
}

// Services returns the static services dataset.
func Services() []content.CatalogItemView {
	return services
}
