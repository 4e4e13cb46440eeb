package fallback

import "github.com/novamark/sitebridge-go/internal/domain/entities/content"

var industries = []content.CatalogItemView{
	{
		ID:      9401,
		Slug:    "fintech",
		Title:   "Fintech",
		Summary: "Compliant, audited product delivery for payments, lending, and wealth platforms.",
		Icon:    "credit-card",
		Features: []string{
			"SOC 2 aligned delivery practices",
			"Audit trails on every data path",
			"PCI-scoped architecture reviews",
		},
	},
	{
		ID:      9402,
		Slug:    "healthcare",
		Title:   "Healthcare",
		Summary: "Patient-facing products and internal tooling built around privacy and interoperability.",
		Icon:    "heart",
		Features: []string{
			"HIPAA-conscious data handling",
			"FHIR and HL7 integrations",
			"Accessibility as a first-class requirement",
		},
	},
	{
		ID:      9403,
		Slug:    "logistics",
		Title:   "Logistics",
		Summary: "Tracking, routing, and exception-handling systems for fleets and fulfillment networks.",
		Icon:    "truck",
		Features: []string{
			"Real-time shipment visibility",
			"Carrier API integrations",
			"Exception workflows that cut manual triage",
		},
	},
	{
		ID:      9404,
		Slug:    "saas",
		Title:   "SaaS",
		Summary: "Product acceleration for B2B software teams, from onboarding flows to usage-based billing.",
		Icon:    "cloud",
		Features: []string{
			"Activation funnel instrumentation",
			"Usage metering and billing integration",
			"Multi-tenant architecture reviews",
		},
	},
}

// Industries returns the static industries dataset.
func Industries() []content.CatalogItemView {
	return industries
}
