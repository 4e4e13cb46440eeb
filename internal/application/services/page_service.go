// Package services provides application-level services that orchestrate
// content resolution between the CMS repositories and the presentation layer.
package services

import (
	"context"

	"github.com/novamark/sitebridge-go/internal/domain/entities/content"
	"github.com/novamark/sitebridge-go/internal/domain/repositories"
)

// pageFieldDefaults holds the built-in value for every ContentPage field a
// route reads. A field missing from the CMS payload resolves here; required
// fields never reach presentation unset.
var pageFieldDefaults = map[string]content.PageFields{
	"home": {
		"hero_title":       "Software that moves your business forward",
		"hero_subtitle":    "Novamark designs and builds digital products for companies that can't afford to ship slowly.",
		"cta_text":         "Start a project",
		"cta_link":         "/contact",
		"stats_heading":    "Results that compound",
		"products_heading": "Products we build and run",
		"steps_heading":    "How engagements work",
		"process_heading":  "Our delivery process",
		"faq_heading":      "Frequently asked questions",
		"logos_heading":    "Trusted by teams at",
	},
	"about": {
		"hero_title":          "Built by people who ship",
		"hero_subtitle":       "We are a distributed team of engineers, designers, and strategists.",
		"values_heading":      "What we value",
		"departments_heading": "The team",
	},
	"services": {
		"hero_title":    "Services",
		"hero_subtitle": "From first commit to long-term operation.",
	},
	"solutions": {
		"hero_title":    "Solutions",
		"hero_subtitle": "Proven patterns for the problems we see most.",
	},
	"products": {
		"hero_title":           "Products",
		"hero_subtitle":        "Tools we build, run, and stand behind.",
		"testimonials_heading": "What customers say",
	},
	"industries": {
		"hero_title":    "Industries",
		"hero_subtitle": "Domain depth where it matters.",
	},
	"blog": {
		"hero_title":    "Blog",
		"hero_subtitle": "Notes from the team on building software that lasts.",
	},
	"careers": {
		"hero_title":        "Careers",
		"hero_subtitle":     "Do the best work of your career, remotely.",
		"positions_heading": "Open positions",
		"benefits_heading":  "Why work here",
	},
	"contact": {
		"hero_title":    "Get in touch",
		"hero_subtitle": "Tell us about your project and we'll reply within one business day.",
		"form_heading":  "Send us a message",
	},
}

// PageService resolves ContentPage field bags with built-in defaults.
type PageService struct {
	repo repositories.PageRepository
}

// NewPageService creates a new page application service
func NewPageService(repo repositories.PageRepository) *PageService {
	return &PageService{repo: repo}
}

// Resolve returns the field map for a page slug. CMS-provided fields win
// over defaults; entity-encoded values are decoded before use. A CMS outage
// yields the full default set.
func (s *PageService) Resolve(ctx context.Context, slug string) content.PageFields {
	fields := make(content.PageFields)
	for key, def := range pageFieldDefaults[slug] {
		fields[key] = def
	}

	item := s.repo.FindPage(ctx, slug)
	if item == nil {
		return fields
	}

	for key, value := range item.ACF {
		if str, ok := value.(string); ok && str != "" {
			fields[key] = content.DecodeEntities(str)
		}
	}
	return fields
}

// KnownSlugs lists the page slugs the gateway can assemble.
func KnownSlugs() []string {
	slugs := make([]string, 0, len(pageFieldDefaults))
	for slug := range pageFieldDefaults {
		slugs = append(slugs, slug)
	}
	return slugs
}
