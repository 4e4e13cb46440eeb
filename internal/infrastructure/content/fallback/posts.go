package fallback

import "github.com/novamark/sitebridge-go/internal/domain/entities/content"

var posts = []content.PostView{
	{
		ID:       9001,
		Slug:     "choosing-a-headless-cms",
		Title:    "Choosing a Headless CMS Without the Buyer's Remorse",
		Excerpt:  "Editorial workflow, API shape, and hosting cost matter more than the feature grid. Here is how we evaluate platforms for client builds.",
		Body:     "<p>Every headless CMS demo looks the same: a clean editor, a GraphQL playground, a deploy button. The differences show up six months in.</p><p>We start every evaluation with the editorial team, not the engineering team. If editors cannot preview a draft in context, the platform has already failed.</p>",
		Category: "Engineering",
		Date:     "Mar 12, 2025",
		ReadTime: "6 min read",
		Image:    content.PostImagePlaceholder,
	},
	{
		ID:       9002,
		Slug:     "shipping-faster-with-design-systems",
		Title:    "Shipping Faster with a Real Design System",
		Excerpt:  "A component library is not a design system. The system is the contract between design and engineering, and it pays for itself on the third project.",
		Body:     "<p>Teams adopt a component library and call it a design system. Then the second product ships with forked buttons and a new shade of blue.</p><p>The system is the governance: tokens, review, deprecation. The library is just the artifact.</p>",
		Category: "Design",
		Date:     "Feb 3, 2025",
		ReadTime: "5 min read",
		Image:    content.PostImagePlaceholder,
	},
	{
		ID:       9003,
		Slug:     "measuring-web-performance-that-matters",
		Title:    "Measuring the Web Performance That Actually Matters",
		Excerpt:  "Lab scores are a starting point. Field data from real sessions is where performance budgets earn their keep.",
		Body:     "<p>A perfect lab score on an empty cache tells you little about a returning visitor on a mid-range phone.</p><p>We set budgets on field percentiles and wire the alerts into the same channel as deploy notifications, so a regression is treated like a failing build.</p>",
		Category: "Insights",
		Date:     "Jan 8, 2025",
		ReadTime: "4 min read",
		Image:    content.PostImagePlaceholder,
	},
}

// Posts returns the static blog dataset.
func Posts() []content.PostView {
	return posts
}

// PostBySlug finds a fallback post by slug, nil when absent.
func PostBySlug(slug string) *content.PostView {
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i]
		}
	}
	return nil
}
