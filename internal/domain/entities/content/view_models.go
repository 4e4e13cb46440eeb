package content

import "time"

// Placeholder and default values applied while shaping view-models.
const (
	DefaultPostCategory = "Insights"
	DefaultReadTime     = "5 min read"
	PostImagePlaceholder = "/images/blog-placeholder.svg"

	postDateFormat = "Jan 2, 2006"
)

// PageFields is a resolved ContentPage field map: every key the route needs
// is present, either from the CMS or from the built-in default.
type PageFields map[string]string

// PostView is the normalized blog post handed to presentation. Body is
// pass-through rich text; every other field is decoded plain text.
type PostView struct {
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Image    string `json:"image"`
}

// CatalogItemView is the normalized shape shared by products, services,
// solutions, and industries.
type CatalogItemView struct {
	ID       int      `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Icon     string   `json:"icon"`
	Features []string `json:"features"`
}

type StatView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StepView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQView struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TestimonialView struct {
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

type LogoView struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type PositionView struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type BenefitView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type OfficeView struct {
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type DepartmentView struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

type ValuePropView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Per-route assembled view-models.

type HomeView struct {
	Page         PageFields        `json:"page"`
	Stats        []StatView        `json:"stats"`
	Products     []CatalogItemView `json:"products"`
	Steps        []StepView        `json:"steps"`
	ProcessSteps []StepView        `json:"processSteps"`
	FAQs         []FAQView         `json:"faqs"`
	Logos        []LogoView        `json:"logos"`
}

type AboutView struct {
	Page        PageFields       `json:"page"`
	Departments []DepartmentView `json:"departments"`
	ValueProps  []ValuePropView  `json:"valueProps"`
	Logos       []LogoView       `json:"logos"`
}

type ListingView struct {
	Page  PageFields        `json:"page"`
	Items []CatalogItemView `json:"items"`
}

type ProductsView struct {
	Page         PageFields        `json:"page"`
	Items        []CatalogItemView `json:"items"`
	Testimonials []TestimonialView `json:"testimonials"`
}

type BlogView struct {
	Page  PageFields `json:"page"`
	Posts []PostView `json:"posts"`
}

type CareersView struct {
	Page      PageFields     `json:"page"`
	Positions []PositionView `json:"positions"`
	Benefits  []BenefitView  `json:"benefits"`
}

type ContactView struct {
	Page    PageFields   `json:"page"`
	Offices []OfficeView `json:"offices"`
}

// PostViewFromItem shapes a raw CMS post into its normalized view-model.
func PostViewFromItem(item CollectionItem) PostView {
	return PostView{
		ID:       item.ID,
		Slug:     item.Slug,
		Title:    DecodeEntities(item.Title.Rendered),
		Excerpt:  StripTags(item.Excerpt.Rendered),
		Body:     item.Content.Rendered,
		Category: item.CategoryName(DefaultPostCategory),
		Date:     formatPostDate(item.Date),
		ReadTime: item.ACF.String("read_time", DefaultReadTime),
		Image:    item.FeaturedImageURL(PostImagePlaceholder),
	}
}

// CatalogItemViewFromItem shapes a raw product/service/solution/industry
// item into the shared catalog view-model.
func CatalogItemViewFromItem(item CollectionItem) CatalogItemView {
	return CatalogItemView{
		ID:       item.ID,
		Slug:     item.Slug,
		Title:    DecodeEntities(item.Title.Rendered),
		Summary:  StripTags(item.ACF.String("summary", "")),
		Icon:     item.ACF.String("icon", ""),
		Features: ParseLines(item.ACF.String("features", "")),
	}
}

func StatViewFromItem(item CollectionItem) StatView {
	return StatView{
		Label: DecodeEntities(item.Title.Rendered),
		Value: item.ACF.String("value", ""),
	}
}

func StepViewFromItem(item CollectionItem) StepView {
	return StepView{
		Title:       DecodeEntities(item.Title.Rendered),
		Description: StripTags(item.ACF.String("description", "")),
	}
}

func FAQViewFromItem(item CollectionItem) FAQView {
	return FAQView{
		Question: DecodeEntities(item.Title.Rendered),
		Answer:   StripTags(item.ACF.String("answer", "")),
	}
}

func TestimonialViewFromItem(item CollectionItem) TestimonialView {
	return TestimonialView{
		Quote:   StripTags(item.ACF.String("quote", "")),
		Author:  DecodeEntities(item.Title.Rendered),
		Role:    item.ACF.String("role", ""),
		Company: item.ACF.String("company", ""),
	}
}

func LogoViewFromItem(item CollectionItem) LogoView {
	return LogoView{
		Name:  DecodeEntities(item.Title.Rendered),
		Image: item.ACF.String("logo_url", ""),
	}
}

func PositionViewFromItem(item CollectionItem) PositionView {
	return PositionView{
		Title:       DecodeEntities(item.Title.Rendered),
		Location:    item.ACF.String("location", "Remote"),
		Type:        item.ACF.String("employment_type", "Full-time"),
		Description: StripTags(item.ACF.String("description", "")),
	}
}

func BenefitViewFromItem(item CollectionItem) BenefitView {
	return BenefitView{
		Title:       DecodeEntities(item.Title.Rendered),
		Description: StripTags(item.ACF.String("description", "")),
		Icon:        item.ACF.String("icon", ""),
	}
}

func OfficeViewFromItem(item CollectionItem) OfficeView {
	return OfficeView{
		City:    DecodeEntities(item.Title.Rendered),
		Address: item.ACF.String("address", ""),
		Phone:   item.ACF.String("phone", ""),
		Email:   item.ACF.String("email", ""),
	}
}

func DepartmentViewFromItem(item CollectionItem) DepartmentView {
	return DepartmentView{
		Name:        DecodeEntities(item.Title.Rendered),
		Description: StripTags(item.ACF.String("description", "")),
		Members:     ParseLines(item.ACF.String("team_members", "")),
	}
}

func ValuePropViewFromItem(item CollectionItem) ValuePropView {
	return ValuePropView{
		Title:       DecodeEntities(item.Title.Rendered),
		Description: StripTags(item.ACF.String("description", "")),
		Icon:        item.ACF.String("icon", ""),
	}
}

// formatPostDate renders the CMS timestamp for listing display; unparseable
// input passes through untouched.
func formatPostDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(postDateFormat)
		}
	}
	return raw
}
