// Package catalog holds the clinic's fixed list of services and the filter
// used by the services page.
package catalog

// Category groups services on the services page.
type Category string

const (
	CategoryAll          Category = "All"
	CategoryCosmetic     Category = "Cosmetic"
	CategoryGeneral      Category = "General"
	CategoryOrthodontics Category = "Orthodontics"
	CategoryRestorative  Category = "Restorative"
	CategoryEmergency    Category = "Emergency"
)

var categories = []Category{
	CategoryAll,
	CategoryCosmetic,
	CategoryGeneral,
	CategoryOrthodontics,
	CategoryRestorative,
	CategoryEmergency,
}

// Categories returns the filter pills in display order, "All" first.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches a query value against the known categories
// case-insensitively.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range categories {
		if equalFold(string(c), raw) {
			return c, true
		}
	}
	return CategoryAll, false
}

// Record is one offered service. Badge is empty when the card has none.
type Record struct {
	Icon        string
	Category    Category
	Title       string
	Description string
	Duration    string
	Price       string
	Badge       string
}

// HasBadge reports whether the card shows a badge.
func (r Record) HasBadge() bool {
	return r.Badge != ""
}

var services = []Record{
	{
		Icon:        "diamond",
		Category:    CategoryCosmetic,
		Title:       "Teeth Whitening",
		Description: "Professional-grade whitening for a brighter, whiter smile in a single session.",
		Duration:    "60 min",
		Price:       "₹3,500+",
		Badge:       "🔥 Popular",
	},
	{
		Icon:        "face_retouching_natural",
		Category:    CategoryCosmetic,
		Title:       "Dental Veneers",
		Description: "Ultra-thin porcelain shells bonded to the front surface to perfect smile aesthetics.",
		Duration:    "2 visits",
		Price:       "₹8,000+/tooth",
		Badge:       "✨ Premium",
	},
	{
		Icon:        "straighten",
		Category:    CategoryOrthodontics,
		Title:       "Braces & Aligners",
		Description: "Traditional braces and clear aligner options for all ages.",
		Duration:    "12–18 months",
		Price:       "₹25,000+",
	},
	{
		Icon:        "local_hospital",
		Category:    CategoryGeneral,
		Title:       "Preventative Care",
		Description: "Regular cleanings, fluoride treatments & comprehensive oral exams.",
		Duration:    "45 min",
		Price:       "₹800+",
		Badge:       "💡 Recommended",
	},
	{
		Icon:        "healing",
		Category:    CategoryRestorative,
		Title:       "Root Canal Therapy",
		Description: "Painless, modern root canal treatment to save your natural tooth.",
		Duration:    "1–2 visits",
		Price:       "₹5,000+",
	},
	{
		Icon:        "settings",
		Category:    CategoryRestorative,
		Title:       "Dental Implants",
		Description: "Permanent, natural-looking titanium implants for missing teeth.",
		Duration:    "3–6 months",
		Price:       "₹40,000+",
		Badge:       "🏆 Best Result",
	},
	{
		Icon:        "emergency",
		Category:    CategoryEmergency,
		Title:       "Emergency Care",
		Description: "Same-day emergency appointments for severe pain, broken teeth, or trauma.",
		Duration:    "Same Day",
		Price:       "₹500+ consult",
		Badge:       "🆘 24/7",
	},
	{
		Icon:        "child_care",
		Category:    CategoryGeneral,
		Title:       "Paediatric Dentistry",
		Description: "Gentle, child-friendly dental care for kids aged 2 and above.",
		Duration:    "30 min",
		Price:       "₹600+",
		Badge:       "👶 Kids",
	},
}

// Services returns a copy of the full catalog in declaration order.
func Services() []Record {
	out := make([]Record, len(services))
	copy(out, services)
	return out
}

// Highlight is a home page teaser linking to the services page.
type Highlight struct {
	Icon        string
	Title       string
	Description string
	Href        string
}

var highlights = []Highlight{
	{Icon: "diamond", Title: "Cosmetic Procedures", Description: "Whitening, veneers, bonding: smile transformations", Href: "/services?category=Cosmetic"},
	{Icon: "straighten", Title: "Orthodontics", Description: "Braces & clear aligners for all ages", Href: "/services?category=Orthodontics"},
	{Icon: "local_hospital", Title: "General Dentistry", Description: "Fillings, cleanings & routine check-ups", Href: "/services?category=General"},
	{Icon: "healing", Title: "Dental Implants", Description: "Permanent tooth replacement solutions", Href: "/services?category=Restorative"},
}

// Highlights returns the popular-services teasers shown on the home page.
func Highlights() []Highlight {
	out := make([]Highlight, len(highlights))
	copy(out, highlights)
	return out
}
