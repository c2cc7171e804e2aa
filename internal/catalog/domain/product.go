package domain

import "net/url"

// Category is the product category slug used in the catalog, in cart line
// items and in navigation links.
type Category string

const (
	CategoryHolsters     Category = "holsters"
	CategoryScopes       Category = "scopes"
	CategoryCleaningKits Category = "cleaning-kits"
	CategoryTargets      Category = "targets"
	CategorySafetyGear   Category = "safety-gear"
)

var displayNames = map[Category]string{
	CategoryHolsters:     "Holsters",
	CategoryScopes:       "Scopes & Sights",
	CategoryCleaningKits: "Cleaning Kits",
	CategoryTargets:      "Targets",
	CategorySafetyGear:   "Safety Gear",
}

// DisplayName returns the human-readable category name. Unknown slugs are
// returned as-is.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

type Product struct {
	ID       int64
	Title    string
	Category Category
	Price    float64
	Rating   float64
	Reviews  int
}

// Filter narrows a product listing. Zero values mean "no constraint".
type Filter struct {
	Category  Category
	PriceMax  float64
	MinRating float64
}

// Matches reports whether p passes every constraint of the filter.
func (f Filter) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	return true
}

// FilterFromQuery builds a filter from navigation input. Only the category
// parameter is honored; everything else on the URL is ignored.
func FilterFromQuery(values url.Values) Filter {
	return Filter{Category: Category(values.Get("category"))}
}
