package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by Apply. Anything else behaves like SortFeatured.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Filter is the current shop UI state. Consumed read-only; no field is
// validated or clamped here (a min above max simply matches nothing).
type Filter struct {
	Search   string  `json:"search"`
	Category string  `json:"category"`
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
	Sort     string  `json:"sort"`
}

var nameCollator = collate.New(language.English, collate.IgnoreCase)

// Apply runs the filter pipeline over a loaded product list: search, then
// category, then price range, then a stable sort. Pure and re-entrant; the
// input slice is never mutated. "Featured" order is whatever order the
// loader returned, so the default sort is a no-op.
func Apply(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))

	search := strings.ToLower(f.Search)
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if p.Price < f.PriceMin || p.Price > f.PriceMax {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	default:
		// featured: keep loader order
	}
	return out
}
