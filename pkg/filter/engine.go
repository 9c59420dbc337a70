package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

// Apply runs the filter pipeline over products and returns a new slice. The stages run
// in a fixed order: text search, category, color, material, occasion, price range and
// finally the sort. The input slice is never modified or reordered.
func Apply(products []models.Product, spec models.FilterSpec) []models.Product {
	var out []models.Product
	if spec.Query != "" {
		out = Search(products, spec.Query)
	} else {
		out = slices.Clone(products)
	}

	if len(spec.Categories) > 0 {
		out = keep(out, func(p models.Product) bool {
			return slices.Contains(spec.Categories, p.Category)
		})
	}
	if len(spec.Colors) > 0 {
		out = keep(out, func(p models.Product) bool {
			return p.HasColor(spec.Colors)
		})
	}
	if len(spec.Materials) > 0 {
		out = keep(out, func(p models.Product) bool {
			return slices.Contains(spec.Materials, p.Material)
		})
	}
	if len(spec.Occasions) > 0 {
		out = keep(out, func(p models.Product) bool {
			return p.HasOccasion(spec.Occasions)
		})
	}
	if r := spec.PriceRange; r != nil {
		out = keep(out, func(p models.Product) bool {
			price := p.EffectivePrice()
			return price >= r.Min && price <= r.Max
		})
	}

	Sort(out, spec.SortBy)
	return out
}

// Search keeps the products whose name, description or any tag contains query,
// ignoring case.
func Search(products []models.Product, query string) []models.Product {
	q := strings.ToLower(query)
	return keep(products, func(p models.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

// Sort orders products in place. The sort is stable, so products that compare equal
// keep their relative order. An empty or unknown key leaves the slice untouched.
func Sort(products []models.Product, key models.SortKey) {
	var compare func(a, b models.Product) int
	switch key {
	case models.SortPriceLowHigh:
		compare = func(a, b models.Product) int {
			return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
		}
	case models.SortPriceHighLow:
		compare = func(a, b models.Product) int {
			return cmp.Compare(b.EffectivePrice(), a.EffectivePrice())
		}
	case models.SortNewest:
		// New arrivals first; not a recency sort.
		compare = func(a, b models.Product) int {
			return cmp.Compare(rank(b.NewArrival), rank(a.NewArrival))
		}
	case models.SortPopular:
		compare = func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		}
	default:
		return
	}
	slices.SortStableFunc(products, compare)
}

// ActiveCount is the number of active selections: one per chosen facet value, plus one
// for a price range and one for a sort key. The query is not counted.
func ActiveCount(spec models.FilterSpec) int {
	n := len(spec.Categories) + len(spec.Colors) + len(spec.Materials) + len(spec.Occasions)
	if spec.PriceRange != nil {
		n++
	}
	if spec.SortBy != "" {
		n++
	}
	return n
}

func keep(products []models.Product, match func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func rank(b bool) int {
	if b {
		return 1
	}
	return 0
}
