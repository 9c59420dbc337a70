package catalog

import (
	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

// Facets lists the distinct facet values present in products, in first-seen order,
// together with the fixed price buckets.
func Facets(products []models.Product) models.FilterMetadata {
	var (
		categories = distinct[models.Category]{}
		colors     = distinct[models.Color]{}
		materials  = distinct[models.Material]{}
		occasions  = distinct[models.Occasion]{}
	)
	for _, p := range products {
		categories.add(p.Category)
		colors.add(p.Colors...)
		materials.add(p.Material)
		occasions.add(p.Occasions...)
	}

	buckets := make([]models.PriceBucket, len(models.PriceBuckets))
	copy(buckets, models.PriceBuckets)

	return models.FilterMetadata{
		Categories:  categories.list(),
		Colors:      colors.list(),
		Materials:   materials.list(),
		Occasions:   occasions.list(),
		PriceRanges: buckets,
	}
}

type distinct[T comparable] struct {
	seen  map[T]bool
	order []T
}

func (d *distinct[T]) add(values ...T) {
	if d.seen == nil {
		d.seen = map[T]bool{}
	}
	for _, v := range values {
		if !d.seen[v] {
			d.seen[v] = true
			d.order = append(d.order, v)
		}
	}
}

func (d *distinct[T]) list() []T {
	if d.order == nil {
		return []T{}
	}
	return d.order
}
