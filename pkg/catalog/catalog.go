// Package catalog holds the read-only saree catalog and the ways it is produced:
// generation, Postgres, and CSV import.
package catalog

import (
	"errors"
	"fmt"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/filter"
)

// DefaultLimit is the number of products returned by the curated lists when the caller
// does not ask for a specific count.
const DefaultLimit = 8

// Catalog is an immutable, validated product collection. Build it once at startup and
// pass it to whatever serves requests.
type Catalog struct {
	products []models.Product
	byID     map[string]int
	facets   models.FilterMetadata
}

// New validates products and returns a catalog holding its own copy of them.
func New(products []models.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, errors.New("catalog has no products")
	}

	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %d: %w", i, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		c.byID[p.ID] = i
	}
	c.facets = Facets(c.products)
	return c, nil
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID looks a product up by id.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Featured returns up to limit featured products.
func (c *Catalog) Featured(limit int) []models.Product {
	return c.first(limit, func(p models.Product) bool { return p.Featured })
}

// NewArrivals returns up to limit new arrivals.
func (c *Catalog) NewArrivals(limit int) []models.Product {
	return c.first(limit, func(p models.Product) bool { return p.NewArrival })
}

// BestSellers returns up to limit best sellers.
func (c *Catalog) BestSellers(limit int) []models.Product {
	return c.first(limit, func(p models.Product) bool { return p.BestSeller })
}

// Search matches query against name, description and tags.
func (c *Catalog) Search(query string) []models.Product {
	return filter.Search(c.products, query)
}

// Filter applies spec to the whole catalog.
func (c *Catalog) Filter(spec models.FilterSpec) []models.Product {
	return filter.Apply(c.products, spec)
}

// Facets returns the filter panel metadata, computed when the catalog was built.
func (c *Catalog) Facets() models.FilterMetadata {
	return c.facets
}

// first returns up to limit matching products in catalog order. A limit below 1 means
// DefaultLimit.
func (c *Catalog) first(limit int, match func(models.Product) bool) []models.Product {
	if limit < 1 {
		limit = DefaultLimit
	}
	out := make([]models.Product, 0, limit)
	for _, p := range c.products {
		if len(out) == limit {
			break
		}
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}
