package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

func saree(id string, mutate ...func(*models.Product)) models.Product {
	p := models.Product{
		ID:        id,
		Name:      "Saree " + id,
		Price:     5000,
		Images:    []string{"https://picsum.photos/seed/" + id + "/800/1200"},
		Category:  models.CategoryBanarasiSilk,
		Colors:    []models.Color{models.ColorRed},
		Material:  models.MaterialPureSilk,
		Occasions: []models.Occasion{models.OccasionWedding},
		Rating:    4.2,
	}
	for _, m := range mutate {
		m(&p)
	}
	return p
}

func productIDs(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestNew_Validates(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]models.Product{saree("A"), saree("A")})
	assert.ErrorContains(t, err, "duplicate product id A")

	_, err = New([]models.Product{saree("A", func(p *models.Product) {
		d := 6000.0
		p.DiscountPrice = &d
	})})
	assert.ErrorContains(t, err, "discount price")

	_, err = New([]models.Product{saree("A", func(p *models.Product) { p.Colors = nil })})
	assert.ErrorContains(t, err, "color")

	_, err = New([]models.Product{saree("A", func(p *models.Product) { p.Rating = 5.5 })})
	assert.ErrorContains(t, err, "rating")

	_, err = New([]models.Product{saree("A", func(p *models.Product) { p.Price = math.NaN() })})
	assert.ErrorContains(t, err, "price")

	_, err = New([]models.Product{saree("A", func(p *models.Product) {
		d := math.Inf(-1)
		p.DiscountPrice = &d
	})})
	assert.ErrorContains(t, err, "discount price")

	_, err = New([]models.Product{saree("A", func(p *models.Product) { p.Category = "Foo" })})
	assert.ErrorContains(t, err, "unknown category")
}

func TestCatalog_KeepsItsOwnCopy(t *testing.T) {
	products := []models.Product{saree("A"), saree("B")}
	c, err := New(products)
	require.NoError(t, err)

	products[0].Name = "changed"
	got, ok := c.ByID("A")
	require.True(t, ok)
	assert.Equal(t, "Saree A", got.Name)

	list := c.Products()
	list[1].Name = "changed"
	got, _ = c.ByID("B")
	assert.Equal(t, "Saree B", got.Name)
	assert.Equal(t, 2, c.Len())
}

func TestCatalog_ByID(t *testing.T) {
	c, err := New([]models.Product{saree("A"), saree("B")})
	require.NoError(t, err)

	p, ok := c.ByID("B")
	assert.True(t, ok)
	assert.Equal(t, "B", p.ID)

	_, ok = c.ByID("missing")
	assert.False(t, ok)
}

func TestCatalog_CuratedLists(t *testing.T) {
	var products []models.Product
	for i := 0; i < 12; i++ {
		id := string(rune('A' + i))
		products = append(products, saree(id, func(p *models.Product) {
			p.Featured = true
			p.NewArrival = i%2 == 0
			p.BestSeller = i == 3
		}))
	}
	c, err := New(products)
	require.NoError(t, err)

	assert.Len(t, c.Featured(0), DefaultLimit)
	assert.Equal(t, []string{"A", "B", "C"}, productIDs(c.Featured(3)))
	assert.Equal(t, []string{"A", "C", "E", "G", "I", "K"}, productIDs(c.NewArrivals(-1)))
	assert.Equal(t, []string{"D"}, productIDs(c.BestSellers(8)))
}

func TestCatalog_SearchAndFilter(t *testing.T) {
	c, err := New([]models.Product{
		saree("A", func(p *models.Product) { p.Tags = []string{"Zari"} }),
		saree("B", func(p *models.Product) { p.Category = models.CategoryPatola; p.Price = 2000 }),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, productIDs(c.Search("zari")))
	assert.Equal(t, []string{"B", "A"}, productIDs(c.Filter(models.FilterSpec{SortBy: models.SortPriceLowHigh})))
	assert.Equal(t, []string{"A", "B"}, productIDs(c.Products()))
}

func TestFacets_FirstSeenOrder(t *testing.T) {
	meta := Facets([]models.Product{
		saree("A", func(p *models.Product) {
			p.Category = models.CategoryPatola
			p.Colors = []models.Color{models.ColorGold, models.ColorRed}
			p.Occasions = []models.Occasion{models.OccasionParty}
		}),
		saree("B", func(p *models.Product) {
			p.Colors = []models.Color{models.ColorRed, models.ColorTeal}
			p.Material = models.MaterialLinen
			p.Occasions = []models.Occasion{models.OccasionWedding, models.OccasionParty}
		}),
	})

	assert.Equal(t, []models.Category{models.CategoryPatola, models.CategoryBanarasiSilk}, meta.Categories)
	assert.Equal(t, []models.Color{models.ColorGold, models.ColorRed, models.ColorTeal}, meta.Colors)
	assert.Equal(t, []models.Material{models.MaterialPureSilk, models.MaterialLinen}, meta.Materials)
	assert.Equal(t, []models.Occasion{models.OccasionParty, models.OccasionWedding}, meta.Occasions)
	require.Len(t, meta.PriceRanges, 5)
	assert.Equal(t, "Under ₹5,000", meta.PriceRanges[0].Label)
	assert.Equal(t, float64(models.MaxSafeInteger), meta.PriceRanges[4].Max)
}

func TestFacets_Empty(t *testing.T) {
	meta := Facets(nil)
	assert.NotNil(t, meta.Categories)
	assert.Empty(t, meta.Colors)
	assert.Len(t, meta.PriceRanges, 5)
}
