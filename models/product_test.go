package models

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		ID:        "SAREE0001",
		Name:      "Royal Banarasi Silk Saree",
		Price:     12000,
		Images:    []string{"https://picsum.photos/seed/a/800/1200"},
		Category:  CategoryBanarasiSilk,
		Colors:    []Color{ColorRed},
		Material:  MaterialPureSilk,
		Occasions: []Occasion{OccasionWedding},
		Rating:    4.5,
	}
}

func TestProduct_EffectivePrice(t *testing.T) {
	p := validProduct()
	assert.Equal(t, 12000.0, p.EffectivePrice())

	discount := 9000.0
	p.DiscountPrice = &discount
	assert.Equal(t, 9000.0, p.EffectivePrice())
}

func TestProduct_Validate(t *testing.T) {
	require.NoError(t, validProduct().Validate())

	tooHigh := 12000.0
	nan := math.NaN()
	tests := map[string]func(p *Product){
		"nan price":          func(p *Product) { p.Price = math.NaN() },
		"infinite price":     func(p *Product) { p.Price = math.Inf(1) },
		"nan discount":       func(p *Product) { p.DiscountPrice = &nan },
		"nan rating":         func(p *Product) { p.Rating = math.NaN() },
		"unknown category":   func(p *Product) { p.Category = "Foo" },
		"unknown material":   func(p *Product) { p.Material = "Polyester" },
		"unknown color":      func(p *Product) { p.Colors = []Color{ColorRed, "Mauve"} },
		"unknown occasion":   func(p *Product) { p.Occasions = []Occasion{"Picnic"} },
		"missing id":         func(p *Product) { p.ID = "" },
		"missing name":       func(p *Product) { p.Name = "" },
		"negative price":     func(p *Product) { p.Price = -1 },
		"discount not below": func(p *Product) { p.DiscountPrice = &tooHigh },
		"no images":          func(p *Product) { p.Images = nil },
		"no colors":          func(p *Product) { p.Colors = nil },
		"no occasions":       func(p *Product) { p.Occasions = nil },
		"rating above max":   func(p *Product) { p.Rating = 5.1 },
		"negative stock":     func(p *Product) { p.Stock = -2 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			p := validProduct()
			mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestProduct_JSONShape(t *testing.T) {
	data, err := json.Marshal(validProduct())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Contains(t, fields, "color")
	assert.Contains(t, fields, "occasion")
	assert.NotContains(t, fields, "discountPrice")
}

func TestSortKey_Valid(t *testing.T) {
	for _, k := range []SortKey{"", SortPriceLowHigh, SortPriceHighLow, SortNewest, SortPopular} {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, SortKey("cheapest").Valid())
}

func TestListMeta_CarriesOnlyJSONTags(t *testing.T) {
	typ := reflect.TypeOf(ListMeta{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		assert.Equal(t, reflect.StructTag(`json:"`+f.Tag.Get("json")+`"`), f.Tag, f.Name)
	}

	data, err := json.Marshal(ListMeta{Total: 105, Count: 12, ActiveFilters: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":105,"count":12,"active_filters":2}`, string(data))
}
