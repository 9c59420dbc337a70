package filter

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

// Query parameter names accepted by ParseQuery.
const (
	ParamQuery    = "q"
	ParamCategory = "category"
	ParamColor    = "color"
	ParamMaterial = "material"
	ParamOccasion = "occasion"
	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
	ParamSortBy   = "sortBy"
)

// ParseQuery builds a FilterSpec from storefront query parameters. Facet parameters
// may repeat. When only one price bound is given the other defaults to 0 or
// MaxSafeInteger.
func ParseQuery(values url.Values) (models.FilterSpec, error) {
	spec := models.FilterSpec{
		Query:      strings.TrimSpace(values.Get(ParamQuery)),
		Categories: list[models.Category](values[ParamCategory]),
		Colors:     list[models.Color](values[ParamColor]),
		Materials:  list[models.Material](values[ParamMaterial]),
		Occasions:  list[models.Occasion](values[ParamOccasion]),
		SortBy:     models.SortKey(strings.TrimSpace(values.Get(ParamSortBy))),
	}

	if !spec.SortBy.Valid() {
		return models.FilterSpec{}, fmt.Errorf("unknown sort key %q", spec.SortBy)
	}

	minPrice, hasMin, err := price(values, ParamMinPrice)
	if err != nil {
		return models.FilterSpec{}, err
	}
	maxPrice, hasMax, err := price(values, ParamMaxPrice)
	if err != nil {
		return models.FilterSpec{}, err
	}
	if hasMin || hasMax {
		if !hasMax {
			maxPrice = models.MaxSafeInteger
		}
		if minPrice > maxPrice {
			return models.FilterSpec{}, fmt.Errorf("%s %.2f is greater than %s %.2f", ParamMinPrice, minPrice, ParamMaxPrice, maxPrice)
		}
		spec.PriceRange = &models.PriceRange{Min: minPrice, Max: maxPrice}
	}

	return spec, nil
}

func list[T ~string](raw []string) []T {
	var out []T
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, T(v))
		}
	}
	return out
}

func price(values url.Values, key string) (float64, bool, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if math.IsNaN(v) || v < 0 {
		return 0, false, fmt.Errorf("invalid %s %q: must be a non-negative number", key, raw)
	}
	return v, true, nil
}
