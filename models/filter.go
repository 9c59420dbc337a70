package models

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortPriceLowHigh SortKey = "price-low-high"
	SortPriceHighLow SortKey = "price-high-low"
	SortNewest       SortKey = "newest"
	SortPopular      SortKey = "popular"
)

// Valid reports whether k is one of the known sort keys. The empty key is valid and
// keeps catalog order.
func (k SortKey) Valid() bool {
	switch k {
	case "", SortPriceLowHigh, SortPriceHighLow, SortNewest, SortPopular:
		return true
	}
	return false
}

// MaxSafeInteger is the open upper bound used for the top price bucket.
const MaxSafeInteger = 1<<53 - 1

// PriceRange is an inclusive effective-price window.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSpec is the active filter selection. Empty slices and an empty query mean
// "no filter" for that facet.
type FilterSpec struct {
	Categories []Category  `json:"categories,omitempty"`
	Colors     []Color     `json:"colors,omitempty"`
	Materials  []Material  `json:"materials,omitempty"`
	Occasions  []Occasion  `json:"occasions,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	SortBy     SortKey     `json:"sortBy,omitempty"`
	Query      string      `json:"query,omitempty"`
}

// PriceBucket is a labelled price range offered by the filter panel.
type PriceBucket struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Label string  `json:"label"`
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories  []Category    `json:"categories"`
	Colors      []Color       `json:"colors"`
	Materials   []Material    `json:"materials"`
	Occasions   []Occasion    `json:"occasions"`
	PriceRanges []PriceBucket `json:"priceRanges"`
}

// PriceBuckets is the fixed bucket list shown next to the facet values.
var PriceBuckets = []PriceBucket{
	{Min: 0, Max: 5000, Label: "Under ₹5,000"},
	{Min: 5000, Max: 10000, Label: "₹5,000 - ₹10,000"},
	{Min: 10000, Max: 20000, Label: "₹10,000 - ₹20,000"},
	{Min: 20000, Max: 50000, Label: "₹20,000 - ₹50,000"},
	{Min: 50000, Max: MaxSafeInteger, Label: "Above ₹50,000"},
}
