package models

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Category is the single weave family a saree belongs to.
type Category string

const (
	CategoryBanarasiSilk   Category = "Banarasi Silk"
	CategoryKanjivaramSilk Category = "Kanjivaram Silk"
	CategoryChanderi       Category = "Chanderi"
	CategoryPatola         Category = "Patola"
	CategoryMysoreSilk     Category = "Mysore Silk"
	CategorySambalpuri     Category = "Sambalpuri"
	CategoryBandhani       Category = "Bandhani"
	CategoryGadwal         Category = "Gadwal"
	CategoryPaithani       Category = "Paithani"
	CategoryDesigner       Category = "Designer"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryBanarasiSilk, CategoryKanjivaramSilk, CategoryChanderi, CategoryPatola,
	CategoryMysoreSilk, CategorySambalpuri, CategoryBandhani, CategoryGadwal,
	CategoryPaithani, CategoryDesigner,
}

// Color is one of the dominant colors of a saree.
type Color string

const (
	ColorRed        Color = "Red"
	ColorBlue       Color = "Blue"
	ColorGreen      Color = "Green"
	ColorYellow     Color = "Yellow"
	ColorPink       Color = "Pink"
	ColorPurple     Color = "Purple"
	ColorGold       Color = "Gold"
	ColorMaroon     Color = "Maroon"
	ColorTeal       Color = "Teal"
	ColorBeige      Color = "Beige"
	ColorCoral      Color = "Coral"
	ColorBlack      Color = "Black"
	ColorWhite      Color = "White"
	ColorOrange     Color = "Orange"
	ColorMulticolor Color = "Multicolor"
)

// AllColors lists every color in display order.
var AllColors = []Color{
	ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPink, ColorPurple, ColorGold,
	ColorMaroon, ColorTeal, ColorBeige, ColorCoral, ColorBlack, ColorWhite, ColorOrange,
	ColorMulticolor,
}

// Material is the fabric a saree is woven from.
type Material string

const (
	MaterialPureSilk   Material = "Pure Silk"
	MaterialCottonSilk Material = "Cotton Silk"
	MaterialArtSilk    Material = "Art Silk"
	MaterialGeorgette  Material = "Georgette"
	MaterialChiffon    Material = "Chiffon"
	MaterialCotton     Material = "Cotton"
	MaterialLinen      Material = "Linen"
	MaterialTussarSilk Material = "Tussar Silk"
	MaterialCrepe      Material = "Crepe"
	MaterialOrganza    Material = "Organza"
)

// AllMaterials lists every material in display order.
var AllMaterials = []Material{
	MaterialPureSilk, MaterialCottonSilk, MaterialArtSilk, MaterialGeorgette,
	MaterialChiffon, MaterialCotton, MaterialLinen, MaterialTussarSilk, MaterialCrepe,
	MaterialOrganza,
}

// Occasion is an event a saree suits.
type Occasion string

const (
	OccasionWedding    Occasion = "Wedding"
	OccasionFestival   Occasion = "Festival"
	OccasionParty      Occasion = "Party"
	OccasionCasual     Occasion = "Casual"
	OccasionOfficeWear Occasion = "Office Wear"
	OccasionBridal     Occasion = "Bridal"
	OccasionCeremonial Occasion = "Ceremonial"
	OccasionFormal     Occasion = "Formal"
	OccasionDailyWear  Occasion = "Daily Wear"
)

// AllOccasions lists every occasion in display order.
var AllOccasions = []Occasion{
	OccasionWedding, OccasionFestival, OccasionParty, OccasionCasual, OccasionOfficeWear,
	OccasionBridal, OccasionCeremonial, OccasionFormal, OccasionDailyWear,
}

// MaxRating is the upper bound of a product rating.
const MaxRating = 5.0

// Product represents a saree in the catalog and inside persisted carts.
// Products are built once when the catalog loads and are never mutated afterwards.
type Product struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Price            float64    `json:"price"`
	DiscountPrice    *float64   `json:"discountPrice,omitempty"` // Pointer for optional field
	Images           []string   `json:"images"`
	Category         Category   `json:"category"`
	Colors           []Color    `json:"color"`
	Material         Material   `json:"material"`
	Occasions        []Occasion `json:"occasion"`
	BlouseIncluded   bool       `json:"blouseIncluded"`
	Rating           float64    `json:"rating"`
	Reviews          int        `json:"reviews"`
	BestSeller       bool       `json:"bestSeller"`
	NewArrival       bool       `json:"newArrival"`
	Featured         bool       `json:"featured"`
	Stock            int        `json:"stock"`
	Weight           string     `json:"weight"`
	Dimensions       string     `json:"dimensions"`
	CareInstructions []string   `json:"careInstructions"`
	Tags             []string   `json:"tags"`
}

// EffectivePrice is the discount price when one is set, otherwise the base price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// HasColor reports whether any of the product's colors is in colors.
func (p Product) HasColor(colors []Color) bool {
	for _, c := range p.Colors {
		for _, want := range colors {
			if c == want {
				return true
			}
		}
	}
	return false
}

// HasOccasion reports whether any of the product's occasions is in occasions.
func (p Product) HasOccasion(occasions []Occasion) bool {
	for _, o := range p.Occasions {
		for _, want := range occasions {
			if o == want {
				return true
			}
		}
	}
	return false
}

// Validate checks the rules every catalog source must satisfy.
func (p Product) Validate() error {
	if p.ID == "" {
		return errors.New("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: name is required", p.ID)
	}
	if !finite(p.Price) || p.Price < 0 {
		return fmt.Errorf("product %s: price must be a non-negative number", p.ID)
	}
	if p.DiscountPrice != nil && (!finite(*p.DiscountPrice) || *p.DiscountPrice < 0 || *p.DiscountPrice >= p.Price) {
		return fmt.Errorf("product %s: discount price %.2f must be below price %.2f", p.ID, *p.DiscountPrice, p.Price)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("product %s: at least one image is required", p.ID)
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("product %s: at least one color is required", p.ID)
	}
	if len(p.Occasions) == 0 {
		return fmt.Errorf("product %s: at least one occasion is required", p.ID)
	}
	if !slices.Contains(AllCategories, p.Category) {
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	}
	if !slices.Contains(AllMaterials, p.Material) {
		return fmt.Errorf("product %s: unknown material %q", p.ID, p.Material)
	}
	for _, c := range p.Colors {
		if !slices.Contains(AllColors, c) {
			return fmt.Errorf("product %s: unknown color %q", p.ID, c)
		}
	}
	for _, o := range p.Occasions {
		if !slices.Contains(AllOccasions, o) {
			return fmt.Errorf("product %s: unknown occasion %q", p.ID, o)
		}
	}
	if !finite(p.Rating) || p.Rating < 0 || p.Rating > MaxRating {
		return fmt.Errorf("product %s: rating %.1f out of range", p.ID, p.Rating)
	}
	if p.Reviews < 0 || p.Stock < 0 {
		return fmt.Errorf("product %s: reviews and stock cannot be negative", p.ID)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ProductCSV represents a product as read from a bulk import CSV file.
// List columns hold values separated by "|".
type ProductCSV struct {
	ID               string  `csv:"id"` // Optional: generated when empty
	Name             string  `csv:"name"`
	Description      string  `csv:"description"`
	Price            float64 `csv:"price"`
	DiscountPrice    string  `csv:"discount_price"` // Empty for no discount
	Category         string  `csv:"category"`
	Colors           string  `csv:"colors"`
	Material         string  `csv:"material"`
	Occasions        string  `csv:"occasions"`
	Images           string  `csv:"images"`
	Tags             string  `csv:"tags"`
	CareInstructions string  `csv:"care_instructions"`
	Stock            int     `csv:"stock"`
	Rating           float64 `csv:"rating"`
	Reviews          int     `csv:"reviews"`
	BlouseIncluded   bool    `csv:"blouse_included"`
	BestSeller       bool    `csv:"best_seller"`
	NewArrival       bool    `csv:"new_arrival"`
	Featured         bool    `csv:"featured"`
	Weight           string  `csv:"weight"`
	Dimensions       string  `csv:"dimensions"`
}
