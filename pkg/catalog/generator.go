package catalog

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

var (
	namePrefixes = []string{
		"Royal", "Elegant", "Traditional", "Handcrafted", "Heritage", "Luxurious",
		"Premium", "Classic", "Handwoven", "Exquisite", "Ethnic", "Designer", "Artisan",
	}
	nameStyles = []string{
		"Banarasi", "Kanjivaram", "Patola", "Chanderi", "Paithani", "Sambalpuri",
		"Mysore", "Gadwal", "Bandhani", "Pochampally", "Tussar", "Baluchari", "Jamdani",
	}
	nameSuffixes = []string{
		"Silk Saree", "Weave Saree", "Handloom Saree", "Zari Saree", "Embroidered Saree",
		"Festive Saree", "Bridal Saree", "Pure Silk Saree", "Designer Saree",
	}

	descIntros = []string{
		"This exquisite %[1]s saree showcases the rich tradition of Indian craftsmanship.",
		"Elevate your ethnic wardrobe with this stunning %[1]s saree.",
		"A masterpiece of traditional artisanship, this %[1]s saree exudes elegance.",
		"This beautiful %[1]s saree combines traditional designs with contemporary appeal.",
	}
	descDetails = []string{
		"Crafted from premium %[1]s that ensures comfort and durability.",
		"Made with finest %[1]s by skilled artisans using traditional techniques.",
		"The luxurious %[1]s fabric drapes beautifully and offers a comfortable fit.",
		"Woven with intricate detail using high-quality %[1]s for a luxurious feel.",
	}
	descFeatures = []string{
		"The ornate zari work adds a touch of opulence to this piece.",
		"Features intricate motifs that tell stories of ancient art forms.",
		"Adorned with traditional motifs that celebrate India's rich cultural heritage.",
		"The detailed embroidery highlights the exceptional craftsmanship.",
		"The rich color palette is inspired by India's vibrant cultural traditions.",
	}
	descConclusions = []string{
		"Pair with traditional jewelry for a complete festive look.",
		"Perfect for special occasions and celebrations that call for elegance.",
		"An heirloom-quality piece that will be treasured for generations.",
		"A timeless addition to your ethnic wardrobe.",
		"Makes for a perfect gift to celebrate special moments.",
	}

	extraTags = []string{
		"Traditional", "Handloom", "Handcrafted", "Authentic", "Ethnic Wear",
		"Indian Heritage", "Sustainable Fashion", "Artisan Made", "Luxury", "Premium",
	}
	careInstructions = []string{
		"Dry clean only",
		"Do not bleach",
		"Do not tumble dry",
		"Store in a cool, dry place",
		"Iron on low heat if necessary",
		"Hand wash with mild detergent",
		"Do not wring",
		"Dry in shade",
	}
	imageKeywords = []string{"indian saree", "silk saree", "traditional saree", "wedding saree", "handloom saree"}
)

const stockPhotoURL = "https://images.unsplash.com/photo-1583391733981-8698e5f9c6db?crop=entropy&cs=tinysrgb&fit=crop&fm=jpg&h=1200&q=80&w=800"

// Generator produces synthetic sarees. The same seed always yields the same catalog.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Generate returns count products with ids SAREE0001 onwards.
func Generate(count int, seed int64) []models.Product {
	return NewGenerator(seed).Products(count)
}

// Products generates count products numbered from 1.
func (g *Generator) Products(count int) []models.Product {
	products := make([]models.Product, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		products = append(products, g.Product(i))
	}
	return products
}

// Product generates the saree with the given sequence number.
func (g *Generator) Product(n int) models.Product {
	f := g.faker

	category := f.RandomString(toStrings(models.AllCategories))
	material := f.RandomString(toStrings(models.AllMaterials))
	colors := pick(f, models.AllColors, f.Number(1, 3))
	occasions := pick(f, models.AllOccasions, f.Number(1, 3))

	price := float64(f.Number(2500, 50000))
	var discount *float64
	if chance(f, 0.3) {
		d := math.Round(price * (1 - f.Float64Range(0.1, 0.4)))
		discount = &d
	}

	images := make([]string, f.Number(3, 5))
	for i := range images {
		images[i] = g.imageURL(n, i)
	}

	return models.Product{
		ID:               fmt.Sprintf("SAREE%04d", n),
		Name:             fmt.Sprintf("%s %s %s", f.RandomString(namePrefixes), f.RandomString(nameStyles), f.RandomString(nameSuffixes)),
		Description:      g.description(category, material),
		Price:            price,
		DiscountPrice:    discount,
		Images:           images,
		Category:         models.Category(category),
		Colors:           colors,
		Material:         models.Material(material),
		Occasions:        occasions,
		BlouseIncluded:   chance(f, 0.7),
		Rating:           math.Round(f.Float64Range(3.5, models.MaxRating)*10) / 10,
		Reviews:          f.Number(0, 500),
		BestSeller:       chance(f, 0.2),
		NewArrival:       chance(f, 0.3),
		Featured:         chance(f, 0.25),
		Stock:            f.Number(0, 50),
		Weight:           fmt.Sprintf("%.1f kg", f.Float64Range(0.5, 2.5)),
		Dimensions:       fmt.Sprintf("%d meters (length) x %d inches (width)", f.Number(5, 6), f.Number(45, 48)),
		CareInstructions: pick(f, careInstructions, f.Number(4, 5)),
		Tags:             g.tags(category, material, colors, occasions),
	}
}

func (g *Generator) description(category, material string) string {
	f := g.faker
	return strings.Join([]string{
		fmt.Sprintf(f.RandomString(descIntros), category),
		fmt.Sprintf(f.RandomString(descDetails), material),
		f.RandomString(descFeatures),
		f.RandomString(descConclusions),
	}, " ")
}

// imageURL rotates through three placeholder services by image index.
func (g *Generator) imageURL(n, index int) string {
	switch index % 3 {
	case 0:
		keyword := url.PathEscape(g.faker.RandomString(imageKeywords))
		return fmt.Sprintf("https://source.unsplash.com/800x1200/?%s&sig=%d", keyword, n*10+index)
	case 1:
		return fmt.Sprintf("https://picsum.photos/seed/saree-%d-%d/800/1200", n, index)
	default:
		return stockPhotoURL
	}
}

func (g *Generator) tags(category, material string, colors []models.Color, occasions []models.Occasion) []string {
	tags := []string{category, material}
	tags = append(tags, toStrings(colors)...)
	tags = append(tags, toStrings(occasions)...)
	for i := g.faker.Number(2, 3); i > 0; i-- {
		tags = append(tags, g.faker.RandomString(extraTags))
	}

	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func chance(f *gofakeit.Faker, p float64) bool {
	return f.Float64Range(0, 1) < p
}

// pick returns n distinct values of from in random order.
func pick[T any](f *gofakeit.Faker, from []T, n int) []T {
	pool := make([]T, len(from))
	copy(pool, from)
	for i := len(pool) - 1; i > 0; i-- {
		j := f.Number(0, i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:min(n, len(pool))]
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
