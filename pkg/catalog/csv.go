package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

// ListSeparator splits multi-valued CSV columns such as colors and images.
const ListSeparator = "|"

var requiredColumns = []string{"name", "price", "category", "colors", "material", "occasions", "images"}

// ParseCSV reads products from a CSV document with a header row. Rows that cannot be
// parsed or fail validation are logged and skipped. A row without an id gets a new
// UUID.
func ParseCSV(r io.Reader, logger *zap.Logger) ([]models.Product, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("CSV is empty or has only headers")
	}

	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", col)
		}
	}

	products := make([]models.Product, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		row, err := readRow(header, record)
		if err != nil {
			logger.Warn("skipping CSV row", zap.Int("row", line), zap.Error(err))
			continue
		}
		p := toProduct(row)
		if err := p.Validate(); err != nil {
			logger.Warn("skipping invalid CSV row", zap.Int("row", line), zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func readRow(header map[string]int, record []string) (models.ProductCSV, error) {
	get := func(col string) string {
		i, ok := header[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var (
		row = models.ProductCSV{
			ID:               get("id"),
			Name:             get("name"),
			Description:      get("description"),
			DiscountPrice:    get("discount_price"),
			Category:         get("category"),
			Colors:           get("colors"),
			Material:         get("material"),
			Occasions:        get("occasions"),
			Images:           get("images"),
			Tags:             get("tags"),
			CareInstructions: get("care_instructions"),
			Weight:           get("weight"),
			Dimensions:       get("dimensions"),
		}
		err error
	)

	if row.Price, err = number(get("price")); err != nil {
		return row, fmt.Errorf("invalid price %q: %w", get("price"), err)
	}
	if row.Stock, err = intOr(get("stock")); err != nil {
		return row, fmt.Errorf("invalid stock %q: %w", get("stock"), err)
	}
	if row.Reviews, err = intOr(get("reviews")); err != nil {
		return row, fmt.Errorf("invalid reviews %q: %w", get("reviews"), err)
	}
	if v := get("rating"); v != "" {
		if row.Rating, err = number(v); err != nil {
			return row, fmt.Errorf("invalid rating %q: %w", v, err)
		}
	}
	for col, dst := range map[string]*bool{
		"blouse_included": &row.BlouseIncluded,
		"best_seller":     &row.BestSeller,
		"new_arrival":     &row.NewArrival,
		"featured":        &row.Featured,
	} {
		v := get(col)
		if v == "" {
			continue
		}
		if *dst, err = strconv.ParseBool(v); err != nil {
			return row, fmt.Errorf("invalid %s %q: %w", col, v, err)
		}
	}
	if row.DiscountPrice != "" {
		if _, err := number(row.DiscountPrice); err != nil {
			return row, fmt.Errorf("invalid discount_price %q: %w", row.DiscountPrice, err)
		}
	}
	return row, nil
}

// number parses a finite float. NaN and infinities are rejected.
func number(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("not a finite number")
	}
	return f, nil
}

func intOr(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func toProduct(row models.ProductCSV) models.Product {
	id := row.ID
	if id == "" {
		id = uuid.New().String()
	}

	p := models.Product{
		ID:               id,
		Name:             row.Name,
		Description:      row.Description,
		Price:            row.Price,
		Images:           splitList(row.Images),
		Category:         models.Category(row.Category),
		Colors:           typedList[models.Color](row.Colors),
		Material:         models.Material(row.Material),
		Occasions:        typedList[models.Occasion](row.Occasions),
		BlouseIncluded:   row.BlouseIncluded,
		Rating:           row.Rating,
		Reviews:          row.Reviews,
		BestSeller:       row.BestSeller,
		NewArrival:       row.NewArrival,
		Featured:         row.Featured,
		Stock:            row.Stock,
		Weight:           row.Weight,
		Dimensions:       row.Dimensions,
		CareInstructions: splitList(row.CareInstructions),
		Tags:             splitList(row.Tags),
	}
	if row.DiscountPrice != "" {
		d, _ := number(row.DiscountPrice)
		p.DiscountPrice = &d
	}
	return p
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ListSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func typedList[T ~string](v string) []T {
	parts := splitList(v)
	out := make([]T, len(parts))
	for i, part := range parts {
		out[i] = T(part)
	}
	return out
}
