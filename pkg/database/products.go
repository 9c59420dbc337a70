package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	price             NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
	discount_price    NUMERIC(12, 2),
	images            TEXT[] NOT NULL,
	category          TEXT NOT NULL,
	colors            TEXT[] NOT NULL,
	material          TEXT NOT NULL,
	occasions         TEXT[] NOT NULL,
	blouse_included   BOOLEAN NOT NULL DEFAULT FALSE,
	rating            NUMERIC(2, 1) NOT NULL DEFAULT 0,
	reviews           INTEGER NOT NULL DEFAULT 0,
	best_seller       BOOLEAN NOT NULL DEFAULT FALSE,
	new_arrival       BOOLEAN NOT NULL DEFAULT FALSE,
	featured          BOOLEAN NOT NULL DEFAULT FALSE,
	stock             INTEGER NOT NULL DEFAULT 0,
	weight            TEXT NOT NULL DEFAULT '',
	dimensions        TEXT NOT NULL DEFAULT '',
	care_instructions TEXT[] NOT NULL DEFAULT '{}',
	tags              TEXT[] NOT NULL DEFAULT '{}',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const selectProducts = `
SELECT id, name, description, price, discount_price, images, category, colors, material,
	occasions, blouse_included, rating, reviews, best_seller, new_arrival, featured, stock,
	weight, dimensions, care_instructions, tags
FROM products
ORDER BY id`

const upsertProduct = `
INSERT INTO products (id, name, description, price, discount_price, images, category, colors,
	material, occasions, blouse_included, rating, reviews, best_seller, new_arrival, featured,
	stock, weight, dimensions, care_instructions, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	description = EXCLUDED.description,
	price = EXCLUDED.price,
	discount_price = EXCLUDED.discount_price,
	images = EXCLUDED.images,
	category = EXCLUDED.category,
	colors = EXCLUDED.colors,
	material = EXCLUDED.material,
	occasions = EXCLUDED.occasions,
	blouse_included = EXCLUDED.blouse_included,
	rating = EXCLUDED.rating,
	reviews = EXCLUDED.reviews,
	best_seller = EXCLUDED.best_seller,
	new_arrival = EXCLUDED.new_arrival,
	featured = EXCLUDED.featured,
	stock = EXCLUDED.stock,
	weight = EXCLUDED.weight,
	dimensions = EXCLUDED.dimensions,
	care_instructions = EXCLUDED.care_instructions,
	tags = EXCLUDED.tags,
	updated_at = NOW()`

// Execer is satisfied by both *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ProductRepository reads and writes the products table.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository returns a repository over db.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// EnsureSchema creates the products table when it does not exist.
func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}

// Name identifies the source in logs.
func (r *ProductRepository) Name() string { return "postgres" }

// Products returns every stored product ordered by id.
func (r *ProductRepository) Products(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during products iteration: %w", err)
	}
	return products, nil
}

// Upsert inserts p or replaces the stored row with the same id.
func (r *ProductRepository) Upsert(ctx context.Context, exec Execer, p models.Product) error {
	_, err := exec.ExecContext(ctx, upsertProduct, args(p)...)
	if err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", p.ID, err)
	}
	return nil
}

// StoreProducts upserts every product in a single transaction.
func (r *ProductRepository) StoreProducts(ctx context.Context, products []models.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback on error by default

	for _, p := range products {
		if err := r.Upsert(ctx, tx, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (models.Product, error) {
	var (
		p                       models.Product
		discount                sql.NullFloat64
		images, careInstr, tags pq.StringArray
		colors, occasions       pq.StringArray
		category, material      string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &discount, &images, &category, &colors,
		&material, &occasions, &p.BlouseIncluded, &p.Rating, &p.Reviews, &p.BestSeller,
		&p.NewArrival, &p.Featured, &p.Stock, &p.Weight, &p.Dimensions, &careInstr, &tags,
	)
	if err != nil {
		return models.Product{}, fmt.Errorf("error scanning product row: %w", err)
	}

	if discount.Valid {
		d := discount.Float64
		p.DiscountPrice = &d
	}
	p.Images = []string(images)
	p.Category = models.Category(category)
	p.Material = models.Material(material)
	p.Colors = convert[models.Color](colors)
	p.Occasions = convert[models.Occasion](occasions)
	p.CareInstructions = nonNil(careInstr)
	p.Tags = nonNil(tags)
	return p, nil
}

func args(p models.Product) []any {
	var discount sql.NullFloat64
	if p.DiscountPrice != nil {
		discount = sql.NullFloat64{Float64: *p.DiscountPrice, Valid: true}
	}
	return []any{
		p.ID, p.Name, p.Description, p.Price, discount, pq.Array(p.Images), string(p.Category),
		pq.Array(toStrings(p.Colors)), string(p.Material), pq.Array(toStrings(p.Occasions)),
		p.BlouseIncluded, p.Rating, p.Reviews, p.BestSeller, p.NewArrival, p.Featured, p.Stock,
		p.Weight, p.Dimensions, pq.Array(nonNil(p.CareInstructions)), pq.Array(nonNil(p.Tags)),
	}
}

func convert[T ~string](values []string) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
