package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

// Source supplies catalog products.
type Source interface {
	Name() string
	Products(ctx context.Context) ([]models.Product, error)
}

// Sink persists a catalog so later loads can read it back.
type Sink interface {
	StoreProducts(ctx context.Context, products []models.Product) error
}

// GeneratorSource produces a seeded synthetic catalog.
type GeneratorSource struct {
	Count int
	Seed  int64
}

// Name identifies the source in logs.
func (g GeneratorSource) Name() string { return "generator" }

// Products generates Count products from Seed.
func (g GeneratorSource) Products(context.Context) ([]models.Product, error) {
	if g.Count < 1 {
		return nil, fmt.Errorf("generator count must be positive, got %d", g.Count)
	}
	return Generate(g.Count, g.Seed), nil
}

// Load builds the catalog from the first source that returns a valid, non-empty
// product list. When that source is not the first one, the products are written to
// sink so the preferred source has them next time. A failed write is logged only.
func Load(ctx context.Context, logger *zap.Logger, sink Sink, sources ...Source) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for i, src := range sources {
		log := logger.With(zap.String("source", src.Name()))

		products, err := src.Products(ctx)
		if err != nil {
			log.Warn("catalog source failed, trying next", zap.Error(err))
			continue
		}
		if len(products) == 0 {
			log.Info("catalog source is empty, trying next")
			continue
		}

		c, err := New(products)
		if err != nil {
			log.Warn("catalog source returned invalid products, trying next", zap.Error(err))
			continue
		}
		log.Info("catalog loaded", zap.Int("products", c.Len()))

		if i > 0 && sink != nil {
			if err := sink.StoreProducts(ctx, c.Products()); err != nil {
				log.Error("failed to write catalog back to store", zap.Error(err))
			} else {
				log.Info("catalog written back to store", zap.Int("products", c.Len()))
			}
		}
		return c, nil
	}

	return nil, errors.New("no catalog source produced products")
}
