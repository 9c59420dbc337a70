package database

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/catalog"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/config"
)

func TestNewPostgresClient_RequiresHost(t *testing.T) {
	_, err := NewPostgresClient(config.DBConfig{}, nil)
	assert.ErrorContains(t, err, "DB_HOST")
}

func TestArgs(t *testing.T) {
	p := catalog.Generate(1, 3)[0]
	p.CareInstructions = nil
	p.Tags = nil
	d := p.Price - 100
	p.DiscountPrice = &d

	got := args(p)
	require.Len(t, got, 21)
	assert.Equal(t, p.ID, got[0])
	assert.Equal(t, sql.NullFloat64{Float64: d, Valid: true}, got[4])

	p.DiscountPrice = nil
	assert.Equal(t, sql.NullFloat64{}, args(p)[4])
}

func TestProductRepository_RoundTrip(t *testing.T) {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set; skipping PostgreSQL integration test")
	}
	cfg, err := config.Load()
	require.NoError(t, err)

	client, err := NewPostgresClient(cfg.DB, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(client.Close)

	ctx := context.Background()
	repo := NewProductRepository(client.GetDB())
	require.NoError(t, repo.EnsureSchema(ctx))

	products := catalog.Generate(5, 11)
	for i := range products {
		products[i].ID = "TEST" + products[i].ID
	}
	t.Cleanup(func() {
		client.GetDB().Exec(`DELETE FROM products WHERE id LIKE 'TEST%'`)
	})

	require.NoError(t, repo.StoreProducts(ctx, products))
	products[0].Stock = 0
	require.NoError(t, repo.Upsert(ctx, client.GetDB(), products[0]))

	stored, err := repo.Products(ctx)
	require.NoError(t, err)

	var got []models.Product
	for _, p := range stored {
		if len(p.ID) > 4 && p.ID[:4] == "TEST" {
			got = append(got, p)
		}
	}
	if diff := cmp.Diff(products, got); diff != "" {
		t.Errorf("stored products mismatch (-want +got):\n%s", diff)
	}
}
