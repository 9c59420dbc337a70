// Package bootstrap wires configuration, logging and backends for the storefront binaries.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/pkg/cache"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/cart"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/catalog"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/config"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/database"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/logger"
)

// Environment loads the configuration and builds the process logger.
func Environment() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	switch {
	case cfg.EnvFileErr != nil:
		log.Warn("could not load env file, using system environment",
			zap.String("file", config.EnvFile), zap.Error(cfg.EnvFileErr))
	case cfg.EnvFileLoaded:
		log.Info("loaded env file", zap.String("file", config.EnvFile))
	}
	return cfg, log, nil
}

// Catalog loads the catalog from Postgres when DB_HOST is set and from the generator
// otherwise. A generated catalog is seeded into Postgres. Postgres failures fall back
// to the generator with a warning. The connection is closed once the catalog is in
// memory.
func Catalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (*catalog.Catalog, error) {
	generator := catalog.GeneratorSource{Count: cfg.CatalogSize, Seed: cfg.CatalogSeed}

	if !cfg.DB.Enabled() {
		log.Info("DB_HOST not set, using generated catalog", zap.Int("products", cfg.CatalogSize))
		return catalog.Load(ctx, log, nil, generator)
	}

	db, err := database.NewPostgresClient(cfg.DB, log)
	if err != nil {
		log.Warn("postgres unavailable, using generated catalog", zap.Error(err))
		return catalog.Load(ctx, log, nil, generator)
	}
	defer db.Close()

	return fromRepository(ctx, log, database.NewProductRepository(db.GetDB()), generator)
}

// productStore is the catalog side of database.ProductRepository.
type productStore interface {
	catalog.Source
	catalog.Sink
	EnsureSchema(ctx context.Context) error
}

// fromRepository reads the catalog from repo, seeding it from generator when empty.
// A repo whose schema cannot be prepared is skipped like an unreachable database.
func fromRepository(ctx context.Context, log *zap.Logger, repo productStore, generator catalog.Source) (*catalog.Catalog, error) {
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Warn("failed to ensure products schema, using generated catalog", zap.Error(err))
		return catalog.Load(ctx, log, nil, generator)
	}
	return catalog.Load(ctx, log, repo, repo, generator)
}

// CartStorage returns Redis cart storage when REDIS_ADDR is set and process memory
// otherwise. The returned func releases the connection.
func CartStorage(cfg *config.Config, log *zap.Logger) (cart.Storage, func(), error) {
	if !cfg.RedisEnabled() {
		log.Warn("REDIS_ADDR not set, carts are kept in process memory")
		return cart.NewMemoryStorage(), func() {}, nil
	}

	client, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize cart storage: %w", err)
	}
	return cache.NewCartStorage(client.GetClient()), client.Close, nil
}
