package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/pkg/config"
)

// DBClient holds the PostgreSQL database connection
type DBClient struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresClient opens a pooled connection described by cfg and pings it.
func NewPostgresClient(cfg config.DBConfig, logger *zap.Logger) (*DBClient, error) {
	if !cfg.Enabled() {
		return nil, errors.New("DB_HOST environment variable not set")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("connected to PostgreSQL", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return &DBClient{db: db, logger: logger}, nil
}

// Close closes the database connection
func (c *DBClient) Close() {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			c.logger.Warn("failed to close PostgreSQL connection", zap.Error(err))
			return
		}
		c.logger.Info("PostgreSQL connection closed")
	}
}

// GetDB returns the underlying *sql.DB instance
func (c *DBClient) GetDB() *sql.DB {
	return c.db
}
