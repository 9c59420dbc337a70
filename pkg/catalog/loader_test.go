package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

type staticSource struct {
	name     string
	products []models.Product
	err      error
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Products(context.Context) ([]models.Product, error) {
	return s.products, s.err
}

type recordingSink struct {
	stored []models.Product
	err    error
}

func (r *recordingSink) StoreProducts(_ context.Context, products []models.Product) error {
	r.stored = products
	return r.err
}

func TestLoad_PrefersFirstSource(t *testing.T) {
	sink := &recordingSink{}
	c, err := Load(context.Background(), zap.NewNop(), sink,
		staticSource{name: "postgres", products: []models.Product{saree("A")}},
		GeneratorSource{Count: 5, Seed: 1},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Nil(t, sink.stored, "first source must not be written back")
}

func TestLoad_FallsBackAndWritesBack(t *testing.T) {
	sink := &recordingSink{}
	core, logs := observer.New(zapcore.InfoLevel)

	c, err := Load(context.Background(), zap.New(core), sink,
		staticSource{name: "postgres", err: errors.New("connection refused")},
		staticSource{name: "empty"},
		GeneratorSource{Count: 10, Seed: 42},
	)
	require.NoError(t, err)

	assert.Equal(t, 10, c.Len())
	assert.Equal(t, c.Products(), sink.stored)
	assert.Equal(t, 1, logs.FilterMessage("catalog source failed, trying next").Len())
	assert.Equal(t, 1, logs.FilterMessage("catalog source is empty, trying next").Len())
	assert.Equal(t, 1, logs.FilterMessage("catalog written back to store").Len())
}

func TestLoad_SkipsInvalidSource(t *testing.T) {
	c, err := Load(context.Background(), nil, nil,
		staticSource{name: "broken", products: []models.Product{saree("A"), saree("A")}},
		staticSource{name: "good", products: []models.Product{saree("B")}},
	)
	require.NoError(t, err)

	_, ok := c.ByID("B")
	assert.True(t, ok)
}

func TestLoad_WriteBackFailureIsNotFatal(t *testing.T) {
	sink := &recordingSink{err: errors.New("read-only transaction")}
	core, logs := observer.New(zapcore.ErrorLevel)

	c, err := Load(context.Background(), zap.New(core), sink,
		staticSource{name: "postgres"},
		GeneratorSource{Count: 3, Seed: 9},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to write catalog back to store").Len())
}

func TestLoad_NoSourceSucceeds(t *testing.T) {
	_, err := Load(context.Background(), nil, nil,
		staticSource{name: "postgres", err: errors.New("down")},
		GeneratorSource{Count: 0},
	)
	assert.Error(t, err)
}
