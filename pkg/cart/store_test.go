package cart

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
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/notify"
)

type failingStorage struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStorage) Get(context.Context, string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return nil, ErrNotFound
}

func (f *failingStorage) Set(context.Context, string, []byte) error {
	f.sets++
	return f.setErr
}

func newTestStore(t *testing.T, storage Storage) (*Store, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	s := NewStore(storage, "cart", rec, zap.NewNop())
	s.Load(context.Background())
	return s, rec
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	s, _ := newTestStore(t, storage)

	s.AddToCart(ctx, saree("P1", 5000), 2)

	data, err := storage.Get(ctx, "cart")
	require.NoError(t, err)
	saved, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, s.State(), saved)

	s.ClearCart(ctx)
	data, err = storage.Get(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"subtotal":0,"totalItems":0}`, string(data))
}

func TestStore_RehydratesFromStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	first, _ := newTestStore(t, storage)
	first.AddToCart(ctx, saree("P1", 5000), 1)
	first.AddToCart(ctx, saree("P2", 12000, 9000), 2)

	second, _ := newTestStore(t, storage)
	assert.Equal(t, first.State(), second.State())
	assert.True(t, second.IsInCart("P2"))
	assert.Equal(t, 23000.0, second.State().Subtotal)
}

func TestStore_LoadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		s, _ := newTestStore(t, NewMemoryStorage())
		assert.Equal(t, models.EmptyCart(), s.State())
	})

	t.Run("malformed blob", func(t *testing.T) {
		storage := NewMemoryStorage()
		require.NoError(t, storage.Set(ctx, "cart", []byte("{not json")))

		core, logs := observer.New(zapcore.WarnLevel)
		s := NewStore(storage, "cart", nil, zap.New(core))
		s.Load(ctx)

		assert.Equal(t, models.EmptyCart(), s.State())
		assert.Equal(t, 1, logs.FilterMessage("saved cart is malformed, starting empty").Len())
	})

	t.Run("storage error", func(t *testing.T) {
		s, _ := newTestStore(t, &failingStorage{getErr: errors.New("connection refused")})
		assert.Equal(t, models.EmptyCart(), s.State())
	})

	t.Run("reload discards in-memory state", func(t *testing.T) {
		s, _ := newTestStore(t, &failingStorage{})
		s.AddToCart(ctx, saree("P1", 100), 1)
		s.Load(ctx)
		assert.Empty(t, s.State().Items)
	})
}

func TestStore_PersistFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	storage := &failingStorage{setErr: errors.New("quota exceeded")}

	core, logs := observer.New(zapcore.ErrorLevel)
	s := NewStore(storage, "cart", nil, zap.New(core))
	s.Load(ctx)

	state := s.AddToCart(ctx, saree("P1", 5000), 1)

	assert.Equal(t, 1, state.TotalItems)
	assert.True(t, s.IsInCart("P1"))
	assert.Equal(t, 1, storage.sets)
	assert.Equal(t, 1, logs.FilterMessage("failed to persist cart").Len())
}

func TestStore_Notifications(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestStore(t, NewMemoryStorage())
	p := saree("P1", 5000)
	p.Name = "Royal Banarasi Silk Saree"

	s.AddToCart(ctx, p, 1)
	s.UpdateQuantity(ctx, "P1", 3)
	s.RemoveFromCart(ctx, "P1")
	s.RemoveFromCart(ctx, "P1")
	s.ClearCart(ctx)

	assert.Equal(t, []models.Notification{
		{Message: "Royal Banarasi Silk Saree added to cart", Severity: models.SeveritySuccess},
		{Message: MsgItemRemoved, Severity: models.SeverityInfo},
		{Message: MsgItemRemoved, Severity: models.SeverityInfo},
		{Message: MsgCartCleared, Severity: models.SeverityInfo},
	}, rec.Notifications())
}

func TestStore_IgnoredAddDoesNotNotify(t *testing.T) {
	ctx := context.Background()
	storage := &failingStorage{}
	s, rec := newTestStore(t, storage)

	assert.Equal(t, models.EmptyCart(), s.AddToCart(ctx, saree("P1", 5000), 0))
	assert.Equal(t, models.EmptyCart(), s.AddToCart(ctx, saree("P1", 5000), -3))
	assert.Empty(t, rec.Notifications())
	assert.Zero(t, storage.sets)
}

func TestStore_UpdateQuantityFloor(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, NewMemoryStorage())
	s.AddToCart(ctx, saree("P1", 5000), 2)
	before := s.State()

	assert.Equal(t, before, s.UpdateQuantity(ctx, "P1", 0))
	assert.Equal(t, before, s.UpdateQuantity(ctx, "P1", -1))
	assert.Equal(t, 7, s.UpdateQuantity(ctx, "P1", 7).TotalItems)
}

func TestStore_RemoveThenIsInCart(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, NewMemoryStorage())
	s.AddToCart(ctx, saree("P1", 5000), 1)
	s.AddToCart(ctx, saree("P2", 3000), 1)

	s.RemoveFromCart(ctx, "P1")
	assert.False(t, s.IsInCart("P1"))

	before := s.State()
	assert.NotPanics(t, func() { s.RemoveFromCart(ctx, "P1") })
	assert.Equal(t, before, s.State())
}

func TestStore_StateIsACopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, NewMemoryStorage())
	s.AddToCart(ctx, saree("P1", 5000), 1)

	state := s.State()
	state.Items[0].Quantity = 99

	assert.Equal(t, 1, s.State().Items[0].Quantity)
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, "cart", KeyFor("cart", ""))
	assert.Equal(t, "cart:abc", KeyFor("cart", "abc"))
}
