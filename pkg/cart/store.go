package cart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/notify"
)

const (
	MsgItemRemoved = "Item removed from cart"
	MsgCartCleared = "Cart cleared"
)

// AddedMessage is the confirmation shown after a product is added.
func AddedMessage(productName string) string {
	return fmt.Sprintf("%s added to cart", productName)
}

// Store owns one cart: the current state, the storage key it persists under, and the
// notifier that confirms changes. A Store is not safe for concurrent use; callers
// serialize access the way a UI event loop would.
type Store struct {
	storage  Storage
	key      string
	notifier notify.Notifier
	logger   *zap.Logger
	state    models.CartState
}

// NewStore returns a store holding an empty cart. Call Load to rehydrate it.
func NewStore(storage Storage, key string, notifier notify.Notifier, logger *zap.Logger) *Store {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		storage:  storage,
		key:      key,
		notifier: notifier,
		logger:   logger.With(zap.String("cart_key", key)),
		state:    models.EmptyCart(),
	}
}

// Load replaces the in-memory cart with the persisted one. A missing or unreadable
// blob leaves the cart empty; nothing is surfaced to the caller.
func (s *Store) Load(ctx context.Context) {
	s.state = models.EmptyCart()

	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("failed to read saved cart, starting empty", zap.Error(err))
		}
		return
	}

	state, err := Decode(data)
	if err != nil {
		s.logger.Warn("saved cart is malformed, starting empty", zap.Error(err))
		return
	}
	s.state = state
}

// State returns a copy of the current cart.
func (s *Store) State() models.CartState {
	items := make([]models.CartEntry, len(s.state.Items))
	copy(items, s.state.Items)
	return models.CartState{Items: items, Subtotal: s.state.Subtotal, TotalItems: s.state.TotalItems}
}

// AddToCart adds quantity of product, merging into an existing entry. Quantities
// below 1 are ignored and raise no notification.
func (s *Store) AddToCart(ctx context.Context, product models.Product, quantity int) models.CartState {
	if quantity < 1 {
		return s.State()
	}
	s.dispatch(ctx, AddItem{Product: product, Quantity: quantity})
	notify.Success(s.notifier, AddedMessage(product.Name))
	return s.State()
}

// RemoveFromCart drops the entry for productID. Removing an absent product still notifies.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) models.CartState {
	s.dispatch(ctx, RemoveItem{ProductID: productID})
	notify.Info(s.notifier, MsgItemRemoved)
	return s.State()
}

// UpdateQuantity sets the quantity of an entry. Quantities below 1 are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) models.CartState {
	s.dispatch(ctx, UpdateQuantity{ProductID: productID, Quantity: quantity})
	return s.State()
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) models.CartState {
	s.dispatch(ctx, ClearCart{})
	notify.Info(s.notifier, MsgCartCleared)
	return s.State()
}

// IsInCart reports whether productID has an entry in the cart.
func (s *Store) IsInCart(productID string) bool {
	return s.state.Contains(productID)
}

func (s *Store) dispatch(ctx context.Context, cmd Command) {
	s.state = Reduce(s.state, cmd)
	s.persist(ctx)
}

// persist writes the cart best-effort. A failed write is logged and the in-memory
// state is kept.
func (s *Store) persist(ctx context.Context) {
	data, err := Encode(s.state)
	if err != nil {
		s.logger.Error("failed to encode cart", zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.Error("failed to persist cart", zap.Error(err))
	}
}
