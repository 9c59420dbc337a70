// Package storefront exposes the catalog and per-session carts to transport layers.
package storefront

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/cart"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/catalog"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/filter"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/notify"
)

// Listing is a filtered product page.
type Listing struct {
	Products      []models.Product
	Total         int
	ActiveFilters int
}

// CartResult is the cart after an operation plus the notifications it raised.
type CartResult struct {
	Cart          models.CartState
	Notifications []models.Notification
}

// Service serves catalog reads and per-session cart operations.
type Service struct {
	catalog  *catalog.Catalog
	storage  cart.Storage
	baseKey  string
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewService wires the catalog and cart storage. Every cart operation also goes to
// notifier, which may be nil.
func NewService(c *catalog.Catalog, storage cart.Storage, baseKey string, notifier notify.Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:  c,
		storage:  storage,
		baseKey:  baseKey,
		notifier: notifier,
		logger:   logger,
	}
}

// ListProducts filters and sorts the catalog.
func (s *Service) ListProducts(spec models.FilterSpec) Listing {
	products := s.catalog.Filter(spec)
	return Listing{
		Products:      products,
		Total:         s.catalog.Len(),
		ActiveFilters: filter.ActiveCount(spec),
	}
}

// Product returns one product by id.
func (s *Service) Product(id string) (models.Product, error) {
	if strings.TrimSpace(id) == "" {
		return models.Product{}, NewInvalidArgument(ErrMsgProductIDRequired)
	}
	p, ok := s.catalog.ByID(id)
	if !ok {
		return models.Product{}, NewNotFound(ErrMsgProductNotFound)
	}
	return p, nil
}

// Featured returns up to limit featured products.
func (s *Service) Featured(limit int) []models.Product {
	return s.catalog.Featured(limit)
}

// NewArrivals returns up to limit new arrivals.
func (s *Service) NewArrivals(limit int) []models.Product {
	return s.catalog.NewArrivals(limit)
}

// BestSellers returns up to limit best sellers.
func (s *Service) BestSellers(limit int) []models.Product {
	return s.catalog.BestSellers(limit)
}

// Facets returns the filter panel metadata.
func (s *Service) Facets() models.FilterMetadata {
	return s.catalog.Facets()
}

// Cart returns the session cart.
func (s *Service) Cart(ctx context.Context, session string) models.CartState {
	store, _ := s.open(ctx, session)
	return store.State()
}

// InCart reports whether productID is in the session cart.
func (s *Service) InCart(ctx context.Context, session, productID string) bool {
	store, _ := s.open(ctx, session)
	return store.IsInCart(productID)
}

// AddItem adds quantity of a catalog product to the session cart.
func (s *Service) AddItem(ctx context.Context, session, productID string, quantity int) (CartResult, error) {
	if quantity < 1 {
		return CartResult{}, NewInvalidArgument(ErrMsgQuantityPositive)
	}
	p, err := s.Product(productID)
	if err != nil {
		return CartResult{}, err
	}

	store, rec := s.open(ctx, session)
	state := store.AddToCart(ctx, p, quantity)
	return CartResult{Cart: state, Notifications: rec.Notifications()}, nil
}

// UpdateItem sets the quantity of an entry already in the cart.
func (s *Service) UpdateItem(ctx context.Context, session, productID string, quantity int) (CartResult, error) {
	if quantity < 1 {
		return CartResult{}, NewInvalidArgument(ErrMsgQuantityPositive)
	}

	store, rec := s.open(ctx, session)
	if !store.IsInCart(productID) {
		return CartResult{}, NewNotFound(ErrMsgItemNotInCart)
	}
	state := store.UpdateQuantity(ctx, productID, quantity)
	return CartResult{Cart: state, Notifications: rec.Notifications()}, nil
}

// RemoveItem drops an entry. Removing a product that is not in the cart succeeds.
func (s *Service) RemoveItem(ctx context.Context, session, productID string) CartResult {
	store, rec := s.open(ctx, session)
	state := store.RemoveFromCart(ctx, productID)
	return CartResult{Cart: state, Notifications: rec.Notifications()}
}

// ClearCart empties the session cart.
func (s *Service) ClearCart(ctx context.Context, session string) CartResult {
	store, rec := s.open(ctx, session)
	state := store.ClearCart(ctx)
	return CartResult{Cart: state, Notifications: rec.Notifications()}
}

// open loads the session cart into a fresh store that records its notifications.
func (s *Service) open(ctx context.Context, session string) (*cart.Store, *notify.Recorder) {
	rec := &notify.Recorder{}
	store := cart.NewStore(s.storage, cart.KeyFor(s.baseKey, session), notify.Multi(rec, s.notifier), s.logger)
	store.Load(ctx)
	return store, rec
}

// ParseLimit reads an optional positive limit. An empty value means the default.
func ParseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, NewInvalidArgument(ErrMsgInvalidLimit)
	}
	return n, nil
}
