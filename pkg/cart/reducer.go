package cart

import (
	"github.com/shopspring/decimal"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

// Command is a cart transition. The set of commands is closed: AddItem, RemoveItem,
// UpdateQuantity and ClearCart.
type Command interface {
	isCommand()
}

// AddItem adds Quantity units of Product, merging into an existing entry.
type AddItem struct {
	Product  models.Product
	Quantity int
}

// RemoveItem drops the entry for ProductID.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity replaces the quantity of the entry for ProductID.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (ClearCart) isCommand()      {}

// Reduce applies cmd to state and returns the next state. It never modifies state:
// every transition builds a fresh item slice and recomputes the totals. Commands that
// cannot apply (quantity below 1, unknown product id) return state unchanged.
func Reduce(state models.CartState, cmd Command) models.CartState {
	switch c := cmd.(type) {
	case AddItem:
		if c.Quantity < 1 {
			return state
		}
		items := cloneItems(state.Items)
		if i, ok := state.Find(c.Product.ID); ok {
			items[i].Quantity += c.Quantity
		} else {
			items = append(items, models.CartEntry{Product: c.Product, Quantity: c.Quantity})
		}
		return withTotals(items)

	case RemoveItem:
		items := make([]models.CartEntry, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID != c.ProductID {
				items = append(items, item)
			}
		}
		return withTotals(items)

	case UpdateQuantity:
		if c.Quantity < 1 {
			return state
		}
		items := cloneItems(state.Items)
		for i := range items {
			if items[i].Product.ID == c.ProductID {
				items[i].Quantity = c.Quantity
			}
		}
		return withTotals(items)

	case ClearCart:
		return models.EmptyCart()
	}
	return state
}

// Totals computes the derived aggregates: the sum of effective price times quantity,
// and the sum of quantities.
func Totals(items []models.CartEntry) (subtotal float64, totalItems int) {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Product.EffectivePrice()).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
		totalItems += item.Quantity
	}
	subtotal, _ = sum.Float64()
	return subtotal, totalItems
}

func withTotals(items []models.CartEntry) models.CartState {
	subtotal, totalItems := Totals(items)
	return models.CartState{Items: items, Subtotal: subtotal, TotalItems: totalItems}
}

func cloneItems(items []models.CartEntry) []models.CartEntry {
	out := make([]models.CartEntry, len(items), len(items)+1)
	copy(out, items)
	return out
}
