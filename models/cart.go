package models

// CartEntry pairs a product with the quantity held in the cart.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartState is the persisted cart layout. Subtotal and TotalItems are always
// derived from Items and recomputed after every change.
type CartState struct {
	Items      []CartEntry `json:"items"`
	Subtotal   float64     `json:"subtotal"`
	TotalItems int         `json:"totalItems"`
}

// EmptyCart returns the initial cart state.
func EmptyCart() CartState {
	return CartState{Items: []CartEntry{}}
}

// Find returns the index of the entry holding productID.
func (s CartState) Find(productID string) (int, bool) {
	for i, item := range s.Items {
		if item.Product.ID == productID {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether productID has an entry.
func (s CartState) Contains(productID string) bool {
	_, ok := s.Find(productID)
	return ok
}
