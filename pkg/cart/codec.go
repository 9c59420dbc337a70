package cart

import (
	"encoding/json"
	"fmt"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

// Encode serializes the full cart state.
func Encode(state models.CartState) ([]byte, error) {
	if state.Items == nil {
		state.Items = []models.CartEntry{}
	}
	return json.Marshal(state)
}

// Decode parses a stored cart. Bytes that are not a JSON object fail. A parsed blob is
// repaired rather than trusted: entries without a product id or with a quantity below 1
// are dropped, duplicate product ids are merged into the first entry, and the totals
// are recomputed from the surviving items.
func Decode(data []byte) (models.CartState, error) {
	var raw models.CartState
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.EmptyCart(), fmt.Errorf("decode cart: %w", err)
	}

	items := make([]models.CartEntry, 0, len(raw.Items))
	index := make(map[string]int, len(raw.Items))
	for _, item := range raw.Items {
		if item.Product.ID == "" || item.Quantity < 1 {
			continue
		}
		if i, ok := index[item.Product.ID]; ok {
			items[i].Quantity += item.Quantity
			continue
		}
		index[item.Product.ID] = len(items)
		items = append(items, item)
	}
	return withTotals(items), nil
}
