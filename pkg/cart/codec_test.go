package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	p2 := saree("P2", 12000, 9000)
	p2.Tags = []string{"Patola", "Silk"}
	p2.CareInstructions = []string{"Dry clean only"}
	state := apply(
		AddItem{Product: saree("P1", 5000), Quantity: 2},
		AddItem{Product: p2, Quantity: 1},
	)

	data, err := Encode(state)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	if diff := cmp.Diff(state, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_Layout(t *testing.T) {
	data, err := Encode(models.CartState{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"subtotal":0,"totalItems":0}`, string(data))

	data, err = Encode(apply(AddItem{Product: saree("P2", 12000, 9000), Quantity: 1}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"discountPrice":9000`)
	assert.Contains(t, string(data), `"quantity":1`)
	assert.Contains(t, string(data), `"totalItems":1`)
}

func TestDecode_RejectsNonObjects(t *testing.T) {
	for _, blob := range []string{"", "{", "[1,2]", `"cart"`, `{"items":"none"}`, `{"items":[{"quantity":"two"}]}`} {
		state, err := Decode([]byte(blob))
		assert.Error(t, err, "blob %q", blob)
		assert.Equal(t, models.EmptyCart(), state)
	}
}

func TestDecode_RepairsStaleAggregates(t *testing.T) {
	blob := `{
		"items": [
			{"product": {"id": "P1", "name": "One", "price": 5000}, "quantity": 2},
			{"product": {"id": "", "name": "Nameless", "price": 100}, "quantity": 1},
			{"product": {"id": "P2", "name": "Two", "price": 12000, "discountPrice": 9000}, "quantity": 0},
			{"product": {"id": "P1", "name": "One", "price": 5000}, "quantity": 1}
		],
		"subtotal": 1,
		"totalItems": 99
	}`

	state, err := Decode([]byte(blob))
	require.NoError(t, err)

	require.Len(t, state.Items, 1)
	assert.Equal(t, "P1", state.Items[0].Product.ID)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 15000.0, state.Subtotal)
	assert.Equal(t, 3, state.TotalItems)
}

func TestDecode_MissingItemsIsEmpty(t *testing.T) {
	state, err := Decode([]byte(`{"subtotal": 500}`))
	require.NoError(t, err)
	assert.Equal(t, models.EmptyCart(), state)
}
