package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddItemMergesQuantities(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := Cart{UserID: primitive.NewObjectID(), Products: []CartItem{}}

	cart.AddItem(CartItem{ProductID: productID, Name: "Keyboard", Price: 49.99, Quantity: 2})
	cart.AddItem(CartItem{ProductID: productID, Name: "Keyboard", Price: 49.99, Quantity: 3})

	require.Len(t, cart.Products, 1)
	assert.Equal(t, 5, cart.Products[0].Quantity)
	assert.InDelta(t, 49.99*5, cart.Total(), 1e-9)
}

func TestAddItemAppendsDistinctProducts(t *testing.T) {
	cart := Cart{Products: []CartItem{}}

	cart.AddItem(CartItem{ProductID: primitive.NewObjectID(), Name: "Mouse", Price: 20, Quantity: 1})
	cart.AddItem(CartItem{ProductID: primitive.NewObjectID(), Name: "Monitor", Price: 150, Quantity: 2})

	assert.Len(t, cart.Products, 2)
}

func TestUpdateQuantityReplacesVerbatim(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := Cart{Products: []CartItem{{ProductID: productID, Price: 10, Quantity: 4}}}

	require.True(t, cart.UpdateQuantity(productID, 1))
	assert.Equal(t, 1, cart.Products[0].Quantity)
}

func TestUpdateQuantityMissingItem(t *testing.T) {
	cart := Cart{Products: []CartItem{}}

	assert.False(t, cart.UpdateQuantity(primitive.NewObjectID(), 2))
}

func TestRemoveItemIsNoOpWhenAbsent(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := Cart{Products: []CartItem{{ProductID: productID, Price: 5, Quantity: 1}}}

	cart.RemoveItem(primitive.NewObjectID())
	assert.Len(t, cart.Products, 1)

	cart.RemoveItem(productID)
	assert.Empty(t, cart.Products)
}

func TestClearIsIdempotent(t *testing.T) {
	cart := Cart{Products: []CartItem{
		{ProductID: primitive.NewObjectID(), Price: 10, Quantity: 2},
	}}

	cart.Clear()
	assert.Empty(t, cart.Products)
	assert.Zero(t, cart.Total())

	cart.Clear()
	assert.Empty(t, cart.Products)
}

func TestTotalRecomputedFromCurrentLines(t *testing.T) {
	first := primitive.NewObjectID()
	cart := Cart{Products: []CartItem{
		{ProductID: first, Price: 10, Quantity: 2},
		{ProductID: primitive.NewObjectID(), Price: 3.5, Quantity: 4},
	}}

	assert.InDelta(t, 34, cart.Total(), 1e-9)

	cart.RemoveItem(first)
	assert.InDelta(t, 14, cart.Total(), 1e-9)
}
