package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line of a cart. Name and Price are snapshots taken
// when the product was added, not live references.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart represents a user's shopping cart. Each user owns at most one.
type Cart struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID `bson:"user_id" json:"userId"`
	Products []CartItem         `bson:"products" json:"products"`
}

// AddItem merges the item into the cart. If a line for the same product
// already exists its quantity is incremented, otherwise the item is
// appended. At most one line per product id.
func (c *Cart) AddItem(item CartItem) {
	for i, existing := range c.Products {
		if existing.ProductID == item.ProductID {
			c.Products[i].Quantity += item.Quantity
			return
		}
	}
	c.Products = append(c.Products, item)
}

// UpdateQuantity replaces the quantity of the line for productID
// verbatim. Returns false if no such line exists.
func (c *Cart) UpdateQuantity(productID primitive.ObjectID, quantity int) bool {
	for i, item := range c.Products {
		if item.ProductID == productID {
			c.Products[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveItem filters out the line for productID. Removing a product
// that is not in the cart is a no-op.
func (c *Cart) RemoveItem(productID primitive.ObjectID) {
	kept := make([]CartItem, 0, len(c.Products))
	for _, item := range c.Products {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Products = kept
}

// Clear empties the cart without deleting it.
func (c *Cart) Clear() {
	c.Products = []CartItem{}
}

// Total sums price times quantity over all lines. The total is always
// recomputed from the current lines, never stored.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Products {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
