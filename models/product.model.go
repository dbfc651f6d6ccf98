package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents an item listed for sale. Seller references the
// user that created the listing and gates who may modify it.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	ImageLinks  []string           `bson:"image_links" json:"imageLinks"`
	Brand       string             `bson:"brand" json:"brand"`
	Stock       int                `bson:"stock" json:"stock"`
	Seller      primitive.ObjectID `bson:"seller" json:"seller"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OwnedBy reports whether the given user may modify this product:
// the seller that created it, or an admin.
func (p Product) OwnedBy(user User) bool {
	return user.Role == RoleAdmin || p.Seller == user.ID
}
