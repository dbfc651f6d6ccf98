package stores

import (
	"context"
	"errors"

	"go-shopcart/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors surfaced by the stores. Handlers translate these to
// HTTP statuses at the request boundary.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already used")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("product not in cart")
)

// UserStore owns user records.
type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductStore owns product listings.
type ProductStore interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error)
	Update(ctx context.Context, product models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CartStore owns per-user cart documents and applies the cart
// operations as read-modify-write against storage. There is no
// locking; concurrent mutations of the same cart can race and the
// last write wins.
type CartStore interface {
	// GetOrCreate fetches the user's cart, creating an empty one if
	// none exists. It never fails on a missing cart.
	GetOrCreate(ctx context.Context, userID primitive.ObjectID) (models.Cart, error)
	// AddItem merges the snapshot item into the user's cart, creating
	// the cart first if needed.
	AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) error
	// UpdateQuantity replaces the quantity of an existing line. Fails
	// with ErrCartNotFound or ErrItemNotFound.
	UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) error
	// RemoveItem drops the line for productID. A missing line is a
	// no-op; a missing cart fails with ErrCartNotFound.
	RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) error
	// Clear empties the user's cart, creating it empty if absent.
	Clear(ctx context.Context, userID primitive.ObjectID) error
	// Delete removes the user's cart document entirely. Used when the
	// owning account is deleted. A missing cart is a no-op.
	Delete(ctx context.Context, userID primitive.ObjectID) error
}
