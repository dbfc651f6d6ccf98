package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-shopcart/middleware"
	"go-shopcart/models"
	"go-shopcart/stores"
	"go-shopcart/utils"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartController handles cart requests. Products supplies the
// name/price snapshot taken when an item is added.
type CartController struct {
	Carts    stores.CartStore
	Products stores.ProductStore
}

// NewCartController creates a new CartController
func NewCartController(carts stores.CartStore, products stores.ProductStore) *CartController {
	return &CartController{Carts: carts, Products: products}
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type updateCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	// Quantity is replaced verbatim; no floor is enforced here
	Quantity int `json:"quantity"`
}

type removeFromCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type cartResponse struct {
	models.Cart
	Total float64 `json:"total"`
}

// GetCart returns the user's cart with its recomputed total, creating
// an empty cart on first read
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	cart, err := cc.Carts.GetOrCreate(r.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Msg("fetching cart")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, cartResponse{Cart: cart, Total: cart.Total()})
}

// AddToCart adds a product to the cart, merging quantities when the
// product is already present
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := cc.Products.FindByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Msg("fetching product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  req.Quantity,
	}
	if err := cc.Carts.AddItem(r.Context(), user.ID, item); err != nil {
		log.Error().Err(err).Msg("adding cart item")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Product added to cart")
}

// UpdateCart replaces the quantity of a product already in the cart
func (cc *CartController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	err = cc.Carts.UpdateQuantity(r.Context(), user.ID, productID, req.Quantity)
	switch {
	case errors.Is(err, stores.ErrCartNotFound):
		utils.WriteError(w, http.StatusNotFound, "Cart not found")
	case errors.Is(err, stores.ErrItemNotFound):
		utils.WriteError(w, http.StatusNotFound, "Product not in cart")
	case err != nil:
		log.Error().Err(err).Msg("updating cart item")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.WriteMessage(w, http.StatusOK, "Cart updated")
	}
}

// RemoveFromCart drops a product from the cart. Removing a product
// that is not in the cart succeeds as a no-op.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req removeFromCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	err = cc.Carts.RemoveItem(r.Context(), user.ID, productID)
	switch {
	case errors.Is(err, stores.ErrCartNotFound):
		utils.WriteError(w, http.StatusNotFound, "Cart not found")
	case err != nil:
		log.Error().Err(err).Msg("removing cart item")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.WriteMessage(w, http.StatusOK, "Product removed from cart")
	}
}

// ClearCart empties the cart, creating it empty if it does not exist
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := cc.Carts.Clear(r.Context(), user.ID); err != nil {
		log.Error().Err(err).Msg("clearing cart")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Cart cleared")
}
