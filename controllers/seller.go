package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-shopcart/middleware"
	"go-shopcart/models"
	"go-shopcart/stores"
	"go-shopcart/utils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SellerController handles the seller-scoped product routes. Every
// operation is restricted to the authenticated seller's own listings.
type SellerController struct {
	Products stores.ProductStore
}

// NewSellerController creates a new SellerController
func NewSellerController(products stores.ProductStore) *SellerController {
	return &SellerController{Products: products}
}

// GetOwnProducts lists the authenticated seller's products
func (sc *SellerController) GetOwnProducts(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	products, err := sc.Products.FindBySeller(r.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Msg("fetching seller products")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// CreateProduct lists a new product under the authenticated seller
func (sc *SellerController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	product := models.Product{Seller: user.ID}
	req.apply(&product)

	created, err := sc.Products.Create(r.Context(), product)
	if err != nil {
		log.Error().Err(err).Msg("creating product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, created)
}

// fetchOwned resolves the path product id and checks the seller owns it
func (sc *SellerController) fetchOwned(w http.ResponseWriter, r *http.Request) (models.Product, bool) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return models.Product{}, false
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["productId"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return models.Product{}, false
	}

	product, err := sc.Products.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return models.Product{}, false
		}
		log.Error().Err(err).Msg("fetching product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return models.Product{}, false
	}

	if product.Seller != user.ID {
		utils.WriteError(w, http.StatusForbidden, "Not authorized to modify this product")
		return models.Product{}, false
	}
	return product, true
}

// UpdateProduct modifies one of the seller's own products
func (sc *SellerController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := sc.fetchOwned(w, r)
	if !ok {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	req.apply(&product)
	if err := sc.Products.Update(r.Context(), product); err != nil {
		log.Error().Err(err).Msg("updating product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

// DeleteProduct removes one of the seller's own products
func (sc *SellerController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := sc.fetchOwned(w, r)
	if !ok {
		return
	}

	if err := sc.Products.Delete(r.Context(), product.ID); err != nil {
		log.Error().Err(err).Msg("deleting product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Product removed successfully")
}
