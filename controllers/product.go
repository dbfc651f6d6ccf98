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

// ProductController handles the shared product catalog: public reads
// plus seller/admin management
type ProductController struct {
	Products stores.ProductStore
}

// NewProductController creates a new ProductController
func NewProductController(products stores.ProductStore) *ProductController {
	return &ProductController{Products: products}
}

// productRequest carries the writable product fields. Price and Stock
// are pointers so a legitimate zero passes the required check.
type productRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageLinks  []string `json:"imageLinks" validate:"required,min=1,dive,required"`
	Brand       string   `json:"brand" validate:"required"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
}

func (req productRequest) apply(product *models.Product) {
	product.Name = req.Name
	product.Description = req.Description
	product.Price = *req.Price
	product.ImageLinks = req.ImageLinks
	product.Brand = req.Brand
	product.Stock = *req.Stock
}

// updateProductRequest is the productRequest plus the id of the target
type updateProductRequest struct {
	ID string `json:"id" validate:"required"`
	productRequest
}

// GetProducts lists the whole catalog
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Products.FindAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("fetching products")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// GetProductByID returns a single product
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := pc.Products.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Msg("fetching product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

// CreateProduct lists a new product owned by the requesting seller
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
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

	created, err := pc.Products.Create(r.Context(), product)
	if err != nil {
		log.Error().Err(err).Msg("creating product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, created)
}

// UpdateProduct modifies a product; only its seller or an admin may
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := pc.Products.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Msg("fetching product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !product.OwnedBy(user) {
		utils.WriteError(w, http.StatusForbidden, "Not authorized to update this product")
		return
	}

	req.apply(&product)
	if err := pc.Products.Update(r.Context(), product); err != nil {
		log.Error().Err(err).Msg("updating product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product; only its seller or an admin may
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req struct {
		ID string `json:"id" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if fieldErrors := utils.ValidateStruct(req); fieldErrors != nil {
		utils.WriteFieldErrors(w, fieldErrors)
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := pc.Products.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Msg("fetching product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !product.OwnedBy(user) {
		utils.WriteError(w, http.StatusForbidden, "Not authorized to delete this product")
		return
	}

	if err := pc.Products.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Msg("deleting product")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Product removed")
}
