package routes

import (
	"go-shopcart/controllers"
	"go-shopcart/middleware"
	"go-shopcart/models"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	auth *middleware.Auth,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	sellerController *controllers.SellerController,
	cartController *controllers.CartController,
) {
	// Public auth routes
	router.HandleFunc("/auth/signup", userController.Signup).Methods("POST")
	router.HandleFunc("/auth/login", userController.Login).Methods("POST")

	// Signout only needs a valid token, not a loaded user
	signout := router.PathPrefix("/auth").Subrouter()
	signout.Use(auth.Authenticate)
	signout.HandleFunc("/signout", userController.Signout).Methods("POST")

	// Profile routes
	profile := router.PathPrefix("/users").Subrouter()
	profile.Use(auth.Authenticate)
	profile.Use(auth.LoadUser)
	profile.HandleFunc("/me", userController.GetProfile).Methods("GET")
	profile.HandleFunc("/me", userController.UpdateProfile).Methods("PUT")
	profile.HandleFunc("/me", userController.DeleteAccount).Methods("DELETE")

	// Public catalog routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Product management: sellers and admins
	manage := router.PathPrefix("/products").Subrouter()
	manage.Use(auth.Authenticate)
	manage.Use(auth.LoadUser)
	manage.Use(auth.RequireRole(models.RoleSeller, models.RoleAdmin))
	manage.HandleFunc("", productController.CreateProduct).Methods("POST")
	manage.HandleFunc("", productController.UpdateProduct).Methods("PUT")
	manage.HandleFunc("", productController.DeleteProduct).Methods("DELETE")

	// Seller-scoped product routes
	seller := router.PathPrefix("/seller/products").Subrouter()
	seller.Use(auth.Authenticate)
	seller.Use(auth.LoadUser)
	seller.Use(auth.RequireRole(models.RoleSeller))
	seller.HandleFunc("", sellerController.GetOwnProducts).Methods("GET")
	seller.HandleFunc("", sellerController.CreateProduct).Methods("POST")
	seller.HandleFunc("/{productId}", sellerController.UpdateProduct).Methods("PUT")
	seller.HandleFunc("/{productId}", sellerController.DeleteProduct).Methods("DELETE")

	// Cart routes: customers only
	cart := router.PathPrefix("/cart").Subrouter()
	cart.Use(auth.Authenticate)
	cart.Use(auth.LoadUser)
	cart.Use(auth.RequireRole(models.RoleCustomer))
	cart.HandleFunc("", cartController.GetCart).Methods("GET")
	cart.HandleFunc("/add", cartController.AddToCart).Methods("POST")
	cart.HandleFunc("/update", cartController.UpdateCart).Methods("PUT")
	cart.HandleFunc("/remove", cartController.RemoveFromCart).Methods("DELETE")
	cart.HandleFunc("/clear", cartController.ClearCart).Methods("DELETE")
}
