package routes

import (
	"go-storefront/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, catalogController *controllers.CatalogController, cartController *controllers.CartController, healthController *controllers.HealthController) {
	// Product routes
	router.HandleFunc("/products", catalogController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", catalogController.GetProductByID).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart/open", cartController.OpenCart).Methods("POST")
	router.HandleFunc("/cart/close", cartController.CloseCart).Methods("POST")
	router.HandleFunc("/cart/{product_id}", cartController.RemoveFromCart).Methods("DELETE")
	router.HandleFunc("/cart/{product_id}/increase", cartController.IncreaseQuantity).Methods("POST")
	router.HandleFunc("/cart/{product_id}/decrease", cartController.DecreaseQuantity).Methods("POST")

	// Health
	router.HandleFunc("/healthz", healthController.Healthz).Methods("GET")
}
