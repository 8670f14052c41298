package catalog

import (
	"github.com/shopspring/decimal"

	"go-storefront/models"
)

// DefaultProducts returns the built-in catalog used when neither CATALOG_URL
// nor CATALOG_FILE is configured.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Blue Shirt", Price: decimal.RequireFromString("19.99"), Images: []string{"/images/blue-shirt.jpg"}},
		{ID: "2", Name: "Red Hoodie", Price: decimal.RequireFromString("39.99"), Images: []string{"/images/red-hoodie.jpg"}},
		{ID: "3", Name: "Canvas Sneakers", Price: decimal.RequireFromString("49.99"), Images: []string{"/images/canvas-sneakers.jpg"}},
		{ID: "4", Name: "Denim Jacket", Price: decimal.RequireFromString("59.99"), Images: []string{"/images/denim-jacket.jpg"}},
		{ID: "5", Name: "Wool Beanie", Price: decimal.RequireFromString("12.50"), Images: []string{"/images/wool-beanie.jpg"}},
		{ID: "6", Name: "Leather Belt", Price: decimal.RequireFromString("24.00"), Images: []string{"/images/leather-belt.jpg"}},
		{ID: "7", Name: "Running Shorts", Price: decimal.RequireFromString("17.25"), Images: []string{"/images/running-shorts.jpg"}},
		{ID: "8", Name: "Aviator Sunglasses", Price: decimal.RequireFromString("89.99"), Images: []string{"/images/aviator-sunglasses.jpg"}},
	}
}
