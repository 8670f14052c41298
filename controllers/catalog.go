package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/cart"
	"go-storefront/catalog"
	"go-storefront/middleware"
	"go-storefront/models"
)

// CatalogController handles product listing requests
type CatalogController struct {
	Source catalog.Source
	Store  *cart.Store
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(source catalog.Source, store *cart.Store) *CatalogController {
	return &CatalogController{
		Source: source,
		Store:  store,
	}
}

// GetProducts returns the visible product list for the session: the catalog
// filtered by the search text and ordered by the sort option. "search" and
// "sort" query parameters update the session's view state when present; the
// last submitted values persist across requests.
func (cc *CatalogController) GetProducts(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	query := r.URL.Query()
	if query.Has("search") {
		cc.Store.SetSearch(sessionID, query.Get("search"))
	}
	if query.Has("sort") {
		cc.Store.SetSort(sessionID, models.ParseSortOption(query.Get("sort")))
	}

	view := cc.Store.ViewFor(sessionID)
	visible := catalog.VisibleProducts(cc.Source.Products(), view.SearchText, view.Sort)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(visible)
}

// GetProductByID returns a single product by its catalog ID
func (cc *CatalogController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	for _, product := range cc.Source.Products() {
		if product.ID == params["id"] {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(product)
			return
		}
	}
	http.Error(w, "Product not found", http.StatusNotFound)
}
