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

// CartController handles cart-related requests
type CartController struct {
	Source catalog.Source
	Store  *cart.Store
}

// NewCartController creates a new CartController
func NewCartController(source catalog.Source, store *cart.Store) *CartController {
	return &CartController{
		Source: source,
		Store:  store,
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
}

// cartResponse is the payload returned by every cart endpoint: the current
// lines, the two-decimal total, the badge count and the drawer state.
type cartResponse struct {
	Lines         []models.CartLine `json:"lines"`
	Total         string            `json:"total"`
	Count         int               `json:"count"`
	DrawerVisible bool              `json:"drawer_visible"`
}

// AddToCart adds a catalog product to the session's cart, merging into an
// existing line when the product is already there.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	var req addToCartRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.ProductID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, ok := cc.findProduct(req.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	updated := cc.Store.AddToCart(sessionID, product)
	cc.respond(w, sessionID, updated)
}

// GetCart retrieves the session's cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	cc.respond(w, sessionID, cc.Store.GetCart(sessionID))
}

// RemoveFromCart deletes a product's line from the cart entirely. Removing a
// product that is not in the cart is a no-op.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	params := mux.Vars(r)
	updated := cc.Store.RemoveFromCart(sessionID, params["product_id"])
	cc.respond(w, sessionID, updated)
}

// IncreaseQuantity bumps a cart line's quantity by one
func (cc *CartController) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	params := mux.Vars(r)
	updated := cc.Store.IncreaseQuantity(sessionID, params["product_id"])
	cc.respond(w, sessionID, updated)
}

// DecreaseQuantity lowers a cart line's quantity by one, dropping the line
// when it reaches zero.
func (cc *CartController) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	params := mux.Vars(r)
	updated := cc.Store.DecreaseQuantity(sessionID, params["product_id"])
	cc.respond(w, sessionID, updated)
}

// OpenCart marks the session's cart drawer visible
func (cc *CartController) OpenCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	cc.Store.SetDrawer(sessionID, true)
	cc.respond(w, sessionID, cc.Store.GetCart(sessionID))
}

// CloseCart marks the session's cart drawer hidden
func (cc *CartController) CloseCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	cc.Store.SetDrawer(sessionID, false)
	cc.respond(w, sessionID, cc.Store.GetCart(sessionID))
}

func (cc *CartController) findProduct(id string) (models.Product, bool) {
	for _, product := range cc.Source.Products() {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}

func (cc *CartController) respond(w http.ResponseWriter, sessionID string, c models.Cart) {
	view := cc.Store.ViewFor(sessionID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{
		Lines:         c.Lines,
		Total:         c.Total().StringFixed(2),
		Count:         c.Count(),
		DrawerVisible: view.DrawerVisible,
	})
}
