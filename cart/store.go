package cart

import (
	"sync"

	"go-storefront/models"
)

// Store owns every session's cart and view state, in memory only. All
// operations are total: mutating a line that does not exist is a no-op, and
// every mutation returns a snapshot of the updated cart.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
	views map[string]*models.ViewState
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		carts: make(map[string]*models.Cart),
		views: make(map[string]*models.ViewState),
	}
}

// AddToCart merges the product into an existing line (quantity +1) or
// appends a new line with quantity 1 at the end of the cart.
func (s *Store) AddToCart(sessionID string, product models.Product) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(sessionID)
	for i := range c.Lines {
		if c.Lines[i].ID == product.ID {
			c.Lines[i].Quantity++
			return snapshot(c)
		}
	}
	c.Lines = append(c.Lines, models.CartLine{Product: product, Quantity: 1})
	return snapshot(c)
}

// RemoveFromCart deletes the product's line entirely, whatever its quantity.
func (s *Store) RemoveFromCart(sessionID, productID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(sessionID)
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
	return snapshot(c)
}

// IncreaseQuantity bumps the matching line's quantity by one.
func (s *Store) IncreaseQuantity(sessionID, productID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(sessionID)
	for i := range c.Lines {
		if c.Lines[i].ID == productID {
			c.Lines[i].Quantity++
			break
		}
	}
	return snapshot(c)
}

// DecreaseQuantity lowers the matching line's quantity by one. A line that
// would reach zero is removed, never kept at quantity 0.
func (s *Store) DecreaseQuantity(sessionID, productID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(sessionID)
	for i := range c.Lines {
		if c.Lines[i].ID != productID {
			continue
		}
		c.Lines[i].Quantity--
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		break
	}
	return snapshot(c)
}

// GetCart returns a snapshot of the session's cart; unknown sessions get an
// empty cart.
func (s *Store) GetCart(sessionID string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.carts[sessionID]; ok {
		return snapshot(c)
	}
	return models.Cart{Lines: []models.CartLine{}}
}

// ViewFor returns the session's current view state, defaults included.
func (s *Store) ViewFor(sessionID string) models.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.views[sessionID]; ok {
		return *v
	}
	return models.ViewState{}
}

// SetSearch records the last submitted search text for the session.
func (s *Store) SetSearch(sessionID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewLocked(sessionID).SearchText = text
}

// SetSort records the selected sort option for the session.
func (s *Store) SetSort(sessionID string, sortBy models.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewLocked(sessionID).Sort = sortBy
}

// SetDrawer opens or closes the session's cart drawer.
func (s *Store) SetDrawer(sessionID string, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewLocked(sessionID).DrawerVisible = visible
}

func (s *Store) cartLocked(sessionID string) *models.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &models.Cart{}
		s.carts[sessionID] = c
	}
	return c
}

func (s *Store) viewLocked(sessionID string) *models.ViewState {
	v, ok := s.views[sessionID]
	if !ok {
		v = &models.ViewState{}
		s.views[sessionID] = v
	}
	return v
}

func snapshot(c *models.Cart) models.Cart {
	lines := make([]models.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return models.Cart{Lines: lines}
}
