package cartstore

import (
	"sync"
	"time"

	"github.com/artisanlearn/storefront-api/models"
)

// Store holds every live cart, keyed by session ID. Carts are kept in
// insertion order with at most one line per product ID. Nothing here is
// persisted; a restart empties every cart.
type Store struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func New() *Store {
	return &Store{carts: make(map[string]*models.Cart)}
}

// AddToCart inserts a new line with quantity 1, or bumps the existing
// line by 1. Inventory is not checked here; quantity adjustment is where
// callers clamp against stock.
func (s *Store) AddToCart(sessionID string, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == product.ID {
			cart.Items[i].Quantity++
			cart.UpdatedAt = time.Now()
			return
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		Product:  product,
		Quantity: 1,
		AddedAt:  time.Now(),
	})
	cart.UpdatedAt = time.Now()
}

// AdjustQuantity applies a signed delta to the line for productID. A
// result of zero or below removes the line. Unknown product IDs are a
// no-op.
func (s *Store) AdjustQuantity(sessionID, productID string, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return
	}
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			s.setLine(cart, i, cart.Items[i].Quantity+delta)
			return
		}
	}
}

// SetQuantity replaces the quantity for productID outright. A target of
// zero or below removes the line. Unknown product IDs are a no-op.
func (s *Store) SetQuantity(sessionID, productID string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return
	}
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			s.setLine(cart, i, quantity)
			return
		}
	}
}

// RemoveItem drops the line for productID if present.
func (s *Store) RemoveItem(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return
	}
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now()
			return
		}
	}
}

// ClearCart empties the session's cart unconditionally.
func (s *Store) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// ItemCount returns the total quantity across all lines.
func (s *Store) ItemCount(sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return 0
	}
	var count int64
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the session's cart lines in insertion order.
func (s *Store) Items(sessionID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return nil
	}
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return items
}

// cart returns the session's cart, creating it on first use. Caller
// holds the lock.
func (s *Store) cart(sessionID string) *models.Cart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &models.Cart{SessionID: sessionID}
		s.carts[sessionID] = cart
	}
	return cart
}

// setLine writes a new quantity for the line at index i, removing the
// line when the quantity lands at or below zero. Caller holds the lock.
func (s *Store) setLine(cart *models.Cart, i int, quantity int64) {
	if quantity > 0 {
		cart.Items[i].Quantity = quantity
	} else {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}
	cart.UpdatedAt = time.Now()
}
