package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Line is one cart entry. Name, price, and image are snapshotted at add time
// so later catalog changes do not reprice an existing cart.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Image     string
	Quantity  int
}

// Store holds carts in memory keyed by storefront session id. Carts live only
// as long as the process; there is no cross-session persistence.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

// NewStore constructs an empty in-memory cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string][]Line)}
}

// Lines returns a copy of the session's cart in insertion order.
func (s *Store) Lines(sessionID string) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[sessionID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Upsert increments the quantity of an existing line or appends a new one.
func (s *Store) Upsert(sessionID string, line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			return
		}
	}
	s.carts[sessionID] = append(lines, line)
}

// SetQuantity replaces a line's quantity; zero removes the line. Returns
// false when the line does not exist.
func (s *Store) SetQuantity(sessionID string, productID int64, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity = quantity
		}
		return true
	}
	return false
}

// Remove deletes a line; no-op when absent.
func (s *Store) Remove(sessionID string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ProductID == productID {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// Clear discards the whole cart for the session.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
