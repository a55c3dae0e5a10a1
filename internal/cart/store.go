package cart

import (
	"sync"

	"github.com/andreasstove999/storefront-service-go/internal/catalog"
)

// Store keeps per-session carts in memory; a cart lives exactly as long as
// the process. All operations clamp their inputs instead of failing, so none
// of them returns an error.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns a copy of the session's cart. An unknown session yields an
// empty cart.
func (s *Store) Get(session string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(session)
}

// Add puts qty units of the product in the cart. An existing line accumulates;
// the stored quantity is clamped to the product's stock. Adding a product with
// zero stock clamps to zero, which means no line is kept.
func (s *Store) Add(session string, p catalog.Product, qty int) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(session)
	if qty < 0 {
		qty = 0
	}

	// An existing line keeps its original snapshot; clamp against that.
	i := c.findLine(p.ID)
	if i >= 0 {
		c.Lines[i].Quantity = clamp(c.Lines[i].Quantity+qty, c.Lines[i].Product.Stock)
		if c.Lines[i].Quantity == 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return s.snapshot(session)
	}

	if q := clamp(qty, p.Stock); q > 0 {
		c.Lines = append(c.Lines, Line{Product: p, Quantity: q})
	}
	return s.snapshot(session)
}

// SetQuantity sets an existing line to qty, clamped to [0, stock]. Zero
// removes the line; an unknown product id is a no-op.
func (s *Store) SetQuantity(session string, productID, qty int) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(session)
	i := c.findLine(productID)
	if i < 0 {
		return s.snapshot(session)
	}

	q := clamp(qty, c.Lines[i].Product.Stock)
	if q == 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	} else {
		c.Lines[i].Quantity = q
	}
	return s.snapshot(session)
}

// Remove drops the line for productID if present.
func (s *Store) Remove(session string, productID int) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(session)
	if i := c.findLine(productID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
	return s.snapshot(session)
}

// SetOpen toggles the sidebar visibility flag. Line items are untouched.
func (s *Store) SetOpen(session string, open bool) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(session).Open = open
	return s.snapshot(session)
}

// RequestCheckout marks the cart as heading to checkout. A pure flag; order
// processing is out of scope.
func (s *Store) RequestCheckout(session string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(session).CheckoutRequested = true
	return s.snapshot(session)
}

func (s *Store) cart(session string) *Cart {
	c, ok := s.carts[session]
	if !ok {
		c = &Cart{}
		s.carts[session] = c
	}
	return c
}

func (s *Store) snapshot(session string) Cart {
	c, ok := s.carts[session]
	if !ok {
		return Cart{Lines: []Line{}}
	}
	cp := *c
	cp.Lines = make([]Line, len(c.Lines))
	copy(cp.Lines, c.Lines)
	return cp
}

func clamp(qty, stock int) int {
	if qty < 0 {
		return 0
	}
	if qty > stock {
		return stock
	}
	return qty
}
