package cart

import "github.com/andreasstove999/storefront-service-go/internal/catalog"

// Line holds a product snapshot taken at add time plus the chosen quantity.
// Later upstream price/stock changes do not rewrite lines already in the cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is one session's cart. Lines are insertion-ordered and unique per
// product id; quantity accumulates instead of duplicating a line.
type Cart struct {
	Lines             []Line `json:"items"`
	Open              bool   `json:"isOpen"`
	CheckoutRequested bool   `json:"checkoutRequested"`
}

// Subtotal sums the discounted line totals at full precision. Rounding happens
// only when formatting for display.
func (c Cart) Subtotal() float64 {
	var sum float64
	for _, ln := range c.Lines {
		sum += ln.Product.DiscountedPrice() * float64(ln.Quantity)
	}
	return sum
}

// TotalItems is the sum of all line quantities.
func (c Cart) TotalItems() int {
	var n int
	for _, ln := range c.Lines {
		n += ln.Quantity
	}
	return n
}

func (c Cart) findLine(productID int) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
