// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront/internal/domain/product"
)

// Line is a product snapshot plus a quantity. At most one line exists per
// product id; adding an already-present product raises its quantity instead.
type Line struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Cart is the ordered sequence of lines owned by a session
type Cart []Line

// Add upserts a product into the cart: quantity+1 when the product is
// already present, otherwise a new line with quantity 1
func (c *Cart) Add(p product.Product) {
	for i := range *c {
		if (*c)[i].ID == p.ID {
			(*c)[i].Quantity++
			return
		}
	}
	*c = append(*c, Line{Product: p, Quantity: 1})
}

// Remove drops the line for the given product id. Removing an absent id is
// a no-op.
func (c *Cart) Remove(productID string) bool {
	for i := range *c {
		if (*c)[i].ID == productID {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity sets the quantity for an existing line, clamped to a minimum
// of 1. Returns false when no line matches.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}
	for i := range *c {
		if (*c)[i].ID == productID {
			(*c)[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Adjust changes an existing line's quantity by delta, clamped to 1
func (c *Cart) Adjust(productID string, delta int) bool {
	for i := range *c {
		if (*c)[i].ID == productID {
			q := (*c)[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			(*c)[i].Quantity = q
			return true
		}
	}
	return false
}

// Clear empties the cart
func (c *Cart) Clear() {
	*c = Cart{}
}

// Line returns the line for a product id, if present
func (c Cart) Line(productID string) (Line, bool) {
	for _, l := range c {
		if l.ID == productID {
			return l, true
		}
	}
	return Line{}, false
}

// Subtotal is the sum of price times quantity across all lines
func (c Cart) Subtotal() product.Price {
	var total product.Price
	for _, l := range c {
		total += l.CurrentPrice * product.Price(l.Quantity)
	}
	return total
}

// TotalQuantity is the sum of quantities across all lines
func (c Cart) TotalQuantity() int {
	total := 0
	for _, l := range c {
		total += l.Quantity
	}
	return total
}

// Clone returns an independent copy of the cart
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
