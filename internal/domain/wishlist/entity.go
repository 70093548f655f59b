// internal/domain/wishlist/entity.go
package wishlist

import (
	"github.com/your-org/storefront/internal/domain/product"
)

// Wishlist is a set of product snapshots, unique by product id
type Wishlist []product.Product

// Add inserts a product if it is not already present. Returns false when
// the product was already in the wishlist.
func (w *Wishlist) Add(p product.Product) bool {
	for _, existing := range *w {
		if existing.ID == p.ID {
			return false
		}
	}
	*w = append(*w, p)
	return true
}

// Remove drops the product with the given id; absent ids are a no-op
func (w *Wishlist) Remove(productID string) bool {
	for i := range *w {
		if (*w)[i].ID == productID {
			*w = append((*w)[:i], (*w)[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the wishlist
func (w *Wishlist) Clear() {
	*w = Wishlist{}
}

// Contains reports whether a product id is present
func (w Wishlist) Contains(productID string) bool {
	for _, p := range w {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the wishlist
func (w Wishlist) Clone() Wishlist {
	if w == nil {
		return Wishlist{}
	}
	out := make(Wishlist, len(w))
	copy(out, w)
	return out
}
