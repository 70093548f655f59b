// internal/domain/user/entity.go
package user

import (
	"strings"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// Identity is the authenticated principal attached to a session. The block
// flag is set externally by an administrator and enforced at login.
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsBlock bool   `json:"isBlock"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

// User is the full per-identity record held by the resource store. Cart,
// wishlist and orders are embedded fields on the record, replaced wholesale
// by partial updates.
type User struct {
	Identity
	Password string            `json:"password,omitempty"`
	Wishlist wishlist.Wishlist `json:"wishlist"`
	Cart     cart.Cart         `json:"cart"`
	Orders   []order.Order     `json:"orders"`
}

// DisplayName returns the user's name, falling back to the email
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}
