// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// ValidStatus reports whether s is one of the known order statuses
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethodCOD is the only payment method the storefront offers
const PaymentMethodCOD = "Cash on Delivery"

// Address is the shipping address captured at checkout
type Address struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Landmark     string `json:"landmark,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// Validate checks the fields required to ship an order
func (a *Address) Validate() error {
	if strings.TrimSpace(a.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(a.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if strings.TrimSpace(a.AddressLine1) == "" {
		return fmt.Errorf("address line is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("city is required")
	}
	if strings.TrimSpace(a.Pincode) == "" {
		return fmt.Errorf("pincode is required")
	}
	return nil
}

// Order is an append-only record on the owning user. Line items are frozen
// product snapshots; only the status changes after creation, and only
// through an administrator.
type Order struct {
	OrderID         string        `json:"orderId"`
	Items           []cart.Line   `json:"items"`
	ShippingAddress Address       `json:"shippingAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
	Subtotal        product.Price `json:"subtotal"`
	Shipping        product.Price `json:"shipping"`
	Tax             product.Price `json:"tax"`
	Total           product.Price `json:"total"`
	OrderDate       time.Time     `json:"orderDate"`
	Status          Status        `json:"status"`
}

// Totals is the computed money breakdown for a set of lines
type Totals struct {
	Subtotal product.Price `json:"subtotal"`
	Shipping product.Price `json:"shipping"`
	Tax      product.Price `json:"tax"`
	Total    product.Price `json:"total"`
}

const (
	freeShippingAbove = product.Price(500)
	flatShippingFee   = product.Price(40)
	taxRatePercent    = 18
)

// CalculateTotals computes subtotal, shipping and tax for the given lines.
// Orders above the free-shipping threshold ship free; tax is a flat 18% of
// the subtotal.
func CalculateTotals(items []cart.Line) Totals {
	var subtotal product.Price
	for _, l := range items {
		subtotal += l.CurrentPrice * product.Price(l.Quantity)
	}

	shipping := flatShippingFee
	if subtotal > freeShippingAbove {
		shipping = 0
	}
	tax := subtotal * taxRatePercent / 100

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// NewOrderID generates a short uppercase order reference
func NewOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return raw[:9]
}
