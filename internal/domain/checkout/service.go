// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/user"
)

// Records is the slice of the resource store used for order placement.
// Orders are embedded on the owning user record, so placement is a read of
// the current history followed by a partial update appending to it.
type Records interface {
	GetUser(ctx context.Context, id string) (*user.User, error)
	PatchUser(ctx context.Context, id string, fields map[string]any) error
}

// Service handles order placement and order history
type Service struct {
	records Records
	log     *logrus.Logger
}

// NewService creates a new checkout service
func NewService(records Records, log *logrus.Logger) *Service {
	return &Service{
		records: records,
		log:     log,
	}
}

// PlaceOrderRequest represents a checkout submission. Items are the frozen
// lines being purchased: the session cart for a normal checkout, or a
// single line for a buy-now purchase.
type PlaceOrderRequest struct {
	UserID          string
	Items           []cart.Line
	ShippingAddress order.Address
	// BuyNow skips the cart entirely; the cart is only cleared when the
	// order came from it.
	BuyNow bool
}

// PlaceOrder computes totals, appends the order to the identity's history
// and clears the remote cart for cart-based checkouts. The order record is
// append-only from here on; only an administrator changes its status.
func (s *Service) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*order.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("cannot place an empty order")
	}
	if err := req.ShippingAddress.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shipping address: %w", err)
	}

	totals := order.CalculateTotals(req.Items)

	newOrder := order.Order{
		OrderID:         order.NewOrderID(),
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   order.PaymentMethodCOD,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
		OrderDate:       time.Now().UTC(),
		Status:          order.StatusProcessing,
	}

	// Read the current history, then replace the orders field wholesale.
	rec, err := s.records.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	updated := append(rec.Orders, newOrder)
	fields := map[string]any{
		"orders": updated,
	}
	if !req.BuyNow {
		fields["cart"] = cart.Cart{}
	}

	if err := s.records.PatchUser(ctx, req.UserID, fields); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  req.UserID,
		"order_id": newOrder.OrderID,
		"total":    newOrder.Total,
	}).Info("Order placed")

	return &newOrder, nil
}

// History returns the identity's orders, most recent first
func (s *Service) History(ctx context.Context, userID string) ([]order.Order, error) {
	rec, err := s.records.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	orders := make([]order.Order, len(rec.Orders))
	copy(orders, rec.Orders)
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}
