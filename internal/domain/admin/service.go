// internal/domain/admin/service.go
package admin

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
)

// Store is the slice of the resource store the admin console works over
type Store interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id string) (*user.User, error)
	PatchUser(ctx context.Context, id string, fields map[string]any) error
	ListProducts(ctx context.Context, category, query string) ([]product.Product, error)
}

// Service handles the admin console: customers, order management and the
// dashboard aggregates
type Service struct {
	store Store
	log   *logrus.Logger
}

// NewService creates a new admin service
func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Customer is an identity as shown in the admin console
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsBlock    bool   `json:"isBlock"`
	OrderCount int    `json:"order_count"`
}

// CustomerOrder is an order annotated with its owning customer, since
// orders live embedded on user records
type CustomerOrder struct {
	order.Order
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// DashboardStats are the aggregates rendered on the admin dashboard
type DashboardStats struct {
	TotalRevenue   product.Price        `json:"total_revenue"`
	TotalCustomers int                  `json:"total_customers"`
	TotalProducts  int                  `json:"total_products"`
	TotalOrders    int                  `json:"total_orders"`
	StatusCounts   map[order.Status]int `json:"status_counts"`
	RecentOrders   []CustomerOrder      `json:"recent_orders"`
	TopProducts    []ProductRevenue     `json:"top_products"`
}

// ProductRevenue ranks a product by units sold and revenue
type ProductRevenue struct {
	ProductID string        `json:"product_id"`
	Title     string        `json:"title"`
	Units     int           `json:"units"`
	Revenue   product.Price `json:"revenue"`
}

// ListCustomers returns all non-admin identities
func (s *Service) ListCustomers(ctx context.Context) ([]Customer, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	customers := make([]Customer, 0, len(users))
	for _, u := range users {
		if u.IsAdmin {
			continue
		}
		customers = append(customers, Customer{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			IsBlock:    u.IsBlock,
			OrderCount: len(u.Orders),
		})
	}
	return customers, nil
}

// SetCustomerBlocked flips the block flag on a customer record. A blocked
// customer is refused a session at their next login; live sessions are not
// torn down here.
func (s *Service) SetCustomerBlocked(ctx context.Context, customerID string, blocked bool) error {
	rec, err := s.store.GetUser(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to load customer: %w", err)
	}
	if rec.IsAdmin {
		return fmt.Errorf("cannot block an administrator")
	}

	if err := s.store.PatchUser(ctx, customerID, map[string]any{"isBlock": blocked}); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": customerID,
		"blocked": blocked,
	}).Info("Customer block flag updated")
	return nil
}

// ListOrders flattens every customer's embedded orders, most recent first
func (s *Service) ListOrders(ctx context.Context) ([]CustomerOrder, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var orders []CustomerOrder
	for _, u := range users {
		for _, o := range u.Orders {
			orders = append(orders, CustomerOrder{
				Order:         o,
				CustomerID:    u.ID,
				CustomerName:  u.Name,
				CustomerEmail: u.Email,
			})
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

// UpdateOrderStatus sets the status of one order on the owning customer's
// record. The orders field is replaced wholesale, matching the store's
// partial-update semantics.
func (s *Service) UpdateOrderStatus(ctx context.Context, customerID, orderID string, status order.Status) error {
	if !order.ValidStatus(status) {
		return fmt.Errorf("invalid order status %q", status)
	}

	rec, err := s.store.GetUser(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to load customer: %w", err)
	}

	found := false
	for i := range rec.Orders {
		if rec.Orders[i].OrderID == orderID {
			rec.Orders[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("order %s not found", orderID)
	}

	if err := s.store.PatchUser(ctx, customerID, map[string]any{"orders": rec.Orders}); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  customerID,
		"order_id": orderID,
		"status":   status,
	}).Info("Order status updated")
	return nil
}

// Dashboard computes the admin dashboard aggregates
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	products, err := s.store.ListProducts(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	stats := &DashboardStats{
		TotalProducts: len(products),
		StatusCounts:  make(map[order.Status]int),
	}

	revenueByProduct := make(map[string]*ProductRevenue)
	var allOrders []CustomerOrder

	for _, u := range users {
		if !u.IsAdmin {
			stats.TotalCustomers++
		}
		for _, o := range u.Orders {
			stats.TotalOrders++
			stats.TotalRevenue += o.Total
			stats.StatusCounts[o.Status]++
			allOrders = append(allOrders, CustomerOrder{
				Order:         o,
				CustomerID:    u.ID,
				CustomerName:  u.Name,
				CustomerEmail: u.Email,
			})

			for _, line := range o.Items {
				pr, ok := revenueByProduct[line.ID]
				if !ok {
					pr = &ProductRevenue{ProductID: line.ID, Title: line.Title}
					revenueByProduct[line.ID] = pr
				}
				pr.Units += line.Quantity
				pr.Revenue += line.CurrentPrice * product.Price(line.Quantity)
			}
		}
	}

	sort.Slice(allOrders, func(i, j int) bool {
		return allOrders[i].OrderDate.After(allOrders[j].OrderDate)
	})
	if len(allOrders) > 5 {
		allOrders = allOrders[:5]
	}
	stats.RecentOrders = allOrders

	top := make([]ProductRevenue, 0, len(revenueByProduct))
	for _, pr := range revenueByProduct {
		top = append(top, *pr)
	}
	sort.Slice(top, func(i, j int) bool {
		return top[i].Revenue > top[j].Revenue
	})
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopProducts = top

	return stats, nil
}
