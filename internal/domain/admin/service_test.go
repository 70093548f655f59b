package admin

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/store"
)

// MockStore implements Store for testing
type MockStore struct {
	Users    []user.User
	Products []product.Product

	PatchedID     string
	PatchedFields map[string]any
}

func (m *MockStore) ListUsers(_ context.Context) ([]user.User, error) {
	return m.Users, nil
}

func (m *MockStore) GetUser(_ context.Context, id string) (*user.User, error) {
	for i := range m.Users {
		if m.Users[i].ID == id {
			u := m.Users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) PatchUser(_ context.Context, id string, fields map[string]any) error {
	m.PatchedID = id
	m.PatchedFields = fields
	return nil
}

func (m *MockStore) ListProducts(_ context.Context, _, _ string) ([]product.Product, error) {
	return m.Products, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testOrder(id string, total product.Price, status order.Status, placedAt time.Time) order.Order {
	return order.Order{
		OrderID:   id,
		Total:     total,
		Status:    status,
		OrderDate: placedAt,
		Items: []cart.Line{{
			Product:  product.Product{ID: "p-" + id, Title: "Product " + id, CurrentPrice: total},
			Quantity: 1,
		}},
	}
}

func seedStore() *MockStore {
	now := time.Now()
	return &MockStore{
		Users: []user.User{
			{
				Identity: user.Identity{ID: "admin1", Name: "Admin", Email: "admin@example.com", IsAdmin: true},
			},
			{
				Identity: user.Identity{ID: "u1", Name: "Asha", Email: "asha@example.com"},
				Orders: []order.Order{
					testOrder("ORDER0001", 500, order.StatusProcessing, now.Add(-2*time.Hour)),
					testOrder("ORDER0002", 1200, order.StatusCompleted, now.Add(-1*time.Hour)),
				},
			},
			{
				Identity: user.Identity{ID: "u2", Name: "Vikram", Email: "vikram@example.com", IsBlock: true},
				Orders: []order.Order{
					testOrder("ORDER0003", 300, order.StatusProcessing, now),
				},
			},
		},
		Products: []product.Product{
			{ID: "p1", Title: "Whey", CurrentPrice: 2499},
			{ID: "p2", Title: "Creatine", CurrentPrice: 699},
		},
	}
}

func TestListCustomers_ExcludesAdmins(t *testing.T) {
	svc := NewService(seedStore(), testLogger())

	customers, err := svc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "u1", customers[0].ID)
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.True(t, customers[1].IsBlock)
}

func TestSetCustomerBlocked(t *testing.T) {
	st := seedStore()
	svc := NewService(st, testLogger())

	require.NoError(t, svc.SetCustomerBlocked(context.Background(), "u1", true))
	assert.Equal(t, "u1", st.PatchedID)
	assert.Equal(t, map[string]any{"isBlock": true}, st.PatchedFields)
}

func TestSetCustomerBlocked_RefusesAdmins(t *testing.T) {
	st := seedStore()
	svc := NewService(st, testLogger())

	err := svc.SetCustomerBlocked(context.Background(), "admin1", true)
	assert.Error(t, err)
	assert.Empty(t, st.PatchedID)
}

func TestSetCustomerBlocked_UnknownCustomer(t *testing.T) {
	svc := NewService(seedStore(), testLogger())

	err := svc.SetCustomerBlocked(context.Background(), "nobody", true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListOrders_FlattensNewestFirst(t *testing.T) {
	svc := NewService(seedStore(), testLogger())

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "ORDER0003", orders[0].OrderID)
	assert.Equal(t, "vikram@example.com", orders[0].CustomerEmail)
	assert.Equal(t, "ORDER0001", orders[2].OrderID)
}

func TestUpdateOrderStatus(t *testing.T) {
	st := seedStore()
	svc := NewService(st, testLogger())

	require.NoError(t, svc.UpdateOrderStatus(context.Background(), "u1", "ORDER0001", order.StatusShipped))

	assert.Equal(t, "u1", st.PatchedID)
	orders, ok := st.PatchedFields["orders"].([]order.Order)
	require.True(t, ok)
	require.Len(t, orders, 2)
	assert.Equal(t, order.StatusShipped, orders[0].Status)
	assert.Equal(t, order.StatusCompleted, orders[1].Status)
}

func TestUpdateOrderStatus_InvalidStatus(t *testing.T) {
	st := seedStore()
	svc := NewService(st, testLogger())

	err := svc.UpdateOrderStatus(context.Background(), "u1", "ORDER0001", "Delivered")
	assert.Error(t, err)
	assert.Empty(t, st.PatchedID)
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	st := seedStore()
	svc := NewService(st, testLogger())

	err := svc.UpdateOrderStatus(context.Background(), "u1", "MISSING01", order.StatusShipped)
	assert.Error(t, err)
	assert.Empty(t, st.PatchedID)
}

func TestDashboard_Aggregates(t *testing.T) {
	svc := NewService(seedStore(), testLogger())

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, product.Price(2000), stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.StatusCounts[order.StatusProcessing])
	assert.Equal(t, 1, stats.StatusCounts[order.StatusCompleted])

	require.Len(t, stats.RecentOrders, 3)
	assert.Equal(t, "ORDER0003", stats.RecentOrders[0].OrderID)

	require.NotEmpty(t, stats.TopProducts)
	assert.Equal(t, product.Price(1200), stats.TopProducts[0].Revenue)
}
