package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/product"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Store: config.StoreConfig{
			BaseURL:        srv.URL,
			RequestTimeout: time.Second,
		},
	}
	return NewClient(cfg, testLogger())
}

func TestGetUser_DecodesEmbeddedState(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "u1",
			"name": "Asha",
			"email": "asha@example.com",
			"isBlock": false,
			"cart": [{"id": "p1", "title": "Whey", "currentPrice": "2,499", "quantity": 2}],
			"wishlist": [{"id": "p2", "title": "Creatine", "currentPrice": 699}],
			"orders": []
		}`)
	}))

	u, err := client.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	require.Len(t, u.Cart, 1)
	assert.Equal(t, product.Price(2499), u.Cart[0].CurrentPrice)
	assert.Equal(t, 2, u.Cart[0].Quantity)
	require.Len(t, u.Wishlist, 1)
	assert.Empty(t, u.Orders)
}

func TestGetUser_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPatchUser_SendsNamedFieldsOnly(t *testing.T) {
	var gotBody map[string]json.RawMessage
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/u1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{}`)
	}))

	err := client.PatchUser(context.Background(), "u1", map[string]any{
		"cart":     []any{},
		"wishlist": []any{},
	})
	require.NoError(t, err)

	assert.Contains(t, gotBody, "cart")
	assert.Contains(t, gotBody, "wishlist")
	assert.NotContains(t, gotBody, "orders")
	assert.NotContains(t, gotBody, "email")
}

func TestCheckCredentials_QueryEncoding(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "asha@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "p&ss word", r.URL.Query().Get("password"))
		io.WriteString(w, `[{"id": "u1", "email": "asha@example.com"}]`)
	}))

	u, err := client.CheckCredentials(context.Background(), "asha@example.com", "p&ss word")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
}

func TestCheckCredentials_NoMatchIsNilNotError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))

	u, err := client.CheckCredentials(context.Background(), "asha@example.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCheckCredentials_MultipleMatchesRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id": "u1"}, {"id": "u2"}]`)
	}))

	_, err := client.CheckCredentials(context.Background(), "asha@example.com", "pw")
	assert.Error(t, err)
}

func TestListProducts_Filters(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "protein", r.URL.Query().Get("item"))
		assert.Equal(t, "whey", r.URL.Query().Get("q"))
		io.WriteString(w, `[{"id": "p1", "title": "Whey", "currentPrice": 2499}]`)
	}))

	products, err := client.ListProducts(context.Background(), "protein", "whey")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestListProducts_NoFiltersNoQueryString(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		io.WriteString(w, `[]`)
	}))

	_, err := client.ListProducts(context.Background(), "", "")
	require.NoError(t, err)
}

func TestServerErrorSurfaces(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetProduct(context.Background(), "p1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	for i := 0; i < 10; i++ {
		_, err := client.GetUser(context.Background(), "u1")
		assert.Error(t, err)
	}

	// After five consecutive failures the breaker stops hitting the store.
	assert.Equal(t, 5, hits)
}

func TestNotFoundDoesNotTripBreaker(t *testing.T) {
	var hits int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))

	for i := 0; i < 10; i++ {
		_, err := client.GetUser(context.Background(), "u1")
		assert.ErrorIs(t, err, ErrNotFound)
	}

	assert.Equal(t, 10, hits)
}
