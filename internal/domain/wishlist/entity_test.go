package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/product"
)

func testProduct(id string) product.Product {
	return product.Product{ID: id, Title: "Product " + id, CurrentPrice: 100}
}

func TestWishlist_AddIsUniqueByID(t *testing.T) {
	var w Wishlist

	assert.True(t, w.Add(testProduct("p1")))
	assert.False(t, w.Add(testProduct("p1")))
	assert.True(t, w.Add(testProduct("p2")))

	require.Len(t, w, 2)
	assert.True(t, w.Contains("p1"))
	assert.True(t, w.Contains("p2"))
}

func TestWishlist_Remove(t *testing.T) {
	var w Wishlist
	w.Add(testProduct("p1"))
	w.Add(testProduct("p2"))

	assert.True(t, w.Remove("p1"))
	assert.False(t, w.Contains("p1"))
	require.Len(t, w, 1)

	assert.False(t, w.Remove("p1"))
}

func TestWishlist_Clear(t *testing.T) {
	var w Wishlist
	w.Add(testProduct("p1"))
	w.Add(testProduct("p2"))

	w.Clear()
	assert.Empty(t, w)
}

func TestWishlist_CloneIsIndependent(t *testing.T) {
	var w Wishlist
	w.Add(testProduct("p1"))

	clone := w.Clone()
	clone.Remove("p1")

	assert.True(t, w.Contains("p1"))
	assert.False(t, clone.Contains("p1"))
}
