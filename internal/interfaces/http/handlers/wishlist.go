// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/store"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	sessions       *session.Manager
	productService *product.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(sessions *session.Manager, productService *product.Service) *WishlistHandler {
	return &WishlistHandler{
		sessions:       sessions,
		productService: productService,
	}
}

// GetWishlist returns the session wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sess, _ := sessionFromContext(c, h.sessions)
	items := sess.Wishlist()

	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"count": len(items),
	})
}

// AddItem saves a product to the wishlist, unique by product id
func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	p, err := h.productService.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load product",
		})
		return
	}

	sess, _ := sessionFromContext(c, h.sessions)
	if err := sess.AddToWishlist(*p); err != nil {
		if errors.Is(err, session.ErrAuthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Please log in to save items to your wishlist",
				"redirect": "/login",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist",
		"data":    sess.Wishlist(),
	})
}

// RemoveItem drops a wishlist entry; absent ids are a no-op
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	sess, _ := sessionFromContext(c, h.sessions)
	sess.RemoveFromWishlist(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist",
		"data":    sess.Wishlist(),
	})
}

// MoveToCart moves a wishlist entry into the cart: the saved snapshot is
// added as a cart line and the wishlist entry is dropped
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	sess, _ := sessionFromContext(c, h.sessions)

	items := sess.Wishlist()
	productID := c.Param("id")

	var found *product.Product
	for i := range items {
		if items[i].ID == productID {
			found = &items[i]
			break
		}
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not in wishlist",
		})
		return
	}

	if err := sess.AddToCart(*found); err != nil {
		if errors.Is(err, session.ErrAuthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Please log in to add items to your cart",
				"redirect": "/login",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to move item to cart",
		})
		return
	}
	sess.RemoveFromWishlist(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item moved to cart",
		"data": gin.H{
			"cart":     sess.Cart(),
			"wishlist": sess.Wishlist(),
		},
	})
}

// ClearWishlist empties the wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	sess, _ := sessionFromContext(c, h.sessions)
	sess.ClearWishlist()

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared",
	})
}
