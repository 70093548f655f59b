// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/store"
)

// CartHandler handles cart endpoints. All mutations go through the
// session: they apply to memory synchronously and the reply reflects the
// new state immediately, while the store write happens on the debounce
// timer in the background.
type CartHandler struct {
	sessions       *session.Manager
	productService *product.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *session.Manager, productService *product.Service) *CartHandler {
	return &CartHandler{
		sessions:       sessions,
		productService: productService,
	}
}

// GetCart returns the session cart with its totals
func (h *CartHandler) GetCart(c *gin.Context) {
	sess, _ := sessionFromContext(c, h.sessions)
	items := sess.Cart()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":          items,
			"subtotal":       items.Subtotal(),
			"total_quantity": items.TotalQuantity(),
		},
	})
}

// AddItem adds a product to the cart by id, raising the quantity when the
// line already exists. The product snapshot is fetched from the catalog at
// add time and frozen into the line.
func (h *CartHandler) AddItem(c *gin.Context) {
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
	if err := sess.AddToCart(*p); err != nil {
		if errors.Is(err, session.ErrAuthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Please log in to add items to your cart",
				"redirect": "/login",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    sess.Cart(),
	})
}

// UpdateItem sets an existing line's quantity, clamped to a minimum of 1
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sess, _ := sessionFromContext(c, h.sessions)
	sess.SetCartQuantity(c.Param("id"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    sess.Cart(),
	})
}

// AdjustItem changes an existing line's quantity by a signed delta,
// clamped to a minimum of 1
func (h *CartHandler) AdjustItem(c *gin.Context) {
	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sess, _ := sessionFromContext(c, h.sessions)
	sess.AdjustCartQuantity(c.Param("id"), req.Delta)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    sess.Cart(),
	})
}

// RemoveItem drops a cart line; removing an absent id is a no-op
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sess, _ := sessionFromContext(c, h.sessions)
	sess.RemoveFromCart(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    sess.Cart(),
	})
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sess, _ := sessionFromContext(c, h.sessions)
	sess.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}
