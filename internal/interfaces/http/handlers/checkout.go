// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/store"
)

// CheckoutHandler handles order placement and order history
type CheckoutHandler struct {
	checkoutService *checkout.Service
	productService  *product.Service
	sessions        *session.Manager
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, productService *product.Service, sessions *session.Manager) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		productService:  productService,
		sessions:        sessions,
	}
}

// placeOrderRequest is the checkout submission. With a product_id set the
// purchase is buy-now: a single line is ordered and the cart is left
// untouched. Without one the whole session cart is ordered and cleared.
type placeOrderRequest struct {
	ShippingAddress order.Address `json:"shipping_address" binding:"required"`
	ProductID       string        `json:"product_id"`
	Quantity        int           `json:"quantity"`
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sess, _ := sessionFromContext(c, h.sessions)

	buyNow := req.ProductID != ""
	var items []cart.Line
	if buyNow {
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
		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = []cart.Line{{Product: *p, Quantity: quantity}}
	} else {
		items = sess.Cart()
	}

	placed, err := h.checkoutService.PlaceOrder(c.Request.Context(), &checkout.PlaceOrderRequest{
		UserID:          userID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		BuyNow:          buyNow,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// A cart checkout consumed the cart; reflect that in the session too.
	if !buyNow {
		sess.ClearCart()
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// GetOrders returns the authenticated identity's order history, newest
// first
func (h *CheckoutHandler) GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	orders, err := h.checkoutService.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  orders,
		"count": len(orders),
	})
}

// GetOrder returns one order from the identity's history
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	orders, err := h.checkoutService.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load orders",
		})
		return
	}

	orderID := c.Param("id")
	for _, o := range orders {
		if o.OrderID == orderID {
			c.JSON(http.StatusOK, gin.H{
				"data": o,
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error": "Order not found",
	})
}
