// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/admin"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/store"
)

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, storeClient *store.Client, sessions *session.Manager, cfg *config.Config, log *logrus.Logger) {
	authHandler := handlers.NewAuthHandler(user.NewService(storeClient, cfg, log), sessions, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// SetupProductRoutes sets up catalog browsing routes
func SetupProductRoutes(rg *gin.RouterGroup, storeClient *store.Client, cfg *config.Config, log *logrus.Logger) {
	productHandler := handlers.NewProductHandler(product.NewService(storeClient, log))

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart and wishlist routes. Both accept anonymous
// requests so the storefront can answer add attempts with a login prompt
// instead of a bare authentication failure.
func SetupCartRoutes(rg *gin.RouterGroup, storeClient *store.Client, sessions *session.Manager, cfg *config.Config, log *logrus.Logger) {
	productService := product.NewService(storeClient, log)
	cartHandler := handlers.NewCartHandler(sessions, productService)
	wishlistHandler := handlers.NewWishlistHandler(sessions, productService)

	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:id", cartHandler.UpdateItem)
		cart.PATCH("/items/:id", cartHandler.AdjustItem)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}

	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("/items", wishlistHandler.AddItem)
		wishlist.POST("/items/:id/move-to-cart", wishlistHandler.MoveToCart)
		wishlist.DELETE("/items/:id", wishlistHandler.RemoveItem)
		wishlist.DELETE("", wishlistHandler.ClearWishlist)
	}
}

// SetupOrderRoutes sets up checkout and order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, storeClient *store.Client, sessions *session.Manager, cfg *config.Config, log *logrus.Logger) {
	checkoutHandler := handlers.NewCheckoutHandler(
		checkout.NewService(storeClient, log),
		product.NewService(storeClient, log),
		sessions,
	)

	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.POST("/checkout", checkoutHandler.PlaceOrder)
		protected.GET("/orders", checkoutHandler.GetOrders)
		protected.GET("/orders/:id", checkoutHandler.GetOrder)
	}
}

// SetupAdminRoutes sets up the admin console routes
func SetupAdminRoutes(rg *gin.RouterGroup, storeClient *store.Client, cfg *config.Config, log *logrus.Logger) {
	adminHandler := handlers.NewAdminHandler(
		admin.NewService(storeClient, log),
		product.NewService(storeClient, log),
	)

	adminGroup := rg.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg))
	adminGroup.Use(middleware.AdminMiddleware())
	{
		adminGroup.GET("/dashboard", adminHandler.GetDashboard)

		adminGroup.GET("/customers", adminHandler.GetCustomers)
		adminGroup.PUT("/customers/:id/block", adminHandler.SetCustomerBlocked)

		adminGroup.GET("/orders", adminHandler.GetOrders)
		adminGroup.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

		adminGroup.POST("/products", adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", adminHandler.DeleteProduct)
	}
}

// SetupRoutes configures all API routes
func SetupRoutes(rg *gin.RouterGroup, storeClient *store.Client, sessions *session.Manager, cfg *config.Config, log *logrus.Logger) {
	SetupAuthRoutes(rg, storeClient, sessions, cfg, log)
	SetupProductRoutes(rg, storeClient, cfg, log)
	SetupCartRoutes(rg, storeClient, sessions, cfg, log)
	SetupOrderRoutes(rg, storeClient, sessions, cfg, log)
	SetupAdminRoutes(rg, storeClient, cfg, log)
}
