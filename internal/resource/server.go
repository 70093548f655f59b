// internal/resource/server.go
package resource

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// Server is the resource API server: generic CRUD over /products and
// /users. The storefront talks to it through the store client; nothing in
// here knows about sessions or carts beyond storing their documents.
type Server struct {
	config     *config.Config
	gin        *gin.Engine
	httpServer *http.Server
	db         *gorm.DB
	log        *logrus.Logger
}

// NewServer creates a new resource API server
func NewServer(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *Server {
	return &Server{
		config: cfg,
		db:     db,
		log:    log,
	}
}

// Start starts the resource API server
func (s *Server) Start() error {
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	s.gin = gin.New()
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.Logger(s.config))
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.CORS(s.config))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.log.Infof("🚀 Resource API starting on port %s", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start resource API server: %w", err)
	}

	return nil
}

// Stop gracefully stops the resource API server
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("🛑 Shutting down resource API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown resource API server: %w", err)
	}

	s.log.Info("✅ Resource API server stopped gracefully")
	return nil
}

// setupRoutes configures the resource routes
func (s *Server) setupRoutes() {
	handler := NewHandler(s.db, s.config, s.log)

	s.gin.GET("/health", s.healthCheck)

	products := s.gin.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.GET("/:id", handler.GetProduct)
		products.POST("", handler.CreateProduct)
		products.PUT("/:id", handler.UpdateProduct)
		products.PATCH("/:id", handler.PatchProduct)
		products.DELETE("/:id", handler.DeleteProduct)
	}

	users := s.gin.Group("/users")
	{
		users.GET("", handler.ListUsers)
		users.GET("/:id", handler.GetUser)
		users.POST("", handler.CreateUser)
		users.PATCH("/:id", handler.PatchUser)
		users.DELETE("/:id", handler.DeleteUser)
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database connection error",
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database ping failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
