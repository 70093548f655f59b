// internal/resource/handlers.go
package resource

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
	"gorm.io/gorm"
)

// Handler serves the generic resource API: CRUD over /products and /users
// with query filtering and field-wholesale PATCH merge semantics
type Handler struct {
	db              *gorm.DB
	passwordManager *auth.PasswordManager
	log             *logrus.Logger
}

// NewHandler creates a new resource API handler
func NewHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{
		db:              db,
		passwordManager: auth.NewPasswordManager(cfg),
		log:             log,
	}
}

// ListProducts handles GET /products with optional item and q filters
func (h *Handler) ListProducts(c *gin.Context) {
	query := h.db.Model(&ProductRecord{}).Order("created_at")

	if item := c.Query("item"); item != "" {
		query = query.Where("item = ?", item)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(subtitle) LIKE ?", like, like)
	}

	var products []ProductRecord
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	var p ProductRecord
	if err := h.db.Where("id = ?", c.Param("id")).First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProduct handles POST /products
func (h *Handler) CreateProduct(c *gin.Context) {
	var p ProductRecord
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	if err := h.db.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /products/:id, replacing the record
func (h *Handler) UpdateProduct(c *gin.Context) {
	var existing ProductRecord
	if err := h.db.Where("id = ?", c.Param("id")).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var p ProductRecord
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := h.db.Save(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// PatchProduct handles PATCH /products/:id, replacing only named fields
func (h *Handler) PatchProduct(c *gin.Context) {
	var existing ProductRecord
	if err := h.db.Where("id = ?", c.Param("id")).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	updates := map[string]any{}
	assignString := func(key, column string) {
		if raw, ok := fields[key]; ok {
			var v string
			if json.Unmarshal(raw, &v) == nil {
				updates[column] = v
			}
		}
	}
	assignInt := func(key, column string) {
		if raw, ok := fields[key]; ok {
			var v int64
			if json.Unmarshal(raw, &v) == nil {
				updates[column] = v
			}
		}
	}

	assignString("title", "title")
	assignString("subtitle", "subtitle")
	assignInt("currentPrice", "current_price")
	assignInt("originalPrice", "original_price")
	assignString("discount", "discount")
	assignString("image", "image")
	assignString("item", "item")
	assignString("rating", "rating")

	if len(updates) > 0 {
		if err := h.db.Model(&existing).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
	}

	h.db.Where("id = ?", existing.ID).First(&existing)
	c.JSON(http.StatusOK, existing)
}

// DeleteProduct handles DELETE /products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&ProductRecord{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// ListUsers handles GET /users. With email and password parameters it acts
// as the credential check: the password is compared against the stored
// bcrypt hash and zero-or-one records are returned.
func (h *Handler) ListUsers(c *gin.Context) {
	email := strings.ToLower(c.Query("email"))
	password := c.Query("password")

	if email != "" {
		var u UserRecord
		err := h.db.Where("email = ?", email).First(&u).Error
		if err != nil {
			c.JSON(http.StatusOK, []UserRecord{})
			return
		}
		if password != "" {
			if h.passwordManager.VerifyPassword(password, u.Password) != nil {
				c.JSON(http.StatusOK, []UserRecord{})
				return
			}
		}
		c.JSON(http.StatusOK, []UserRecord{u})
		return
	}

	var users []UserRecord
	if err := h.db.Order("created_at").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
func (h *Handler) GetUser(c *gin.Context) {
	var u UserRecord
	if err := h.db.Where("id = ?", c.Param("id")).First(&u).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// createUserRequest is the wire form of a new user document
type createUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	IsBlock  bool            `json:"isBlock"`
	IsAdmin  bool            `json:"isAdmin"`
	Cart     json.RawMessage `json:"cart"`
	Wishlist json.RawMessage `json:"wishlist"`
	Orders   json.RawMessage `json:"orders"`
}

// CreateUser handles POST /users. The incoming password is stored as a
// bcrypt hash and never serialized back.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	email := strings.ToLower(req.Email)
	var existing UserRecord
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}

	hash, err := h.passwordManager.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store credentials"})
		return
	}

	u := UserRecord{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    email,
		Password: hash,
		IsBlock:  req.IsBlock,
		IsAdmin:  req.IsAdmin,
		Cart:     emptyArrayIfNil(req.Cart),
		Wishlist: emptyArrayIfNil(req.Wishlist),
		Orders:   emptyArrayIfNil(req.Orders),
	}

	if err := h.db.Create(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// PatchUser handles PATCH /users/:id. Named fields are replaced wholesale:
// cart, wishlist and orders arrive as whole documents with no array
// diffing, which is what gives the storefront its last-write-wins
// reconciliation semantics.
func (h *Handler) PatchUser(c *gin.Context) {
	var existing UserRecord
	if err := h.db.Where("id = ?", c.Param("id")).First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	updates := map[string]any{}

	if raw, ok := fields["name"]; ok {
		var name string
		if json.Unmarshal(raw, &name) == nil {
			updates["name"] = name
		}
	}
	if raw, ok := fields["email"]; ok {
		var email string
		if json.Unmarshal(raw, &email) == nil {
			updates["email"] = strings.ToLower(email)
		}
	}
	if raw, ok := fields["password"]; ok {
		var password string
		if json.Unmarshal(raw, &password) == nil && password != "" {
			hash, err := h.passwordManager.HashPassword(password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store credentials"})
				return
			}
			updates["password"] = hash
		}
	}
	if raw, ok := fields["isBlock"]; ok {
		var blocked bool
		if json.Unmarshal(raw, &blocked) == nil {
			updates["is_block"] = blocked
		}
	}
	if raw, ok := fields["cart"]; ok {
		updates["cart"] = raw
	}
	if raw, ok := fields["wishlist"]; ok {
		updates["wishlist"] = raw
	}
	if raw, ok := fields["orders"]; ok {
		updates["orders"] = raw
	}

	if len(updates) > 0 {
		if err := h.db.Model(&existing).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
	}

	h.db.Where("id = ?", existing.ID).First(&existing)
	c.JSON(http.StatusOK, existing)
}

// DeleteUser handles DELETE /users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&UserRecord{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func emptyArrayIfNil(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("[]")
	}
	return raw
}
