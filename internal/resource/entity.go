// internal/resource/entity.go
package resource

import (
	"encoding/json"
	"time"
)

// UserRecord is the stored form of a /users document. Cart, wishlist and
// orders are opaque JSON documents to this server: partial updates replace
// a named field wholesale, and the server never inspects the arrays.
type UserRecord struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	Name      string          `gorm:"size:255" json:"name"`
	Email     string          `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string          `gorm:"not null;size:255" json:"-"` // bcrypt hash, never serialized
	IsBlock   bool            `gorm:"default:false" json:"isBlock"`
	IsAdmin   bool            `gorm:"default:false" json:"isAdmin"`
	Cart      json.RawMessage `gorm:"type:jsonb;default:'[]'" json:"cart"`
	Wishlist  json.RawMessage `gorm:"type:jsonb;default:'[]'" json:"wishlist"`
	Orders    json.RawMessage `gorm:"type:jsonb;default:'[]'" json:"orders"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

// TableName overrides the table name for UserRecord
func (UserRecord) TableName() string {
	return "users"
}

// ProductRecord is the stored form of a /products document
type ProductRecord struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Title         string    `gorm:"not null;size:255" json:"title"`
	Subtitle      string    `gorm:"size:255" json:"subtitle,omitempty"`
	CurrentPrice  int64     `gorm:"not null" json:"currentPrice"`
	OriginalPrice int64     `json:"originalPrice,omitempty"`
	Discount      string    `gorm:"size:50" json:"discount,omitempty"`
	Image         string    `gorm:"size:500" json:"image,omitempty"`
	Item          string    `gorm:"size:100;index" json:"item,omitempty"`
	Rating        string    `gorm:"size:10" json:"rating,omitempty"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// TableName overrides the table name for ProductRecord
func (ProductRecord) TableName() string {
	return "products"
}
