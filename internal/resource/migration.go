// internal/resource/migration.go
package resource

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations for the resource store
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&UserRecord{},
		&ProductRecord{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email_block ON users(email, is_block)",
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_item_price ON products(item, current_price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedSampleProducts(); err != nil {
		return fmt.Errorf("failed to seed sample products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	var existing UserRecord
	result := m.db.Where("email = ?", "admin@example.com").First(&existing)
	if result.Error != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), 10)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		adminUser := UserRecord{
			ID:       uuid.New().String(),
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: string(hashedPassword),
			IsAdmin:  true,
			Cart:     []byte("[]"),
			Wishlist: []byte("[]"),
			Orders:   []byte("[]"),
		}

		if err := m.db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		log.Println("✅ Created admin user: admin@example.com")
	} else {
		log.Println("⏭️ Admin user already exists")
	}

	return nil
}

// seedSampleProducts loads a small catalog so a fresh environment has
// something to browse. Prices are stored in minor currency units.
func (m *Migration) seedSampleProducts() error {
	log.Println("🛒 Seeding sample products...")

	products := []ProductRecord{
		{
			Title:         "Whey Protein Isolate",
			Subtitle:      "1kg, Double Rich Chocolate",
			CurrentPrice:  2499,
			OriginalPrice: 3299,
			Discount:      "24% off",
			Item:          "protein",
			Rating:        "4.5",
		},
		{
			Title:         "Creatine Monohydrate",
			Subtitle:      "250g, Unflavoured",
			CurrentPrice:  699,
			OriginalPrice: 999,
			Discount:      "30% off",
			Item:          "creatine",
			Rating:        "4.7",
		},
		{
			Title:         "Daily Multivitamin",
			Subtitle:      "90 tablets",
			CurrentPrice:  449,
			OriginalPrice: 599,
			Discount:      "25% off",
			Item:          "vitamins",
			Rating:        "4.3",
		},
		{
			Title:         "Pre-Workout Energy Blend",
			Subtitle:      "300g, Fruit Punch",
			CurrentPrice:  1199,
			OriginalPrice: 1499,
			Discount:      "20% off",
			Item:          "preworkout",
			Rating:        "4.2",
		},
	}

	for _, p := range products {
		var existing ProductRecord
		result := m.db.Where("title = ?", p.Title).First(&existing)
		if result.Error != nil {
			p.ID = uuid.New().String()
			if err := m.db.Create(&p).Error; err != nil {
				return err
			}
			log.Printf("✅ Created product: %s", p.Title)
		} else {
			log.Printf("⏭️ Product already exists: %s", p.Title)
		}
	}

	return nil
}
