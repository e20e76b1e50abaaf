// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
	"github.com/your-org/digistore-backend/internal/domain/content"
	"github.com/your-org/digistore-backend/internal/domain/flashsale"
	"github.com/your-org/digistore-backend/internal/domain/order"
	"github.com/your-org/digistore-backend/internal/pkg/keepalive"
)

// Migration handles database migrations
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

	// Define all models that need migration in dependency order
	models := []interface{}{
		// Catalog domain - base tables
		&catalog.Product{},
		&catalog.Variant{},
		&catalog.Review{},

		// Flash sale domain
		&flashsale.FlashSale{},

		// Order domain - dependent tables
		&order.Order{},
		&order.Item{},

		// Content domain
		&content.HeroSlide{},
		&content.BlogPost{},
		&content.Promotion{},
		&content.Customer{},

		// Hosted-instance heartbeat
		&keepalive.Heartbeat{},
	}

	// Run auto-migration for each model
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
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_sold ON products(sold DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug)",

		// Review indexes
		"CREATE INDEX IF NOT EXISTS idx_product_reviews_product_date ON product_reviews(product_id, date DESC)",

		// Flash sale indexes
		"CREATE INDEX IF NOT EXISTS idx_flash_sales_active_end ON flash_sales(is_active, end_time)",
		"CREATE INDEX IF NOT EXISTS idx_flash_sales_product ON flash_sales(product_id)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(email)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",

		// Content indexes
		"CREATE INDEX IF NOT EXISTS idx_blogs_slug ON blogs(slug)",
		"CREATE INDEX IF NOT EXISTS idx_hero_slides_active_sort ON hero_slides(is_active, sort_order)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Additional database indexes created successfully")
	return nil
}

// SeedInitialData seeds the database with initial data for development
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	if err := m.seedFlashSales(); err != nil {
		return fmt.Errorf("failed to seed flash sales: %w", err)
	}

	if err := m.seedHeroSlides(); err != nil {
		return fmt.Errorf("failed to seed hero slides: %w", err)
	}

	log.Println("✅ Initial data seeding completed")
	return nil
}

// seedProducts installs the fallback dataset as the initial catalog, so a
// fresh development database serves the same products the storefront would
// fall back to anyway.
func (m *Migration) seedProducts() error {
	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Products already seeded, skipping")
		return nil
	}

	for _, product := range catalog.FallbackProducts() {
		if err := m.db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.Name, err)
		}
	}

	log.Println("Seeded catalog from fallback dataset")
	return nil
}

func (m *Migration) seedFlashSales() error {
	var count int64
	if err := m.db.Model(&flashsale.FlashSale{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Flash sales already seeded, skipping")
		return nil
	}

	sales := []flashsale.FlashSale{
		{
			ProductID:       "1",
			DiscountPercent: 50,
			QuantityTotal:   100,
			QuantitySold:    63,
			EndTime:         time.Now().UTC().Add(48 * time.Hour),
			IsActive:        true,
		},
		{
			ProductID:       "6",
			DiscountPercent: 30,
			QuantityTotal:   50,
			QuantitySold:    12,
			EndTime:         time.Now().UTC().Add(24 * time.Hour),
			IsActive:        true,
		},
	}

	for _, sale := range sales {
		if err := m.db.Create(&sale).Error; err != nil {
			return fmt.Errorf("failed to seed flash sale for product %s: %w", sale.ProductID, err)
		}
	}

	log.Println("Seeded flash sales")
	return nil
}

func (m *Migration) seedHeroSlides() error {
	var count int64
	if err := m.db.Model(&content.HeroSlide{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Hero slides already seeded, skipping")
		return nil
	}

	slides := []content.HeroSlide{
		{
			Title:     "Flash Sale Cuối Tuần",
			Subtitle:  "Giảm đến 50% tài khoản giải trí",
			Image:     "https://images.digistore.vn/slides/flash-sale.webp",
			CTAText:   "Mua ngay",
			CTALink:   "/product/netflix-premium",
			SortOrder: 1,
			IsActive:  true,
		},
		{
			Title:     "ChatGPT Plus Chính Chủ",
			Subtitle:  "Bảo hành trọn thời gian sử dụng",
			Image:     "https://images.digistore.vn/slides/chatgpt.webp",
			CTAText:   "Xem chi tiết",
			CTALink:   "/product/chatgpt-plus",
			SortOrder: 2,
			IsActive:  true,
		},
	}

	for _, slide := range slides {
		if err := m.db.Create(&slide).Error; err != nil {
			return fmt.Errorf("failed to seed hero slide %s: %w", slide.Title, err)
		}
	}

	log.Println("Seeded hero slides")
	return nil
}

// GetTableInfo logs row counts per table, handy when bootstrapping dev
func (m *Migration) GetTableInfo() error {
	tables := []string{
		"products", "product_variants", "product_reviews",
		"flash_sales", "orders", "order_items",
		"hero_slides", "blogs", "promotions", "customers",
	}

	log.Println("📊 Database table information:")
	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			log.Printf("  %s: error getting count (%v)", table, err)
			continue
		}
		log.Printf("  %s: %d records", table, count)
	}

	return nil
}

// DropAllTables drops all tables, for development resets only
func (m *Migration) DropAllTables() error {
	log.Println("⚠️  Dropping all database tables...")

	models := []interface{}{
		&keepalive.Heartbeat{},
		&content.Customer{},
		&content.Promotion{},
		&content.BlogPost{},
		&content.HeroSlide{},
		&order.Item{},
		&order.Order{},
		&flashsale.FlashSale{},
		&catalog.Review{},
		&catalog.Variant{},
		&catalog.Product{},
	}

	for _, model := range models {
		if err := m.db.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", model, err)
		}
	}

	log.Println("✅ All tables dropped")
	return nil
}
