// internal/domain/flashsale/entity.go
package flashsale

import (
	"time"

	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
)

// FlashSale is a time-boxed promotional override layered on a product.
// QuantitySold is operator-edited scarcity theater, not an inventory
// ledger: nothing increments it transactionally at purchase time.
type FlashSale struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ProductID       string         `gorm:"not null;index;size:64" json:"product_id"`
	DiscountPercent int            `gorm:"not null" json:"discount_percent"`
	QuantityTotal   int            `gorm:"not null" json:"quantity_total"`
	QuantitySold    int            `gorm:"default:0" json:"quantity_sold"`
	EndTime         time.Time      `gorm:"not null" json:"end_time"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (FlashSale) TableName() string {
	return "flash_sales"
}

// Live reports whether the sale should currently override pricing.
func (f *FlashSale) Live(now time.Time) bool {
	return f.IsActive && now.Before(f.EndTime)
}

// Listing joins a flash sale with its product plus the derived display
// values the storefront renders each tick.
type Listing struct {
	FlashSale
	Product     *catalog.Product `json:"product,omitempty"`
	SalePrice   int64            `json:"sale_price"`
	Countdown   Countdown        `json:"countdown"`
	SoldPercent int              `json:"sold_percent"`
}
