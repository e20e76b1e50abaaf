// internal/domain/catalog/entity.go
package catalog

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Category is the fixed classification set for store products
type Category string

const (
	CategoryAll           Category = "all"
	CategoryAI            Category = "ai"
	CategoryEntertainment Category = "entertainment"
	CategoryWork          Category = "work"
	CategoryStudy         Category = "study"
	CategoryGame          Category = "game"
)

// Valid reports whether c is a real catalog category. CategoryAll is a
// query wildcard, not a value a product may carry.
func (c Category) Valid() bool {
	switch c {
	case CategoryAI, CategoryEntertainment, CategoryWork, CategoryStudy, CategoryGame:
		return true
	}
	return false
}

// Product represents a digital-goods listing. IDs are strings because the
// hosted store hands them out as opaque values that may arrive numeric or
// quoted depending on the source.
type Product struct {
	ID            string         `gorm:"primaryKey;size:64" json:"id"`
	Slug          string         `gorm:"uniqueIndex;size:255" json:"slug,omitempty"`
	Name          string         `gorm:"not null;size:255" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Image         string         `gorm:"size:500" json:"image"`
	Price         int64          `gorm:"not null" json:"price"` // Whole-unit currency (VND)
	OriginalPrice int64          `json:"original_price"`
	Discount      int            `json:"discount"` // Percent off original price
	Category      Category       `gorm:"size:50;index" json:"category"`
	Rating        float64        `json:"rating"` // 0..5, one decimal
	Sold          int            `gorm:"default:0" json:"sold"`
	IsHot         bool           `gorm:"default:false" json:"is_hot"`
	IsNew         bool           `gorm:"default:false" json:"is_new"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Variants []Variant `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variants,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`
}

// Variant represents an alternate purchase tier or duration of a product,
// e.g. "1 Month" vs "1 Year".
type Variant struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     string    `gorm:"not null;index;size:64" json:"product_id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Price         int64     `gorm:"not null" json:"price"`
	OriginalPrice int64     `json:"original_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Review represents a customer review. Reviews are append-only; editing or
// deleting is not part of the storefront surface.
type Review struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     string    `gorm:"not null;index;size:64" json:"product_id"`
	User          string    `gorm:"not null;size:255" json:"user"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`
	Date          time.Time `json:"date"`
	PurchasedType string    `gorm:"size:100" json:"purchased_type"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName overrides
func (Product) TableName() string { return "products" }
func (Variant) TableName() string { return "product_variants" }
func (Review) TableName() string  { return "product_reviews" }

// DiscountPercent derives the percent saved against the original price,
// floored at 0 when the product is not actually discounted.
func (p *Product) DiscountPercent() int {
	return discountPercent(p.Price, p.OriginalPrice)
}

func discountPercent(price, originalPrice int64) int {
	if originalPrice <= 0 || originalPrice <= price {
		return 0
	}
	return int(math.Round(float64(originalPrice-price) / float64(originalPrice) * 100))
}

// AverageRating computes the arithmetic mean of review ratings rounded to
// one decimal. Zero reviews yields 0.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
