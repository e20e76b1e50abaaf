// internal/domain/content/entity.go
package content

import (
	"time"

	"gorm.io/gorm"
)

// HeroSlide is a storefront banner. CTALink may reference a product id, but
// nothing enforces the join beyond display time.
type HeroSlide struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null;size:255" json:"title"`
	Subtitle  string         `gorm:"size:500" json:"subtitle"`
	Image     string         `gorm:"not null;size:500" json:"image"`
	CTAText   string         `gorm:"size:100" json:"cta_text"`
	CTALink   string         `gorm:"size:500" json:"cta_link"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BlogPost is an editorial article managed from the back-office. Incoming
// payloads use read_time or readTime depending on the editor version; the
// handler normalizes both onto ReadTime before this struct is filled.
type BlogPost struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Slug      string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Title     string         `gorm:"not null;size:255" json:"title"`
	Excerpt   string         `gorm:"size:500" json:"excerpt"`
	Content   string         `gorm:"type:text" json:"content"`
	Image     string         `gorm:"size:500" json:"image"`
	Author    string         `gorm:"size:255" json:"author"`
	ReadTime  int            `gorm:"default:0" json:"read_time"` // Minutes
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Promotion is a marketing banner or voucher announcement.
type Promotion struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	Description string         `gorm:"size:500" json:"description"`
	Image       string         `gorm:"size:500" json:"image"`
	Code        string         `gorm:"size:50" json:"code"`
	StartAt     *time.Time     `json:"start_at"`
	EndAt       *time.Time     `json:"end_at"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Customer is a back-office contact record, not an auth principal.
type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Email     string         `gorm:"not null;size:255;index" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Note      string         `gorm:"type:text" json:"note"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (HeroSlide) TableName() string { return "hero_slides" }
func (BlogPost) TableName() string  { return "blogs" }
func (Promotion) TableName() string { return "promotions" }
func (Customer) TableName() string  { return "customers" }
