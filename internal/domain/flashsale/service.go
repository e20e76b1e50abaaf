// internal/domain/flashsale/service.go
package flashsale

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
)

// Service handles flash sale business logic
type Service struct {
	db     *gorm.DB
	loader *catalog.Loader
}

// NewService creates a new flash sale service
func NewService(db *gorm.DB, loader *catalog.Loader) *Service {
	return &Service{
		db:     db,
		loader: loader,
	}
}

// CreateRequest represents flash sale creation data
type CreateRequest struct {
	ProductID       string    `json:"product_id" binding:"required"`
	DiscountPercent int       `json:"discount_percent" binding:"required,min=1,max=99"`
	QuantityTotal   int       `json:"quantity_total" binding:"required,min=1"`
	QuantitySold    int       `json:"quantity_sold"`
	EndTime         time.Time `json:"end_time" binding:"required"`
	IsActive        *bool     `json:"is_active"`
}

// UpdateRequest represents flash sale update data
type UpdateRequest struct {
	DiscountPercent *int       `json:"discount_percent"`
	QuantityTotal   *int       `json:"quantity_total"`
	QuantitySold    *int       `json:"quantity_sold"`
	EndTime         *time.Time `json:"end_time"`
	IsActive        *bool      `json:"is_active"`
}

// ActiveListings returns live sales joined to their products, with the
// display values derived at the given instant. Sales whose product cannot
// be resolved in the catalog snapshot are skipped rather than rendered
// half-empty.
func (s *Service) ActiveListings(now time.Time) ([]Listing, error) {
	var sales []FlashSale
	err := s.db.Where("is_active = ? AND end_time > ?", true, now).
		Order("end_time ASC").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve flash sales: %w", err)
	}

	listings := make([]Listing, 0, len(sales))
	for _, sale := range sales {
		product, ok := s.loader.FindByID(sale.ProductID)
		if !ok {
			continue
		}
		listings = append(listings, buildListing(sale, product, now))
	}
	return listings, nil
}

// ActiveForProduct returns the live sale for a product, if any.
func (s *Service) ActiveForProduct(productID string, now time.Time) (*FlashSale, error) {
	var sale FlashSale
	err := s.db.Where("product_id = ? AND is_active = ? AND end_time > ?", productID, true, now).
		Order("end_time ASC").
		First(&sale).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve flash sale: %w", err)
	}
	return &sale, nil
}

// Create creates a new flash sale
func (s *Service) Create(req *CreateRequest) (*FlashSale, error) {
	if _, ok := s.loader.FindByID(req.ProductID); !ok {
		return nil, fmt.Errorf("product not found")
	}

	sale := FlashSale{
		ProductID:       req.ProductID,
		DiscountPercent: req.DiscountPercent,
		QuantityTotal:   req.QuantityTotal,
		QuantitySold:    req.QuantitySold,
		EndTime:         req.EndTime,
		IsActive:        true,
	}
	if req.IsActive != nil {
		sale.IsActive = *req.IsActive
	}

	if err := s.db.Create(&sale).Error; err != nil {
		return nil, fmt.Errorf("failed to create flash sale: %w", err)
	}
	return &sale, nil
}

// Update updates an existing flash sale
func (s *Service) Update(id uint, req *UpdateRequest) (*FlashSale, error) {
	var sale FlashSale
	if err := s.db.First(&sale, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("flash sale not found")
		}
		return nil, fmt.Errorf("failed to find flash sale: %w", err)
	}

	updates := make(map[string]interface{})
	if req.DiscountPercent != nil {
		updates["discount_percent"] = *req.DiscountPercent
	}
	if req.QuantityTotal != nil {
		updates["quantity_total"] = *req.QuantityTotal
	}
	if req.QuantitySold != nil {
		updates["quantity_sold"] = *req.QuantitySold
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(&sale).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update flash sale: %w", err)
	}
	return &sale, nil
}

// Delete removes a flash sale
func (s *Service) Delete(id uint) error {
	result := s.db.Delete(&FlashSale{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete flash sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("flash sale not found")
	}
	return nil
}

func buildListing(sale FlashSale, product *catalog.Product, now time.Time) Listing {
	return Listing{
		FlashSale:   sale,
		Product:     product,
		SalePrice:   SalePrice(product.Price, sale.DiscountPercent),
		Countdown:   Remaining(now, sale.EndTime),
		SoldPercent: SoldPercent(sale.QuantitySold, sale.QuantityTotal),
	}
}

// SalePrice applies the promotional discount to the catalog price, rounding
// down to whole currency units.
func SalePrice(basePrice int64, discountPercent int) int64 {
	if discountPercent <= 0 {
		return basePrice
	}
	if discountPercent >= 100 {
		return 0
	}
	return basePrice * int64(100-discountPercent) / 100
}
