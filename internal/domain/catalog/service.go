// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/config"
	"github.com/your-org/digistore-backend/internal/pkg/slug"
)

// Service handles admin-side product persistence against the hosted store.
// Storefront reads go through the Loader snapshot instead.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductListRequest represents admin product list query parameters
type ProductListRequest struct {
	Page     int      `form:"page,default=1"`
	Limit    int      `form:"limit,default=20"`
	Category Category `form:"category"`
	Search   string   `form:"search"`
	SortBy   string   `form:"sort_by,default=created_at"`
	SortDir  string   `form:"sort_dir,default=desc"`
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Price         int64    `json:"price" binding:"required"`
	OriginalPrice int64    `json:"original_price"`
	Category      Category `json:"category" binding:"required"`
	IsHot         bool     `json:"is_hot"`
	IsNew         bool     `json:"is_new"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Image         *string   `json:"image"`
	Price         *int64    `json:"price"`
	OriginalPrice *int64    `json:"original_price"`
	Category      *Category `json:"category"`
	IsHot         *bool     `json:"is_hot"`
	IsNew         *bool     `json:"is_new"`
	Sold          *int      `json:"sold"`
}

// ProductPage represents a paginated product listing
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// GetProducts retrieves products with filtering and pagination
func (s *Service) GetProducts(req *ProductListRequest) (*ProductPage, error) {
	var products []Product
	var total int64

	query := s.db.Model(&Product{}).
		Preload("Variants").
		Preload("Reviews")

	if req.Category != "" && req.Category != CategoryAll {
		query = query.Where("category = ?", req.Category)
	}

	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order(s.buildOrderClause(req.SortBy, req.SortDir))

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &ProductPage{
		Products: products,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id string) (*Product, error) {
	var product Product
	result := s.db.
		Preload("Variants").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, id DESC")
		}).
		Where("id = ?", id).
		First(&product)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// GetProductBySlug retrieves a single product by slug
func (s *Service) GetProductBySlug(productSlug string) (*Product, error) {
	var product Product
	result := s.db.
		Preload("Variants").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, id DESC")
		}).
		Where("slug = ?", productSlug).
		First(&product)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *ProductCreateRequest) (*Product, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", req.Category)
	}

	productSlug := slug.Make(req.Name)

	var existing Product
	if result := s.db.Where("slug = ?", productSlug).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("product with slug %s already exists", productSlug)
	}

	product := Product{
		ID:            req.ID,
		Slug:          productSlug,
		Name:          req.Name,
		Description:   req.Description,
		Image:         req.Image,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      discountPercent(req.Price, req.OriginalPrice),
		Category:      req.Category,
		IsHot:         req.IsHot,
		IsNew:         req.IsNew,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id string, req *ProductUpdateRequest) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", result.Error)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = slug.Make(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q", *req.Category)
		}
		updates["category"] = *req.Category
	}
	if req.IsHot != nil {
		updates["is_hot"] = *req.IsHot
	}
	if req.IsNew != nil {
		updates["is_new"] = *req.IsNew
	}
	if req.Sold != nil {
		updates["sold"] = *req.Sold
	}

	// Re-derive the discount whenever either price moved.
	if req.Price != nil || req.OriginalPrice != nil {
		price := product.Price
		original := product.OriginalPrice
		if req.Price != nil {
			price = *req.Price
		}
		if req.OriginalPrice != nil {
			original = *req.OriginalPrice
		}
		updates["discount"] = discountPercent(price, original)
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.GetProduct(id)
}

// DeleteProduct soft deletes a product
func (s *Service) DeleteProduct(id string) error {
	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// buildOrderClause builds ORDER BY clause for sorting
func (s *Service) buildOrderClause(sortBy, sortDir string) string {
	validSortFields := map[string]bool{
		"name":       true,
		"price":      true,
		"sold":       true,
		"rating":     true,
		"created_at": true,
		"updated_at": true,
	}

	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}

	if sortDir != "asc" && sortDir != "desc" {
		sortDir = "desc"
	}

	return fmt.Sprintf("%s %s", sortBy, sortDir)
}
