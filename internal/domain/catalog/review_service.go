// internal/domain/catalog/review_service.go
package catalog

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ReviewService handles review business logic
type ReviewService struct {
	db *gorm.DB
}

// NewReviewService creates a new review service
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{
		db: db,
	}
}

// CreateReviewRequest represents review submission data
type CreateReviewRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	User          string `json:"user" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment" binding:"required"`
	PurchasedType string `json:"purchased_type"`
}

// CreateReview appends a review to a product and recomputes the product's
// aggregate rating as the mean of all review ratings, rounded to one
// decimal. Reviews are never rewritten.
func (s *ReviewService) CreateReview(req *CreateReviewRequest) (*Review, error) {
	var product Product
	if err := s.db.Where("id = ?", req.ProductID).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	review := Review{
		ProductID:     req.ProductID,
		User:          strings.TrimSpace(req.User),
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
		Date:          time.Now().UTC(),
		PurchasedType: strings.TrimSpace(req.PurchasedType),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var reviews []Review
		if err := tx.Where("product_id = ?", req.ProductID).Find(&reviews).Error; err != nil {
			return fmt.Errorf("failed to load reviews: %w", err)
		}

		if err := tx.Model(&Product{}).
			Where("id = ?", req.ProductID).
			Update("rating", AverageRating(reviews)).Error; err != nil {
			return fmt.Errorf("failed to update product rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// GetReviews lists reviews for a product, newest first.
func (s *ReviewService) GetReviews(productID string) ([]Review, error) {
	var reviews []Review
	err := s.db.Where("product_id = ?", productID).
		Order("date DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}
