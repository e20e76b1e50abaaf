// internal/domain/content/service.go
package content

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/pkg/slug"
)

// Service handles CRUD for the simple content entities: hero slides, blog
// posts, promotions and customers. No cross-entity invariants live here.
type Service struct {
	db *gorm.DB
}

// NewService creates a new content service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Hero slides

// GetHeroSlides lists slides in display order. activeOnly restricts to the
// storefront-visible set.
func (s *Service) GetHeroSlides(activeOnly bool) ([]HeroSlide, error) {
	var slides []HeroSlide
	query := s.db.Order("sort_order ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&slides).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve hero slides: %w", err)
	}
	return slides, nil
}

// SaveHeroSlide creates or updates a slide.
func (s *Service) SaveHeroSlide(slide *HeroSlide) error {
	if err := s.db.Save(slide).Error; err != nil {
		return fmt.Errorf("failed to save hero slide: %w", err)
	}
	return nil
}

// DeleteHeroSlide removes a slide.
func (s *Service) DeleteHeroSlide(id uint) error {
	return s.deleteByID(&HeroSlide{}, id, "hero slide")
}

// Blog posts

// BlogCreateRequest represents blog post creation data. The hosted editor
// has shipped both read_time and readTime over the years; accept both and
// keep whichever is set.
type BlogCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content" binding:"required"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	ReadTime    int    `json:"read_time"`
	ReadTimeAlt int    `json:"readTime"`
	IsActive    *bool  `json:"is_active"`
}

// GetBlogPosts lists posts, newest first.
func (s *Service) GetBlogPosts(activeOnly bool) ([]BlogPost, error) {
	var posts []BlogPost
	query := s.db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	return posts, nil
}

// GetBlogPostBySlug retrieves a single post by slug.
func (s *Service) GetBlogPostBySlug(postSlug string) (*BlogPost, error) {
	var post BlogPost
	result := s.db.Where("slug = ?", postSlug).First(&post)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("blog post not found")
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", result.Error)
	}
	return &post, nil
}

// CreateBlogPost creates a new post with a slug derived from the title.
func (s *Service) CreateBlogPost(req *BlogCreateRequest) (*BlogPost, error) {
	readTime := req.ReadTime
	if readTime == 0 {
		readTime = req.ReadTimeAlt
	}

	post := BlogPost{
		Slug:     slug.Make(req.Title),
		Title:    strings.TrimSpace(req.Title),
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Image:    req.Image,
		Author:   req.Author,
		ReadTime: readTime,
		IsActive: true,
	}
	if req.IsActive != nil {
		post.IsActive = *req.IsActive
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return &post, nil
}

// SaveBlogPost updates an existing post.
func (s *Service) SaveBlogPost(post *BlogPost) error {
	if err := s.db.Save(post).Error; err != nil {
		return fmt.Errorf("failed to save blog post: %w", err)
	}
	return nil
}

// DeleteBlogPost removes a post.
func (s *Service) DeleteBlogPost(id uint) error {
	return s.deleteByID(&BlogPost{}, id, "blog post")
}

// Promotions

// GetPromotions lists promotions, newest first.
func (s *Service) GetPromotions(activeOnly bool) ([]Promotion, error) {
	var promos []Promotion
	query := s.db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&promos).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve promotions: %w", err)
	}
	return promos, nil
}

// SavePromotion creates or updates a promotion.
func (s *Service) SavePromotion(promo *Promotion) error {
	if err := s.db.Save(promo).Error; err != nil {
		return fmt.Errorf("failed to save promotion: %w", err)
	}
	return nil
}

// DeletePromotion removes a promotion.
func (s *Service) DeletePromotion(id uint) error {
	return s.deleteByID(&Promotion{}, id, "promotion")
}

// Customers

// GetCustomers lists customers, newest first.
func (s *Service) GetCustomers() ([]Customer, error) {
	var customers []Customer
	if err := s.db.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return customers, nil
}

// SaveCustomer creates or updates a customer record.
func (s *Service) SaveCustomer(customer *Customer) error {
	if err := s.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

// DeleteCustomer removes a customer record.
func (s *Service) DeleteCustomer(id uint) error {
	return s.deleteByID(&Customer{}, id, "customer")
}

func (s *Service) deleteByID(model interface{}, id uint, label string) error {
	result := s.db.Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", label, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s not found", label)
	}
	return nil
}
