// internal/interfaces/http/handlers/content.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/domain/content"
)

// ContentHandler handles storefront content endpoints: hero slides, blog
// posts, promotions and customer logos.
type ContentHandler struct {
	contentService *content.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(db *gorm.DB) *ContentHandler {
	return &ContentHandler{
		contentService: content.NewService(db),
	}
}

// GetHeroSlides handles GET /content/hero-slides
func (h *ContentHandler) GetHeroSlides(c *gin.Context) {
	slides, err := h.contentService.GetHeroSlides(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve hero slides",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Hero slides retrieved successfully",
		"data":    slides,
	})
}

// GetBlogPosts handles GET /content/blogs
func (h *ContentHandler) GetBlogPosts(c *gin.Context) {
	posts, err := h.contentService.GetBlogPosts(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve blog posts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog posts retrieved successfully",
		"data":    posts,
	})
}

// GetBlogPostBySlug handles GET /content/blogs/:slug
func (h *ContentHandler) GetBlogPostBySlug(c *gin.Context) {
	post, err := h.contentService.GetBlogPostBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Blog post not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog post retrieved successfully",
		"data":    post,
	})
}

// GetPromotions handles GET /content/promotions
func (h *ContentHandler) GetPromotions(c *gin.Context) {
	promotions, err := h.contentService.GetPromotions(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve promotions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promotions retrieved successfully",
		"data":    promotions,
	})
}

// GetCustomers handles GET /content/customers
func (h *ContentHandler) GetCustomers(c *gin.Context) {
	customers, err := h.contentService.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve customers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customers retrieved successfully",
		"data":    customers,
	})
}

// --- ADMIN ENDPOINTS ---

// AdminSaveHeroSlide handles POST /admin/content/hero-slides
func (h *ContentHandler) AdminSaveHeroSlide(c *gin.Context) {
	var slide content.HeroSlide
	if err := c.ShouldBindJSON(&slide); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.contentService.SaveHeroSlide(&slide); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save hero slide",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Hero slide saved successfully",
		"data":    slide,
	})
}

// AdminDeleteHeroSlide handles DELETE /admin/content/hero-slides/:id
func (h *ContentHandler) AdminDeleteHeroSlide(c *gin.Context) {
	h.deleteByID(c, h.contentService.DeleteHeroSlide, "Hero slide")
}

// AdminCreateBlogPost handles POST /admin/content/blogs
func (h *ContentHandler) AdminCreateBlogPost(c *gin.Context) {
	var req content.BlogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	post, err := h.contentService.CreateBlogPost(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Blog post created successfully",
		"data":    post,
	})
}

// AdminDeleteBlogPost handles DELETE /admin/content/blogs/:id
func (h *ContentHandler) AdminDeleteBlogPost(c *gin.Context) {
	h.deleteByID(c, h.contentService.DeleteBlogPost, "Blog post")
}

// AdminSavePromotion handles POST /admin/content/promotions
func (h *ContentHandler) AdminSavePromotion(c *gin.Context) {
	var promo content.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.contentService.SavePromotion(&promo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save promotion",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promotion saved successfully",
		"data":    promo,
	})
}

// AdminDeletePromotion handles DELETE /admin/content/promotions/:id
func (h *ContentHandler) AdminDeletePromotion(c *gin.Context) {
	h.deleteByID(c, h.contentService.DeletePromotion, "Promotion")
}

// AdminSaveCustomer handles POST /admin/content/customers
func (h *ContentHandler) AdminSaveCustomer(c *gin.Context) {
	var customer content.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.contentService.SaveCustomer(&customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save customer",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer saved successfully",
		"data":    customer,
	})
}

// AdminDeleteCustomer handles DELETE /admin/content/customers/:id
func (h *ContentHandler) AdminDeleteCustomer(c *gin.Context) {
	h.deleteByID(c, h.contentService.DeleteCustomer, "Customer")
}

func (h *ContentHandler) deleteByID(c *gin.Context, del func(uint) error, label string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return
	}

	if err := del(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": label + " deleted successfully",
	})
}
