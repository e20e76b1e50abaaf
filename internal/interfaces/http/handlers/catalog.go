// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/config"
	"github.com/your-org/digistore-backend/internal/domain/catalog"
	"github.com/your-org/digistore-backend/internal/domain/flashsale"
	"github.com/your-org/digistore-backend/internal/domain/pricing"
)

// CatalogHandler handles storefront and admin product endpoints.
// Storefront reads go through the in-memory snapshot, admin writes go
// through the database service.
type CatalogHandler struct {
	loader           *catalog.Loader
	catalogService   *catalog.Service
	reviewService    *catalog.ReviewService
	flashSaleService *flashsale.Service
	config           *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(db *gorm.DB, loader *catalog.Loader, flashSaleService *flashsale.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		loader:           loader,
		catalogService:   catalog.NewService(db, cfg),
		reviewService:    catalog.NewReviewService(db),
		flashSaleService: flashSaleService,
		config:           cfg,
	}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var req catalog.QueryRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products := catalog.Query(h.loader.Products(), req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, ok := h.loader.FindByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    h.detail(c, product),
	})
}

// GetProductBySlug handles GET /products/slug/:slug
func (h *CatalogHandler) GetProductBySlug(c *gin.Context) {
	productSlug := c.Param("slug")
	if productSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product slug is required",
		})
		return
	}

	product, ok := h.loader.FindBySlug(productSlug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    h.detail(c, product),
	})
}

// detail decorates a product with its resolved quote. The quote reflects
// any live flash sale at request time.
func (h *CatalogHandler) detail(c *gin.Context, product *catalog.Product) gin.H {
	sale, err := h.flashSaleService.ActiveForProduct(product.ID, time.Now().UTC())
	if err != nil {
		sale = nil
	}

	quote := pricing.Resolve(*product, nil, sale)

	return gin.H{
		"product": product,
		"quote":   quote,
	}
}

// GetReviews handles GET /products/:id/reviews
func (h *CatalogHandler) GetReviews(c *gin.Context) {
	id := c.Param("id")

	// Snapshot products carry their reviews inline; the database holds
	// reviews submitted through this API.
	reviews, err := h.reviewService.GetReviews(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve reviews",
		})
		return
	}

	if product, ok := h.loader.FindByID(id); ok && len(reviews) == 0 {
		reviews = product.Reviews
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data":    reviews,
	})
}

// CreateReview handles POST /products/:id/reviews
func (h *CatalogHandler) CreateReview(c *gin.Context) {
	var req catalog.CreateReviewRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	req.ProductID = c.Param("id")

	review, err := h.reviewService.CreateReview(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"data":    review,
	})
}

// --- ADMIN ENDPOINTS ---

// AdminGetProducts handles GET /admin/products
func (h *CatalogHandler) AdminGetProducts(c *gin.Context) {
	var req catalog.ProductListRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}

	response, err := h.catalogService.GetProducts(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    response,
	})
}

// AdminGetProduct handles GET /admin/products/:id
func (h *CatalogHandler) AdminGetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// AdminCreateProduct handles POST /admin/products
func (h *CatalogHandler) AdminCreateProduct(c *gin.Context) {
	var req catalog.ProductCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// AdminUpdateProduct handles PUT /admin/products/:id
func (h *CatalogHandler) AdminUpdateProduct(c *gin.Context) {
	var req catalog.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// AdminDeleteProduct handles DELETE /admin/products/:id
func (h *CatalogHandler) AdminDeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// AdminRefreshCatalog handles POST /admin/catalog/refresh
func (h *CatalogHandler) AdminRefreshCatalog(c *gin.Context) {
	products := h.loader.Refresh(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog snapshot refreshed",
		"data": gin.H{
			"total": len(products),
		},
	})
}
