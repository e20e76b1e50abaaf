// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/your-org/digistore-backend/internal/config"
	"github.com/your-org/digistore-backend/internal/domain/cart"
	"github.com/your-org/digistore-backend/internal/domain/catalog"
	"github.com/your-org/digistore-backend/internal/domain/flashsale"
	"github.com/your-org/digistore-backend/internal/domain/pricing"
)

// CartHandler handles cart endpoints. Carts are keyed by a session id the
// client carries in the X-Session-ID header, falling back to a cookie.
type CartHandler struct {
	cartService      *cart.Service
	loader           *catalog.Loader
	flashSaleService *flashsale.Service
	config           *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(redisClient *redis.Client, loader *catalog.Loader, flashSaleService *flashsale.Service, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService:      cart.NewService(redisClient, cfg),
		loader:           loader,
		flashSaleService: flashSaleService,
		config:           cfg,
	}
}

// AddToCartRequest represents the payload for adding a product
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID *uint  `json:"variant_id"`
}

// UpdateQuantityRequest adjusts a line's quantity by a signed delta
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	cartResponse, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse,
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, ok := h.loader.FindByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	var variant *catalog.Variant
	if req.VariantID != nil {
		for i := range product.Variants {
			if product.Variants[i].ID == *req.VariantID {
				variant = &product.Variants[i]
				break
			}
		}
		if variant == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Variant does not belong to this product",
			})
			return
		}
	}

	sale, err := h.flashSaleService.ActiveForProduct(product.ID, time.Now().UTC())
	if err != nil {
		sale = nil
	}

	quote := pricing.Resolve(*product, variant, sale)
	snap := cart.SnapshotOf(*product, quote.Price)
	if variant != nil {
		snap.Name = product.Name + " - " + variant.Name
	}

	cartResponse, err := h.cartService.Add(c.Request.Context(), sessionID, snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    cartResponse,
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	productID := c.Param("id")

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, productID, req.Delta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated",
		"data":    cartResponse,
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	productID := c.Param("id")

	cartResponse, err := h.cartService.Remove(c.Request.Context(), sessionID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    cartResponse,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// GetCount handles GET /cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	count, err := h.cartService.Count(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to count cart items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved",
		"data": gin.H{
			"count": count,
		},
	})
}

// getOrCreateSessionID resolves the cart session id. Header wins so SPA
// clients without cookie support still get stable carts.
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return sessionID
	}

	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()

		// Session cookie (24 hours)
		c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}

	c.Header("X-Session-ID", sessionID)
	return sessionID
}
