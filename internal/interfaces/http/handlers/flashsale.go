// internal/interfaces/http/handlers/flashsale.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/digistore-backend/internal/domain/flashsale"
)

// FlashSaleHandler handles flash sale endpoints
type FlashSaleHandler struct {
	flashSaleService *flashsale.Service
}

// NewFlashSaleHandler creates a new flash sale handler
func NewFlashSaleHandler(flashSaleService *flashsale.Service) *FlashSaleHandler {
	return &FlashSaleHandler{
		flashSaleService: flashSaleService,
	}
}

// GetActive handles GET /flash-sales
func (h *FlashSaleHandler) GetActive(c *gin.Context) {
	listings, err := h.flashSaleService.ActiveListings(time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve flash sales",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Flash sales retrieved successfully",
		"data":    listings,
	})
}

// --- ADMIN ENDPOINTS ---

// AdminCreate handles POST /admin/flash-sales
func (h *FlashSaleHandler) AdminCreate(c *gin.Context) {
	var req flashsale.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sale, err := h.flashSaleService.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Flash sale created successfully",
		"data":    sale,
	})
}

// AdminUpdate handles PUT /admin/flash-sales/:id
func (h *FlashSaleHandler) AdminUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flash sale ID",
		})
		return
	}

	var req flashsale.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sale, err := h.flashSaleService.Update(uint(id), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Flash sale updated successfully",
		"data":    sale,
	})
}

// AdminDelete handles DELETE /admin/flash-sales/:id
func (h *FlashSaleHandler) AdminDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flash sale ID",
		})
		return
	}

	if err := h.flashSaleService.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Flash sale deleted successfully",
	})
}
