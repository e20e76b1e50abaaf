// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/config"
	"github.com/your-org/digistore-backend/internal/domain/cart"
)

// Service handles order business logic
type Service struct {
	db          *gorm.DB
	config      *config.Config
	cartService *cart.Service
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, cartService *cart.Service) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		cartService: cartService,
	}
}

// CheckoutRequest represents checkout submission data. ClientTotal is what
// the storefront computed and displayed; the service re-derives the real
// total from the cart and rejects a mismatch instead of trusting it.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Note          string `json:"note"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	ClientTotal   int64  `json:"total" binding:"required"`
}

// OrderListRequest represents admin order list query parameters
type OrderListRequest struct {
	Page    int    `form:"page,default=1"`
	Limit   int    `form:"limit,default=20"`
	Status  Status `form:"status"`
	SortDir string `form:"sort_dir,default=desc"`
}

// OrderPage represents a paginated order listing
type OrderPage struct {
	Orders     []Order    `json:"orders"`
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

// Checkout turns the session cart into a pending order and clears the cart.
func (s *Service) Checkout(ctx context.Context, sessionID string, req *CheckoutRequest) (*Order, error) {
	cartResp, err := s.cartService.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cartResp.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	items := make([]Item, len(cartResp.Items))
	for i, ci := range cartResp.Items {
		items[i] = Item{
			ProductID: ci.ProductID,
			Name:      ci.Name,
			Price:     ci.Price,
			Quantity:  ci.Quantity,
		}
	}

	total := ItemsTotal(items)
	if req.ClientTotal != total {
		return nil, fmt.Errorf("order total mismatch: client sent %d, cart sums to %d", req.ClientTotal, total)
	}

	order := Order{
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Note:          req.Note,
		Status:        StatusPending,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   total,
		Items:         items,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		order.OrderNumber = FormatOrderNumber(order.ID, time.Now().UTC())
		if err := tx.Model(&order).Update("order_number", order.OrderNumber).Error; err != nil {
			return fmt.Errorf("failed to assign order number: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		// The order exists; a lingering cart is an annoyance, not a failure.
		return &order, nil
	}

	return &order, nil
}

// GetOrder retrieves a single order by ID
func (s *Service) GetOrder(id uint) (*Order, error) {
	var order Order
	result := s.db.Preload("Items").First(&order, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}
	return &order, nil
}

// GetOrderByNumber retrieves a single order by its order number
func (s *Service) GetOrderByNumber(orderNumber string) (*Order, error) {
	var order Order
	result := s.db.Preload("Items").Where("order_number = ?", orderNumber).First(&order)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}
	return &order, nil
}

// GetOrders retrieves orders with filtering and pagination
func (s *Service) GetOrders(req *OrderListRequest) (*OrderPage, error) {
	var orders []Order
	var total int64

	query := s.db.Model(&Order{}).Preload("Items")

	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("unknown order status %q", req.Status)
		}
		query = query.Where("status = ?", req.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	dir := "DESC"
	if req.SortDir == "asc" {
		dir = "ASC"
	}
	query = query.Order("created_at " + dir)

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &OrderPage{
		Orders: orders,
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

// UpdateStatus moves an order to a new status, enforcing the transition
// table.
func (s *Service) UpdateStatus(id uint, next Status) (*Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("unknown order status %q", next)
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	if !order.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move order from %s to %s", order.Status, next)
	}

	if err := s.db.Model(order).Update("status", next).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = next
	return order, nil
}
