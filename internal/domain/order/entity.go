// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is a known order status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order represents a checkout result. Digital goods ship by email, so the
// customer contact fields stand in for a shipping address.
type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	OrderNumber   string         `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	CustomerName  string         `gorm:"not null;size:255" json:"customer_name"`
	Email         string         `gorm:"not null;size:255" json:"email"`
	Phone         string         `gorm:"size:20" json:"phone"`
	Note          string         `gorm:"type:text" json:"note"`
	Status        Status         `gorm:"not null;default:'pending'" json:"status"`
	PaymentMethod string         `gorm:"not null;size:50" json:"payment_method"`
	TotalAmount   int64          `gorm:"not null" json:"total_amount"` // Whole-unit currency
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item represents a purchased line item, frozen at checkout time.
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID string    `gorm:"not null;index;size:64" json:"product_id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Price     int64     `gorm:"not null" json:"price"` // Unit price at checkout
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }

// transitions lists the allowed status moves.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the order may move to the given status.
// Completed and cancelled are terminal.
func (o *Order) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanBeCancelled checks if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.CanTransitionTo(StatusCancelled)
}

// FormatOrderNumber builds the human-facing order number for an id.
func FormatOrderNumber(id uint, at time.Time) string {
	return fmt.Sprintf("ORD-%s-%05d", at.Format("20060102"), id)
}

// ItemsTotal sums price * quantity over line items. Checkout re-derives the
// total with this instead of trusting the client's figure.
func ItemsTotal(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
