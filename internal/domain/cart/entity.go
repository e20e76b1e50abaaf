// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
)

// Item is a line item: a product snapshot plus quantity. The price is baked
// in at add time, so a flash-sale price survives even after the sale ends.
type Item struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Snapshot captures what the cart remembers about a product when an item is
// added.
type Snapshot struct {
	ProductID string
	Name      string
	Image     string
	Price     int64
}

// SnapshotOf builds an add-time snapshot from a catalog product at the given
// effective unit price.
func SnapshotOf(p catalog.Product, price int64) Snapshot {
	return Snapshot{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     price,
	}
}

// SessionCart is the per-session cart persisted in Redis for the storefront.
type SessionCart struct {
	SessionID string    `json:"session_id"`
	Cart      Cart      `json:"cart"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Totals represents derived cart aggregates.
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of distinct line items
	TotalQuantity int   `json:"total_quantity"` // Badge count: sum of quantities
	TotalAmount   int64 `json:"total_amount"`   // Sum of price * quantity
}
