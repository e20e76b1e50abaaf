// internal/domain/cart/cart.go
package cart

import "time"

// Cart is an ordered list of line items. All mutating operations work on the
// value in place through pointer receivers; the type itself carries no I/O,
// so it can be tested without a store behind it. Insertion order is
// preserved for display.
type Cart struct {
	Items []Item `json:"items"`
}

// Add puts one unit of the product in the cart. A line item with the same
// product id is incremented in place, keeping its position; otherwise a new
// line item with quantity 1 is appended.
func (c *Cart) Add(snap Snapshot) {
	for i := range c.Items {
		if c.Items[i].ProductID == snap.ProductID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, Item{
		ProductID: snap.ProductID,
		Name:      snap.Name,
		Image:     snap.Image,
		Price:     snap.Price,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	})
}

// Remove deletes the line item with the given product id. Removing an absent
// id is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies a quantity delta to the line item with the given
// product id. A delta that would take the quantity to zero or below is a
// no-op: items leave the cart only through Remove.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if next := c.Items[i].Quantity + delta; next > 0 {
				c.Items[i].Quantity = next
			}
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total returns the sum of price * quantity over all line items, in whole
// currency units.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Count returns the sum of quantities, used for the cart badge.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Totals derives all aggregates in one pass.
func (c *Cart) Totals() Totals {
	return Totals{
		ItemCount:     len(c.Items),
		TotalQuantity: c.Count(),
		TotalAmount:   c.Total(),
	}
}
