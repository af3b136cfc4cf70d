package editor

import "github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"

// Snapshot maps product ID to the quantity recorded on the order at load
// time. It is captured once and never mutated afterwards; it is the sole
// source of truth for the upper bound on any line item's quantity.
type Snapshot map[string]int

func NewSnapshot(items []entities.OrderItem) Snapshot {
	s := make(Snapshot, len(items))
	for _, it := range items {
		if it.ProductID == "" {
			continue
		}
		s[it.ProductID] = it.Quantity
	}
	return s
}

// Original returns the quantity ordered at load time, or 0 for products
// that were never on the order.
func (s Snapshot) Original(productID string) int {
	return s[productID]
}
