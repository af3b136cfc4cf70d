package editor

import "github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"

// Reconciler maintains the working copy of an order's line items while it is
// being edited. Quantities are capped at the quantity originally ordered:
// requests above the ceiling are silently clamped, never rejected, and
// products that were not on the original order cannot be introduced.
// Zero-quantity lines are removed rather than stored.
type Reconciler struct {
	snapshot Snapshot
	catalog  entities.Catalog
	lines    []entities.OrderItem
}

func NewReconciler(order entities.Order, catalog entities.Catalog) *Reconciler {
	lines := make([]entities.OrderItem, 0, len(order.Items))
	for _, it := range order.Items {
		if it.Quantity > 0 {
			lines = append(lines, it)
		}
	}
	return &Reconciler{
		snapshot: NewSnapshot(order.Items),
		catalog:  catalog,
		lines:    lines,
	}
}

// SetQuantity applies a requested quantity for a product. The effective
// quantity is min(requested, original); out-of-range input is clamped
// without error. Setting 0 removes the line. A product absent from the
// working list is re-inserted only if it was originally ordered and is
// still present in the catalog.
func (r *Reconciler) SetQuantity(productID string, requested int) {
	original := r.snapshot.Original(productID)
	if original <= 0 {
		return
	}

	if requested < 0 {
		requested = 0
	}
	qty := min(requested, original)

	idx := r.indexOf(productID)
	if qty == 0 {
		if idx >= 0 {
			r.lines = append(r.lines[:idx], r.lines[idx+1:]...)
		}
		return
	}

	if idx >= 0 {
		r.lines[idx].Quantity = qty
		return
	}

	product, ok := r.catalog.ByID(productID)
	if !ok {
		return
	}
	r.lines = append(r.lines, entities.OrderItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    qty,
	})
}

// Remove deletes the line unconditionally. Removing an absent line is a no-op.
func (r *Reconciler) Remove(productID string) {
	if idx := r.indexOf(productID); idx >= 0 {
		r.lines = append(r.lines[:idx], r.lines[idx+1:]...)
	}
}

// Quantity returns the working quantity, or 0 if the line is absent.
func (r *Reconciler) Quantity(productID string) int {
	if idx := r.indexOf(productID); idx >= 0 {
		return r.lines[idx].Quantity
	}
	return 0
}

// Original returns the load-time ceiling for a product.
func (r *Reconciler) Original(productID string) int {
	return r.snapshot.Original(productID)
}

// Total recomputes the order total from the current working lines on every
// call; it is never cached.
func (r *Reconciler) Total() float64 {
	var sum float64
	for _, l := range r.lines {
		sum += l.LineTotal()
	}
	return sum
}

// Units is the total number of items across all working lines.
func (r *Reconciler) Units() int {
	var n int
	for _, l := range r.lines {
		n += l.Quantity
	}
	return n
}

// CanIncrease reports whether the working quantity is still below the
// original ceiling.
func (r *Reconciler) CanIncrease(productID string) bool {
	return r.Quantity(productID) < r.snapshot.Original(productID)
}

// Items returns a copy of the working lines in insertion order.
func (r *Reconciler) Items() []entities.OrderItem {
	out := make([]entities.OrderItem, len(r.lines))
	copy(out, r.lines)
	return out
}

// EligibleProducts returns the catalog entries that may appear in the
// editor: only products that were on the original order can be adjusted
// back up from zero.
func (r *Reconciler) EligibleProducts() []entities.Product {
	var out []entities.Product
	for _, p := range r.catalog {
		if r.snapshot.Original(p.ID) > 0 {
			out = append(out, p)
		}
	}
	return out
}

func (r *Reconciler) indexOf(productID string) int {
	for i, l := range r.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
