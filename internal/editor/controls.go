package editor

// Controls translates reconciler state into control affordances for one
// product tile. It layers presentation rules on top of the reconciler and
// carries no invariants of its own.
type Controls struct {
	Quantity     int  `json:"quantity"`
	Original     int  `json:"original"`
	CanIncrement bool `json:"can_increment"`
	CanDecrement bool `json:"can_decrement"`
	// Deficit is original minus current, shown as a badge while the line is
	// reduced but not removed.
	Deficit int  `json:"deficit"`
	Removed bool `json:"removed"`
}

// ControlsFor computes the affordances for a product. Read-only enforcement
// happens here: when editable is false both steppers are disabled, while
// the reconciler itself stays callable.
func (r *Reconciler) ControlsFor(productID string, editable bool) Controls {
	current := r.Quantity(productID)
	original := r.Original(productID)

	c := Controls{
		Quantity:     current,
		Original:     original,
		CanDecrement: editable && current > 0,
		CanIncrement: editable && r.CanIncrease(productID),
		Removed:      current == 0,
	}
	if current > 0 && current < original {
		c.Deficit = original - current
	}
	return c
}
