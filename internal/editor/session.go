package editor

import (
	"sync"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

type State string

const (
	StateReadyEditable State = "ready_editable"
	StateReadyReadOnly State = "ready_read_only"
	StateSaveInFlight  State = "save_in_flight"
	StateSaveFailed    State = "save_failed"
	StateSaveSucceeded State = "save_succeeded"
)

// Session owns the working copy of one order for the duration of an edit.
// No two sessions share a working copy; the server remains the owner of
// record and is updated only on explicit save.
type Session struct {
	ID string

	mu    sync.Mutex
	order entities.Order
	rec   *Reconciler
	state State
}

func NewSession(id string, order entities.Order, catalog entities.Catalog) *Session {
	state := StateReadyReadOnly
	if order.Status.Editable() {
		state = StateReadyEditable
	}
	return &Session{
		ID:    id,
		order: order,
		rec:   NewReconciler(order, catalog),
		state: state,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Editable reports whether edits are currently accepted.
func (s *Session) Editable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return editable(s.state)
}

// editable covers every state that accepts edits: a failed or succeeded
// save hands control back to the user with the working copy intact.
func editable(st State) bool {
	return st == StateReadyEditable || st == StateSaveFailed || st == StateSaveSucceeded
}

// SetQuantity applies a quantity change through the reconciler. Read-only
// sessions reject the change at this gate; out-of-range values are still
// silently clamped, never reported.
func (s *Session) SetQuantity(productID string, requested int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !editable(s.state) {
		return entities.ErrOrderReadOnly
	}
	s.rec.SetQuantity(productID, requested)
	return nil
}

func (s *Session) RemoveItem(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !editable(s.state) {
		return entities.ErrOrderReadOnly
	}
	s.rec.Remove(productID)
	return nil
}

// BeginSave moves the session into SaveInFlight. A second save is refused
// while one is pending; read-only sessions cannot save at all.
func (s *Session) BeginSave() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.state == StateSaveInFlight:
		return entities.ErrSaveInFlight
	case !editable(s.state):
		return entities.ErrOrderReadOnly
	}
	s.state = StateSaveInFlight
	return nil
}

// FinishSave records the outcome of the in-flight save. On failure the
// working copy is preserved so the user may retry.
func (s *Session) FinishSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSaveInFlight {
		return
	}
	if err != nil {
		s.state = StateSaveFailed
		return
	}
	s.state = StateSaveSucceeded
}

// Order returns the aggregate as it would be saved: the loaded order
// metadata with the current working lines.
func (s *Session) Order() entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.order
	o.Items = s.rec.Items()
	return o
}

func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Total()
}

func (s *Session) Units() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Units()
}

func (s *Session) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Quantity(productID)
}

func (s *Session) Controls(productID string) Controls {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.ControlsFor(productID, editable(s.state))
}

func (s *Session) EligibleProducts() []entities.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.EligibleProducts()
}
