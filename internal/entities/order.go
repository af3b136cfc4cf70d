package entities

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusDraft          OrderStatus = "Draft"
	StatusPending        OrderStatus = "Pending"
	StatusProcessing     OrderStatus = "Processing"
	StatusAccepted       OrderStatus = "Accepted"
	StatusOnHold         OrderStatus = "On Hold"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCompleted      OrderStatus = "Completed"
	StatusDeclined       OrderStatus = "Declined"
	StatusCancelled      OrderStatus = "Cancelled"
)

// Editable reports whether the vendor may still change the order.
// Every other status renders the same data read-only.
func (s OrderStatus) Editable() bool {
	return s == StatusDraft || s == StatusAccepted
}

type OrderItem struct {
	ProductID   string
	ProductName string
	UnitPrice   float64
	Quantity    int
}

func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type Order struct {
	ID            string
	OrderNo       string
	CentreID      string
	CentreName    string
	Status        OrderStatus
	PaymentStatus string
	CreatedAt     time.Time

	Items []OrderItem
}

// Total is always derived from the current items, never stored.
func (o Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.LineTotal()
	}
	return sum
}

// OrderSummary is a list-view row; TotalAmount here is the server's figure.
type OrderSummary struct {
	ID            string
	OrderNo       string
	CentreName    string
	Status        OrderStatus
	ItemCount     int
	TotalAmount   float64
	PaymentStatus string
	ReceiptURL    string
	CreatedAt     time.Time
}

type StatusCount struct {
	Status OrderStatus
	Count  int
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderReadOnly   = errors.New("order is not editable in its current status")
	ErrSessionNotFound = errors.New("edit session not found")
	ErrSaveInFlight    = errors.New("save already in flight")
)
