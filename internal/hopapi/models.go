package hopapi

import (
	"time"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

// Wire shapes of the HOP SHOP API. Identifiers arrive as Mongo-style `_id`
// fields and references may be populated documents or bare IDs depending on
// the endpoint, so converters tolerate both.

type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
	Vendor      *Vendor `json:"vendor,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

type Vendor struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	UserID       string `json:"userId,omitempty"`
	Role         string `json:"role,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Status       string `json:"status,omitempty"`
}

type Centre struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	ShortCode  string `json:"shortCode,omitempty"`
	BranchName string `json:"branchName,omitempty"`
}

type OrderLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID            string      `json:"_id"`
	OrderNo       string      `json:"orderNo,omitempty"`
	CentreID      Centre      `json:"centreId"`
	Products      []OrderLine `json:"products"`
	TotalAmount   float64     `json:"totalAmount,omitempty"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus,omitempty"`
	UploadReceipt string      `json:"uploadReceipt,omitempty"`
	CreatedAt     time.Time   `json:"createdAt,omitempty"`
}

type StockEntry struct {
	ID        string    `json:"_id"`
	Product   string    `json:"product"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Balance   int       `json:"balance"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Customer struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Centre   *Centre `json:"centreId,omitempty"`
	Branch   *Centre `json:"branchId,omitempty"`
	Reason   string  `json:"reason,omitempty"`
	IsActive bool    `json:"isActive,omitempty"`
}

func ProductToEntity(p Product) entities.Product {
	e := entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		ImageURL:    p.Image,
		CreatedAt:   parseTime(p.CreatedAt),
		UpdatedAt:   parseTime(p.UpdatedAt),
	}
	if p.Vendor != nil {
		e.VendorID = p.Vendor.ID
	}
	return e
}

func VendorToEntity(v Vendor) entities.Vendor {
	return entities.Vendor{
		ID:           v.ID,
		Name:         v.Name,
		UserID:       v.UserID,
		Role:         v.Role,
		MobileNumber: v.MobileNumber,
		Status:       v.Status,
	}
}

func CentreToEntity(c Centre) entities.Centre {
	return entities.Centre{
		ID:         c.ID,
		Name:       c.Name,
		ShortCode:  c.ShortCode,
		BranchName: c.BranchName,
	}
}

func OrderToEntity(o Order) entities.Order {
	items := make([]entities.OrderItem, 0, len(o.Products))
	for _, l := range o.Products {
		items = append(items, entities.OrderItem{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
		})
	}
	return entities.Order{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		CentreID:      o.CentreID.ID,
		CentreName:    o.CentreID.Name,
		Status:        entities.OrderStatus(o.Status),
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
		Items:         items,
	}
}

func OrderToSummary(o Order) entities.OrderSummary {
	var count int
	for _, l := range o.Products {
		count += l.Quantity
	}
	return entities.OrderSummary{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		CentreName:    o.CentreID.Name,
		Status:        entities.OrderStatus(o.Status),
		ItemCount:     count,
		TotalAmount:   o.TotalAmount,
		PaymentStatus: o.PaymentStatus,
		ReceiptURL:    o.UploadReceipt,
		CreatedAt:     o.CreatedAt,
	}
}

// OrderFromEntity rebuilds the wire shape for a full-replacement save.
func OrderFromEntity(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, OrderLine{
			Product: Product{
				ID:    it.ProductID,
				Name:  it.ProductName,
				Price: it.UnitPrice,
			},
			Quantity: it.Quantity,
		})
	}
	return Order{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		CentreID:      Centre{ID: o.CentreID, Name: o.CentreName},
		Products:      lines,
		Status:        string(o.Status),
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}
}

func StockEntryToEntity(e StockEntry) entities.StockEntry {
	return entities.StockEntry{
		ID:        e.ID,
		ProductID: e.Product,
		Direction: entities.StockDirection(e.Type),
		Quantity:  e.Quantity,
		Balance:   e.Balance,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func CustomerToEntity(c Customer) entities.Customer {
	e := entities.Customer{
		ID:     c.ID,
		Name:   c.Name,
		Reason: c.Reason,
	}
	if c.Centre != nil {
		e.CentreName = c.Centre.Name
	}
	if c.Branch != nil {
		e.BranchName = c.Branch.Name
	}
	return e
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
