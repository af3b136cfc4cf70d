package handler

import (
	"time"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/editor"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

// Product describes a catalog entry
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// OrderSummary is one row of an order list
type OrderSummary struct {
	ID            string    `json:"id"`
	OrderNo       string    `json:"order_no,omitempty"`
	Centre        string    `json:"centre,omitempty"`
	Status        string    `json:"status"`
	ItemCount     int       `json:"item_count"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	ReceiptURL    string    `json:"receipt_url,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// EditorLine is a working line item inside an edit session
type EditorLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// EditorProduct is a catalog tile eligible for adjustment in the editor
type EditorProduct struct {
	Product
	Controls editor.Controls `json:"controls"`
}

// EditorSession is the full editor view returned by every editor endpoint
type EditorSession struct {
	SessionID string          `json:"session_id"`
	OrderID   string          `json:"order_id"`
	OrderNo   string          `json:"order_no,omitempty"`
	Centre    string          `json:"centre,omitempty"`
	Status    string          `json:"status"`
	State     string          `json:"state"`
	Editable  bool            `json:"editable"`
	Items     []EditorLine    `json:"items"`
	Products  []EditorProduct `json:"products"`
	Units     int             `json:"units"`
	Total     float64         `json:"total"`
}

type Centre struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ShortCode  string `json:"short_code,omitempty"`
	BranchName string `json:"branch_name,omitempty"`
}

type StockEntry struct {
	ID        string    `json:"id"`
	Direction string    `json:"direction"`
	Quantity  int       `json:"quantity"`
	Balance   int       `json:"balance"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LedgerPage struct {
	Entries    []StockEntry `json:"entries"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type SalesAnalytics struct {
	TotalRevenue float64        `json:"total_revenue"`
	TotalOrders  int            `json:"total_orders"`
	ByProduct    []ProductSales `json:"by_product"`
	ByMonth      []MonthSales   `json:"by_month"`
	From         string         `json:"from,omitempty"`
	To           string         `json:"to,omitempty"`
}

type ProductSales struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	TotalRevenue float64 `json:"total_revenue"`
}

type MonthSales struct {
	Month        string  `json:"month"`
	TotalRevenue float64 `json:"total_revenue"`
	OrderCount   int     `json:"order_count"`
}

type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Centre string `json:"centre,omitempty"`
	Branch string `json:"branch,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type Notifications struct {
	Customers     []Customer `json:"customers"`
	AcceptedCount int        `json:"accepted_count"`
	FetchedAt     time.Time  `json:"fetched_at,omitempty"`
}

type VendorProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	UserID       string `json:"user_id,omitempty"`
	Role         string `json:"role,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
	KKStock      bool   `json:"kk_stock"`
}

// Request payloads

type OpenSessionRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

type PlaceOrderLine struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type PlaceOrderRequest struct {
	CentreID string           `json:"centre_id" validate:"required"`
	Items    []PlaceOrderLine `json:"items" validate:"required,min=1,dive"`
}

type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Converters

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

func SummaryEntityToJSON(o entities.OrderSummary) OrderSummary {
	return OrderSummary{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		Centre:        o.CentreName,
		Status:        string(o.Status),
		ItemCount:     o.ItemCount,
		TotalAmount:   o.TotalAmount,
		PaymentStatus: o.PaymentStatus,
		ReceiptURL:    o.ReceiptURL,
		CreatedAt:     o.CreatedAt,
	}
}

func CentreEntityToJSON(c entities.Centre) Centre {
	return Centre{
		ID:         c.ID,
		Name:       c.Name,
		ShortCode:  c.ShortCode,
		BranchName: c.BranchName,
	}
}

func LedgerEntityToJSON(p entities.LedgerPage) LedgerPage {
	out := LedgerPage{
		Entries:    make([]StockEntry, 0, len(p.Entries)),
		Page:       p.Page,
		TotalPages: p.TotalPages,
	}
	for _, e := range p.Entries {
		out.Entries = append(out.Entries, StockEntry{
			ID:        e.ID,
			Direction: string(e.Direction),
			Quantity:  e.Quantity,
			Balance:   e.Balance,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

func AnalyticsEntityToJSON(a entities.SalesAnalytics) SalesAnalytics {
	out := SalesAnalytics{
		TotalRevenue: a.TotalRevenue,
		TotalOrders:  a.TotalOrders,
		From:         a.From,
		To:           a.To,
		ByProduct:    make([]ProductSales, 0, len(a.ByProduct)),
		ByMonth:      make([]MonthSales, 0, len(a.ByMonth)),
	}
	for _, p := range a.ByProduct {
		out.ByProduct = append(out.ByProduct, ProductSales{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			TotalRevenue: p.TotalRevenue,
		})
	}
	for _, m := range a.ByMonth {
		out.ByMonth = append(out.ByMonth, MonthSales{
			Month:        m.Month,
			TotalRevenue: m.TotalRevenue,
			OrderCount:   m.OrderCount,
		})
	}
	return out
}

// SessionToJSON flattens a live edit session into its full view: current
// working lines plus every eligible catalog tile with its control state.
func SessionToJSON(s *editor.Session) EditorSession {
	order := s.Order()

	view := EditorSession{
		SessionID: s.ID,
		OrderID:   order.ID,
		OrderNo:   order.OrderNo,
		Centre:    order.CentreName,
		Status:    string(order.Status),
		State:     string(s.State()),
		Editable:  s.Editable(),
		Items:     make([]EditorLine, 0, len(order.Items)),
		Units:     s.Units(),
		Total:     s.Total(),
	}
	for _, it := range order.Items {
		view.Items = append(view.Items, EditorLine{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}
	for _, p := range s.EligibleProducts() {
		view.Products = append(view.Products, EditorProduct{
			Product:  ProductEntityToJSON(p),
			Controls: s.Controls(p.ID),
		})
	}
	return view
}
