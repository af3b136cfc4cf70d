package entities

import "time"

type StockDirection string

const (
	StockIn  StockDirection = "in"
	StockOut StockDirection = "out"
)

// StockEntry is one row of a product's append-only stock ledger.
type StockEntry struct {
	ID        string
	ProductID string
	Direction StockDirection
	Quantity  int
	Balance   int
	Note      string
	CreatedAt time.Time
}

// LedgerPage carries one page of a product's ledger along with paging info.
type LedgerPage struct {
	Entries    []StockEntry
	Page       int
	TotalPages int
}
