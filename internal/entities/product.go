package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	ImageURL    string
	VendorID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrCentreRequired    = errors.New("centre is required")
)

// Catalog is the read-only product set a screen works against.
type Catalog []Product

func (c Catalog) ByID(id string) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories returns the distinct category names present in the catalog,
// in first-seen order.
func (c Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (c Catalog) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Catalog) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(c)
}

func init() {
	gob.Register(Catalog{})
	gob.Register(Product{})
}
