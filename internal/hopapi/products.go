package hopapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

func (c *Client) ListProducts(ctx context.Context) (entities.Catalog, error) {
	var raw []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	catalog := make(entities.Catalog, 0, len(raw))
	for _, p := range raw {
		catalog = append(catalog, ProductToEntity(p))
	}
	return catalog, nil
}

func (c *Client) ProductsByVendor(ctx context.Context, vendorID string) (entities.Catalog, error) {
	var raw []Product
	path := "/api/products/vendor/" + url.PathEscape(vendorID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch vendor products: %w", err)
	}
	catalog := make(entities.Catalog, 0, len(raw))
	for _, p := range raw {
		catalog = append(catalog, ProductToEntity(p))
	}
	return catalog, nil
}

type productPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock"`
	Vendor      string  `json:"vendor,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	payload := productPayload{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Vendor:      p.VendorID,
	}
	var res Product
	if err := c.do(ctx, http.MethodPost, "/api/products/", nil, payload, &res); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return ProductToEntity(res), nil
}

func (c *Client) UpdateProduct(ctx context.Context, p entities.Product) error {
	payload := productPayload{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
	}
	err := c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(p.ID), nil, payload, nil)
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	err := c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(productID), nil, nil, nil)
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// StockLedger fetches one page of a product's append-only stock ledger.
func (c *Client) StockLedger(ctx context.Context, productID string, page, limit int) (entities.LedgerPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var res struct {
		Ledger     []StockEntry `json:"ledger"`
		Pagination struct {
			Page       int `json:"page"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	path := "/api/products/" + url.PathEscape(productID) + "/stock-ledger"
	if err := c.do(ctx, http.MethodGet, path, query, nil, &res); err != nil {
		return entities.LedgerPage{}, fmt.Errorf("failed to fetch stock ledger: %w", err)
	}

	out := entities.LedgerPage{
		Entries:    make([]entities.StockEntry, 0, len(res.Ledger)),
		Page:       max(res.Pagination.Page, 1),
		TotalPages: max(res.Pagination.TotalPages, 1),
	}
	for _, e := range res.Ledger {
		out.Entries = append(out.Entries, StockEntryToEntity(e))
	}
	return out, nil
}
