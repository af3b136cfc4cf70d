package hopapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

// GetOrder fetches one order by ID. The endpoint wraps the document in an
// `order` envelope.
func (c *Client) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var res struct {
		Order Order `json:"order"`
	}
	err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil, nil, &res)
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to fetch order: %w", err)
	}
	return OrderToEntity(res.Order), nil
}

// SaveOrder replaces the order's product list server-side. There is no
// partial update and no concurrency token: last writer wins.
func (c *Client) SaveOrder(ctx context.Context, order entities.Order) error {
	payload := OrderFromEntity(order)
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(order.ID), nil, payload, nil); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	err := c.do(ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(orderID)+"/status", nil, body, nil)
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

type placeOrderLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type placeOrderRequest struct {
	CentreID string           `json:"centreId"`
	Products []placeOrderLine `json:"products"`
	Status   string           `json:"status"`
}

// PlaceOrder submits a new order for a centre. New orders always start in
// Pending status, matching what the dashboard sends.
func (c *Client) PlaceOrder(ctx context.Context, centreID string, items []entities.OrderItem) (string, error) {
	req := placeOrderRequest{
		CentreID: centreID,
		Status:   string(entities.StatusPending),
	}
	for _, it := range items {
		req.Products = append(req.Products, placeOrderLine{Product: it.ProductID, Quantity: it.Quantity})
	}

	var res struct {
		Order Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders/placeOrder1", nil, req, &res); err != nil {
		return "", fmt.Errorf("failed to place order: %w", err)
	}
	return res.Order.ID, nil
}

// listOrders tolerates both a bare array and an `orders` envelope; the
// upstream is inconsistent between endpoints.
func (c *Client) listOrders(ctx context.Context, path string) ([]entities.OrderSummary, error) {
	var body json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &body); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var raw []Order
	if err := json.Unmarshal(body, &raw); err != nil {
		var envelope struct {
			Orders []Order `json:"orders"`
		}
		if envErr := json.Unmarshal(body, &envelope); envErr != nil {
			return nil, fmt.Errorf("failed to decode order list: %w", err)
		}
		raw = envelope.Orders
	}

	out := make([]entities.OrderSummary, 0, len(raw))
	for _, o := range raw {
		out = append(out, OrderToSummary(o))
	}
	return out, nil
}

func (c *Client) AllOrders(ctx context.Context) ([]entities.OrderSummary, error) {
	return c.listOrders(ctx, "/api/orders/all")
}

func (c *Client) OrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.OrderSummary, error) {
	return c.listOrders(ctx, "/api/orders/status/"+url.PathEscape(string(status)))
}

func (c *Client) OrdersByCentre(ctx context.Context, centreID string) ([]entities.OrderSummary, error) {
	return c.listOrders(ctx, "/api/orders/centre/"+url.PathEscape(centreID))
}

func (c *Client) AcceptedOrders(ctx context.Context, vendorID string) ([]entities.OrderSummary, error) {
	return c.listOrders(ctx, "/api/orders/accepted/"+url.PathEscape(vendorID))
}

func (c *Client) OrderStatusCounts(ctx context.Context) ([]entities.StatusCount, error) {
	var raw []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/orders/grouped-by-status", nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch status counts: %w", err)
	}
	out := make([]entities.StatusCount, 0, len(raw))
	for _, r := range raw {
		out = append(out, entities.StatusCount{Status: entities.OrderStatus(r.Status), Count: r.Count})
	}
	return out, nil
}
