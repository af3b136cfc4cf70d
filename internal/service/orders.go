package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

type OrderListAPI interface {
	AllOrders(ctx context.Context) ([]entities.OrderSummary, error)
	OrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.OrderSummary, error)
	OrdersByCentre(ctx context.Context, centreID string) ([]entities.OrderSummary, error)
	AcceptedOrders(ctx context.Context, vendorID string) ([]entities.OrderSummary, error)
	OrderStatusCounts(ctx context.Context) ([]entities.StatusCount, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
	PlaceOrder(ctx context.Context, centreID string, items []entities.OrderItem) (string, error)
}

type CentreAPI interface {
	ListCentres(ctx context.Context) ([]entities.Centre, error)
}

type orderService struct {
	logger  *slog.Logger
	api     OrderListAPI
	centres CentreAPI
	source  CatalogSource
}

func NewOrderService(logger *slog.Logger, api OrderListAPI, centres CentreAPI, source CatalogSource) *orderService {
	return &orderService{
		logger:  logger.With(slog.String("service", "orders")),
		api:     api,
		centres: centres,
		source:  source,
	}
}

func (s *orderService) List(ctx context.Context, status entities.OrderStatus) ([]entities.OrderSummary, error) {
	if status == "" {
		return s.api.AllOrders(ctx)
	}
	return s.api.OrdersByStatus(ctx, status)
}

func (s *orderService) ByCentre(ctx context.Context, centreID string) ([]entities.OrderSummary, error) {
	return s.api.OrdersByCentre(ctx, centreID)
}

func (s *orderService) Accepted(ctx context.Context, vendorID string) ([]entities.OrderSummary, error) {
	return s.api.AcceptedOrders(ctx, vendorID)
}

func (s *orderService) StatusCounts(ctx context.Context) ([]entities.StatusCount, error) {
	return s.api.OrderStatusCounts(ctx)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	if err := s.api.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}
	s.logger.Debug("order status updated",
		slog.String("order_id", orderID),
		slog.String("status", string(status)),
	)
	return nil
}

func (s *orderService) Centres(ctx context.Context) ([]entities.Centre, error) {
	return s.centres.ListCentres(ctx)
}

// Place submits a new order after checking every requested quantity
// against the current catalog stock. Unlike the editor's silent clamp,
// ordering more than is in stock is a visible error.
func (s *orderService) Place(ctx context.Context, centreID string, items []entities.OrderItem) (string, error) {
	if centreID == "" {
		return "", entities.ErrCentreRequired
	}
	if len(items) == 0 {
		return "", entities.ErrEmptyCart
	}

	catalog, err := s.source.Catalog(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog for stock check: %w", err)
	}

	for _, it := range items {
		if it.Quantity <= 0 {
			return "", fmt.Errorf("%w: %s", entities.ErrInvalidQuantity, it.ProductID)
		}
		product, ok := catalog.ByID(it.ProductID)
		if !ok {
			return "", fmt.Errorf("%w: %s", entities.ErrProductNotFound, it.ProductID)
		}
		if it.Quantity > product.Stock {
			return "", fmt.Errorf("%w: %s has %d in stock", entities.ErrInsufficientStock, product.Name, product.Stock)
		}
	}

	orderID, err := s.api.PlaceOrder(ctx, centreID, items)
	if err != nil {
		return "", err
	}
	s.logger.Info("order placed",
		slog.String("order_id", orderID),
		slog.String("centre_id", centreID),
		slog.Int("lines", len(items)),
	)
	return orderID, nil
}
