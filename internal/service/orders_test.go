package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderListAPI struct {
	all      []entities.OrderSummary
	byStatus []entities.OrderSummary
	placedID string
	placeErr error

	gotStatus entities.OrderStatus
	gotCentre string
	gotItems  []entities.OrderItem
}

func (s *stubOrderListAPI) AllOrders(_ context.Context) ([]entities.OrderSummary, error) {
	return s.all, nil
}

func (s *stubOrderListAPI) OrdersByStatus(_ context.Context, status entities.OrderStatus) ([]entities.OrderSummary, error) {
	s.gotStatus = status
	return s.byStatus, nil
}

func (s *stubOrderListAPI) OrdersByCentre(_ context.Context, _ string) ([]entities.OrderSummary, error) {
	return s.all, nil
}

func (s *stubOrderListAPI) AcceptedOrders(_ context.Context, _ string) ([]entities.OrderSummary, error) {
	return s.byStatus, nil
}

func (s *stubOrderListAPI) OrderStatusCounts(_ context.Context) ([]entities.StatusCount, error) {
	return []entities.StatusCount{{Status: entities.StatusPending, Count: 2}}, nil
}

func (s *stubOrderListAPI) UpdateOrderStatus(_ context.Context, _ string, status entities.OrderStatus) error {
	s.gotStatus = status
	return nil
}

func (s *stubOrderListAPI) PlaceOrder(_ context.Context, centreID string, items []entities.OrderItem) (string, error) {
	if s.placeErr != nil {
		return "", s.placeErr
	}
	s.gotCentre = centreID
	s.gotItems = items
	return s.placedID, nil
}

type stubCentreAPI struct {
	centres []entities.Centre
}

func (s *stubCentreAPI) ListCentres(_ context.Context) ([]entities.Centre, error) {
	return s.centres, nil
}

func TestOrderService_List(t *testing.T) {
	api := &stubOrderListAPI{
		all:      []entities.OrderSummary{{ID: "1"}, {ID: "2"}},
		byStatus: []entities.OrderSummary{{ID: "2"}},
	}
	svc := service.NewOrderService(testLogger(), api, &stubCentreAPI{}, &stubCatalogSource{})

	got, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List(context.Background(), entities.StatusPending)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, entities.StatusPending, api.gotStatus)
}

func TestOrderService_Place(t *testing.T) {
	catalog := entities.Catalog{
		{ID: "p-a", Name: "Idli Batter", Price: 10, Stock: 5},
		{ID: "p-b", Name: "Dosa Batter", Price: 20, Stock: 0},
	}

	testCases := []struct {
		name     string
		centreID string
		items    []entities.OrderItem
		wantErr  error
	}{
		{
			name:     "success",
			centreID: "c-1",
			items:    []entities.OrderItem{{ProductID: "p-a", Quantity: 5}},
		},
		{
			name:    "centre required",
			items:   []entities.OrderItem{{ProductID: "p-a", Quantity: 1}},
			wantErr: entities.ErrCentreRequired,
		},
		{
			name:     "empty cart",
			centreID: "c-1",
			wantErr:  entities.ErrEmptyCart,
		},
		{
			name:     "zero quantity",
			centreID: "c-1",
			items:    []entities.OrderItem{{ProductID: "p-a", Quantity: 0}},
			wantErr:  entities.ErrInvalidQuantity,
		},
		{
			name:     "unknown product",
			centreID: "c-1",
			items:    []entities.OrderItem{{ProductID: "p-x", Quantity: 1}},
			wantErr:  entities.ErrProductNotFound,
		},
		{
			name:     "more than in stock",
			centreID: "c-1",
			items:    []entities.OrderItem{{ProductID: "p-a", Quantity: 6}},
			wantErr:  entities.ErrInsufficientStock,
		},
		{
			name:     "out of stock product",
			centreID: "c-1",
			items:    []entities.OrderItem{{ProductID: "p-b", Quantity: 1}},
			wantErr:  entities.ErrInsufficientStock,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := &stubOrderListAPI{placedID: "ord-new"}
			svc := service.NewOrderService(testLogger(), api, &stubCentreAPI{}, &stubCatalogSource{catalog: catalog})

			orderID, err := svc.Place(context.Background(), tc.centreID, tc.items)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, api.gotItems, "nothing may reach the upstream")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ord-new", orderID)
			assert.Equal(t, tc.centreID, api.gotCentre)
			assert.Equal(t, tc.items, api.gotItems)
		})
	}
}

func TestOrderService_Place_CatalogUnavailable(t *testing.T) {
	upstreamErr := errors.New("upstream down")
	svc := service.NewOrderService(testLogger(), &stubOrderListAPI{}, &stubCentreAPI{}, &stubCatalogSource{err: upstreamErr})

	_, err := svc.Place(context.Background(), "c-1", []entities.OrderItem{{ProductID: "p-a", Quantity: 1}})
	assert.ErrorIs(t, err, upstreamErr)
}
