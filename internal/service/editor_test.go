package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/editor"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderAPI struct {
	order    entities.Order
	getErr   error
	saveErr  error
	saved    []entities.Order
	getCalls int
}

func (s *stubOrderAPI) GetOrder(_ context.Context, _ string) (entities.Order, error) {
	s.getCalls++
	return s.order, s.getErr
}

func (s *stubOrderAPI) SaveOrder(_ context.Context, order entities.Order) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, order)
	return nil
}

type stubCatalogSource struct {
	catalog entities.Catalog
	err     error
}

func (s *stubCatalogSource) Catalog(_ context.Context) (entities.Catalog, error) {
	return s.catalog, s.err
}

func editableOrder() entities.Order {
	return entities.Order{
		ID:     "ord-1",
		Status: entities.StatusAccepted,
		Items: []entities.OrderItem{
			{ProductID: "p-a", ProductName: "Idli Batter", UnitPrice: 10, Quantity: 5},
			{ProductID: "p-b", ProductName: "Dosa Batter", UnitPrice: 20, Quantity: 2},
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEditorService_Open(t *testing.T) {
	upstreamErr := errors.New("upstream down")

	testCases := []struct {
		name    string
		orders  *stubOrderAPI
		source  *stubCatalogSource
		wantErr error
	}{
		{
			name:   "success",
			orders: &stubOrderAPI{order: editableOrder()},
			source: &stubCatalogSource{catalog: entities.Catalog{{ID: "p-a"}}},
		},
		{
			name:    "order fetch fails",
			orders:  &stubOrderAPI{getErr: entities.ErrOrderNotFound},
			source:  &stubCatalogSource{},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "catalog fetch fails",
			orders:  &stubOrderAPI{order: editableOrder()},
			source:  &stubCatalogSource{err: upstreamErr},
			wantErr: upstreamErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewEditorService(testLogger(), tc.orders, tc.source)

			sess, err := svc.Open(context.Background(), "ord-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, sess)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, sess)
			assert.NotEmpty(t, sess.ID)
			assert.Equal(t, editor.StateReadyEditable, sess.State())

			// the session is registered and retrievable
			got, err := svc.Get(sess.ID)
			require.NoError(t, err)
			assert.Same(t, sess, got)
		})
	}
}

func TestEditorService_Get_Unknown(t *testing.T) {
	svc := service.NewEditorService(testLogger(), &stubOrderAPI{}, &stubCatalogSource{})

	_, err := svc.Get("does-not-exist")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestEditorService_Save(t *testing.T) {
	catalog := entities.Catalog{
		{ID: "p-a", Name: "Idli Batter", Price: 10, Stock: 100},
		{ID: "p-b", Name: "Dosa Batter", Price: 20, Stock: 100},
	}

	t.Run("save pushes working lines upstream", func(t *testing.T) {
		orders := &stubOrderAPI{order: editableOrder()}
		svc := service.NewEditorService(testLogger(), orders, &stubCatalogSource{catalog: catalog})

		sess, err := svc.Open(context.Background(), "ord-1")
		require.NoError(t, err)

		_, err = svc.SetQuantity(sess.ID, "p-a", 3)
		require.NoError(t, err)
		_, err = svc.RemoveItem(sess.ID, "p-b")
		require.NoError(t, err)

		_, err = svc.Save(context.Background(), sess.ID)
		require.NoError(t, err)

		require.Len(t, orders.saved, 1)
		saved := orders.saved[0]
		require.Len(t, saved.Items, 1)
		assert.Equal(t, "p-a", saved.Items[0].ProductID)
		assert.Equal(t, 3, saved.Items[0].Quantity)
		assert.Equal(t, editor.StateSaveSucceeded, sess.State())
	})

	t.Run("failed save keeps edits for retry", func(t *testing.T) {
		orders := &stubOrderAPI{order: editableOrder(), saveErr: errors.New("502")}
		svc := service.NewEditorService(testLogger(), orders, &stubCatalogSource{catalog: catalog})

		sess, err := svc.Open(context.Background(), "ord-1")
		require.NoError(t, err)

		_, err = svc.SetQuantity(sess.ID, "p-a", 1)
		require.NoError(t, err)

		_, err = svc.Save(context.Background(), sess.ID)
		require.Error(t, err)
		assert.Equal(t, editor.StateSaveFailed, sess.State())
		assert.Equal(t, 1, sess.Quantity("p-a"))

		// retry succeeds once the upstream recovers
		orders.saveErr = nil
		_, err = svc.Save(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, editor.StateSaveSucceeded, sess.State())
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := service.NewEditorService(testLogger(), &stubOrderAPI{}, &stubCatalogSource{})
		_, err := svc.Save(context.Background(), "nope")
		assert.ErrorIs(t, err, entities.ErrSessionNotFound)
	})
}

func TestEditorService_Close(t *testing.T) {
	svc := service.NewEditorService(testLogger(), &stubOrderAPI{order: editableOrder()}, &stubCatalogSource{})

	sess, err := svc.Open(context.Background(), "ord-1")
	require.NoError(t, err)

	svc.Close(sess.ID)
	_, err = svc.Get(sess.ID)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	// closing twice is harmless
	svc.Close(sess.ID)
}
