package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/editor"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/handler"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/notify"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEditor struct {
	sess    *editor.Session
	openErr error
	getErr  error
	saveErr error
	closed  []string
}

func (s *stubEditor) Open(_ context.Context, _ string) (*editor.Session, error) {
	return s.sess, s.openErr
}

func (s *stubEditor) Get(_ string) (*editor.Session, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.sess, nil
}

func (s *stubEditor) SetQuantity(_, productID string, quantity int) (*editor.Session, error) {
	if err := s.sess.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}
	return s.sess, nil
}

func (s *stubEditor) RemoveItem(_, productID string) (*editor.Session, error) {
	if err := s.sess.RemoveItem(productID); err != nil {
		return nil, err
	}
	return s.sess, nil
}

func (s *stubEditor) Save(_ context.Context, _ string) (*editor.Session, error) {
	if s.saveErr != nil {
		return s.sess, s.saveErr
	}
	return s.sess, nil
}

func (s *stubEditor) Close(sessionID string) {
	s.closed = append(s.closed, sessionID)
}

type stubOrders struct {
	summaries []entities.OrderSummary
	placeErr  error
	placedID  string
	updateErr error
}

func (s *stubOrders) List(_ context.Context, _ entities.OrderStatus) ([]entities.OrderSummary, error) {
	return s.summaries, nil
}

func (s *stubOrders) ByCentre(_ context.Context, _ string) ([]entities.OrderSummary, error) {
	return s.summaries, nil
}

func (s *stubOrders) Accepted(_ context.Context, _ string) ([]entities.OrderSummary, error) {
	return s.summaries, nil
}

func (s *stubOrders) StatusCounts(_ context.Context) ([]entities.StatusCount, error) {
	return []entities.StatusCount{{Status: entities.StatusPending, Count: 3}}, nil
}

func (s *stubOrders) UpdateStatus(_ context.Context, _ string, _ entities.OrderStatus) error {
	return s.updateErr
}

func (s *stubOrders) Centres(_ context.Context) ([]entities.Centre, error) {
	return []entities.Centre{{ID: "c-1", Name: "Anna Nagar"}}, nil
}

func (s *stubOrders) Place(_ context.Context, _ string, _ []entities.OrderItem) (string, error) {
	if s.placeErr != nil {
		return "", s.placeErr
	}
	return s.placedID, nil
}

type stubCatalog struct {
	catalog entities.Catalog
	err     error
}

func (s *stubCatalog) Catalog(_ context.Context) (entities.Catalog, error) {
	return s.catalog, s.err
}

func (s *stubCatalog) VendorInventory(_ context.Context, _ string) (entities.Catalog, error) {
	return s.catalog, s.err
}

func (s *stubCatalog) CreateProduct(_ context.Context, p entities.Product) (entities.Product, error) {
	p.ID = "p-new"
	return p, s.err
}

func (s *stubCatalog) UpdateProduct(_ context.Context, _ entities.Product) error { return s.err }

func (s *stubCatalog) DeleteProduct(_ context.Context, _, _ string) error { return s.err }

func (s *stubCatalog) StockLedger(_ context.Context, _ string, page, _ int) (entities.LedgerPage, error) {
	return entities.LedgerPage{Page: page, TotalPages: 4}, s.err
}

type stubAuth struct {
	vendor entities.Vendor
	err    error
}

func (s *stubAuth) Login(_ context.Context, _, _ string) (entities.Vendor, error) {
	return s.vendor, s.err
}

func (s *stubAuth) Logout() error { return nil }

type stubAnalytics struct {
	analytics entities.SalesAnalytics
}

func (s *stubAnalytics) Sales(_ context.Context, _, _ string) (entities.SalesAnalytics, error) {
	return s.analytics, nil
}

type stubNotifier struct {
	snap notify.Snapshot
}

func (s *stubNotifier) Snapshot() notify.Snapshot { return s.snap }

type handlerStubs struct {
	editor    *stubEditor
	orders    *stubOrders
	catalog   *stubCatalog
	auth      *stubAuth
	analytics *stubAnalytics
	notifier  *stubNotifier
	sess      *session.Context
}

func newTestRouter(t *testing.T, stubs handlerStubs) chi.Router {
	t.Helper()

	if stubs.editor == nil {
		stubs.editor = &stubEditor{}
	}
	if stubs.orders == nil {
		stubs.orders = &stubOrders{}
	}
	if stubs.catalog == nil {
		stubs.catalog = &stubCatalog{}
	}
	if stubs.auth == nil {
		stubs.auth = &stubAuth{}
	}
	if stubs.analytics == nil {
		stubs.analytics = &stubAnalytics{}
	}
	if stubs.notifier == nil {
		stubs.notifier = &stubNotifier{}
	}
	if stubs.sess == nil {
		stubs.sess = session.New(filepath.Join(t.TempDir(), "session.json"))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(
		logger,
		stubs.editor, stubs.orders, stubs.catalog,
		stubs.auth, stubs.analytics, stubs.notifier,
		stubs.sess,
	)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func editorSession(status entities.OrderStatus) *editor.Session {
	order := entities.Order{
		ID:     "ord-1",
		Status: status,
		Items: []entities.OrderItem{
			{ProductID: "p-a", ProductName: "Idli Batter", UnitPrice: 10, Quantity: 5},
		},
	}
	catalog := entities.Catalog{{ID: "p-a", Name: "Idli Batter", Price: 10, Stock: 50}}
	return editor.NewSession("sess-1", order, catalog)
}

func TestHTTPHandler_OpenSession(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		stub       *stubEditor
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"order_id":"ord-1"}`,
			stub:       &stubEditor{sess: editorSession(entities.StatusAccepted)},
			wantStatus: http.StatusCreated,
			wantBody:   `"state":"ready_editable"`,
		},
		{
			name:       "order not found",
			body:       `{"order_id":"missing"}`,
			stub:       &stubEditor{openErr: entities.ErrOrderNotFound},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:       "missing order id",
			body:       `{}`,
			stub:       &stubEditor{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, handlerStubs{editor: tc.stub})

			req := httptest.NewRequest(http.MethodPost, "/editor/sessions", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_SetQuantity(t *testing.T) {
	testCases := []struct {
		name       string
		status     entities.OrderStatus
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "clamped to the original quantity",
			status:     entities.StatusAccepted,
			body:       `{"quantity":99}`,
			wantStatus: http.StatusOK,
			wantBody:   `"quantity":5`,
		},
		{
			name:       "read-only order conflicts",
			status:     entities.StatusDelivered,
			body:       `{"quantity":1}`,
			wantStatus: http.StatusConflict,
			wantBody:   `"order is not editable`,
		},
		{
			name:       "negative quantity fails validation",
			status:     entities.StatusAccepted,
			body:       `{"quantity":-1}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubEditor{sess: editorSession(tc.status)}
			r := newTestRouter(t, handlerStubs{editor: stub})

			req := httptest.NewRequest(http.MethodPut, "/editor/sessions/sess-1/items/p-a", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_SaveSession_InFlight(t *testing.T) {
	sess := editorSession(entities.StatusAccepted)
	require.NoError(t, sess.BeginSave())

	stub := &stubEditor{sess: sess, saveErr: entities.ErrSaveInFlight}
	r := newTestRouter(t, handlerStubs{editor: stub})

	req := httptest.NewRequest(http.MethodPost, "/editor/sessions/sess-1/save", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "save already in flight")
}

func TestHTTPHandler_CloseSession(t *testing.T) {
	stub := &stubEditor{sess: editorSession(entities.StatusAccepted)}
	r := newTestRouter(t, handlerStubs{editor: stub})

	req := httptest.NewRequest(http.MethodDelete, "/editor/sessions/sess-1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []string{"sess-1"}, stub.closed)
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	orders := &stubOrders{summaries: []entities.OrderSummary{
		{ID: "o-1", Status: entities.StatusPending, TotalAmount: 90},
	}}
	r := newTestRouter(t, handlerStubs{orders: orders})

	req := httptest.NewRequest(http.MethodGet, "/orders?status=Pending", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"o-1"`)
	assert.Contains(t, rr.Body.String(), `"total_amount":90`)
}

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		stub       *stubOrders
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"centre_id":"c-1","items":[{"product_id":"p-a","quantity":2}]}`,
			stub:       &stubOrders{placedID: "ord-new"},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":"ord-new"`,
		},
		{
			name:       "insufficient stock",
			body:       `{"centre_id":"c-1","items":[{"product_id":"p-a","quantity":999}]}`,
			stub:       &stubOrders{placeErr: entities.ErrInsufficientStock},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"insufficient stock"`,
		},
		{
			name:       "empty items fail validation",
			body:       `{"centre_id":"c-1","items":[]}`,
			stub:       &stubOrders{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, handlerStubs{orders: tc.stub})

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Inventory(t *testing.T) {
	catalog := &stubCatalog{catalog: entities.Catalog{{ID: "p-a", Name: "Idli Batter"}}}

	t.Run("requires a signed-in vendor", func(t *testing.T) {
		r := newTestRouter(t, handlerStubs{catalog: catalog})

		req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("kk vendors see the kk stock flag", func(t *testing.T) {
		sess := session.New(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, sess.Set("tok", entities.Vendor{ID: "v-1", Name: "KK Foods", Role: entities.RoleVendor}))

		r := newTestRouter(t, handlerStubs{catalog: catalog, sess: sess})

		req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"kk_stock":true`)
	})
}

func TestHTTPHandler_Login(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		auth       *stubAuth
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"user_id":"vendor1","password":"secret"}`,
			auth:       &stubAuth{vendor: entities.Vendor{ID: "v-1", Name: "Fresh Farm", Role: entities.RoleVendor}},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Fresh Farm"`,
		},
		{
			name:       "rejected role",
			body:       `{"user_id":"admin","password":"secret"}`,
			auth:       &stubAuth{err: entities.ErrLoginRejected},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"login not allowed"`,
		},
		{
			name:       "missing password",
			body:       `{"user_id":"vendor1"}`,
			auth:       &stubAuth{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, handlerStubs{auth: tc.auth})

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Notifications(t *testing.T) {
	notifier := &stubNotifier{snap: notify.Snapshot{
		Customers: []entities.Customer{
			{ID: "cu-1", Name: "Ravi", CentreName: "Anna Nagar", Reason: "offline"},
		},
		AcceptedCount: 2,
		FetchedAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}}
	r := newTestRouter(t, handlerStubs{notifier: notifier})

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"accepted_count":2`)
	assert.Contains(t, rr.Body.String(), `"name":"Ravi"`)
}

func TestHTTPHandler_StockLedger(t *testing.T) {
	r := newTestRouter(t, handlerStubs{catalog: &stubCatalog{}})

	req := httptest.NewRequest(http.MethodGet, "/products/p-a/stock-ledger?page=2&limit=10", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"page":2`)
	assert.Contains(t, rr.Body.String(), `"total_pages":4`)
}
