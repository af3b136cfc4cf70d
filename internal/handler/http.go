package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/editor"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/hopapi"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/notify"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/session"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Stranger-app-team/stranger-vendor-dashboard/docs"
)

type EditorService interface {
	Open(ctx context.Context, orderID string) (*editor.Session, error)
	Get(sessionID string) (*editor.Session, error)
	SetQuantity(sessionID, productID string, quantity int) (*editor.Session, error)
	RemoveItem(sessionID, productID string) (*editor.Session, error)
	Save(ctx context.Context, sessionID string) (*editor.Session, error)
	Close(sessionID string)
}

type OrderService interface {
	List(ctx context.Context, status entities.OrderStatus) ([]entities.OrderSummary, error)
	ByCentre(ctx context.Context, centreID string) ([]entities.OrderSummary, error)
	Accepted(ctx context.Context, vendorID string) ([]entities.OrderSummary, error)
	StatusCounts(ctx context.Context) ([]entities.StatusCount, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
	Centres(ctx context.Context) ([]entities.Centre, error)
	Place(ctx context.Context, centreID string, items []entities.OrderItem) (string, error)
}

type CatalogService interface {
	Catalog(ctx context.Context) (entities.Catalog, error)
	VendorInventory(ctx context.Context, vendorID string) (entities.Catalog, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID, vendorID string) error
	StockLedger(ctx context.Context, productID string, page, limit int) (entities.LedgerPage, error)
}

type AuthService interface {
	Login(ctx context.Context, userID, password string) (entities.Vendor, error)
	Logout() error
}

type AnalyticsService interface {
	Sales(ctx context.Context, from, to string) (entities.SalesAnalytics, error)
}

type Notifier interface {
	Snapshot() notify.Snapshot
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate

	editor    EditorService
	orders    OrderService
	catalog   CatalogService
	auth      AuthService
	analytics AnalyticsService
	notifier  Notifier
	sess      *session.Context
}

func NewHTTPHandler(
	logger *slog.Logger,
	editorSvc EditorService,
	orders OrderService,
	catalog CatalogService,
	auth AuthService,
	analytics AnalyticsService,
	notifier Notifier,
	sess *session.Context,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		editor:    editorSvc,
		orders:    orders,
		catalog:   catalog,
		auth:      auth,
		analytics: analytics,
		notifier:  notifier,
		sess:      sess,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/editor/sessions", func(r chi.Router) {
		r.Post("/", h.OpenSession)
		r.Get("/{session_id}", h.GetSession)
		r.Delete("/{session_id}", h.CloseSession)
		r.Put("/{session_id}/items/{product_id}", h.SetQuantity)
		r.Delete("/{session_id}/items/{product_id}", h.RemoveItem)
		r.Post("/{session_id}/save", h.SaveSession)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.PlaceOrder)
		r.Get("/accepted", h.AcceptedOrders)
		r.Get("/status-counts", h.StatusCounts)
		r.Get("/centre/{centre_id}", h.OrdersByCentre)
		r.Patch("/{order_id}/status", h.UpdateOrderStatus)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Put("/{product_id}", h.UpdateProduct)
		r.Delete("/{product_id}", h.DeleteProduct)
		r.Get("/{product_id}/stock-ledger", h.StockLedger)
	})

	r.Get("/inventory", h.Inventory)
	r.Get("/centres", h.ListCentres)
	r.Get("/analytics/sales", h.SalesAnalytics)
	r.Get("/notifications", h.Notifications)

	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/session", h.Session)

	r.Get("/swagger/*", httpSwagger.Handler())
}

// writeServiceError maps domain errors onto HTTP responses. Upstream
// failures surface as 502 so the caller can tell them apart from the
// dashboard's own errors.
func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrSessionNotFound),
		errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderReadOnly),
		errors.Is(err, entities.ErrSaveInFlight):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrCentreRequired):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrLoginRejected):
		utils.WriteError(w, "login not allowed", http.StatusUnauthorized)
	default:
		var se *hopapi.StatusError
		if errors.As(err, &se) {
			h.logger.ErrorContext(ctx, "upstream error", slog.Any("error", err))
			utils.WriteError(w, "upstream request failed", http.StatusBadGateway)
			return
		}
		h.logger.ErrorContext(ctx, "internal error", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
