package handler

import (
	"net/http"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// ListOrders returns order summaries, optionally filtered by status.
// @Summary      List orders
// @Tags         orders
// @Param        status  query  string  false  "Order status filter"
// @Success      200  {array}  OrderSummary
// @Failure      502  {object}  utils.ErrorResponse "Upstream failure"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := entities.OrderStatus(r.URL.Query().Get("status"))

	orders, err := h.orders.List(r.Context(), status)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, summariesToJSON(orders), http.StatusOK)
}

func (h *HTTPHandler) OrdersByCentre(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ByCentre(r.Context(), chi.URLParam(r, "centre_id"))
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, summariesToJSON(orders), http.StatusOK)
}

// AcceptedOrders lists the signed-in vendor's accepted orders.
func (h *HTTPHandler) AcceptedOrders(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.sess.Vendor()
	if !ok {
		utils.WriteError(w, "not signed in", http.StatusUnauthorized)
		return
	}

	orders, err := h.orders.Accepted(r.Context(), vendor.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, summariesToJSON(orders), http.StatusOK)
}

func (h *HTTPHandler) StatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.orders.StatusCounts(r.Context())
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	out := make([]StatusCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, StatusCount{Status: string(c.Status), Count: c.Count})
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// UpdateOrderStatus moves an order to a new status.
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Param        order_id  path  string               true  "Order ID"
// @Param        request   body  StatusUpdateRequest  true  "New status"
// @Success      204  "Status updated"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusUpdateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "order_id"), entities.OrderStatus(req.Status))
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PlaceOrder submits a new order for a centre.
// @Summary      Place an order
// @Description  Every requested quantity is checked against current catalog stock before the order is submitted
// @Tags         orders
// @Accept       json
// @Param        request  body  PlaceOrderRequest  true  "Centre and cart"
// @Success      201  {object}  map[string]string
// @Failure      422  {object}  utils.ErrorResponse "Stock or cart problem"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, l := range req.Items {
		items = append(items, entities.OrderItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	orderID, err := h.orders.Place(r.Context(), req.CentreID, items)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, map[string]string{"order_id": orderID}, http.StatusCreated)
}

func (h *HTTPHandler) ListCentres(w http.ResponseWriter, r *http.Request) {
	centres, err := h.orders.Centres(r.Context())
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	out := make([]Centre, 0, len(centres))
	for _, c := range centres {
		out = append(out, CentreEntityToJSON(c))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

func summariesToJSON(orders []entities.OrderSummary) []OrderSummary {
	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, SummaryEntityToJSON(o))
	}
	return out
}
