package handler

import (
	"net/http"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// ListProducts returns the full catalog.
// @Summary      List catalog products
// @Tags         products
// @Success      200  {array}  Product
// @Failure      502  {object}  utils.ErrorResponse "Upstream failure"
// @Router       /products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog.Catalog(r.Context())
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, catalogToJSON(catalog), http.StatusOK)
}

// Inventory lists the signed-in vendor's own products.
func (h *HTTPHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.sess.Vendor()
	if !ok {
		utils.WriteError(w, "not signed in", http.StatusUnauthorized)
		return
	}

	catalog, err := h.catalog.VendorInventory(r.Context(), vendor.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, struct {
		Products []Product `json:"products"`
		KKStock  bool      `json:"kk_stock"`
	}{
		Products: catalogToJSON(catalog),
		KKStock:  h.sess.Capabilities().KKStock,
	}, http.StatusOK)
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.sess.Vendor()
	if !ok {
		utils.WriteError(w, "not signed in", http.StatusUnauthorized)
		return
	}

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	created, err := h.catalog.CreateProduct(r.Context(), entities.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		VendorID:    vendor.ID,
	})
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(created), http.StatusCreated)
}

func (h *HTTPHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.sess.Vendor()
	if !ok {
		utils.WriteError(w, "not signed in", http.StatusUnauthorized)
		return
	}

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.catalog.UpdateProduct(r.Context(), entities.Product{
		ID:          chi.URLParam(r, "product_id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		VendorID:    vendor.ID,
	})
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.sess.Vendor()
	if !ok {
		utils.WriteError(w, "not signed in", http.StatusUnauthorized)
		return
	}

	err := h.catalog.DeleteProduct(r.Context(), chi.URLParam(r, "product_id"), vendor.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StockLedger returns one page of a product's stock ledger.
// @Summary      Stock ledger page
// @Tags         products
// @Param        product_id  path   string  true   "Product ID"
// @Param        page        query  int     false  "Page number"
// @Param        limit       query  int     false  "Page size"
// @Success      200  {object}  LedgerPage
// @Failure      502  {object}  utils.ErrorResponse "Upstream failure"
// @Router       /products/{product_id}/stock-ledger [get]
func (h *HTTPHandler) StockLedger(w http.ResponseWriter, r *http.Request) {
	page := utils.QueryInt(r, "page", 0)
	limit := utils.QueryInt(r, "limit", 0)

	ledger, err := h.catalog.StockLedger(r.Context(), chi.URLParam(r, "product_id"), page, limit)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, LedgerEntityToJSON(ledger), http.StatusOK)
}

func catalogToJSON(catalog entities.Catalog) []Product {
	out := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, ProductEntityToJSON(p))
	}
	return out
}
