package handler

import (
	"net/http"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/pkg/utils"
)

// Login authenticates a vendor against the upstream.
// @Summary      Vendor login
// @Tags         auth
// @Accept       json
// @Param        request  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  VendorProfile
// @Failure      401  {object}  utils.ErrorResponse "Login not allowed"
// @Router       /auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	vendor, err := h.auth.Login(r.Context(), req.UserID, req.Password)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, VendorProfile{
		ID:           vendor.ID,
		Name:         vendor.Name,
		UserID:       vendor.UserID,
		Role:         vendor.Role,
		MobileNumber: vendor.MobileNumber,
		KKStock:      h.sess.Capabilities().KKStock,
	}, http.StatusOK)
}

func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(); err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session returns the signed-in vendor's profile and capabilities.
func (h *HTTPHandler) Session(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.sess.Vendor()
	if !ok {
		utils.WriteError(w, "not signed in", http.StatusUnauthorized)
		return
	}
	utils.WriteJSON(w, VendorProfile{
		ID:           vendor.ID,
		Name:         vendor.Name,
		UserID:       vendor.UserID,
		Role:         vendor.Role,
		MobileNumber: vendor.MobileNumber,
		KKStock:      h.sess.Capabilities().KKStock,
	}, http.StatusOK)
}

// SalesAnalytics returns revenue figures for an optional date range.
// @Summary      Sales analytics
// @Tags         analytics
// @Param        from  query  string  false  "From date (YYYY-MM-DD)"
// @Param        to    query  string  false  "To date (YYYY-MM-DD)"
// @Success      200  {object}  SalesAnalytics
// @Failure      502  {object}  utils.ErrorResponse "Upstream failure"
// @Router       /analytics/sales [get]
func (h *HTTPHandler) SalesAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analytics.Sales(
		r.Context(),
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, AnalyticsEntityToJSON(analytics), http.StatusOK)
}

// Notifications returns the poller's latest snapshot.
func (h *HTTPHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	snap := h.notifier.Snapshot()

	out := Notifications{
		Customers:     make([]Customer, 0, len(snap.Customers)),
		AcceptedCount: snap.AcceptedCount,
		FetchedAt:     snap.FetchedAt,
	}
	for _, c := range snap.Customers {
		out.Customers = append(out.Customers, Customer{
			ID:     c.ID,
			Name:   c.Name,
			Centre: c.CentreName,
			Branch: c.BranchName,
			Reason: c.Reason,
		})
	}
	utils.WriteJSON(w, out, http.StatusOK)
}
