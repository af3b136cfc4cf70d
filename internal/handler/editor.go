package handler

import (
	"log/slog"
	"net/http"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// OpenSession starts an edit session for an order.
// @Summary      Open an order edit session
// @Description  Loads the order and the product catalog and starts an edit session with the original quantities snapshotted as ceilings
// @Tags         editor
// @Accept       json
// @Param        request  body  OpenSessionRequest  true  "Order to edit"
// @Success      201  {object}  EditorSession
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      502  {object}  utils.ErrorResponse "Upstream failure"
// @Router       /editor/sessions [post]
func (h *HTTPHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OpenSessionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	sess, err := h.editor.Open(ctx, req.OrderID)
	if err != nil {
		editorOpensFailed.Inc()
		h.writeServiceError(ctx, w, err)
		return
	}

	editorOpens.Inc()
	utils.WriteJSON(w, SessionToJSON(sess), http.StatusCreated)
}

// GetSession returns the current editor view.
// @Summary      Get an edit session
// @Tags         editor
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  EditorSession
// @Failure      404  {object}  utils.ErrorResponse "Session not found"
// @Router       /editor/sessions/{session_id} [get]
func (h *HTTPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.editor.Get(chi.URLParam(r, "session_id"))
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, SessionToJSON(sess), http.StatusOK)
}

// SetQuantity applies a quantity change to one line item.
// @Summary      Set a line item quantity
// @Description  Requests above the originally ordered quantity are silently clamped; zero removes the line
// @Tags         editor
// @Accept       json
// @Param        session_id  path  string              true  "Session ID"
// @Param        product_id  path  string              true  "Product ID"
// @Param        request     body  SetQuantityRequest  true  "Requested quantity"
// @Success      200  {object}  EditorSession
// @Failure      404  {object}  utils.ErrorResponse "Session not found"
// @Failure      409  {object}  utils.ErrorResponse "Order is read-only"
// @Router       /editor/sessions/{session_id}/items/{product_id} [put]
func (h *HTTPHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req SetQuantityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	sess, err := h.editor.SetQuantity(
		chi.URLParam(r, "session_id"),
		chi.URLParam(r, "product_id"),
		req.Quantity,
	)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, SessionToJSON(sess), http.StatusOK)
}

// RemoveItem deletes a line item outright.
// @Summary      Remove a line item
// @Tags         editor
// @Param        session_id  path  string  true  "Session ID"
// @Param        product_id  path  string  true  "Product ID"
// @Success      200  {object}  EditorSession
// @Failure      404  {object}  utils.ErrorResponse "Session not found"
// @Failure      409  {object}  utils.ErrorResponse "Order is read-only"
// @Router       /editor/sessions/{session_id}/items/{product_id} [delete]
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, err := h.editor.RemoveItem(
		chi.URLParam(r, "session_id"),
		chi.URLParam(r, "product_id"),
	)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, SessionToJSON(sess), http.StatusOK)
}

// SaveSession pushes the working copy upstream.
// @Summary      Save the edited order
// @Description  Replaces the order's product list server-side; on failure the working copy is kept and the save may be retried
// @Tags         editor
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  EditorSession
// @Failure      404  {object}  utils.ErrorResponse "Session not found"
// @Failure      409  {object}  utils.ErrorResponse "Save already in flight"
// @Failure      502  {object}  utils.ErrorResponse "Upstream failure"
// @Router       /editor/sessions/{session_id}/save [post]
func (h *HTTPHandler) SaveSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "session_id")

	sess, err := h.editor.Save(ctx, sessionID)
	if err != nil {
		editorSavesFailed.Inc()
		h.logger.ErrorContext(ctx, "failed to save session",
			slog.Any("error", err),
			slog.String("session_id", sessionID),
		)
		h.writeServiceError(ctx, w, err)
		return
	}

	editorSaves.Inc()
	utils.WriteJSON(w, SessionToJSON(sess), http.StatusOK)
}

// CloseSession discards the session and any unsaved edits.
// @Summary      Close an edit session
// @Tags         editor
// @Param        session_id  path  string  true  "Session ID"
// @Success      204  "Session discarded"
// @Router       /editor/sessions/{session_id} [delete]
func (h *HTTPHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	h.editor.Close(chi.URLParam(r, "session_id"))
	w.WriteHeader(http.StatusNoContent)
}
