package httpx

import (
	"net/http"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/service"
)

const adminOrdersPath = "/admin/orders"

// OrdersPage lists orders newest first, optionally filtered by status.
// GET /admin/orders?status=Pending.
func (h *UIHandlers) OrdersPage(w http.ResponseWriter, r *http.Request) {
	var f service.OrderFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		st, err := model.ParseOrderStatus(raw)
		if err != nil {
			h.handleServiceError(w, r, apperrors.ValidationField("status", "Unknown order status"))
			return
		}
		f.Status = st
	}
	orders, err := h.Orders.List(r.Context(), f)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.adminData(r, PageMeta{Title: "Orders - eCom Panel", PageTitle: "Orders", CurrentPage: PageOrders}).
		With("Orders", orders).
		With("Status", string(f.Status)).
		With("Statuses", model.OrderStatuses()).
		Build()
	h.renderPage(w, r, data)
}

// OrderPage shows one order.
// GET /admin/orders/{id}.
func (h *UIHandlers) OrderPage(w http.ResponseWriter, r *http.Request) {
	o, err := h.Orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.renderOrder(w, r, o, nil)
}

func (h *UIHandlers) renderOrder(w http.ResponseWriter, r *http.Request, o *model.Order, errs map[string]string) {
	b := h.adminData(r, PageMeta{Title: "Order " + o.ID + " - eCom Panel", PageTitle: "Order details", CurrentPage: PageOrder}).
		With("Order", o).
		With("Statuses", model.OrderStatuses())
	if len(errs) > 0 {
		b.WithFieldErrors(errs).WithError(errMsgFixBelow)
	}
	h.renderPage(w, r, b.Build())
}

// UpdateOrderStatus moves an order to another status.
// POST /admin/orders/{id}/status (status).
func (h *UIHandlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	id := r.PathValue("id")
	o, err := h.Orders.UpdateStatus(r.Context(), id, formString(r, "status"))
	if err != nil {
		if apperrors.IsValidation(err) && !wantsJSON(r) && !IsHTMX(r) {
			current, getErr := h.Orders.Get(r.Context(), id)
			if getErr != nil {
				h.handleServiceError(w, r, getErr)
				return
			}
			fieldErrors := map[string]string{}
			processError(err, &fieldErrors)
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusUnprocessableEntity)
			h.renderOrder(w, r, current, fieldErrors)
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]any{"success": true, "status": o.Status})
		return
	}
	if IsHTMX(r) {
		triggerToast(w, "Order marked "+string(o.Status), "success")
		h.renderFragment(w, r, "order-status-badge", o)
		return
	}
	Redirect(w, r, adminOrdersPath+"/"+id)
}
