package httpx

import "net/http"

// DashboardPage renders the admin landing page.
// GET /admin.
func (h *UIHandlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboard.Load(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	b := h.adminData(r, PageMeta{Title: "Dashboard - eCom Panel", PageTitle: "Dashboard", CurrentPage: PageDashboard}).
		With("Cards", d.Cards).
		With("RecentOrders", d.RecentOrders)
	if d.Degraded() {
		b.With("Degraded", true)
	}
	h.renderPage(w, r, b.Build())
}
