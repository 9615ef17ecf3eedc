package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/http/validation"
)

const (
	adminCustomersPath = "/admin/customers"
	maxPhoneLen        = 32
	maxAddressLen      = 500
)

// CustomersPage lists customers, optionally filtered by name or email.
// GET /admin/customers?q=term.
func (h *UIHandlers) CustomersPage(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	customers, err := h.Customers.List(r.Context(), q)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.adminData(r, PageMeta{Title: "Customers - eCom Panel", PageTitle: "Customers", CurrentPage: PageCustomers}).
		With("Customers", customers).
		With("Query", q).
		Build()
	h.renderPage(w, r, data)
}

// CustomerPage shows a customer with their order history.
// GET /admin/customers/{id}.
func (h *UIHandlers) CustomerPage(w http.ResponseWriter, r *http.Request) {
	d, err := h.Customers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	var spent float64
	for _, o := range d.Orders {
		if o.Status != model.OrderCancelled {
			spent += o.TotalAmount
		}
	}
	data := h.adminData(r, PageMeta{Title: d.Customer.Name + " - eCom Panel", PageTitle: d.Customer.Name, CurrentPage: PageCustomer}).
		With("Customer", d.Customer).
		With("Orders", d.Orders).
		With("TotalSpent", spent).
		Build()
	h.renderPage(w, r, data)
}

func (h *UIHandlers) customerFormPage(r *http.Request, mode FormMode) *TemplateDataBuilder {
	meta := PageMeta{Title: "New customer - eCom Panel", PageTitle: "New customer", CurrentPage: PageCustomerForm}
	action := adminCustomersPath
	if mode == FormModeEdit {
		meta = PageMeta{Title: "Edit customer - eCom Panel", PageTitle: "Edit customer", CurrentPage: PageCustomerForm}
		action = adminCustomersPath + "/" + r.PathValue("id")
	}
	return h.adminData(r, meta).With("Mode", string(mode)).With("Action", action)
}

// NewCustomerPage renders the empty customer form.
// GET /admin/customers/new.
func (h *UIHandlers) NewCustomerPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.customerFormPage(r, FormModeCreate).With("Form", model.CustomerRequest{}).Build())
}

// EditCustomerPage renders the customer form filled from the backend.
// GET /admin/customers/{id}/edit.
func (h *UIHandlers) EditCustomerPage(w http.ResponseWriter, r *http.Request) {
	d, err := h.Customers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	c := d.Customer
	data := h.customerFormPage(r, FormModeEdit).
		With("ID", c.ID).
		With("Form", model.CustomerRequest{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}).
		Build()
	h.renderPage(w, r, data)
}

func parseCustomerForm(r *http.Request) (model.CustomerRequest, map[string]string) {
	req := model.CustomerRequest{
		Name:    formString(r, "name"),
		Email:   formString(r, "email"),
		Phone:   formString(r, "phone"),
		Address: formString(r, "address"),
	}
	fv := validation.New().
		Validate("name", req.Name, validation.Required("Name", maxNameLen)).
		Validate("email", req.Email, validation.Required("Email", maxNameLen), validation.Email("Email")).
		Validate("phone", req.Phone, validation.Optional("Phone", maxPhoneLen)).
		Validate("address", req.Address, validation.Optional("Address", maxAddressLen))
	return req, fv.Errors()
}

// SaveCustomer creates or updates a customer.
// POST /admin/customers and POST /admin/customers/{id}.
func (h *UIHandlers) SaveCustomer(mode FormMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleForm(h, FormHandlerOpts[model.CustomerRequest]{
			W: w, R: r, Mode: mode,
			Parser: parseCustomerForm,
			Service: formFuncs[model.CustomerRequest]{
				create: func(ctx context.Context, req model.CustomerRequest) error {
					_, err := h.Customers.Create(ctx, req)
					return err
				},
				update: func(ctx context.Context, id string, req model.CustomerRequest) error {
					_, err := h.Customers.Update(ctx, id, req)
					return err
				},
			},
			Renderer:       h.renderPage,
			Page:           h.customerFormPage,
			SuccessURL:     adminCustomersPath,
			SuccessMessage: "Customer saved",
		})
	}
}

// DeleteCustomer removes a customer.
// POST /admin/customers/{id}/delete and DELETE /admin/customers/{id}.
func (h *UIHandlers) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.Customers.Delete,
		RedirectPath: adminCustomersPath,
		Success:      "Customer deleted",
	})
}
