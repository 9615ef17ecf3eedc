package backendapi

import (
	"context"
	"net/http"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/ports"
)

var (
	_ ports.OrderAPI    = (*Client)(nil)
	_ ports.CustomerAPI = (*Client)(nil)
)

const (
	ordersPath    = "/api/orders"
	customersPath = "/api/customers"
)

// ListOrders returns all orders.
func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	return getJSON[[]model.Order](ctx, c, request{path: ordersPath, auth: true})
}

// GetOrder returns one order.
func (c *Client) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return sendJSON[model.Order](ctx, c, request{method: http.MethodGet, path: itemPath(ordersPath, id), auth: true})
}

// ListOrdersByCustomer returns the orders placed by a customer.
func (c *Client) ListOrdersByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	return getJSON[[]model.Order](ctx, c, request{path: itemPath(ordersPath+"/customer", customerID), auth: true})
}

// UpdateOrderStatus moves an order to status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return sendJSON[model.Order](ctx, c, request{
		method: http.MethodPut,
		path:   itemPath(ordersPath, id) + "/status",
		body:   model.UpdateOrderStatusRequest{Status: status},
		auth:   true,
	})
}

// ListCustomers returns all customers.
func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return getJSON[[]model.Customer](ctx, c, request{path: customersPath, auth: true})
}

// GetCustomer returns one customer.
func (c *Client) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return sendJSON[model.Customer](ctx, c, request{method: http.MethodGet, path: itemPath(customersPath, id), auth: true})
}

// CreateCustomer creates a customer.
func (c *Client) CreateCustomer(ctx context.Context, req model.CustomerRequest) (*model.Customer, error) {
	return sendJSON[model.Customer](ctx, c, request{method: http.MethodPost, path: customersPath, body: req, auth: true})
}

// UpdateCustomer replaces a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id string, req model.CustomerRequest) (*model.Customer, error) {
	return sendJSON[model.Customer](ctx, c, request{
		method: http.MethodPut,
		path:   itemPath(customersPath, id),
		body:   withID(id, req),
		auth:   true,
	})
}

// DeleteCustomer deletes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	_, err := c.invoke(ctx, request{method: http.MethodDelete, path: itemPath(customersPath, id), auth: true})
	return err
}
