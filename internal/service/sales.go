package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/ports"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Orders ports.OrderAPI // Required
	Logger *slog.Logger
}

// OrderService lists orders and moves them through fulfilment.
type OrderService struct {
	orders ports.OrderAPI
	logger *slog.Logger
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	if opts.Orders == nil {
		panic("OrderAPI is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{orders: opts.Orders, logger: logger.With("component", "orders")}
}

// OrderFilter narrows an order listing. Zero values match everything.
type OrderFilter struct {
	Status     model.OrderStatus
	CustomerID string
}

// List returns orders newest first, optionally filtered.
func (s *OrderService) List(ctx context.Context, f OrderFilter) ([]model.Order, error) {
	var (
		orders []model.Order
		err    error
	)
	if f.CustomerID != "" {
		orders, err = s.orders.ListOrdersByCustomer(ctx, f.CustomerID)
	} else {
		orders, err = s.orders.ListOrders(ctx)
	}
	if err != nil {
		return nil, err
	}
	if f.Status != "" {
		kept := orders[:0]
		for _, o := range orders {
			if o.Status == f.Status {
				kept = append(kept, o)
			}
		}
		orders = kept
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func sortOrdersNewestFirst(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt.Time)
	})
}

// Get returns order id.
func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NotFound("Order not found")
	}
	return s.orders.GetOrder(ctx, id)
}

// UpdateStatus validates status against the allowed set before calling the backend.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	st, err := model.ParseOrderStatus(status)
	if err != nil {
		return nil, apperrors.ValidationField("status", capitalize(err.Error()))
	}
	o, err := s.orders.UpdateOrderStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "order status updated", "order_id", id, "status", st)
	return o, nil
}

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Customers ports.CustomerAPI // Required
	Orders    ports.OrderAPI    // Optional: enables order history on the detail view
}

// CustomerService manages customers.
type CustomerService struct {
	customers ports.CustomerAPI
	orders    ports.OrderAPI
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	if opts.Customers == nil {
		panic("CustomerAPI is required")
	}
	return &CustomerService{customers: opts.Customers, orders: opts.Orders}
}

// List returns customers sorted by name. A non-empty query matches name or email.
func (s *CustomerService) List(ctx context.Context, query string) ([]model.Customer, error) {
	all, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Customer, 0, len(all))
	for _, c := range all {
		if q == "" || strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

// CustomerDetail is a customer with their order history.
type CustomerDetail struct {
	Customer model.Customer
	Orders   []model.Order
}

// Get returns customer id and, when orders are available, their orders.
func (s *CustomerService) Get(ctx context.Context, id string) (*CustomerDetail, error) {
	c, err := s.customers.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Customer not found")
	}
	d := &CustomerDetail{Customer: *c}
	if s.orders != nil {
		orders, err := s.orders.ListOrdersByCustomer(ctx, id)
		if err != nil && !apperrors.IsNotFound(err) {
			return nil, err
		}
		d.Orders = orders
	}
	return d, nil
}

// Create validates req and creates a customer.
func (s *CustomerService) Create(ctx context.Context, req model.CustomerRequest) (*model.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	return s.customers.CreateCustomer(ctx, req)
}

// Update validates req and updates customer id.
func (s *CustomerService) Update(ctx context.Context, id string, req model.CustomerRequest) (*model.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	return s.customers.UpdateCustomer(ctx, id, req)
}

// Delete deletes customer id.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.DeleteCustomer(ctx, id)
}
