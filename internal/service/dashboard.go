package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/ports"
)

// UnavailableStat is shown in place of a value whose source failed.
const UnavailableStat = "–"

// dashboardSampleSize is how many products are inspected for low stock.
const dashboardSampleSize = 100

// DashboardSources are the backend ports feeding the dashboard.
type DashboardSources struct {
	Products  ports.ProductAPI
	Orders    ports.OrderAPI
	Customers ports.CustomerAPI
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Sources DashboardSources
	Logger  *slog.Logger
}

// DashboardService assembles the admin landing page stats.
type DashboardService struct {
	src    DashboardSources
	logger *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Sources.Products == nil || opts.Sources.Orders == nil || opts.Sources.Customers == nil {
		panic("dashboard sources are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{src: opts.Sources, logger: logger.With("component", "dashboard")}
}

// StatCard is one tile on the dashboard.
type StatCard struct {
	Key      string
	Label    string
	Value    string
	Degraded bool
}

// Dashboard is the rendered dashboard model.
type Dashboard struct {
	Cards        []StatCard
	RecentOrders []model.Order
}

// Degraded reports whether any card could not be computed.
func (d Dashboard) Degraded() bool {
	for _, c := range d.Cards {
		if c.Degraded {
			return true
		}
	}
	return false
}

const recentOrderCount = 5

// Load fetches products, orders and customers in parallel. A failing source
// degrades its cards; an unauthorized response from any source is returned.
func (s *DashboardService) Load(ctx context.Context) (*Dashboard, error) {
	var (
		products                     model.Paged[model.Product]
		orders                       []model.Order
		customers                    []model.Customer
		productErr, orderErr, custErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, productErr = s.src.Products.ListProducts(gctx, model.ProductListOptions{Page: 1, PageSize: dashboardSampleSize, IncludeUnpublished: true})
		return unauthorizedOnly(productErr)
	})
	g.Go(func() error {
		orders, orderErr = s.src.Orders.ListOrders(gctx)
		return unauthorizedOnly(orderErr)
	})
	g.Go(func() error {
		customers, custErr = s.src.Customers.ListCustomers(gctx)
		return unauthorizedOnly(custErr)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for name, err := range map[string]error{"products": productErr, "orders": orderErr, "customers": custErr} {
		if err != nil {
			s.logger.WarnContext(ctx, "dashboard source unavailable", "source", name, "error", err)
		}
	}

	d := &Dashboard{Cards: make([]StatCard, 0, 6)}

	totalProducts, lowStock := productStats(products)
	d.Cards = append(d.Cards,
		card("products", "Total Products", strconv.Itoa(totalProducts), productErr),
		card("orders", "Total Orders", strconv.Itoa(len(orders)), orderErr),
		card("customers", "Customers", strconv.Itoa(len(customers)), custErr),
	)

	pending, revenue := orderStats(orders)
	d.Cards = append(d.Cards,
		card("pending", "Pending Orders", strconv.Itoa(pending), orderErr),
		card("revenue", "Revenue", fmt.Sprintf("$%.2f", revenue), orderErr),
		card("low_stock", "Low Stock", strconv.Itoa(lowStock), productErr),
	)

	if orderErr == nil {
		d.RecentOrders = recentOrders(orders, recentOrderCount)
	}
	return d, nil
}

// unauthorizedOnly lets a 401 cancel the fan-out; other errors only degrade a card.
func unauthorizedOnly(err error) error {
	if apperrors.IsUnauthorized(err) {
		return err
	}
	return nil
}

func card(key, label, value string, err error) StatCard {
	if err != nil {
		return StatCard{Key: key, Label: label, Value: UnavailableStat, Degraded: true}
	}
	return StatCard{Key: key, Label: label, Value: value}
}

func productStats(p model.Paged[model.Product]) (total, lowStock int) {
	total = p.TotalCount
	if total < len(p.Items) {
		total = len(p.Items)
	}
	for _, it := range p.Items {
		if it.StockStatus() == model.LowStock {
			lowStock++
		}
	}
	return total, lowStock
}

func orderStats(orders []model.Order) (pending int, revenue float64) {
	for _, o := range orders {
		if o.Status == model.OrderPending {
			pending++
		}
		if o.Status != model.OrderCancelled {
			revenue += o.TotalAmount
		}
	}
	return pending, revenue
}

func recentOrders(orders []model.Order, n int) []model.Order {
	out := append([]model.Order(nil), orders...)
	sortOrdersNewestFirst(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}
