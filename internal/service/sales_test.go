package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/mocks"
)

func ts(day int) model.Timestamp {
	return model.Timestamp{Time: time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)}
}

func TestOrderService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockOrderAPI(ctrl)
	svc := NewOrderService(OrderServiceOptions{Orders: api})

	orders := []model.Order{
		{ID: "old", Status: model.OrderPending, CreatedAt: ts(1)},
		{ID: "new", Status: model.OrderPending, CreatedAt: ts(3)},
		{ID: "shipped", Status: model.OrderShipped, CreatedAt: ts(2)},
	}
	api.EXPECT().ListOrders(gomock.Any()).Return(orders, nil)

	got, err := svc.List(context.Background(), OrderFilter{Status: model.OrderPending})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestOrderService_List_ByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockOrderAPI(ctrl)
	svc := NewOrderService(OrderServiceOptions{Orders: api})

	api.EXPECT().ListOrdersByCustomer(gomock.Any(), "c1").Return([]model.Order{{ID: "o1"}}, nil)

	got, err := svc.List(context.Background(), OrderFilter{CustomerID: "c1"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockOrderAPI(ctrl)
	svc := NewOrderService(OrderServiceOptions{Orders: api})
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "o1", "Lost")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "status", apperrors.GetField(err))

	api.EXPECT().UpdateOrderStatus(gomock.Any(), "o1", model.OrderShipped).
		Return(&model.Order{ID: "o1", Status: model.OrderShipped}, nil)

	o, err := svc.UpdateStatus(ctx, "o1", "shipped")
	require.NoError(t, err)
	assert.Equal(t, model.OrderShipped, o.Status)
}

func TestCustomerService_List_FiltersAndSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockCustomerAPI(ctrl)
	svc := NewCustomerService(CustomerServiceOptions{Customers: api})

	api.EXPECT().ListCustomers(gomock.Any()).Return([]model.Customer{
		{Name: "zed", Email: "z@shop.test"},
		{Name: "Amy", Email: "amy@shop.test"},
		{Name: "Bob", Email: "bob@other.test"},
	}, nil).Times(2)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Amy", all[0].Name)
	assert.Equal(t, "zed", all[2].Name)

	shop, err := svc.List(context.Background(), "SHOP.test")
	require.NoError(t, err)
	assert.Len(t, shop, 2)
}

func TestCustomerService_Get_WithOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mocks.NewMockCustomerAPI(ctrl)
	orders := mocks.NewMockOrderAPI(ctrl)
	svc := NewCustomerService(CustomerServiceOptions{Customers: customers, Orders: orders})

	customers.EXPECT().GetCustomer(gomock.Any(), "c1").Return(&model.Customer{ID: "c1", Name: "Amy"}, nil)
	orders.EXPECT().ListOrdersByCustomer(gomock.Any(), "c1").Return(nil, apperrors.NotFound("none"))

	d, err := svc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Amy", d.Customer.Name)
	assert.Empty(t, d.Orders)
}

func TestCustomerService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewCustomerService(CustomerServiceOptions{Customers: mocks.NewMockCustomerAPI(ctrl)})

	_, err := svc.Create(context.Background(), model.CustomerRequest{Name: "Amy", Email: "nope"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "email", apperrors.GetField(err))
}
