package mocks

import (
	context "context"

	model "foodrun/model"
	domain "foodrun/storage-svc/internal/domain"
	stream "foodrun/stream"

	mock "github.com/stretchr/testify/mock"
)

// OrderServiceInterface is a mock type for the OrderServiceInterface type
type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) PlaceOrder(ctx context.Context, userID string, order *model.FoodOrder) (*model.FoodOrder, error) {
	ret := _m.Called(ctx, userID, order)
	var r0 *model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FoodOrder)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ListUserOrders(ctx context.Context, userID string, window domain.OrderRange) ([]model.FoodOrder, error) {
	ret := _m.Called(ctx, userID, window)
	var r0 []model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.FoodOrder)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) GetOrder(ctx context.Context, id string) (*model.FoodOrder, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FoodOrder)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) MarkDelivered(ctx context.Context, id string) (*model.FoodOrder, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FoodOrder)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) WatchUserOrders(ctx context.Context, userID string, window domain.OrderRange) (*stream.Subscription[[]model.FoodOrder], error) {
	ret := _m.Called(ctx, userID, window)
	var r0 *stream.Subscription[[]model.FoodOrder]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.FoodOrder])
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRCode(ctx context.Context, id string) ([]byte, error) {
	ret := _m.Called(ctx, id)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

// NewOrderServiceInterface creates a new instance of OrderServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	mock := &OrderServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
