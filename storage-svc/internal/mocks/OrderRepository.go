package mocks

import (
	context "context"

	model "foodrun/model"
	domain "foodrun/storage-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) InsertOrder(ctx context.Context, order *model.FoodOrder) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderRepository) ListUserOrders(ctx context.Context, userID string, window domain.OrderRange) ([]model.FoodOrder, error) {
	ret := _m.Called(ctx, userID, window)
	var r0 []model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.FoodOrder)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, id string) (*model.FoodOrder, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FoodOrder)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) MarkDelivered(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	mock := &OrderRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
