package mocks

import (
	context "context"
	time "time"

	model "foodrun/model"

	mock "github.com/stretchr/testify/mock"
)

// OrderSource is a mock type for the OrderSource type
type OrderSource struct {
	mock.Mock
}

func (_m *OrderSource) OrdersBetween(ctx context.Context, userID string, from time.Time, to time.Time) ([]model.FoodOrder, error) {
	ret := _m.Called(ctx, userID, from, to)
	var r0 []model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.FoodOrder)
	}
	return r0, ret.Error(1)
}

// NewOrderSource creates a new instance of OrderSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderSource {
	mock := &OrderSource{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
