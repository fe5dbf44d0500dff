package mocks

import (
	context "context"

	domain "foodrun/delivery-worker/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// DeliveryHandler is a mock type for the DeliveryHandler type
type DeliveryHandler struct {
	mock.Mock
}

func (_m *DeliveryHandler) OrderPlaced(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func (_m *DeliveryHandler) OrderDelivered(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// NewDeliveryHandler creates a new instance of DeliveryHandler. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDeliveryHandler(t interface {
	mock.TestingT
	Cleanup(func())
}) *DeliveryHandler {
	mock := &DeliveryHandler{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
