package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// OrderStore is a mock type for the OrderStore type
type OrderStore struct {
	mock.Mock
}

func (_m *OrderStore) MarkDelivered(ctx context.Context, orderID string) (bool, error) {
	ret := _m.Called(ctx, orderID)
	return ret.Bool(0), ret.Error(1)
}

// NewOrderStore creates a new instance of OrderStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderStore {
	mock := &OrderStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
