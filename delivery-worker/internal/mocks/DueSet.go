package mocks

import (
	context "context"

	domain "foodrun/delivery-worker/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// DueSet is a mock type for the DueSet type
type DueSet struct {
	mock.Mock
}

func (_m *DueSet) Add(ctx context.Context, delivery domain.Delivery) error {
	ret := _m.Called(ctx, delivery)
	return ret.Error(0)
}

func (_m *DueSet) Remove(ctx context.Context, orderID string) error {
	ret := _m.Called(ctx, orderID)
	return ret.Error(0)
}

func (_m *DueSet) All(ctx context.Context) ([]domain.Delivery, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Delivery
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Delivery)
	}
	return r0, ret.Error(1)
}

// NewDueSet creates a new instance of DueSet. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDueSet(t interface {
	mock.TestingT
	Cleanup(func())
}) *DueSet {
	mock := &DueSet{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
