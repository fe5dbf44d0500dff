package mocks

import (
	context "context"

	domain "foodrun/spend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SpendingInterface is a mock type for the SpendingInterface type
type SpendingInterface struct {
	mock.Mock
}

func (_m *SpendingInterface) Daily(ctx context.Context, userID string, date string) (*domain.DailySpend, error) {
	ret := _m.Called(ctx, userID, date)
	var r0 *domain.DailySpend
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DailySpend)
	}
	return r0, ret.Error(1)
}

func (_m *SpendingInterface) Weekly(ctx context.Context, userID string) (*domain.WeeklySpend, error) {
	ret := _m.Called(ctx, userID)
	var r0 *domain.WeeklySpend
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.WeeklySpend)
	}
	return r0, ret.Error(1)
}

// NewSpendingInterface creates a new instance of SpendingInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSpendingInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *SpendingInterface {
	mock := &SpendingInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
