package mocks

import (
	context "context"
	time "time"

	domain "foodrun/spend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SpendCache is a mock type for the SpendCache type
type SpendCache struct {
	mock.Mock
}

func (_m *SpendCache) Get(ctx context.Context, userID string, date string) (*domain.DailySpend, error) {
	ret := _m.Called(ctx, userID, date)
	var r0 *domain.DailySpend
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DailySpend)
	}
	return r0, ret.Error(1)
}

func (_m *SpendCache) Set(ctx context.Context, userID string, spend *domain.DailySpend, ttl time.Duration) error {
	ret := _m.Called(ctx, userID, spend, ttl)
	return ret.Error(0)
}

// NewSpendCache creates a new instance of SpendCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSpendCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *SpendCache {
	mock := &SpendCache{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
